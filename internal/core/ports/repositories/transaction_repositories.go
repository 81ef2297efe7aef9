package repositories

import (
	"context"
	"time"

	"github.com/savdoplus/savdo_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionMutationResult carries a transaction after a balance-affecting
// mutation together with the authoritative post-operation balances, so that
// callers never need a separate re-fetch.
type TransactionMutationResult struct {
	Transaction           domain.Transaction
	AccountBalance        decimal.Decimal
	RelatedAccountBalance *decimal.Decimal
	// NoOp is set when an idempotent operation found nothing to do
	// (e.g. approving an already-approved transaction).
	NoOp bool
}

// ListTransactionsFilter narrows transaction listings.
type ListTransactionsFilter struct {
	AccountID  *string
	DealerID   *string
	CategoryID *string
	Status     *domain.TransactionStatus
	Type       *domain.TransactionType
	DateFrom   *time.Time
	DateTo     *time.Time
}

// TransactionRepositoryFacade owns the ledger table and the approval state
// machine's persistence. Every mutating method runs as one database
// transaction that locks the affected account rows in ascending account_id
// order before touching anything, and appends the required audit entries
// before committing.
type TransactionRepositoryFacade interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, filter ListTransactionsFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// SubmitTransaction moves a DRAFT transaction to PENDING.
	SubmitTransaction(ctx context.Context, transactionID, actorID string, now time.Time) (*domain.Transaction, error)
	// ApproveTransaction is idempotent per transaction id: a second approval
	// reports NoOp instead of applying the effect twice.
	ApproveTransaction(ctx context.Context, transactionID, approverID string, now time.Time) (*TransactionMutationResult, error)
	// CancelTransaction reverses the applied effect. Cancelling either leg of
	// an exchange pair cancels both legs in the same database transaction and
	// reports the related account's balance.
	CancelTransaction(ctx context.Context, transactionID, actorID string, now time.Time) (*TransactionMutationResult, error)
	RejectTransaction(ctx context.Context, transactionID, actorID string, now time.Time) (*TransactionMutationResult, error)
	// UpdateTransaction rewrites the mutable fields; for an APPROVED record
	// the applied effect is recomputed in the same statement so no reader
	// can observe the old effect with the new amount or vice versa. Exchange
	// legs cannot be edited individually and are rejected with ErrValidation.
	UpdateTransaction(ctx context.Context, txn domain.Transaction, actorID string, now time.Time) (*TransactionMutationResult, error)
	// DeleteTransaction removes the row after capturing an audit snapshot.
	// Deleting either leg of an exchange pair deletes both legs.
	DeleteTransaction(ctx context.Context, transactionID, actorID string, now time.Time) (*TransactionMutationResult, error)

	// SaveExchangePair persists both legs of a currency transfer as APPROVED
	// atomically; either both legs commit or neither does.
	SaveExchangePair(ctx context.Context, out, in domain.Transaction) (*ExchangePairResult, error)
	// SaveDealerRefund persists the approved refund debit and decreases the
	// dealer's debt as one unit.
	SaveDealerRefund(ctx context.Context, txn domain.Transaction, dealerID string, debtDelta decimal.Decimal) (*DealerRefundResult, error)
}

// ExchangePairResult reports both legs and both post-transfer balances.
type ExchangePairResult struct {
	OutTransaction domain.Transaction
	InTransaction  domain.Transaction
	FromBalance    decimal.Decimal
	ToBalance      decimal.Decimal
}

// DealerRefundResult reports the refund leg, the debited account's balance
// and the dealer's remaining debt.
type DealerRefundResult struct {
	Transaction    domain.Transaction
	AccountBalance decimal.Decimal
	DealerDebt     decimal.Decimal
}
