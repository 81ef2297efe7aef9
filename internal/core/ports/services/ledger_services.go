package services

import (
	"context"

	"github.com/savdoplus/savdo_backend/internal/core/domain"
	"github.com/savdoplus/savdo_backend/internal/core/ports/repositories"
	"github.com/savdoplus/savdo_backend/internal/dto"
)

// LedgerReaderSvc defines read operations for ledger transactions
type LedgerReaderSvc interface {
	// GetTransactionByID retrieves a single transaction.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a filtered, cursor-paginated page of
	// transactions, newest first.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, *string, error)

	// ListAuditTrail retrieves a transaction's audit entries, oldest first.
	ListAuditTrail(ctx context.Context, transactionID string) ([]domain.AuditEntry, error)
}

// LedgerWriterSvc defines write operations for ledger transactions
type LedgerWriterSvc interface {
	// CreateTransaction persists a new DRAFT transaction.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error)

	// UpdateTransaction edits a transaction. Editing an approved transaction
	// atomically swaps its applied effect for the new one.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*repositories.TransactionMutationResult, error)

	// DeleteTransaction removes a transaction, reversing its applied effect
	// when it was approved.
	DeleteTransaction(ctx context.Context, transactionID string, userID string) (*repositories.TransactionMutationResult, error)
}

// LedgerApprovalSvc drives the transaction status lifecycle.
type LedgerApprovalSvc interface {
	// SubmitTransaction moves a DRAFT transaction to PENDING.
	SubmitTransaction(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error)

	// ApproveTransaction approves a DRAFT or PENDING transaction and applies
	// its effect to the account balance. Approving an already approved
	// transaction is a no-op.
	ApproveTransaction(ctx context.Context, transactionID string, userID string) (*repositories.TransactionMutationResult, error)

	// RejectTransaction rejects a DRAFT or PENDING transaction.
	RejectTransaction(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error)

	// CancelTransaction cancels an APPROVED transaction, reversing exactly the
	// effect its approval applied.
	CancelTransaction(ctx context.Context, transactionID string, userID string) (*repositories.TransactionMutationResult, error)
}

// LedgerSvcFacade combines all transaction-related service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
	LedgerApprovalSvc
}
