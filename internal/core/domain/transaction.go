package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType describes how a transaction moves money relative to its account.
type TransactionType string

const (
	TypeIncome         TransactionType = "INCOME"
	TypeExpense        TransactionType = "EXPENSE"
	TypeOpeningBalance TransactionType = "OPENING_BALANCE"
	TypeExchangeOut    TransactionType = "CURRENCY_EXCHANGE_OUT"
	TypeExchangeIn     TransactionType = "CURRENCY_EXCHANGE_IN"
)

// Valid reports whether the transaction type is known.
func (t TransactionType) Valid() bool {
	switch t {
	case TypeIncome, TypeExpense, TypeOpeningBalance, TypeExchangeOut, TypeExchangeIn:
		return true
	}
	return false
}

// CreditsAccount reports whether the type increases the owning account's balance.
func (t TransactionType) CreditsAccount() bool {
	switch t {
	case TypeIncome, TypeOpeningBalance, TypeExchangeIn:
		return true
	}
	return false
}

// TransactionStatus is the approval lifecycle state of a transaction.
type TransactionStatus string

const (
	StatusDraft     TransactionStatus = "DRAFT"
	StatusPending   TransactionStatus = "PENDING"
	StatusApproved  TransactionStatus = "APPROVED"
	StatusRejected  TransactionStatus = "REJECTED"
	StatusCancelled TransactionStatus = "CANCELLED"
)

// Terminal reports whether the status permits no further transitions.
func (s TransactionStatus) Terminal() bool {
	return s == StatusRejected || s == StatusCancelled
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
// DRAFT -> PENDING -> APPROVED, DRAFT|PENDING -> REJECTED, APPROVED -> CANCELLED.
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	switch next {
	case StatusPending:
		return s == StatusDraft
	case StatusApproved:
		return s == StatusDraft || s == StatusPending
	case StatusRejected:
		return s == StatusDraft || s == StatusPending
	case StatusCancelled:
		return s == StatusApproved
	}
	return false
}

// Transaction is a single money movement in the ledger.
//
// AmountUSD and AmountUZS are derived at write time from Amount and
// ExchangeRate so that historical summaries never depend on a later rate.
// AppliedAmount is the exact signed effect stamped onto the record when it
// was approved; cancelling reverses precisely this value.
type Transaction struct {
	TransactionID        string            `json:"transactionID"`
	TransactionType      TransactionType   `json:"transactionType"`
	AccountID            string            `json:"accountID"`
	RelatedAccountID     *string           `json:"relatedAccountID,omitempty"`     // exchange pair only
	RelatedTransactionID *string           `json:"relatedTransactionID,omitempty"` // exchange pair only
	DealerID             *string           `json:"dealerID,omitempty"`             // income only
	CategoryID           *string           `json:"categoryID,omitempty"`           // expense only
	TransactionDate      time.Time         `json:"transactionDate"`
	CurrencyCode         CurrencyCode      `json:"currencyCode"`
	Amount               decimal.Decimal   `json:"amount"` // always positive
	AmountUSD            decimal.Decimal   `json:"amountUSD"`
	AmountUZS            decimal.Decimal   `json:"amountUZS"`
	ExchangeRate         *decimal.Decimal  `json:"exchangeRate,omitempty"` // 1 USD = rate UZS
	Status               TransactionStatus `json:"status"`
	AppliedAmount        decimal.Decimal   `json:"appliedAmount"`
	Comment              string            `json:"comment"`
	ApprovedBy           *string           `json:"approvedBy,omitempty"`
	ApprovedAt           *time.Time        `json:"approvedAt,omitempty"`
	AuditFields
}

// SignedEffect returns the balance effect the transaction has on its owning
// account when approved: positive for credits, negative for debits.
func (t Transaction) SignedEffect() decimal.Decimal {
	if t.TransactionType.CreditsAccount() {
		return t.Amount
	}
	return t.Amount.Neg()
}
