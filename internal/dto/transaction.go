package dto

import (
	"time"

	"github.com/savdoplus/savdo_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the payload for creating a ledger transaction.
// New transactions always start in DRAFT.
type CreateTransactionRequest struct {
	TransactionType domain.TransactionType `json:"transactionType" binding:"required,txntype"`
	AccountID       string                 `json:"accountID" binding:"required,uuid"`
	DealerID        *string                `json:"dealerID,omitempty" binding:"omitempty,uuid"`
	CategoryID      *string                `json:"categoryID,omitempty" binding:"omitempty,uuid"`
	Date            time.Time              `json:"date" binding:"required"`
	CurrencyCode    domain.CurrencyCode    `json:"currencyCode" binding:"required,currency"`
	Amount          decimal.Decimal        `json:"amount" binding:"required"`
	ExchangeRate    *decimal.Decimal       `json:"exchangeRate,omitempty"`
	Comment         string                 `json:"comment" binding:"max=500"`
}

// UpdateTransactionRequest is the patch payload for editing a transaction.
// Nil fields are left untouched.
type UpdateTransactionRequest struct {
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	Date         *time.Time       `json:"date,omitempty"`
	DealerID     *string          `json:"dealerID,omitempty" binding:"omitempty,uuid"`
	CategoryID   *string          `json:"categoryID,omitempty" binding:"omitempty,uuid"`
	ExchangeRate *decimal.Decimal `json:"exchangeRate,omitempty"`
	Comment      *string          `json:"comment,omitempty" binding:"omitempty,max=500"`
}

// TransactionResponse is the caller-facing transaction shape.
type TransactionResponse struct {
	TransactionID        string           `json:"transactionID"`
	TransactionType      string           `json:"transactionType"`
	AccountID            string           `json:"accountID"`
	RelatedAccountID     *string          `json:"relatedAccountID,omitempty"`
	RelatedTransactionID *string          `json:"relatedTransactionID,omitempty"`
	DealerID             *string          `json:"dealerID,omitempty"`
	CategoryID           *string          `json:"categoryID,omitempty"`
	Date                 time.Time        `json:"date"`
	CurrencyCode         string           `json:"currencyCode"`
	Amount               decimal.Decimal  `json:"amount"`
	AmountUSD            decimal.Decimal  `json:"amountUSD"`
	AmountUZS            decimal.Decimal  `json:"amountUZS"`
	ExchangeRate         *decimal.Decimal `json:"exchangeRate,omitempty"`
	Status               string           `json:"status"`
	Comment              string           `json:"comment"`
	ApprovedBy           *string          `json:"approvedBy,omitempty"`
	ApprovedAt           *time.Time       `json:"approvedAt,omitempty"`
	CreatedAt            time.Time        `json:"createdAt"`
	CreatedBy            string           `json:"createdBy"`
	LastUpdatedAt        time.Time        `json:"lastUpdatedAt"`
}

// ToTransactionResponse converts a domain transaction to its response DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:        t.TransactionID,
		TransactionType:      string(t.TransactionType),
		AccountID:            t.AccountID,
		RelatedAccountID:     t.RelatedAccountID,
		RelatedTransactionID: t.RelatedTransactionID,
		DealerID:             t.DealerID,
		CategoryID:           t.CategoryID,
		Date:                 t.TransactionDate,
		CurrencyCode:         string(t.CurrencyCode),
		Amount:               t.Amount,
		AmountUSD:            t.AmountUSD,
		AmountUZS:            t.AmountUZS,
		ExchangeRate:         t.ExchangeRate,
		Status:               string(t.Status),
		Comment:              t.Comment,
		ApprovedBy:           t.ApprovedBy,
		ApprovedAt:           t.ApprovedAt,
		CreatedAt:            t.CreatedAt,
		CreatedBy:            t.CreatedBy,
		LastUpdatedAt:        t.LastUpdatedAt,
	}
}

// ToTransactionResponses converts a slice of domain transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i := range txns {
		out[i] = ToTransactionResponse(&txns[i])
	}
	return out
}

// TransactionResultResponse is returned by every balance-affecting operation
// so the caller gets the authoritative post-operation balance without a
// separate re-fetch.
type TransactionResultResponse struct {
	Transaction           TransactionResponse `json:"transaction"`
	AccountBalance        decimal.Decimal     `json:"accountBalance"`
	RelatedAccountBalance *decimal.Decimal    `json:"relatedAccountBalance,omitempty"`
}

// ListTransactionsParams narrows and paginates transaction listings.
type ListTransactionsParams struct {
	AccountID  *string                   `form:"accountID"`
	DealerID   *string                   `form:"dealerID"`
	CategoryID *string                   `form:"categoryID"`
	Status     *domain.TransactionStatus `form:"status"`
	Type       *domain.TransactionType   `form:"type"`
	DateFrom   *time.Time                `form:"dateFrom" time_format:"2006-01-02"`
	DateTo     *time.Time                `form:"dateTo" time_format:"2006-01-02"`
	Limit      int                       `form:"limit"`
	NextToken  *string                   `form:"nextToken"`
}

// ListTransactionsResponse is a page of transactions plus the next cursor.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// AuditEntryResponse is one row of a transaction's audit trail.
type AuditEntryResponse struct {
	AuditID          string           `json:"auditID"`
	TransactionID    string           `json:"transactionID"`
	Action           string           `json:"action"`
	OldStatus        *string          `json:"oldStatus,omitempty"`
	NewStatus        *string          `json:"newStatus,omitempty"`
	OldAmount        *decimal.Decimal `json:"oldAmount,omitempty"`
	NewAmount        *decimal.Decimal `json:"newAmount,omitempty"`
	OldAppliedAmount *decimal.Decimal `json:"oldAppliedAmount,omitempty"`
	NewAppliedAmount *decimal.Decimal `json:"newAppliedAmount,omitempty"`
	DealerID         *string          `json:"dealerID,omitempty"`
	Details          string           `json:"details,omitempty"`
	ActorID          string           `json:"actorID"`
	CreatedAt        time.Time        `json:"createdAt"`
}

// ToAuditEntryResponses converts domain audit entries.
func ToAuditEntryResponses(entries []domain.AuditEntry) []AuditEntryResponse {
	out := make([]AuditEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = AuditEntryResponse{
			AuditID:          e.AuditID,
			TransactionID:    e.TransactionID,
			Action:           string(e.Action),
			OldStatus:        e.OldStatus,
			NewStatus:        e.NewStatus,
			OldAmount:        e.OldAmount,
			NewAmount:        e.NewAmount,
			OldAppliedAmount: e.OldAppliedAmount,
			NewAppliedAmount: e.NewAppliedAmount,
			DealerID:         e.DealerID,
			Details:          e.Details,
			ActorID:          e.ActorID,
			CreatedAt:        e.CreatedAt,
		}
	}
	return out
}
