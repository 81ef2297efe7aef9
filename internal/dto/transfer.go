package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferRequest moves money between two accounts of different currencies.
// ExchangeRate means "1 USD = rate UZS" and is mandatory: rates live on
// operations, never in global state.
type TransferRequest struct {
	FromAccountID string          `json:"fromAccountID" binding:"required,uuid"`
	ToAccountID   string          `json:"toAccountID" binding:"required,uuid"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	ExchangeRate  decimal.Decimal `json:"exchangeRate" binding:"required"`
	Date          *time.Time      `json:"date,omitempty"`
	Comment       string          `json:"comment" binding:"max=500"`
}

// TransferResponse reports both legs of the exchange pair and the
// post-transfer balances of both endpoints.
type TransferResponse struct {
	SourceTransactionID string                     `json:"sourceTxID"`
	TargetTransactionID string                     `json:"targetTxID"`
	NewBalances         map[string]decimal.Decimal `json:"newBalances"` // accountID -> balance
}

// DealerRefundRequest pays money back to a dealer from one of our accounts,
// reducing the dealer's outstanding debt by the same amount.
type DealerRefundRequest struct {
	DealerID     string          `json:"dealerID" binding:"required,uuid"`
	AccountID    string          `json:"accountID" binding:"required,uuid"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode string          `json:"currencyCode" binding:"required,currency"`
	Description  string          `json:"description" binding:"max=500"`
}

// DealerRefundResponse reports the refund transaction and both
// post-operation balances.
type DealerRefundResponse struct {
	TransactionID     string          `json:"txID"`
	DealerNewBalance  decimal.Decimal `json:"dealerNewBalance"`
	AccountNewBalance decimal.Decimal `json:"accountNewBalance"`
}
