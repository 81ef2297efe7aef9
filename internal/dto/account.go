package dto

import (
	"time"

	"github.com/savdoplus/savdo_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OpeningBalance carries an account's opening amount and the date it applies
// from. A positive amount without a date is rejected, because an undated
// opening balance cannot participate in the ledger calculation.
type OpeningBalance struct {
	Amount decimal.Decimal `json:"amount"`
	Date   *time.Time      `json:"date,omitempty"`
}

// CreateAccountRequest is the payload for creating an account.
type CreateAccountRequest struct {
	Name           string              `json:"name" binding:"required,max=100"`
	AccountType    domain.AccountType  `json:"accountType" binding:"required,accounttype"`
	CurrencyCode   domain.CurrencyCode `json:"currencyCode" binding:"required,currency"`
	OpeningBalance *OpeningBalance     `json:"openingBalance,omitempty"`
}

// UpdateAccountRequest is the patch payload for editing an account.
type UpdateAccountRequest struct {
	Name        *string             `json:"name,omitempty" binding:"omitempty,max=100"`
	AccountType *domain.AccountType `json:"accountType,omitempty" binding:"omitempty,accounttype"`
}

// AccountResponse is the caller-facing account shape, balance included.
type AccountResponse struct {
	AccountID      string          `json:"accountID"`
	Name           string          `json:"name"`
	AccountType    string          `json:"accountType"`
	CurrencyCode   string          `json:"currencyCode"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	OpeningDate    *time.Time      `json:"openingDate,omitempty"`
	IsActive       bool            `json:"isActive"`
	Balance        decimal.Decimal `json:"balance"`
	CreatedAt      time.Time       `json:"createdAt"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain account to its response DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      a.AccountID,
		Name:           a.Name,
		AccountType:    string(a.AccountType),
		CurrencyCode:   string(a.CurrencyCode),
		OpeningBalance: a.OpeningBalance,
		OpeningDate:    a.OpeningDate,
		IsActive:       a.IsActive,
		Balance:        a.Balance,
		CreatedAt:      a.CreatedAt,
		LastUpdatedAt:  a.LastUpdatedAt,
	}
}

// ToAccountResponses converts a slice of domain accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	out := make([]AccountResponse, len(accounts))
	for i := range accounts {
		out[i] = ToAccountResponse(&accounts[i])
	}
	return out
}
