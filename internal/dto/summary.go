package dto

import (
	"github.com/savdoplus/savdo_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountSummaryResponse is one per-account row of the cash summary.
type AccountSummaryResponse struct {
	AccountID      string          `json:"accountID"`
	Name           string          `json:"name"`
	AccountType    string          `json:"accountType"`
	CurrencyCode   string          `json:"currencyCode"`
	IsActive       bool            `json:"isActive"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	IncomeTotal    decimal.Decimal `json:"incomeTotal"`
	ExpenseTotal   decimal.Decimal `json:"expenseTotal"`
	Balance        decimal.Decimal `json:"balance"`
}

// CashSummaryResponse is the full cash summary report.
type CashSummaryResponse struct {
	Accounts        []AccountSummaryResponse `json:"accounts"`
	TotalBalanceUSD decimal.Decimal          `json:"totalBalanceUSD"`
	TotalBalanceUZS decimal.Decimal          `json:"totalBalanceUZS"`
	TotalIncomeUSD  decimal.Decimal          `json:"totalIncomeUSD"`
	TotalIncomeUZS  decimal.Decimal          `json:"totalIncomeUZS"`
	TotalExpenseUSD decimal.Decimal          `json:"totalExpenseUSD"`
	TotalExpenseUZS decimal.Decimal          `json:"totalExpenseUZS"`
}

// ToCashSummaryResponse converts the domain summary to its response DTO.
func ToCashSummaryResponse(s *domain.CashSummary) CashSummaryResponse {
	accounts := make([]AccountSummaryResponse, len(s.Accounts))
	for i, a := range s.Accounts {
		accounts[i] = AccountSummaryResponse{
			AccountID:      a.AccountID,
			Name:           a.Name,
			AccountType:    string(a.AccountType),
			CurrencyCode:   string(a.CurrencyCode),
			IsActive:       a.IsActive,
			OpeningBalance: a.OpeningBalance,
			IncomeTotal:    a.IncomeTotal,
			ExpenseTotal:   a.ExpenseTotal,
			Balance:        a.Balance,
		}
	}
	return CashSummaryResponse{
		Accounts:        accounts,
		TotalBalanceUSD: s.TotalBalanceUSD,
		TotalBalanceUZS: s.TotalBalanceUZS,
		TotalIncomeUSD:  s.TotalIncomeUSD,
		TotalIncomeUZS:  s.TotalIncomeUZS,
		TotalExpenseUSD: s.TotalExpenseUSD,
		TotalExpenseUZS: s.TotalExpenseUZS,
	}
}
