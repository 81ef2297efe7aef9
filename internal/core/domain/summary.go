package domain

import "github.com/shopspring/decimal"

// AccountSummary holds the per-account figures of the cash summary, all in
// the account's native currency.
type AccountSummary struct {
	AccountID      string          `json:"accountID"`
	Name           string          `json:"name"`
	AccountType    AccountType     `json:"accountType"`
	CurrencyCode   CurrencyCode    `json:"currencyCode"`
	IsActive       bool            `json:"isActive"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	IncomeTotal    decimal.Decimal `json:"incomeTotal"`
	ExpenseTotal   decimal.Decimal `json:"expenseTotal"`
	Balance        decimal.Decimal `json:"balance"`
}

// CashSummary is the derived report over the whole ledger. Global totals sum
// each transaction's stored USD/UZS amounts (write-time rates), so they stay
// stable regardless of later market rates.
type CashSummary struct {
	Accounts        []AccountSummary `json:"accounts"`
	TotalBalanceUSD decimal.Decimal  `json:"totalBalanceUSD"`
	TotalBalanceUZS decimal.Decimal  `json:"totalBalanceUZS"`
	TotalIncomeUSD  decimal.Decimal  `json:"totalIncomeUSD"`
	TotalIncomeUZS  decimal.Decimal  `json:"totalIncomeUZS"`
	TotalExpenseUSD decimal.Decimal  `json:"totalExpenseUSD"`
	TotalExpenseUZS decimal.Decimal  `json:"totalExpenseUZS"`
}
