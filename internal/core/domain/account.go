package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType describes the physical kind of a money-holding account.
type AccountType string

const (
	AccountCash AccountType = "CASH"
	AccountCard AccountType = "CARD"
	AccountBank AccountType = "BANK"
)

// Valid reports whether the account type is one of the known kinds.
func (t AccountType) Valid() bool {
	return t == AccountCash || t == AccountCard || t == AccountBank
}

// Account is a named balance holder in a single currency.
//
// Balance is always derived: opening balance plus the sum of applied effects
// of APPROVED transactions. It is populated by the repository at read time
// and never persisted as its own column, so it cannot drift from the ledger.
type Account struct {
	AccountID      string          `json:"accountID"`
	Name           string          `json:"name"`
	AccountType    AccountType     `json:"accountType"`
	CurrencyCode   CurrencyCode    `json:"currencyCode"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	OpeningDate    *time.Time      `json:"openingDate,omitempty"` // required when OpeningBalance > 0
	IsActive       bool            `json:"isActive"`
	AuditFields
	Balance decimal.Decimal `json:"balance"` // derived, see above
}
