package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is the accounts table row. Balance is intentionally absent: it is
// derived from the transactions table at read time.
type Account struct {
	AccountID      string          `db:"account_id"`
	Name           string          `db:"name"`
	AccountType    string          `db:"account_type"`
	CurrencyCode   string          `db:"currency_code"`
	OpeningBalance decimal.Decimal `db:"opening_balance"`
	OpeningDate    *time.Time      `db:"opening_date"`
	IsActive       bool            `db:"is_active"`
	AuditFields
}
