package models

import "github.com/shopspring/decimal"

// Dealer is the dealers table row.
type Dealer struct {
	DealerID string          `db:"dealer_id"`
	Name     string          `db:"name"`
	Phone    string          `db:"phone"`
	IsActive bool            `db:"is_active"`
	DebtUSD  decimal.Decimal `db:"debt_usd"`
	DebtUZS  decimal.Decimal `db:"debt_uzs"`
	AuditFields
}
