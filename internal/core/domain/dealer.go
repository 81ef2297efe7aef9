package domain

import "github.com/shopspring/decimal"

// Dealer is the ledger's view of a dealer: identity plus outstanding debt per
// currency. The wider dealer record (products, contacts) lives outside the
// finance core; refunds only ever adjust the debt figures.
type Dealer struct {
	DealerID string `json:"dealerID"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	IsActive bool   `json:"isActive"`
	AuditFields
	DebtUSD decimal.Decimal `json:"debtUSD"`
	DebtUZS decimal.Decimal `json:"debtUZS"`
}

// Debt returns the dealer's outstanding debt in the given currency.
func (d Dealer) Debt(currency CurrencyCode) decimal.Decimal {
	if currency == CurrencyUSD {
		return d.DebtUSD
	}
	return d.DebtUZS
}
