package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the transactions table row.
type Transaction struct {
	TransactionID        string           `db:"transaction_id"`
	TransactionType      string           `db:"transaction_type"`
	AccountID            string           `db:"account_id"`
	RelatedAccountID     *string          `db:"related_account_id"`
	RelatedTransactionID *string          `db:"related_transaction_id"`
	DealerID             *string          `db:"dealer_id"`
	CategoryID           *string          `db:"category_id"`
	TransactionDate      time.Time        `db:"transaction_date"`
	CurrencyCode         string           `db:"currency_code"`
	Amount               decimal.Decimal  `db:"amount"`
	AmountUSD            decimal.Decimal  `db:"amount_usd"`
	AmountUZS            decimal.Decimal  `db:"amount_uzs"`
	ExchangeRate         *decimal.Decimal `db:"exchange_rate"`
	Status               string           `db:"status"`
	AppliedAmount        decimal.Decimal  `db:"applied_amount"`
	Comment              string           `db:"comment"`
	ApprovedBy           *string          `db:"approved_by"`
	ApprovedAt           *time.Time       `db:"approved_at"`
	AuditFields
}
