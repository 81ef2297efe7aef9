package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditEntry is the transaction_audit table row. Rows are append-only.
type AuditEntry struct {
	AuditID          string           `db:"audit_id"`
	TransactionID    string           `db:"transaction_id"`
	Action           string           `db:"action"`
	OldStatus        *string          `db:"old_status"`
	NewStatus        *string          `db:"new_status"`
	OldAmount        *decimal.Decimal `db:"old_amount"`
	NewAmount        *decimal.Decimal `db:"new_amount"`
	OldAppliedAmount *decimal.Decimal `db:"old_applied_amount"`
	NewAppliedAmount *decimal.Decimal `db:"new_applied_amount"`
	DealerID         *string          `db:"dealer_id"`
	Details          string           `db:"details"`
	ActorID          string           `db:"actor_id"`
	CreatedAt        time.Time        `db:"created_at"`
}
