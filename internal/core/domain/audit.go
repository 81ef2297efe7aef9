package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditAction identifies what kind of change an audit entry records.
type AuditAction string

const (
	AuditStatusChange AuditAction = "STATUS_CHANGE"
	AuditEdit         AuditAction = "EDIT"
	AuditDelete       AuditAction = "DELETE"
)

// AuditEntry is an immutable record of a change to a transaction. One is
// appended on every status transition and on every edit or delete of an
// approved/cancelled transaction, so the mutable record can move forward
// without erasing history.
type AuditEntry struct {
	AuditID          string           `json:"auditID"`
	TransactionID    string           `json:"transactionID"`
	Action           AuditAction      `json:"action"`
	OldStatus        *string          `json:"oldStatus,omitempty"`
	NewStatus        *string          `json:"newStatus,omitempty"`
	OldAmount        *decimal.Decimal `json:"oldAmount,omitempty"`
	NewAmount        *decimal.Decimal `json:"newAmount,omitempty"`
	OldAppliedAmount *decimal.Decimal `json:"oldAppliedAmount,omitempty"`
	NewAppliedAmount *decimal.Decimal `json:"newAppliedAmount,omitempty"`
	DealerID         *string          `json:"dealerID,omitempty"` // set for dealer refunds
	Details          string           `json:"details"`
	ActorID          string           `json:"actorID"`
	CreatedAt        time.Time        `json:"createdAt"`
}
