package repositories

import (
	"context"

	"github.com/savdoplus/savdo_backend/internal/core/domain"
)

// AuditRepositoryFacade reads the append-only transaction audit trail.
// Writes happen inside the ledger repository's database transactions so a
// status change and its audit entry commit together.
type AuditRepositoryFacade interface {
	SaveAuditEntry(ctx context.Context, entry domain.AuditEntry) error
	ListAuditByTransaction(ctx context.Context, transactionID string) ([]domain.AuditEntry, error)
}
