package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/savdoplus/savdo_backend/internal/core/domain"
	portsrepo "github.com/savdoplus/savdo_backend/internal/core/ports/repositories"
	"github.com/savdoplus/savdo_backend/internal/models"
	"github.com/savdoplus/savdo_backend/internal/utils/mapping"
)

type PgxAuditRepository struct {
	BaseRepository
}

func newPgxAuditRepository(pool *pgxpool.Pool) portsrepo.AuditRepositoryFacade {
	return &PgxAuditRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AuditRepositoryFacade = (*PgxAuditRepository)(nil)

// SaveAuditEntry writes a standalone audit row. Mutations that must commit
// together with their audit entry use the ledger repository's transactions
// instead.
func (r *PgxAuditRepository) SaveAuditEntry(ctx context.Context, entry domain.AuditEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertAuditEntry(ctx, tx, entry); err != nil {
		return fmt.Errorf("failed to save audit entry %s: %w", entry.AuditID, err)
	}
	return r.Commit(ctx, tx)
}

func (r *PgxAuditRepository) ListAuditByTransaction(ctx context.Context, transactionID string) ([]domain.AuditEntry, error) {
	query := `
		SELECT audit_id, transaction_id, action, old_status, new_status, old_amount, new_amount,
		       old_applied_amount, new_applied_amount, dealer_id, details, actor_id, created_at
		FROM transaction_audit
		WHERE transaction_id = $1
		ORDER BY created_at, audit_id;
	`
	rows, err := r.Pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit trail for transaction %s: %w", transactionID, err)
	}
	modelEntries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.AuditEntry, error) {
		var m models.AuditEntry
		err := row.Scan(
			&m.AuditID, &m.TransactionID, &m.Action,
			&m.OldStatus, &m.NewStatus,
			&m.OldAmount, &m.NewAmount,
			&m.OldAppliedAmount, &m.NewAppliedAmount,
			&m.DealerID, &m.Details, &m.ActorID, &m.CreatedAt,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan audit trail for transaction %s: %w", transactionID, err)
	}

	entries := make([]domain.AuditEntry, len(modelEntries))
	for i, m := range modelEntries {
		entries[i] = mapping.ToDomainAuditEntry(m)
	}
	return entries, nil
}
