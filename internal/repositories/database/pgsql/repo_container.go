package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/savdoplus/savdo_backend/internal/core/ports/repositories"
)

// NewRepositoryContainer wires every pgsql repository over one shared pool.
func NewRepositoryContainer(dbPool *pgxpool.Pool) *portsrepo.Container {
	return &portsrepo.Container{
		Account:     newPgxAccountRepository(dbPool),
		Transaction: newPgxTransactionRepository(dbPool),
		Category:    newPgxCategoryRepository(dbPool),
		Dealer:      newPgxDealerRepository(dbPool),
		Audit:       newPgxAuditRepository(dbPool),
		Summary:     newPgxSummaryRepository(dbPool),
	}
}
