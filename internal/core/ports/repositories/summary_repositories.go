package repositories

import (
	"context"

	"github.com/savdoplus/savdo_backend/internal/core/domain"
)

// SummaryRepositoryFacade derives reporting data from the ledger without
// mutating it. Reads are served from a consistent snapshot.
type SummaryRepositoryFacade interface {
	// GetCashSummaryData returns one summary row per account (active and
	// inactive) and the global totals summed from each transaction's stored
	// USD/UZS amounts.
	GetCashSummaryData(ctx context.Context) (*domain.CashSummary, error)
}
