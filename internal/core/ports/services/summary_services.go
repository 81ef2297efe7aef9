package services

import (
	"context"

	"github.com/savdoplus/savdo_backend/internal/core/domain"
)

// SummarySvcFacade produces derived reports over the ledger.
type SummarySvcFacade interface {
	// GetCashSummary computes per-account balances and global USD/UZS totals.
	GetCashSummary(ctx context.Context) (*domain.CashSummary, error)
}
