package services

import (
	"context"
	"log/slog"

	"github.com/savdoplus/savdo_backend/internal/core/domain"
	portsrepo "github.com/savdoplus/savdo_backend/internal/core/ports/repositories"
	"github.com/savdoplus/savdo_backend/internal/middleware"
)

type summaryService struct {
	summaryRepo portsrepo.SummaryRepositoryFacade
}

// NewSummaryService creates the cash summary aggregator.
func NewSummaryService(repo portsrepo.SummaryRepositoryFacade) *summaryService {
	return &summaryService{summaryRepo: repo}
}

// GetCashSummary derives per-account figures and global USD/UZS totals from
// the ledger. The global totals sum each transaction's stored write-time
// USD/UZS amounts, so past summaries do not move when today's rate does.
func (s *summaryService) GetCashSummary(ctx context.Context) (*domain.CashSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	summary, err := s.summaryRepo.GetCashSummaryData(ctx)
	if err != nil {
		logger.Error("Failed to compute cash summary", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Debug("Cash summary computed", slog.Int("accounts", len(summary.Accounts)))
	return summary, nil
}
