package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/savdoplus/savdo_backend/internal/apperrors"
	"github.com/savdoplus/savdo_backend/internal/core/domain"
	portsrepo "github.com/savdoplus/savdo_backend/internal/core/ports/repositories"
	"github.com/savdoplus/savdo_backend/internal/dto"
	"github.com/savdoplus/savdo_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

// dealerService is the thin surface over the dealer collaborator. The wider
// dealer record lives outside the finance core; the ledger only needs
// identity and per-currency debt.
type dealerService struct {
	dealerRepo portsrepo.DealerRepositoryFacade
}

// NewDealerService creates the dealer service.
func NewDealerService(repo portsrepo.DealerRepositoryFacade) *dealerService {
	return &dealerService{dealerRepo: repo}
}

func (s *dealerService) CreateDealer(ctx context.Context, req dto.CreateDealerRequest, userID string) (*domain.Dealer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Name == "" {
		return nil, fmt.Errorf("%w: dealer name is required", apperrors.ErrValidation)
	}

	now := time.Now()
	dealer := domain.Dealer{
		DealerID: uuid.NewString(),
		Name:     req.Name,
		Phone:    req.Phone,
		IsActive: true,
		DebtUSD:  decimal.Zero,
		DebtUZS:  decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.dealerRepo.SaveDealer(ctx, dealer); err != nil {
		logger.Error("Failed to save dealer", slog.String("error", err.Error()), slog.String("dealer_id", dealer.DealerID))
		return nil, err
	}

	logger.Info("Dealer created", slog.String("dealer_id", dealer.DealerID), slog.String("name", dealer.Name))
	return &dealer, nil
}

func (s *dealerService) GetDealerByID(ctx context.Context, dealerID string) (*domain.Dealer, error) {
	return s.dealerRepo.FindDealerByID(ctx, dealerID)
}

func (s *dealerService) GetDealerDebt(ctx context.Context, dealerID string, currency domain.CurrencyCode) (decimal.Decimal, error) {
	if !currency.Valid() {
		return decimal.Zero, fmt.Errorf("%w: unknown currency %s", apperrors.ErrValidation, currency)
	}
	return s.dealerRepo.GetDebt(ctx, dealerID, currency)
}
