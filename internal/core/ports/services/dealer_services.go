package services

import (
	"context"

	"github.com/savdoplus/savdo_backend/internal/core/domain"
	"github.com/savdoplus/savdo_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// DealerSvcFacade is the finance core's surface over dealers: registration
// plus the debt figures the refund orchestrator settles against.
type DealerSvcFacade interface {
	// CreateDealer registers a dealer with zero debt in both currencies.
	CreateDealer(ctx context.Context, req dto.CreateDealerRequest, userID string) (*domain.Dealer, error)
	// GetDealerByID retrieves a dealer with its per-currency debt.
	GetDealerByID(ctx context.Context, dealerID string) (*domain.Dealer, error)
	// GetDealerDebt retrieves the outstanding debt in one currency.
	GetDealerDebt(ctx context.Context, dealerID string, currency domain.CurrencyCode) (decimal.Decimal, error)
}
