package repositories

import (
	"context"
	"time"

	"github.com/savdoplus/savdo_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DealerRepositoryFacade is the persistence side of the dealer collaborator
// contract consumed by the refund orchestrator.
type DealerRepositoryFacade interface {
	SaveDealer(ctx context.Context, dealer domain.Dealer) error
	FindDealerByID(ctx context.Context, dealerID string) (*domain.Dealer, error)
	GetDebt(ctx context.Context, dealerID string, currency domain.CurrencyCode) (decimal.Decimal, error)
	// AdjustDebt applies delta (positive increases the debt) to the dealer's
	// outstanding balance in the given currency.
	AdjustDebt(ctx context.Context, dealerID string, currency domain.CurrencyCode, delta decimal.Decimal, userID string, now time.Time) (decimal.Decimal, error)
}
