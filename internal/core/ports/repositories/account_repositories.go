package repositories

import (
	"context"
	"time"

	"github.com/savdoplus/savdo_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountRepositoryFacade defines persistence operations for accounts.
// Implementations populate the derived Balance field on every read.
type AccountRepositoryFacade interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)
	ListAccounts(ctx context.Context, includeInactive bool) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, account domain.Account) error
	SetAccountActive(ctx context.Context, accountID string, active bool, userID string, now time.Time) error
	// GetBalance recomputes the balance from the transaction history; the
	// result is never served from a cached column.
	GetBalance(ctx context.Context, accountID string) (decimal.Decimal, error)
}
