package repositories

import (
	"context"
	"time"

	"github.com/savdoplus/savdo_backend/internal/core/domain"
)

// CategoryRepositoryFacade defines persistence operations for expense categories.
type CategoryRepositoryFacade interface {
	SaveCategory(ctx context.Context, category domain.ExpenseCategory) error
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.ExpenseCategory, error)
	// ListCategories returns global categories plus those owned by ownerID,
	// with usage counts populated.
	ListCategories(ctx context.Context, ownerID string, includeInactive bool) ([]domain.ExpenseCategory, error)
	UpdateCategory(ctx context.Context, category domain.ExpenseCategory) error
	DeactivateCategory(ctx context.Context, categoryID, userID string, now time.Time) error
}
