package services

import (
	"context"

	"github.com/savdoplus/savdo_backend/internal/core/domain"
	"github.com/savdoplus/savdo_backend/internal/dto"
)

// CategoryReaderSvc defines read operations for expense categories
type CategoryReaderSvc interface {
	// GetCategoryByID retrieves a single category.
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.ExpenseCategory, error)

	// ListCategories retrieves the categories visible to a user: global ones
	// plus the user's own.
	ListCategories(ctx context.Context, userID string, includeInactive bool) ([]domain.ExpenseCategory, error)
}

// CategoryWriterSvc defines write operations for expense categories
type CategoryWriterSvc interface {
	// CreateCategory persists a new category.
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, userID string) (*domain.ExpenseCategory, error)

	// UpdateCategory updates an existing category.
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, userID string) (*domain.ExpenseCategory, error)

	// DeactivateCategory soft-deletes a category. Transactions that reference
	// it keep doing so.
	DeactivateCategory(ctx context.Context, categoryID string, userID string) error
}

// CategorySvcFacade combines all category-related service interfaces
type CategorySvcFacade interface {
	CategoryReaderSvc
	CategoryWriterSvc
}
