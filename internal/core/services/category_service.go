package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/savdoplus/savdo_backend/internal/apperrors"
	"github.com/savdoplus/savdo_backend/internal/core/domain"
	portsrepo "github.com/savdoplus/savdo_backend/internal/core/ports/repositories"
	"github.com/savdoplus/savdo_backend/internal/dto"
	"github.com/savdoplus/savdo_backend/internal/middleware"
)

type categoryService struct {
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates the expense category service.
func NewCategoryService(repo portsrepo.CategoryRepositoryFacade) *categoryService {
	return &categoryService{categoryRepo: repo}
}

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, userID string) (*domain.ExpenseCategory, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	category := domain.ExpenseCategory{
		CategoryID: uuid.NewString(),
		Name:       req.Name,
		Color:      req.Color,
		Icon:       req.Icon,
		IsGlobal:   req.IsGlobal,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: category name %q already exists", apperrors.ErrDuplicate, req.Name)
		}
		logger.Error("Failed to save category", slog.String("error", err.Error()), slog.String("category_id", category.CategoryID))
		return nil, err
	}

	logger.Info("Category created", slog.String("category_id", category.CategoryID), slog.String("name", category.Name))
	return &category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.ExpenseCategory, error) {
	return s.categoryRepo.FindCategoryByID(ctx, categoryID)
}

func (s *categoryService) ListCategories(ctx context.Context, userID string, includeInactive bool) ([]domain.ExpenseCategory, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	categories, err := s.categoryRepo.ListCategories(ctx, userID, includeInactive)
	if err != nil {
		logger.Error("Failed to list categories", slog.String("error", err.Error()))
		return nil, err
	}
	return categories, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, userID string) (*domain.ExpenseCategory, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Color != nil {
		category.Color = *req.Color
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	category.LastUpdatedAt = time.Now()
	category.LastUpdatedBy = userID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		logger.Error("Failed to update category", slog.String("error", err.Error()), slog.String("category_id", categoryID))
		return nil, err
	}

	logger.Info("Category updated", slog.String("category_id", categoryID))
	return category, nil
}

func (s *categoryService) DeactivateCategory(ctx context.Context, categoryID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.categoryRepo.DeactivateCategory(ctx, categoryID, userID, time.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to deactivate category", slog.String("error", err.Error()), slog.String("category_id", categoryID))
		}
		return err
	}

	logger.Info("Category deactivated", slog.String("category_id", categoryID))
	return nil
}
