package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/savdoplus/savdo_backend/internal/apperrors"
	"github.com/savdoplus/savdo_backend/internal/core/domain"
	portsrepo "github.com/savdoplus/savdo_backend/internal/core/ports/repositories"
	"github.com/savdoplus/savdo_backend/internal/models"
	"github.com/savdoplus/savdo_backend/internal/utils/mapping"
)

type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

// usage_count is derived from the transactions that reference the category.
const categorySelect = `
	SELECT c.category_id, c.name, c.color, c.icon, c.is_global, c.is_active,
	       c.created_at, c.created_by, c.last_updated_at, c.last_updated_by,
	       (SELECT COUNT(*) FROM transactions t WHERE t.category_id = c.category_id) AS usage_count
	FROM expense_categories c`

func scanCategoryRow(row pgx.CollectableRow) (domain.ExpenseCategory, error) {
	var m models.ExpenseCategory
	var usageCount int64
	err := row.Scan(
		&m.CategoryID,
		&m.Name,
		&m.Color,
		&m.Icon,
		&m.IsGlobal,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&usageCount,
	)
	if err != nil {
		return domain.ExpenseCategory{}, err
	}
	category := mapping.ToDomainCategory(m)
	category.UsageCount = usageCount
	return category, nil
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.ExpenseCategory) error {
	m := mapping.ToModelCategory(category)
	query := `
		INSERT INTO expense_categories (category_id, name, color, icon, is_global, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CategoryID, m.Name, m.Color, m.Icon, m.IsGlobal, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if translated := translatePgError(err); errors.Is(translated, apperrors.ErrDuplicate) {
			return fmt.Errorf("%w: category name %q", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to save category %s: %w", m.CategoryID, err)
	}
	return nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.ExpenseCategory, error) {
	rows, err := r.Pool.Query(ctx, categorySelect+` WHERE c.category_id = $1;`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query category %s: %w", categoryID, err)
	}
	category, err := pgx.CollectOneRow(rows, scanCategoryRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("category %s not found", categoryID))
		}
		return nil, fmt.Errorf("failed to scan category %s: %w", categoryID, err)
	}
	return &category, nil
}

func (r *PgxCategoryRepository) ListCategories(ctx context.Context, ownerID string, includeInactive bool) ([]domain.ExpenseCategory, error) {
	query := categorySelect + `
		WHERE (c.is_global OR c.created_by = $1) AND ($2 OR c.is_active)
		ORDER BY c.name;`
	rows, err := r.Pool.Query(ctx, query, ownerID, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	categories, err := pgx.CollectRows(rows, scanCategoryRow)
	if err != nil {
		return nil, fmt.Errorf("failed to scan categories: %w", err)
	}
	return categories, nil
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.ExpenseCategory) error {
	query := `
		UPDATE expense_categories
		SET name = $2, color = $3, icon = $4, last_updated_at = $5, last_updated_by = $6
		WHERE category_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		category.CategoryID, category.Name, category.Color, category.Icon,
		category.LastUpdatedAt, category.LastUpdatedBy,
	)
	if err != nil {
		if translated := translatePgError(err); errors.Is(translated, apperrors.ErrDuplicate) {
			return fmt.Errorf("%w: category name %q", apperrors.ErrDuplicate, category.Name)
		}
		return fmt.Errorf("failed to update category %s: %w", category.CategoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("category %s not found", category.CategoryID))
	}
	return nil
}

func (r *PgxCategoryRepository) DeactivateCategory(ctx context.Context, categoryID, userID string, now time.Time) error {
	query := `
		UPDATE expense_categories
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE category_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, categoryID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate category %s: %w", categoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("category %s not found", categoryID))
	}
	return nil
}
