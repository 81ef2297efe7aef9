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
	"github.com/shopspring/decimal"
)

// PgxDealerRepository backs the dealer collaborator contract. The finance
// core only reads identity and adjusts per-currency debt; the wider dealer
// record is owned elsewhere.
type PgxDealerRepository struct {
	BaseRepository
}

func newPgxDealerRepository(pool *pgxpool.Pool) portsrepo.DealerRepositoryFacade {
	return &PgxDealerRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.DealerRepositoryFacade = (*PgxDealerRepository)(nil)

func debtColumn(currency domain.CurrencyCode) string {
	if currency == domain.CurrencyUSD {
		return "debt_usd"
	}
	return "debt_uzs"
}

// rowQuerier is the slice of pgx.Tx and pgxpool.Pool the debt adjustment
// needs, so the same statement runs standalone or inside a refund's
// transaction.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func adjustDebtTx(ctx context.Context, q rowQuerier, dealerID string, currency domain.CurrencyCode, delta decimal.Decimal, userID string, now time.Time) (decimal.Decimal, error) {
	column := debtColumn(currency)
	var newDebt decimal.Decimal
	err := q.QueryRow(ctx, `
		UPDATE dealers
		SET `+column+` = `+column+` + $2, last_updated_at = $3, last_updated_by = $4
		WHERE dealer_id = $1
		RETURNING `+column+`;`,
		dealerID, delta, now, userID).Scan(&newDebt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, apperrors.NewNotFoundError(fmt.Sprintf("dealer %s not found", dealerID))
		}
		return decimal.Zero, fmt.Errorf("failed to adjust debt for dealer %s: %w", dealerID, translatePgError(err))
	}
	return newDebt, nil
}

func (r *PgxDealerRepository) SaveDealer(ctx context.Context, dealer domain.Dealer) error {
	m := mapping.ToModelDealer(dealer)
	query := `
		INSERT INTO dealers (dealer_id, name, phone, is_active, debt_usd, debt_uzs, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.DealerID, m.Name, m.Phone, m.IsActive, m.DebtUSD, m.DebtUZS,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if translated := translatePgError(err); errors.Is(translated, apperrors.ErrDuplicate) {
			return fmt.Errorf("%w: dealer %s already exists", apperrors.ErrDuplicate, m.DealerID)
		}
		return fmt.Errorf("failed to save dealer %s: %w", m.DealerID, err)
	}
	return nil
}

func (r *PgxDealerRepository) FindDealerByID(ctx context.Context, dealerID string) (*domain.Dealer, error) {
	query := `
		SELECT dealer_id, name, phone, is_active, debt_usd, debt_uzs, created_at, created_by, last_updated_at, last_updated_by
		FROM dealers
		WHERE dealer_id = $1;
	`
	var m models.Dealer
	err := r.Pool.QueryRow(ctx, query, dealerID).Scan(
		&m.DealerID, &m.Name, &m.Phone, &m.IsActive, &m.DebtUSD, &m.DebtUZS,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("dealer %s not found", dealerID))
		}
		return nil, fmt.Errorf("failed to query dealer %s: %w", dealerID, err)
	}
	dealer := mapping.ToDomainDealer(m)
	return &dealer, nil
}

func (r *PgxDealerRepository) GetDebt(ctx context.Context, dealerID string, currency domain.CurrencyCode) (decimal.Decimal, error) {
	var debt decimal.Decimal
	err := r.Pool.QueryRow(ctx, `SELECT `+debtColumn(currency)+` FROM dealers WHERE dealer_id = $1;`, dealerID).Scan(&debt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, apperrors.NewNotFoundError(fmt.Sprintf("dealer %s not found", dealerID))
		}
		return decimal.Zero, fmt.Errorf("failed to query debt for dealer %s: %w", dealerID, err)
	}
	return debt, nil
}

func (r *PgxDealerRepository) AdjustDebt(ctx context.Context, dealerID string, currency domain.CurrencyCode, delta decimal.Decimal, userID string, now time.Time) (decimal.Decimal, error) {
	return adjustDebtTx(ctx, r.Pool, dealerID, currency, delta, userID, now)
}
