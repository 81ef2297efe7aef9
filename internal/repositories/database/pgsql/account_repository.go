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

// balanceExpr derives an account's balance from its opening balance plus the
// applied effect of every approved transaction. There is no stored balance
// column to drift out of sync.
const balanceExpr = `a.opening_balance + COALESCE((
	SELECT SUM(t.applied_amount) FROM transactions t
	WHERE t.account_id = a.account_id AND t.status = 'APPROVED'
), 0)`

type PgxAccountRepository struct {
	BaseRepository
}

func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	modelAcc := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (account_id, name, account_type, currency_code, opening_balance, opening_date, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelAcc.AccountID,
		modelAcc.Name,
		modelAcc.AccountType,
		modelAcc.CurrencyCode,
		modelAcc.OpeningBalance,
		modelAcc.OpeningDate,
		modelAcc.IsActive,
		modelAcc.CreatedAt,
		modelAcc.CreatedBy,
		modelAcc.LastUpdatedAt,
		modelAcc.LastUpdatedBy,
	)
	if err != nil {
		if translated := translatePgError(err); errors.Is(translated, apperrors.ErrDuplicate) {
			return fmt.Errorf("%w: account %s already exists", apperrors.ErrDuplicate, modelAcc.AccountID)
		}
		return fmt.Errorf("failed to save account %s: %w", modelAcc.AccountID, err)
	}
	return nil
}

func scanAccountRow(row pgx.CollectableRow) (domain.Account, error) {
	var m models.Account
	var balance decimal.Decimal
	err := row.Scan(
		&m.AccountID,
		&m.Name,
		&m.AccountType,
		&m.CurrencyCode,
		&m.OpeningBalance,
		&m.OpeningDate,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&balance,
	)
	if err != nil {
		return domain.Account{}, err
	}
	account := mapping.ToDomainAccount(m)
	account.Balance = balance
	return account, nil
}

const accountSelect = `
	SELECT a.account_id, a.name, a.account_type, a.currency_code, a.opening_balance, a.opening_date, a.is_active,
	       a.created_at, a.created_by, a.last_updated_at, a.last_updated_by,
	       ` + balanceExpr + ` AS balance
	FROM accounts a`

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	rows, err := r.Pool.Query(ctx, accountSelect+` WHERE a.account_id = $1;`, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query account %s: %w", accountID, err)
	}
	account, err := pgx.CollectOneRow(rows, scanAccountRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("account %s not found", accountID))
		}
		return nil, fmt.Errorf("failed to scan account %s: %w", accountID, err)
	}
	return &account, nil
}

func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	rows, err := r.Pool.Query(ctx, accountSelect+` WHERE a.account_id = ANY($1);`, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	accounts, err := pgx.CollectRows(rows, scanAccountRow)
	if err != nil {
		return nil, fmt.Errorf("failed to scan accounts: %w", err)
	}
	result := make(map[string]domain.Account, len(accounts))
	for _, a := range accounts {
		result[a.AccountID] = a
	}
	return result, nil
}

func (r *PgxAccountRepository) ListAccounts(ctx context.Context, includeInactive bool) ([]domain.Account, error) {
	rows, err := r.Pool.Query(ctx, accountSelect+` WHERE ($1 OR a.is_active) ORDER BY a.created_at, a.account_id;`, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	accounts, err := pgx.CollectRows(rows, scanAccountRow)
	if err != nil {
		return nil, fmt.Errorf("failed to scan accounts: %w", err)
	}
	return accounts, nil
}

func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	query := `
		UPDATE accounts
		SET name = $2, account_type = $3, last_updated_at = $4, last_updated_by = $5
		WHERE account_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		account.AccountID,
		account.Name,
		string(account.AccountType),
		account.LastUpdatedAt,
		account.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", account.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("account %s not found", account.AccountID))
	}
	return nil
}

func (r *PgxAccountRepository) SetAccountActive(ctx context.Context, accountID string, active bool, userID string, now time.Time) error {
	query := `
		UPDATE accounts
		SET is_active = $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, accountID, active, now, userID)
	if err != nil {
		return fmt.Errorf("failed to change active flag on account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("account %s not found", accountID))
	}
	return nil
}

func (r *PgxAccountRepository) GetBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	query := `SELECT ` + balanceExpr + ` FROM accounts a WHERE a.account_id = $1;`
	var balance decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, accountID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, apperrors.NewNotFoundError(fmt.Sprintf("account %s not found", accountID))
		}
		return decimal.Zero, fmt.Errorf("failed to compute balance for account %s: %w", accountID, err)
	}
	return balance, nil
}
