package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/savdoplus/savdo_backend/internal/core/domain"
	portsrepo "github.com/savdoplus/savdo_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type PgxSummaryRepository struct {
	BaseRepository
}

func newPgxSummaryRepository(pool *pgxpool.Pool) portsrepo.SummaryRepositoryFacade {
	return &PgxSummaryRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.SummaryRepositoryFacade = (*PgxSummaryRepository)(nil)

// GetCashSummaryData derives the whole report in one repeatable-read
// transaction so no half-applied transfer is ever visible in it.
func (r *PgxSummaryRepository) GetCashSummaryData(ctx context.Context) (*domain.CashSummary, error) {
	tx, err := r.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, fmt.Errorf("failed to begin summary snapshot: %w", err)
	}
	defer tx.Rollback(ctx)

	summary := &domain.CashSummary{}

	// Per-account figures in the account's native currency. Income and
	// expense totals come from the applied effects of approved rows, so they
	// always agree with the balance.
	accountQuery := `
		SELECT a.account_id, a.name, a.account_type, a.currency_code, a.is_active, a.opening_balance,
		       COALESCE(SUM(t.applied_amount) FILTER (WHERE t.status = 'APPROVED' AND t.applied_amount > 0), 0) AS income_total,
		       COALESCE(SUM(-t.applied_amount) FILTER (WHERE t.status = 'APPROVED' AND t.applied_amount < 0), 0) AS expense_total
		FROM accounts a
		LEFT JOIN transactions t ON t.account_id = a.account_id
		GROUP BY a.account_id, a.name, a.account_type, a.currency_code, a.is_active, a.opening_balance
		ORDER BY a.created_at, a.account_id;
	`
	rows, err := tx.Query(ctx, accountQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query account summaries: %w", err)
	}
	accounts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AccountSummary, error) {
		var s domain.AccountSummary
		var accountType, currency string
		err := row.Scan(&s.AccountID, &s.Name, &accountType, &currency, &s.IsActive, &s.OpeningBalance, &s.IncomeTotal, &s.ExpenseTotal)
		if err != nil {
			return domain.AccountSummary{}, err
		}
		s.AccountType = domain.AccountType(accountType)
		s.CurrencyCode = domain.CurrencyCode(currency)
		s.Balance = s.OpeningBalance.Add(s.IncomeTotal).Sub(s.ExpenseTotal)
		return s, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan account summaries: %w", err)
	}
	summary.Accounts = accounts

	// Global totals sum the write-time USD/UZS figures stored on each row.
	// Later market rates never move figures already in the ledger.
	totalsQuery := `
		SELECT
			COALESCE(SUM(amount_usd) FILTER (WHERE applied_amount > 0), 0) AS income_usd,
			COALESCE(SUM(amount_uzs) FILTER (WHERE applied_amount > 0), 0) AS income_uzs,
			COALESCE(SUM(amount_usd) FILTER (WHERE applied_amount < 0), 0) AS expense_usd,
			COALESCE(SUM(amount_uzs) FILTER (WHERE applied_amount < 0), 0) AS expense_uzs
		FROM transactions
		WHERE status = 'APPROVED';
	`
	err = tx.QueryRow(ctx, totalsQuery).Scan(
		&summary.TotalIncomeUSD, &summary.TotalIncomeUZS,
		&summary.TotalExpenseUSD, &summary.TotalExpenseUZS,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compute global totals: %w", err)
	}

	// Balance totals aggregate native-currency balances per currency.
	totalBalanceUSD := decimal.Zero
	totalBalanceUZS := decimal.Zero
	for _, a := range summary.Accounts {
		switch a.CurrencyCode {
		case domain.CurrencyUSD:
			totalBalanceUSD = totalBalanceUSD.Add(a.Balance)
		case domain.CurrencyUZS:
			totalBalanceUZS = totalBalanceUZS.Add(a.Balance)
		}
	}
	summary.TotalBalanceUSD = totalBalanceUSD
	summary.TotalBalanceUZS = totalBalanceUZS

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to close summary snapshot: %w", err)
	}
	return summary, nil
}
