package pgsql

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/savdoplus/savdo_backend/internal/apperrors"
	"github.com/savdoplus/savdo_backend/internal/core/domain"
	portsrepo "github.com/savdoplus/savdo_backend/internal/core/ports/repositories"
	"github.com/savdoplus/savdo_backend/internal/models"
	"github.com/savdoplus/savdo_backend/internal/utils/mapping"
	"github.com/savdoplus/savdo_backend/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const txnColumns = `transaction_id, transaction_type, account_id, related_account_id, related_transaction_id,
	dealer_id, category_id, transaction_date, currency_code, amount, amount_usd, amount_uzs, exchange_rate,
	status, applied_amount, comment, approved_by, approved_at, created_at, created_by, last_updated_at, last_updated_by`

func scanTransactionRow(row pgx.CollectableRow) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.TransactionType,
		&m.AccountID,
		&m.RelatedAccountID,
		&m.RelatedTransactionID,
		&m.DealerID,
		&m.CategoryID,
		&m.TransactionDate,
		&m.CurrencyCode,
		&m.Amount,
		&m.AmountUSD,
		&m.AmountUZS,
		&m.ExchangeRate,
		&m.Status,
		&m.AppliedAmount,
		&m.Comment,
		&m.ApprovedBy,
		&m.ApprovedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// lockAccounts locks the given account rows in ascending account_id order and
// returns their balances as of the lock. The fixed order prevents deadlock
// when a transfer touches two accounts from concurrent callers.
func lockAccounts(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]decimal.Decimal, error) {
	ids := make([]string, len(accountIDs))
	copy(ids, accountIDs)
	sort.Strings(ids)

	query := `
		SELECT a.account_id, ` + balanceExpr + `
		FROM accounts a
		WHERE a.account_id = ANY($1)
		ORDER BY a.account_id
		FOR UPDATE OF a;
	`
	rows, err := tx.Query(ctx, query, ids)
	if err != nil {
		return nil, translatePgError(err)
	}
	defer rows.Close()

	balances := make(map[string]decimal.Decimal, len(ids))
	for rows.Next() {
		var id string
		var balance decimal.Decimal
		if err := rows.Scan(&id, &balance); err != nil {
			return nil, err
		}
		balances[id] = balance
	}
	if err := rows.Err(); err != nil {
		return nil, translatePgError(err)
	}
	for _, id := range ids {
		if _, ok := balances[id]; !ok {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("account %s not found", id))
		}
	}
	return balances, nil
}

// accountBalanceInTx recomputes one account's balance inside the transaction,
// so it reflects any rows this transaction already changed.
func accountBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := tx.QueryRow(ctx, `SELECT `+balanceExpr+` FROM accounts a WHERE a.account_id = $1;`, accountID).Scan(&balance)
	if err != nil {
		return decimal.Zero, translatePgError(err)
	}
	return balance, nil
}

func insertAuditEntry(ctx context.Context, tx pgx.Tx, entry domain.AuditEntry) error {
	m := mapping.ToModelAuditEntry(entry)
	query := `
		INSERT INTO transaction_audit (audit_id, transaction_id, action, old_status, new_status, old_amount, new_amount, old_applied_amount, new_applied_amount, dealer_id, details, actor_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := tx.Exec(ctx, query,
		m.AuditID, m.TransactionID, m.Action,
		m.OldStatus, m.NewStatus,
		m.OldAmount, m.NewAmount,
		m.OldAppliedAmount, m.NewAppliedAmount,
		m.DealerID, m.Details, m.ActorID, m.CreatedAt,
	)
	if err != nil {
		return translatePgError(err)
	}
	return nil
}

func statusChangeEntry(txnID string, oldStatus, newStatus domain.TransactionStatus, oldApplied, newApplied decimal.Decimal, actorID string, now time.Time) domain.AuditEntry {
	oldS, newS := string(oldStatus), string(newStatus)
	return domain.AuditEntry{
		AuditID:          uuid.NewString(),
		TransactionID:    txnID,
		Action:           domain.AuditStatusChange,
		OldStatus:        &oldS,
		NewStatus:        &newS,
		OldAppliedAmount: &oldApplied,
		NewAppliedAmount: &newApplied,
		ActorID:          actorID,
		CreatedAt:        now,
	}
}

func insertTransactionTx(ctx context.Context, tx pgx.Tx, m models.Transaction) error {
	query := `
		INSERT INTO transactions (` + txnColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22);
	`
	_, err := tx.Exec(ctx, query,
		m.TransactionID, m.TransactionType, m.AccountID, m.RelatedAccountID, m.RelatedTransactionID,
		m.DealerID, m.CategoryID, m.TransactionDate, m.CurrencyCode, m.Amount, m.AmountUSD, m.AmountUZS,
		m.ExchangeRate, m.Status, m.AppliedAmount, m.Comment, m.ApprovedBy, m.ApprovedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translatePgError(err)
	}
	return nil
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertTransactionTx(ctx, tx, mapping.ToModelTransaction(txn)); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return fmt.Errorf("%w: transaction %s already exists", apperrors.ErrDuplicate, txn.TransactionID)
		}
		return fmt.Errorf("failed to save transaction %s: %w", txn.TransactionID, err)
	}
	return r.Commit(ctx, tx)
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+txnColumns+` FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction %s: %w", transactionID, err)
	}
	m, err := pgx.CollectOneRow(rows, scanTransactionRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("transaction %s not found", transactionID))
		}
		return nil, fmt.Errorf("failed to scan transaction %s: %w", transactionID, err)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// findTransactionForUpdate loads a transaction row under FOR UPDATE so its
// status cannot change beneath the caller's feet.
func findTransactionForUpdate(ctx context.Context, tx pgx.Tx, transactionID string) (*domain.Transaction, error) {
	rows, err := tx.Query(ctx, `SELECT `+txnColumns+` FROM transactions WHERE transaction_id = $1 FOR UPDATE;`, transactionID)
	if err != nil {
		return nil, translatePgError(err)
	}
	m, err := pgx.CollectOneRow(rows, scanTransactionRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("transaction %s not found", transactionID))
		}
		return nil, translatePgError(err)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.ListTransactionsFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	query := `SELECT ` + txnColumns + ` FROM transactions`
	conditions := []string{}
	args := []interface{}{}
	argIdx := 1

	addCondition := func(clause string, value interface{}) {
		conditions = append(conditions, fmt.Sprintf(clause, argIdx))
		args = append(args, value)
		argIdx++
	}

	if filter.AccountID != nil {
		addCondition("account_id = $%d", *filter.AccountID)
	}
	if filter.DealerID != nil {
		addCondition("dealer_id = $%d", *filter.DealerID)
	}
	if filter.CategoryID != nil {
		addCondition("category_id = $%d", *filter.CategoryID)
	}
	if filter.Status != nil {
		addCondition("status = $%d", string(*filter.Status))
	}
	if filter.Type != nil {
		addCondition("transaction_type = $%d", string(*filter.Type))
	}
	if filter.DateFrom != nil {
		addCondition("transaction_date >= $%d", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		addCondition("transaction_date <= $%d", *filter.DateTo)
	}

	if nextToken != nil && *nextToken != "" {
		date, createdAt, id, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, err)
		}
		conditions = append(conditions, fmt.Sprintf("(transaction_date, created_at, transaction_id) < ($%d, $%d, $%d)", argIdx, argIdx+1, argIdx+2))
		args = append(args, date, createdAt, id)
		argIdx += 3
	}

	if len(conditions) > 0 {
		query += " WHERE " + conditions[0]
		for _, c := range conditions[1:] {
			query += " AND " + c
		}
	}
	query += fmt.Sprintf(" ORDER BY transaction_date DESC, created_at DESC, transaction_id DESC LIMIT $%d;", argIdx)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	modelTxns, err := pgx.CollectRows(rows, scanTransactionRow)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	var token *string
	if len(modelTxns) > limit {
		modelTxns = modelTxns[:limit]
		last := modelTxns[len(modelTxns)-1]
		t := pagination.EncodeCursor(last.TransactionDate, last.CreatedAt, last.TransactionID)
		token = &t
	}
	return mapping.ToDomainTransactionSlice(modelTxns), token, nil
}

func (r *PgxTransactionRepository) SubmitTransaction(ctx context.Context, transactionID, actorID string, now time.Time) (*domain.Transaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	txn, err := findTransactionForUpdate(ctx, tx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.Status != domain.StatusDraft {
		return nil, fmt.Errorf("%w: cannot submit a %s transaction", apperrors.ErrInvalidTransition, txn.Status)
	}

	_, err = tx.Exec(ctx, `UPDATE transactions SET status = $2, last_updated_at = $3, last_updated_by = $4 WHERE transaction_id = $1;`,
		transactionID, string(domain.StatusPending), now, actorID)
	if err != nil {
		return nil, translatePgError(err)
	}

	entry := statusChangeEntry(transactionID, domain.StatusDraft, domain.StatusPending, decimal.Zero, decimal.Zero, actorID, now)
	if err := insertAuditEntry(ctx, tx, entry); err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	txn.Status = domain.StatusPending
	txn.LastUpdatedAt = now
	txn.LastUpdatedBy = actorID
	return txn, nil
}

func (r *PgxTransactionRepository) ApproveTransaction(ctx context.Context, transactionID, approverID string, now time.Time) (*portsrepo.TransactionMutationResult, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	txn, err := findTransactionForUpdate(ctx, tx, transactionID)
	if err != nil {
		return nil, err
	}

	// Idempotency: a second approval reports the current state untouched.
	if txn.Status == domain.StatusApproved {
		balance, err := accountBalanceInTx(ctx, tx, txn.AccountID)
		if err != nil {
			return nil, err
		}
		if err := r.Commit(ctx, tx); err != nil {
			return nil, err
		}
		return &portsrepo.TransactionMutationResult{Transaction: *txn, AccountBalance: balance, NoOp: true}, nil
	}
	if !txn.Status.CanTransitionTo(domain.StatusApproved) {
		return nil, fmt.Errorf("%w: cannot approve a %s transaction", apperrors.ErrInvalidTransition, txn.Status)
	}

	if _, err := lockAccounts(ctx, tx, []string{txn.AccountID}); err != nil {
		return nil, err
	}

	oldStatus := txn.Status
	applied := txn.SignedEffect()
	_, err = tx.Exec(ctx, `
		UPDATE transactions
		SET status = $2, applied_amount = $3, approved_by = $4, approved_at = $5, last_updated_at = $5, last_updated_by = $4
		WHERE transaction_id = $1;`,
		transactionID, string(domain.StatusApproved), applied, approverID, now)
	if err != nil {
		return nil, translatePgError(err)
	}

	entry := statusChangeEntry(transactionID, oldStatus, domain.StatusApproved, decimal.Zero, applied, approverID, now)
	if err := insertAuditEntry(ctx, tx, entry); err != nil {
		return nil, err
	}

	balance, err := accountBalanceInTx(ctx, tx, txn.AccountID)
	if err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	txn.Status = domain.StatusApproved
	txn.AppliedAmount = applied
	txn.ApprovedBy = &approverID
	txn.ApprovedAt = &now
	txn.LastUpdatedAt = now
	txn.LastUpdatedBy = approverID
	return &portsrepo.TransactionMutationResult{Transaction: *txn, AccountBalance: balance}, nil
}

// findRelatedLegForUpdate locks the paired exchange leg when one exists.
// Concurrent mutations of opposite legs can deadlock on the two row locks;
// postgres reports that as 40P01, which surfaces as a retryable ErrConflict.
func findRelatedLegForUpdate(ctx context.Context, tx pgx.Tx, txn *domain.Transaction) (*domain.Transaction, error) {
	if txn.RelatedTransactionID == nil {
		return nil, nil
	}
	return findTransactionForUpdate(ctx, tx, *txn.RelatedTransactionID)
}

func (r *PgxTransactionRepository) CancelTransaction(ctx context.Context, transactionID, actorID string, now time.Time) (*portsrepo.TransactionMutationResult, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	txn, err := findTransactionForUpdate(ctx, tx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.Status != domain.StatusApproved {
		return nil, fmt.Errorf("%w: cannot cancel a %s transaction", apperrors.ErrInvalidTransition, txn.Status)
	}

	// An exchange leg is never reversed alone: cancelling either leg cancels
	// the whole pair, so no half-reversed transfer is observable.
	related, err := findRelatedLegForUpdate(ctx, tx, txn)
	if err != nil {
		return nil, err
	}

	ids := []string{transactionID}
	accountIDs := []string{txn.AccountID}
	if related != nil {
		ids = append(ids, related.TransactionID)
		accountIDs = append(accountIDs, related.AccountID)
	}
	if _, err := lockAccounts(ctx, tx, accountIDs); err != nil {
		return nil, err
	}

	// The stamped applied_amount stays on the rows as the historical record;
	// flipping the status removes exactly that effect from the balance sum.
	_, err = tx.Exec(ctx, `UPDATE transactions SET status = $2, last_updated_at = $3, last_updated_by = $4 WHERE transaction_id = ANY($1);`,
		ids, string(domain.StatusCancelled), now, actorID)
	if err != nil {
		return nil, translatePgError(err)
	}

	entry := statusChangeEntry(transactionID, domain.StatusApproved, domain.StatusCancelled, txn.AppliedAmount, decimal.Zero, actorID, now)
	if err := insertAuditEntry(ctx, tx, entry); err != nil {
		return nil, err
	}
	if related != nil {
		pairEntry := statusChangeEntry(related.TransactionID, related.Status, domain.StatusCancelled, related.AppliedAmount, decimal.Zero, actorID, now)
		pairEntry.Details = "cancelled with paired exchange leg"
		if err := insertAuditEntry(ctx, tx, pairEntry); err != nil {
			return nil, err
		}
	}

	balance, err := accountBalanceInTx(ctx, tx, txn.AccountID)
	if err != nil {
		return nil, err
	}
	var relatedBalance *decimal.Decimal
	if related != nil {
		b, err := accountBalanceInTx(ctx, tx, related.AccountID)
		if err != nil {
			return nil, err
		}
		relatedBalance = &b
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	txn.Status = domain.StatusCancelled
	txn.LastUpdatedAt = now
	txn.LastUpdatedBy = actorID
	return &portsrepo.TransactionMutationResult{Transaction: *txn, AccountBalance: balance, RelatedAccountBalance: relatedBalance}, nil
}

func (r *PgxTransactionRepository) RejectTransaction(ctx context.Context, transactionID, actorID string, now time.Time) (*portsrepo.TransactionMutationResult, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	txn, err := findTransactionForUpdate(ctx, tx, transactionID)
	if err != nil {
		return nil, err
	}
	if !txn.Status.CanTransitionTo(domain.StatusRejected) {
		return nil, fmt.Errorf("%w: cannot reject a %s transaction", apperrors.ErrInvalidTransition, txn.Status)
	}

	oldStatus := txn.Status
	_, err = tx.Exec(ctx, `UPDATE transactions SET status = $2, last_updated_at = $3, last_updated_by = $4 WHERE transaction_id = $1;`,
		transactionID, string(domain.StatusRejected), now, actorID)
	if err != nil {
		return nil, translatePgError(err)
	}

	entry := statusChangeEntry(transactionID, oldStatus, domain.StatusRejected, decimal.Zero, decimal.Zero, actorID, now)
	if err := insertAuditEntry(ctx, tx, entry); err != nil {
		return nil, err
	}

	balance, err := accountBalanceInTx(ctx, tx, txn.AccountID)
	if err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	txn.Status = domain.StatusRejected
	txn.LastUpdatedAt = now
	txn.LastUpdatedBy = actorID
	return &portsrepo.TransactionMutationResult{Transaction: *txn, AccountBalance: balance}, nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction, actorID string, now time.Time) (*portsrepo.TransactionMutationResult, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	old, err := findTransactionForUpdate(ctx, tx, txn.TransactionID)
	if err != nil {
		return nil, err
	}
	switch old.TransactionType {
	case domain.TypeExchangeOut, domain.TypeExchangeIn:
		return nil, fmt.Errorf("%w: exchange legs change only as a pair; cancel the transfer instead", apperrors.ErrValidation)
	}

	if _, err := lockAccounts(ctx, tx, []string{old.AccountID}); err != nil {
		return nil, err
	}

	// An approved transaction's applied effect is swapped for the new one in
	// the same UPDATE, so no reader sees the old effect with the new amount.
	// Terminal rows keep their historical stamp; the balance sum skips them.
	newApplied := old.AppliedAmount
	if old.Status == domain.StatusApproved {
		newApplied = txn.SignedEffect()
	}

	_, err = tx.Exec(ctx, `
		UPDATE transactions
		SET amount = $2, amount_usd = $3, amount_uzs = $4, exchange_rate = $5, transaction_date = $6,
		    dealer_id = $7, category_id = $8, comment = $9, applied_amount = $10,
		    last_updated_at = $11, last_updated_by = $12
		WHERE transaction_id = $1;`,
		txn.TransactionID, txn.Amount, txn.AmountUSD, txn.AmountUZS, txn.ExchangeRate, txn.TransactionDate,
		txn.DealerID, txn.CategoryID, txn.Comment, newApplied, now, actorID)
	if err != nil {
		return nil, translatePgError(err)
	}

	entry := domain.AuditEntry{
		AuditID:          uuid.NewString(),
		TransactionID:    txn.TransactionID,
		Action:           domain.AuditEdit,
		OldAmount:        &old.Amount,
		NewAmount:        &txn.Amount,
		OldAppliedAmount: &old.AppliedAmount,
		NewAppliedAmount: &newApplied,
		ActorID:          actorID,
		CreatedAt:        now,
	}
	if err := insertAuditEntry(ctx, tx, entry); err != nil {
		return nil, err
	}

	balance, err := accountBalanceInTx(ctx, tx, old.AccountID)
	if err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	updated := txn
	updated.Status = old.Status
	updated.AppliedAmount = newApplied
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = actorID
	return &portsrepo.TransactionMutationResult{Transaction: updated, AccountBalance: balance}, nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID, actorID string, now time.Time) (*portsrepo.TransactionMutationResult, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	txn, err := findTransactionForUpdate(ctx, tx, transactionID)
	if err != nil {
		return nil, err
	}

	// Deleting one exchange leg would orphan the other, so the pair goes
	// together, same as cancel.
	related, err := findRelatedLegForUpdate(ctx, tx, txn)
	if err != nil {
		return nil, err
	}

	ids := []string{transactionID}
	accountIDs := []string{txn.AccountID}
	if related != nil {
		ids = append(ids, related.TransactionID)
		accountIDs = append(accountIDs, related.AccountID)
	}
	if txn.Status == domain.StatusApproved {
		if _, err := lockAccounts(ctx, tx, accountIDs); err != nil {
			return nil, err
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = ANY($1);`, ids); err != nil {
		return nil, translatePgError(err)
	}

	oldStatus := string(txn.Status)
	entry := domain.AuditEntry{
		AuditID:          uuid.NewString(),
		TransactionID:    transactionID,
		Action:           domain.AuditDelete,
		OldStatus:        &oldStatus,
		OldAmount:        &txn.Amount,
		OldAppliedAmount: &txn.AppliedAmount,
		ActorID:          actorID,
		CreatedAt:        now,
	}
	if err := insertAuditEntry(ctx, tx, entry); err != nil {
		return nil, err
	}
	if related != nil {
		relatedStatus := string(related.Status)
		pairEntry := domain.AuditEntry{
			AuditID:          uuid.NewString(),
			TransactionID:    related.TransactionID,
			Action:           domain.AuditDelete,
			OldStatus:        &relatedStatus,
			OldAmount:        &related.Amount,
			OldAppliedAmount: &related.AppliedAmount,
			Details:          "deleted with paired exchange leg",
			ActorID:          actorID,
			CreatedAt:        now,
		}
		if err := insertAuditEntry(ctx, tx, pairEntry); err != nil {
			return nil, err
		}
	}

	balance, err := accountBalanceInTx(ctx, tx, txn.AccountID)
	if err != nil {
		return nil, err
	}
	var relatedBalance *decimal.Decimal
	if related != nil {
		b, err := accountBalanceInTx(ctx, tx, related.AccountID)
		if err != nil {
			return nil, err
		}
		relatedBalance = &b
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &portsrepo.TransactionMutationResult{Transaction: *txn, AccountBalance: balance, RelatedAccountBalance: relatedBalance}, nil
}

func (r *PgxTransactionRepository) SaveExchangePair(ctx context.Context, out, in domain.Transaction) (*portsrepo.ExchangePairResult, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	balances, err := lockAccounts(ctx, tx, []string{out.AccountID, in.AccountID})
	if err != nil {
		return nil, err
	}
	// Re-check sufficiency under the lock; the service's pre-check may be
	// stale by the time we get here.
	if balances[out.AccountID].LessThan(out.Amount) {
		return nil, fmt.Errorf("%w: account %s has %s, needs %s",
			apperrors.ErrInsufficientBalance, out.AccountID, balances[out.AccountID], out.Amount)
	}

	batch := &pgx.Batch{}
	for _, txn := range []domain.Transaction{out, in} {
		m := mapping.ToModelTransaction(txn)
		batch.Queue(`INSERT INTO transactions (`+txnColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22);`,
			m.TransactionID, m.TransactionType, m.AccountID, m.RelatedAccountID, m.RelatedTransactionID,
			m.DealerID, m.CategoryID, m.TransactionDate, m.CurrencyCode, m.Amount, m.AmountUSD, m.AmountUZS,
			m.ExchangeRate, m.Status, m.AppliedAmount, m.Comment, m.ApprovedBy, m.ApprovedAt,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return nil, translatePgError(err)
	}

	for _, txn := range []domain.Transaction{out, in} {
		entry := statusChangeEntry(txn.TransactionID, domain.StatusDraft, domain.StatusApproved, decimal.Zero, txn.AppliedAmount, txn.CreatedBy, txn.CreatedAt)
		if err := insertAuditEntry(ctx, tx, entry); err != nil {
			return nil, err
		}
	}

	fromBalance, err := accountBalanceInTx(ctx, tx, out.AccountID)
	if err != nil {
		return nil, err
	}
	toBalance, err := accountBalanceInTx(ctx, tx, in.AccountID)
	if err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return &portsrepo.ExchangePairResult{
		OutTransaction: out,
		InTransaction:  in,
		FromBalance:    fromBalance,
		ToBalance:      toBalance,
	}, nil
}

func (r *PgxTransactionRepository) SaveDealerRefund(ctx context.Context, txn domain.Transaction, dealerID string, debtDelta decimal.Decimal) (*portsrepo.DealerRefundResult, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	balances, err := lockAccounts(ctx, tx, []string{txn.AccountID})
	if err != nil {
		return nil, err
	}
	if balances[txn.AccountID].LessThan(txn.Amount) {
		return nil, fmt.Errorf("%w: account %s has %s, needs %s",
			apperrors.ErrInsufficientBalance, txn.AccountID, balances[txn.AccountID], txn.Amount)
	}

	if err := insertTransactionTx(ctx, tx, mapping.ToModelTransaction(txn)); err != nil {
		return nil, err
	}

	newDebt, err := adjustDebtTx(ctx, tx, dealerID, txn.CurrencyCode, debtDelta, txn.CreatedBy, txn.CreatedAt)
	if err != nil {
		return nil, err
	}

	entry := statusChangeEntry(txn.TransactionID, domain.StatusDraft, domain.StatusApproved, decimal.Zero, txn.AppliedAmount, txn.CreatedBy, txn.CreatedAt)
	entry.DealerID = &dealerID
	entry.Details = "dealer refund"
	if err := insertAuditEntry(ctx, tx, entry); err != nil {
		return nil, err
	}

	balance, err := accountBalanceInTx(ctx, tx, txn.AccountID)
	if err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return &portsrepo.DealerRefundResult{
		Transaction:    txn,
		AccountBalance: balance,
		DealerDebt:     newDebt,
	}, nil
}
