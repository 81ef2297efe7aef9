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
	"github.com/savdoplus/savdo_backend/internal/utils/fx"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type ledgerService struct {
	txnRepo      portsrepo.TransactionRepositoryFacade
	accountRepo  portsrepo.AccountRepositoryFacade
	dealerRepo   portsrepo.DealerRepositoryFacade
	categoryRepo portsrepo.CategoryRepositoryFacade
	auditRepo    portsrepo.AuditRepositoryFacade
}

// NewLedgerService creates the transaction lifecycle service.
func NewLedgerService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	dealerRepo portsrepo.DealerRepositoryFacade,
	categoryRepo portsrepo.CategoryRepositoryFacade,
	auditRepo portsrepo.AuditRepositoryFacade,
) *ledgerService {
	return &ledgerService{
		txnRepo:      txnRepo,
		accountRepo:  accountRepo,
		dealerRepo:   dealerRepo,
		categoryRepo: categoryRepo,
		auditRepo:    auditRepo,
	}
}

func (s *ledgerService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.TransactionType.Valid() {
		return nil, fmt.Errorf("%w: unknown transaction type %s", apperrors.ErrValidation, req.TransactionType)
	}
	switch req.TransactionType {
	case domain.TypeExchangeOut, domain.TypeExchangeIn:
		return nil, fmt.Errorf("%w: exchange transactions are created via the transfer endpoint", apperrors.ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if req.DealerID != nil && req.TransactionType != domain.TypeIncome {
		return nil, fmt.Errorf("%w: dealer linkage is only valid on income transactions", apperrors.ErrValidation)
	}
	if req.CategoryID != nil && req.TransactionType != domain.TypeExpense {
		return nil, fmt.Errorf("%w: categories are only valid on expense transactions", apperrors.ErrValidation)
	}
	if req.TransactionType == domain.TypeIncome && req.DealerID == nil {
		return nil, fmt.Errorf("%w: income transactions require a dealer", apperrors.ErrValidation)
	}
	if req.TransactionType == domain.TypeExpense && req.CategoryID == nil {
		return nil, fmt.Errorf("%w: expense transactions require a category", apperrors.ErrValidation)
	}

	account, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}
	if !account.IsActive {
		return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, account.AccountID)
	}
	if account.CurrencyCode != req.CurrencyCode {
		return nil, fmt.Errorf("%w: transaction currency %s does not match account currency %s",
			apperrors.ErrCurrencyMismatch, req.CurrencyCode, account.CurrencyCode)
	}
	if req.DealerID != nil {
		if _, err := s.dealerRepo.FindDealerByID(ctx, *req.DealerID); err != nil {
			return nil, err
		}
	}
	if req.CategoryID != nil {
		category, err := s.categoryRepo.FindCategoryByID(ctx, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		if !category.IsActive {
			return nil, fmt.Errorf("%w: category %s is inactive", apperrors.ErrValidation, category.CategoryID)
		}
	}

	amount := req.Amount.Round(req.CurrencyCode.Precision())
	amountUSD, amountUZS, err := fx.Derive(amount, req.CurrencyCode, req.ExchangeRate)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		TransactionType: req.TransactionType,
		AccountID:       req.AccountID,
		DealerID:        req.DealerID,
		CategoryID:      req.CategoryID,
		TransactionDate: req.Date,
		CurrencyCode:    req.CurrencyCode,
		Amount:          amount,
		AmountUSD:       amountUSD,
		AmountUZS:       amountUZS,
		ExchangeRate:    req.ExchangeRate,
		Status:          domain.StatusDraft,
		Comment:         req.Comment,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		logger.Error("Failed to save transaction", slog.String("error", err.Error()), slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	logger.Info("Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.TransactionType)),
		slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

func (s *ledgerService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

func (s *ledgerService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, *string, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	filter := portsrepo.ListTransactionsFilter{
		AccountID:  params.AccountID,
		DealerID:   params.DealerID,
		CategoryID: params.CategoryID,
		Status:     params.Status,
		Type:       params.Type,
		DateFrom:   params.DateFrom,
		DateTo:     params.DateTo,
	}
	return s.txnRepo.ListTransactions(ctx, filter, limit, params.NextToken)
}

func (s *ledgerService) ListAuditTrail(ctx context.Context, transactionID string) ([]domain.AuditEntry, error) {
	if _, err := s.txnRepo.FindTransactionByID(ctx, transactionID); err != nil {
		return nil, err
	}
	return s.auditRepo.ListAuditByTransaction(ctx, transactionID)
}

func (s *ledgerService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*portsrepo.TransactionMutationResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	switch txn.TransactionType {
	case domain.TypeExchangeOut, domain.TypeExchangeIn:
		return nil, fmt.Errorf("%w: exchange legs change only as a pair; cancel the transfer instead", apperrors.ErrValidation)
	}

	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		txn.Amount = req.Amount.Round(txn.CurrencyCode.Precision())
	}
	if req.Date != nil {
		txn.TransactionDate = *req.Date
	}
	if req.DealerID != nil {
		if txn.TransactionType != domain.TypeIncome {
			return nil, fmt.Errorf("%w: dealer linkage is only valid on income transactions", apperrors.ErrValidation)
		}
		if _, err := s.dealerRepo.FindDealerByID(ctx, *req.DealerID); err != nil {
			return nil, err
		}
		txn.DealerID = req.DealerID
	}
	if req.CategoryID != nil {
		if txn.TransactionType != domain.TypeExpense {
			return nil, fmt.Errorf("%w: categories are only valid on expense transactions", apperrors.ErrValidation)
		}
		if _, err := s.categoryRepo.FindCategoryByID(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		txn.CategoryID = req.CategoryID
	}
	if req.ExchangeRate != nil {
		txn.ExchangeRate = req.ExchangeRate
	}
	if req.Comment != nil {
		txn.Comment = *req.Comment
	}

	txn.AmountUSD, txn.AmountUZS, err = fx.Derive(txn.Amount, txn.CurrencyCode, txn.ExchangeRate)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	txn.LastUpdatedAt = now
	txn.LastUpdatedBy = userID

	result, err := withConflictRetry(ctx, "update_transaction", func() (*portsrepo.TransactionMutationResult, error) {
		return s.txnRepo.UpdateTransaction(ctx, *txn, userID, now)
	})
	if err != nil {
		logger.Error("Failed to update transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, err
	}

	logger.Info("Transaction updated", slog.String("transaction_id", transactionID), slog.String("status", string(result.Transaction.Status)))
	return result, nil
}

func (s *ledgerService) DeleteTransaction(ctx context.Context, transactionID string, userID string) (*portsrepo.TransactionMutationResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	result, err := withConflictRetry(ctx, "delete_transaction", func() (*portsrepo.TransactionMutationResult, error) {
		return s.txnRepo.DeleteTransaction(ctx, transactionID, userID, now)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	logger.Info("Transaction deleted", slog.String("transaction_id", transactionID))
	return result, nil
}

func (s *ledgerService) SubmitTransaction(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	txn, err := s.txnRepo.SubmitTransaction(ctx, transactionID, userID, time.Now())
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrInvalidTransition) {
			logger.Error("Failed to submit transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	logger.Info("Transaction submitted", slog.String("transaction_id", transactionID))
	return txn, nil
}

func (s *ledgerService) ApproveTransaction(ctx context.Context, transactionID string, userID string) (*portsrepo.TransactionMutationResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	result, err := withConflictRetry(ctx, "approve_transaction", func() (*portsrepo.TransactionMutationResult, error) {
		return s.txnRepo.ApproveTransaction(ctx, transactionID, userID, now)
	})
	if err != nil {
		return nil, err
	}

	if result.NoOp {
		logger.Info("Transaction already approved, approval is a no-op", slog.String("transaction_id", transactionID))
	} else {
		logger.Info("Transaction approved",
			slog.String("transaction_id", transactionID),
			slog.String("applied_amount", result.Transaction.AppliedAmount.String()),
			slog.String("account_balance", result.AccountBalance.String()))
	}
	return result, nil
}

func (s *ledgerService) RejectTransaction(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	result, err := withConflictRetry(ctx, "reject_transaction", func() (*portsrepo.TransactionMutationResult, error) {
		return s.txnRepo.RejectTransaction(ctx, transactionID, userID, time.Now())
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Transaction rejected", slog.String("transaction_id", transactionID))
	return &result.Transaction, nil
}

func (s *ledgerService) CancelTransaction(ctx context.Context, transactionID string, userID string) (*portsrepo.TransactionMutationResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	result, err := withConflictRetry(ctx, "cancel_transaction", func() (*portsrepo.TransactionMutationResult, error) {
		return s.txnRepo.CancelTransaction(ctx, transactionID, userID, time.Now())
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Transaction cancelled",
		slog.String("transaction_id", transactionID),
		slog.String("account_balance", result.AccountBalance.String()))
	return result, nil
}
