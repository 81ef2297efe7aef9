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
	"github.com/shopspring/decimal"
)

type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates the account service.
func NewAccountService(repo portsrepo.AccountRepositoryFacade) *accountService {
	return &accountService{accountRepo: repo}
}

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.AccountType.Valid() {
		return nil, fmt.Errorf("%w: unknown account type %s", apperrors.ErrValidation, req.AccountType)
	}
	if !req.CurrencyCode.Valid() {
		return nil, fmt.Errorf("%w: unknown currency %s", apperrors.ErrValidation, req.CurrencyCode)
	}

	openingBalance := decimal.Zero
	var openingDate *time.Time
	if req.OpeningBalance != nil {
		if req.OpeningBalance.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: opening balance cannot be negative", apperrors.ErrValidation)
		}
		if req.OpeningBalance.Amount.IsPositive() && req.OpeningBalance.Date == nil {
			return nil, fmt.Errorf("%w: opening balance requires a date", apperrors.ErrValidation)
		}
		openingBalance = req.OpeningBalance.Amount.Round(req.CurrencyCode.Precision())
		openingDate = req.OpeningBalance.Date
	}

	now := time.Now()
	account := domain.Account{
		AccountID:      uuid.NewString(),
		Name:           req.Name,
		AccountType:    req.AccountType,
		CurrencyCode:   req.CurrencyCode,
		OpeningBalance: openingBalance,
		OpeningDate:    openingDate,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
		Balance: openingBalance,
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account in repository", slog.String("error", err.Error()), slog.String("account_id", account.AccountID))
		return nil, err
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("currency", string(account.CurrencyCode)))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account by ID in repository", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, includeInactive bool) ([]domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	accounts, err := s.accountRepo.ListAccounts(ctx, includeInactive)
	if err != nil {
		logger.Error("Failed to list accounts from repository", slog.String("error", err.Error()))
		return nil, err
	}
	return accounts, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.AccountType != nil {
		if !req.AccountType.Valid() {
			return nil, fmt.Errorf("%w: unknown account type %s", apperrors.ErrValidation, *req.AccountType)
		}
		account.AccountType = *req.AccountType
	}
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		logger.Error("Failed to update account in repository", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, err
	}

	logger.Info("Account updated", slog.String("account_id", accountID))
	return account, nil
}

func (s *accountService) DeactivateAccount(ctx context.Context, accountID string, userID string) error {
	return s.setActive(ctx, accountID, false, userID)
}

func (s *accountService) ReactivateAccount(ctx context.Context, accountID string, userID string) error {
	return s.setActive(ctx, accountID, true, userID)
}

func (s *accountService) setActive(ctx context.Context, accountID string, active bool, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.accountRepo.SetAccountActive(ctx, accountID, active, userID, time.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to change account active flag", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return err
	}
	logger.Info("Account active flag changed", slog.String("account_id", accountID), slog.Bool("active", active))
	return nil
}

func (s *accountService) CalculateAccountBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	balance, err := s.accountRepo.GetBalance(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to calculate account balance", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return decimal.Zero, err
	}
	return balance, nil
}
