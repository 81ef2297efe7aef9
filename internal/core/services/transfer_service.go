package services

import (
	"context"
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
	"github.com/shopspring/decimal"
)

type transferService struct {
	txnRepo     portsrepo.TransactionRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
	dealerRepo  portsrepo.DealerRepositoryFacade
}

// NewTransferService creates the orchestrator for currency transfers and
// dealer refunds.
func NewTransferService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	dealerRepo portsrepo.DealerRepositoryFacade,
) *transferService {
	return &transferService{
		txnRepo:     txnRepo,
		accountRepo: accountRepo,
		dealerRepo:  dealerRepo,
	}
}

// TransferCurrency records both legs of a cross-currency exchange. The rate
// is validated before anything is persisted; both legs are committed as one
// unit so no reader can observe a half-applied transfer.
func (s *transferService) TransferCurrency(ctx context.Context, req dto.TransferRequest, userID string) (*dto.TransferResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.ExchangeRate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: rate must be positive, got %s", apperrors.ErrInvalidRate, req.ExchangeRate)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if req.FromAccountID == req.ToAccountID {
		return nil, fmt.Errorf("%w: transfer endpoints must differ", apperrors.ErrValidation)
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, []string{req.FromAccountID, req.ToAccountID})
	if err != nil {
		return nil, err
	}
	from, ok := accounts[req.FromAccountID]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("account %s not found", req.FromAccountID))
	}
	to, ok := accounts[req.ToAccountID]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("account %s not found", req.ToAccountID))
	}
	if !from.IsActive || !to.IsActive {
		return nil, fmt.Errorf("%w: both transfer endpoints must be active", apperrors.ErrValidation)
	}
	if from.CurrencyCode == to.CurrencyCode {
		return nil, fmt.Errorf("%w: transfer endpoints share currency %s", apperrors.ErrCurrencyMismatch, from.CurrencyCode)
	}

	outAmount := req.Amount.Round(from.CurrencyCode.Precision())
	inAmount, err := fx.Convert(outAmount, from.CurrencyCode, to.CurrencyCode, req.ExchangeRate)
	if err != nil {
		return nil, err
	}
	if from.Balance.LessThan(outAmount) {
		return nil, fmt.Errorf("%w: account %s has %s, needs %s",
			apperrors.ErrInsufficientBalance, from.AccountID, from.Balance, outAmount)
	}

	rate := req.ExchangeRate
	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}
	now := time.Now()

	outUSD, outUZS, err := fx.Derive(outAmount, from.CurrencyCode, &rate)
	if err != nil {
		return nil, err
	}
	inUSD, inUZS, err := fx.Derive(inAmount, to.CurrencyCode, &rate)
	if err != nil {
		return nil, err
	}

	outID := uuid.NewString()
	inID := uuid.NewString()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	out := domain.Transaction{
		TransactionID:        outID,
		TransactionType:      domain.TypeExchangeOut,
		AccountID:            from.AccountID,
		RelatedAccountID:     &to.AccountID,
		RelatedTransactionID: &inID,
		TransactionDate:      date,
		CurrencyCode:         from.CurrencyCode,
		Amount:               outAmount,
		AmountUSD:            outUSD,
		AmountUZS:            outUZS,
		ExchangeRate:         &rate,
		Status:               domain.StatusApproved,
		AppliedAmount:        outAmount.Neg(),
		Comment:              req.Comment,
		ApprovedBy:           &userID,
		ApprovedAt:           &now,
		AuditFields:          audit,
	}
	in := domain.Transaction{
		TransactionID:        inID,
		TransactionType:      domain.TypeExchangeIn,
		AccountID:            to.AccountID,
		RelatedAccountID:     &from.AccountID,
		RelatedTransactionID: &outID,
		TransactionDate:      date,
		CurrencyCode:         to.CurrencyCode,
		Amount:               inAmount,
		AmountUSD:            inUSD,
		AmountUZS:            inUZS,
		ExchangeRate:         &rate,
		Status:               domain.StatusApproved,
		AppliedAmount:        inAmount,
		Comment:              req.Comment,
		ApprovedBy:           &userID,
		ApprovedAt:           &now,
		AuditFields:          audit,
	}

	result, err := withConflictRetry(ctx, "transfer_currency", func() (*portsrepo.ExchangePairResult, error) {
		return s.txnRepo.SaveExchangePair(ctx, out, in)
	})
	if err != nil {
		logger.Error("Failed to record currency transfer",
			slog.String("error", err.Error()),
			slog.String("from_account", from.AccountID),
			slog.String("to_account", to.AccountID))
		return nil, err
	}

	logger.Info("Currency transfer recorded",
		slog.String("out_transaction", result.OutTransaction.TransactionID),
		slog.String("in_transaction", result.InTransaction.TransactionID),
		slog.String("rate", rate.String()))

	return &dto.TransferResponse{
		SourceTransactionID: result.OutTransaction.TransactionID,
		TargetTransactionID: result.InTransaction.TransactionID,
		NewBalances: map[string]decimal.Decimal{
			from.AccountID: result.FromBalance,
			to.AccountID:   result.ToBalance,
		},
	}, nil
}

// DealerRefund debits one of our accounts and decreases the dealer's debt by
// the same amount, as one unit. The refund is recorded as an approved expense
// transaction; the dealer linkage is kept in the audit trail.
func (s *transferService) DealerRefund(ctx context.Context, req dto.DealerRefundRequest, userID string) (*dto.DealerRefundResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	currency := domain.CurrencyCode(req.CurrencyCode)
	if !currency.Valid() {
		return nil, fmt.Errorf("%w: unknown currency %s", apperrors.ErrValidation, req.CurrencyCode)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	dealer, err := s.dealerRepo.FindDealerByID(ctx, req.DealerID)
	if err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}
	if !account.IsActive {
		return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, account.AccountID)
	}
	if account.CurrencyCode != currency {
		return nil, fmt.Errorf("%w: refund currency %s does not match account currency %s",
			apperrors.ErrCurrencyMismatch, currency, account.CurrencyCode)
	}

	amount := req.Amount.Round(currency.Precision())
	if account.Balance.LessThan(amount) {
		return nil, fmt.Errorf("%w: account %s has %s, needs %s",
			apperrors.ErrInsufficientBalance, account.AccountID, account.Balance, amount)
	}

	amountUSD, amountUZS, err := fx.Derive(amount, currency, nil)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		TransactionType: domain.TypeExpense,
		AccountID:       account.AccountID,
		TransactionDate: now,
		CurrencyCode:    currency,
		Amount:          amount,
		AmountUSD:       amountUSD,
		AmountUZS:       amountUZS,
		Status:          domain.StatusApproved,
		AppliedAmount:   amount.Neg(),
		Comment:         req.Description,
		ApprovedBy:      &userID,
		ApprovedAt:      &now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	result, err := withConflictRetry(ctx, "dealer_refund", func() (*portsrepo.DealerRefundResult, error) {
		return s.txnRepo.SaveDealerRefund(ctx, txn, dealer.DealerID, amount.Neg())
	})
	if err != nil {
		logger.Error("Failed to record dealer refund",
			slog.String("error", err.Error()),
			slog.String("dealer_id", dealer.DealerID),
			slog.String("account_id", account.AccountID))
		return nil, err
	}

	logger.Info("Dealer refund recorded",
		slog.String("transaction_id", result.Transaction.TransactionID),
		slog.String("dealer_id", dealer.DealerID),
		slog.String("dealer_debt", result.DealerDebt.String()))

	return &dto.DealerRefundResponse{
		TransactionID:     result.Transaction.TransactionID,
		DealerNewBalance:  result.DealerDebt,
		AccountNewBalance: result.AccountBalance,
	}, nil
}
