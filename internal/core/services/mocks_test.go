package services_test

import (
	"context"
	"time"

	"github.com/savdoplus/savdo_backend/internal/core/domain"
	portsrepo "github.com/savdoplus/savdo_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, includeInactive bool) ([]domain.Account, error) {
	args := m.Called(ctx, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) SetAccountActive(ctx context.Context, accountID string, active bool, userID string, now time.Time) error {
	args := m.Called(ctx, accountID, active, userID, now)
	return args.Error(0)
}

func (m *MockAccountRepository) GetBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.ListTransactionsFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		v := args.Get(1).(string)
		token = &v
	}
	return args.Get(0).([]domain.Transaction), token, args.Error(2)
}

func (m *MockTransactionRepository) SubmitTransaction(ctx context.Context, transactionID, actorID string, now time.Time) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, actorID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ApproveTransaction(ctx context.Context, transactionID, approverID string, now time.Time) (*portsrepo.TransactionMutationResult, error) {
	args := m.Called(ctx, transactionID, approverID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portsrepo.TransactionMutationResult), args.Error(1)
}

func (m *MockTransactionRepository) CancelTransaction(ctx context.Context, transactionID, actorID string, now time.Time) (*portsrepo.TransactionMutationResult, error) {
	args := m.Called(ctx, transactionID, actorID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portsrepo.TransactionMutationResult), args.Error(1)
}

func (m *MockTransactionRepository) RejectTransaction(ctx context.Context, transactionID, actorID string, now time.Time) (*portsrepo.TransactionMutationResult, error) {
	args := m.Called(ctx, transactionID, actorID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portsrepo.TransactionMutationResult), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction, actorID string, now time.Time) (*portsrepo.TransactionMutationResult, error) {
	args := m.Called(ctx, txn, actorID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portsrepo.TransactionMutationResult), args.Error(1)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID, actorID string, now time.Time) (*portsrepo.TransactionMutationResult, error) {
	args := m.Called(ctx, transactionID, actorID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portsrepo.TransactionMutationResult), args.Error(1)
}

func (m *MockTransactionRepository) SaveExchangePair(ctx context.Context, out, in domain.Transaction) (*portsrepo.ExchangePairResult, error) {
	args := m.Called(ctx, out, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portsrepo.ExchangePairResult), args.Error(1)
}

func (m *MockTransactionRepository) SaveDealerRefund(ctx context.Context, txn domain.Transaction, dealerID string, debtDelta decimal.Decimal) (*portsrepo.DealerRefundResult, error) {
	args := m.Called(ctx, txn, dealerID, debtDelta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portsrepo.DealerRefundResult), args.Error(1)
}

// --- Mock DealerRepository ---

type MockDealerRepository struct {
	mock.Mock
}

var _ portsrepo.DealerRepositoryFacade = (*MockDealerRepository)(nil)

func (m *MockDealerRepository) SaveDealer(ctx context.Context, dealer domain.Dealer) error {
	args := m.Called(ctx, dealer)
	return args.Error(0)
}

func (m *MockDealerRepository) FindDealerByID(ctx context.Context, dealerID string) (*domain.Dealer, error) {
	args := m.Called(ctx, dealerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dealer), args.Error(1)
}

func (m *MockDealerRepository) GetDebt(ctx context.Context, dealerID string, currency domain.CurrencyCode) (decimal.Decimal, error) {
	args := m.Called(ctx, dealerID, currency)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockDealerRepository) AdjustDebt(ctx context.Context, dealerID string, currency domain.CurrencyCode, delta decimal.Decimal, userID string, now time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, dealerID, currency, delta, userID, now)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock CategoryRepository ---

type MockCategoryRepository struct {
	mock.Mock
}

var _ portsrepo.CategoryRepositoryFacade = (*MockCategoryRepository)(nil)

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.ExpenseCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.ExpenseCategory, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseCategory), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, ownerID string, includeInactive bool) ([]domain.ExpenseCategory, error) {
	args := m.Called(ctx, ownerID, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseCategory), args.Error(1)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.ExpenseCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeactivateCategory(ctx context.Context, categoryID, userID string, now time.Time) error {
	args := m.Called(ctx, categoryID, userID, now)
	return args.Error(0)
}

// --- Mock AuditRepository ---

type MockAuditRepository struct {
	mock.Mock
}

var _ portsrepo.AuditRepositoryFacade = (*MockAuditRepository)(nil)

func (m *MockAuditRepository) SaveAuditEntry(ctx context.Context, entry domain.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditRepository) ListAuditByTransaction(ctx context.Context, transactionID string) ([]domain.AuditEntry, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditEntry), args.Error(1)
}

// --- Mock SummaryRepository ---

type MockSummaryRepository struct {
	mock.Mock
}

var _ portsrepo.SummaryRepositoryFacade = (*MockSummaryRepository)(nil)

func (m *MockSummaryRepository) GetCashSummaryData(ctx context.Context) (*domain.CashSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashSummary), args.Error(1)
}
