package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/savdoplus/savdo_backend/internal/apperrors"
	"github.com/savdoplus/savdo_backend/internal/core/domain"
	portsrepo "github.com/savdoplus/savdo_backend/internal/core/ports/repositories"
	portssvc "github.com/savdoplus/savdo_backend/internal/core/ports/services"
	"github.com/savdoplus/savdo_backend/internal/core/services"
	"github.com/savdoplus/savdo_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransferServiceTestSuite struct {
	suite.Suite
	mockTxnRepo     *MockTransactionRepository
	mockAccountRepo *MockAccountRepository
	mockDealerRepo  *MockDealerRepository
	service         portssvc.TransferSvcFacade
	usdAccount      domain.Account
	uzsAccount      domain.Account
	dealer          domain.Dealer
	userID          string
}

func (suite *TransferServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockDealerRepo = new(MockDealerRepository)
	suite.service = services.NewTransferService(suite.mockTxnRepo, suite.mockAccountRepo, suite.mockDealerRepo)

	suite.userID = uuid.NewString()
	suite.usdAccount = domain.Account{
		AccountID:    uuid.NewString(),
		Name:         "Safe USD",
		AccountType:  domain.AccountCash,
		CurrencyCode: domain.CurrencyUSD,
		IsActive:     true,
		Balance:      decimal.NewFromInt(1000),
	}
	suite.uzsAccount = domain.Account{
		AccountID:    uuid.NewString(),
		Name:         "Till UZS",
		AccountType:  domain.AccountCash,
		CurrencyCode: domain.CurrencyUZS,
		IsActive:     true,
		Balance:      decimal.NewFromInt(100000),
	}
	suite.dealer = domain.Dealer{
		DealerID: uuid.NewString(),
		Name:     "Akmal",
		IsActive: true,
		DebtUZS:  decimal.NewFromInt(80000),
	}
}

func (suite *TransferServiceTestSuite) accountsByIDs() map[string]domain.Account {
	return map[string]domain.Account{
		suite.usdAccount.AccountID: suite.usdAccount,
		suite.uzsAccount.AccountID: suite.uzsAccount,
	}
}

func (suite *TransferServiceTestSuite) TestTransferCurrency_Success() {
	ctx := context.Background()
	req := dto.TransferRequest{
		FromAccountID: suite.usdAccount.AccountID,
		ToAccountID:   suite.uzsAccount.AccountID,
		Amount:        decimal.NewFromInt(100),
		ExchangeRate:  decimal.NewFromInt(12500),
	}

	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, []string{req.FromAccountID, req.ToAccountID}).
		Return(suite.accountsByIDs(), nil).Once()
	suite.mockTxnRepo.On("SaveExchangePair", ctx,
		mock.MatchedBy(func(out domain.Transaction) bool {
			return out.TransactionType == domain.TypeExchangeOut &&
				out.Status == domain.StatusApproved &&
				out.Amount.Equal(decimal.NewFromInt(100)) &&
				out.AppliedAmount.Equal(decimal.NewFromInt(-100))
		}),
		mock.MatchedBy(func(in domain.Transaction) bool {
			return in.TransactionType == domain.TypeExchangeIn &&
				in.Status == domain.StatusApproved &&
				in.Amount.Equal(decimal.NewFromInt(1250000)) &&
				in.AppliedAmount.Equal(decimal.NewFromInt(1250000))
		}),
	).Return(&portsrepo.ExchangePairResult{
		OutTransaction: domain.Transaction{TransactionID: uuid.NewString()},
		InTransaction:  domain.Transaction{TransactionID: uuid.NewString()},
		FromBalance:    decimal.NewFromInt(900),
		ToBalance:      decimal.NewFromInt(1350000),
	}, nil).Once()

	resp, err := suite.service.TransferCurrency(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(resp.SourceTransactionID)
	suite.NotEmpty(resp.TargetTransactionID)
	suite.True(resp.NewBalances[suite.usdAccount.AccountID].Equal(decimal.NewFromInt(900)))
	suite.True(resp.NewBalances[suite.uzsAccount.AccountID].Equal(decimal.NewFromInt(1350000)))
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransferServiceTestSuite) TestTransferCurrency_NonPositiveRateRejectedBeforeAnyRecord() {
	ctx := context.Background()
	req := dto.TransferRequest{
		FromAccountID: suite.usdAccount.AccountID,
		ToAccountID:   suite.uzsAccount.AccountID,
		Amount:        decimal.NewFromInt(100),
		ExchangeRate:  decimal.Zero,
	}

	_, err := suite.service.TransferCurrency(ctx, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrInvalidRate)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountsByIDs", mock.Anything, mock.Anything)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveExchangePair", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransferServiceTestSuite) TestTransferCurrency_SameCurrencyRejected() {
	ctx := context.Background()
	otherUSD := domain.Account{
		AccountID:    uuid.NewString(),
		CurrencyCode: domain.CurrencyUSD,
		IsActive:     true,
		Balance:      decimal.NewFromInt(50),
	}
	req := dto.TransferRequest{
		FromAccountID: suite.usdAccount.AccountID,
		ToAccountID:   otherUSD.AccountID,
		Amount:        decimal.NewFromInt(10),
		ExchangeRate:  decimal.NewFromInt(12500),
	}

	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, []string{req.FromAccountID, req.ToAccountID}).
		Return(map[string]domain.Account{
			suite.usdAccount.AccountID: suite.usdAccount,
			otherUSD.AccountID:         otherUSD,
		}, nil).Once()

	_, err := suite.service.TransferCurrency(ctx, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrCurrencyMismatch)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveExchangePair", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransferServiceTestSuite) TestTransferCurrency_InsufficientBalance() {
	ctx := context.Background()
	poor := suite.usdAccount
	poor.Balance = decimal.NewFromInt(40)
	req := dto.TransferRequest{
		FromAccountID: poor.AccountID,
		ToAccountID:   suite.uzsAccount.AccountID,
		Amount:        decimal.NewFromInt(100),
		ExchangeRate:  decimal.NewFromInt(12500),
	}

	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, []string{req.FromAccountID, req.ToAccountID}).
		Return(map[string]domain.Account{
			poor.AccountID:             poor,
			suite.uzsAccount.AccountID: suite.uzsAccount,
		}, nil).Once()

	_, err := suite.service.TransferCurrency(ctx, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrInsufficientBalance)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveExchangePair", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransferServiceTestSuite) TestTransferCurrency_SameAccountRejected() {
	ctx := context.Background()
	req := dto.TransferRequest{
		FromAccountID: suite.usdAccount.AccountID,
		ToAccountID:   suite.usdAccount.AccountID,
		Amount:        decimal.NewFromInt(10),
		ExchangeRate:  decimal.NewFromInt(12500),
	}

	_, err := suite.service.TransferCurrency(ctx, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransferServiceTestSuite) TestDealerRefund_Success() {
	ctx := context.Background()
	req := dto.DealerRefundRequest{
		DealerID:     suite.dealer.DealerID,
		AccountID:    suite.uzsAccount.AccountID,
		Amount:       decimal.NewFromInt(50000),
		CurrencyCode: "UZS",
		Description:  "defect refund",
	}

	suite.mockDealerRepo.On("FindDealerByID", ctx, suite.dealer.DealerID).Return(&suite.dealer, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.uzsAccount.AccountID).Return(&suite.uzsAccount, nil).Once()
	suite.mockTxnRepo.On("SaveDealerRefund", ctx,
		mock.MatchedBy(func(txn domain.Transaction) bool {
			return txn.TransactionType == domain.TypeExpense &&
				txn.Status == domain.StatusApproved &&
				txn.DealerID == nil &&
				txn.AppliedAmount.Equal(decimal.NewFromInt(-50000))
		}),
		suite.dealer.DealerID,
		mock.MatchedBy(func(delta decimal.Decimal) bool {
			return delta.Equal(decimal.NewFromInt(-50000))
		}),
	).Return(&portsrepo.DealerRefundResult{
		Transaction:    domain.Transaction{TransactionID: uuid.NewString()},
		AccountBalance: decimal.NewFromInt(50000),
		DealerDebt:     decimal.NewFromInt(30000),
	}, nil).Once()

	resp, err := suite.service.DealerRefund(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(resp.TransactionID)
	suite.True(resp.AccountNewBalance.Equal(decimal.NewFromInt(50000)))
	suite.True(resp.DealerNewBalance.Equal(decimal.NewFromInt(30000)))
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransferServiceTestSuite) TestDealerRefund_InsufficientBalance() {
	ctx := context.Background()
	broke := suite.uzsAccount
	broke.Balance = decimal.NewFromInt(10000)
	req := dto.DealerRefundRequest{
		DealerID:     suite.dealer.DealerID,
		AccountID:    broke.AccountID,
		Amount:       decimal.NewFromInt(50000),
		CurrencyCode: "UZS",
	}

	suite.mockDealerRepo.On("FindDealerByID", ctx, suite.dealer.DealerID).Return(&suite.dealer, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, broke.AccountID).Return(&broke, nil).Once()

	_, err := suite.service.DealerRefund(ctx, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrInsufficientBalance)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveDealerRefund", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockDealerRepo.AssertNotCalled(suite.T(), "AdjustDebt", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransferServiceTestSuite) TestDealerRefund_CurrencyMismatch() {
	ctx := context.Background()
	req := dto.DealerRefundRequest{
		DealerID:     suite.dealer.DealerID,
		AccountID:    suite.usdAccount.AccountID,
		Amount:       decimal.NewFromInt(100),
		CurrencyCode: "UZS",
	}

	suite.mockDealerRepo.On("FindDealerByID", ctx, suite.dealer.DealerID).Return(&suite.dealer, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.usdAccount.AccountID).Return(&suite.usdAccount, nil).Once()

	_, err := suite.service.DealerRefund(ctx, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrCurrencyMismatch)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveDealerRefund", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransferServiceTestSuite) TestDealerRefund_UnknownDealer() {
	ctx := context.Background()
	req := dto.DealerRefundRequest{
		DealerID:     uuid.NewString(),
		AccountID:    suite.uzsAccount.AccountID,
		Amount:       decimal.NewFromInt(100),
		CurrencyCode: "UZS",
	}

	suite.mockDealerRepo.On("FindDealerByID", ctx, req.DealerID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.DealerRefund(ctx, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountByID", mock.Anything, mock.Anything)
}

func TestTransferServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransferServiceTestSuite))
}
