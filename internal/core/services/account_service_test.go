package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/savdoplus/savdo_backend/internal/apperrors"
	"github.com/savdoplus/savdo_backend/internal/core/domain"
	portssvc "github.com/savdoplus/savdo_backend/internal/core/ports/services"
	"github.com/savdoplus/savdo_backend/internal/core/services"
	"github.com/savdoplus/savdo_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	service         portssvc.AccountSvcFacade
	userID          string
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo)
	suite.userID = uuid.NewString()
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	openingDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	req := dto.CreateAccountRequest{
		Name:         "Main cash",
		AccountType:  domain.AccountCash,
		CurrencyCode: domain.CurrencyUSD,
		OpeningBalance: &dto.OpeningBalance{
			Amount: decimal.NewFromInt(500),
			Date:   &openingDate,
		},
	}

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(account.AccountID)
	suite.True(account.IsActive)
	suite.True(account.OpeningBalance.Equal(decimal.NewFromInt(500)))
	suite.True(account.Balance.Equal(decimal.NewFromInt(500)), "a fresh account's balance is its opening balance")
	suite.Equal(suite.userID, account.CreatedBy)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_OpeningBalanceRequiresDate() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:         "Bank UZS",
		AccountType:  domain.AccountBank,
		CurrencyCode: domain.CurrencyUZS,
		OpeningBalance: &dto.OpeningBalance{
			Amount: decimal.NewFromInt(1000000),
		},
	}

	_, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_NegativeOpeningBalanceRejected() {
	ctx := context.Background()
	date := time.Now()
	req := dto.CreateAccountRequest{
		Name:         "Card",
		AccountType:  domain.AccountCard,
		CurrencyCode: domain.CurrencyUSD,
		OpeningBalance: &dto.OpeningBalance{
			Amount: decimal.NewFromInt(-10),
			Date:   &date,
		},
	}

	_, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_PatchesOnlyProvidedFields() {
	ctx := context.Background()
	existing := &domain.Account{
		AccountID:    uuid.NewString(),
		Name:         "Old name",
		AccountType:  domain.AccountCash,
		CurrencyCode: domain.CurrencyUSD,
		IsActive:     true,
	}
	newName := "New name"

	suite.mockAccountRepo.On("FindAccountByID", ctx, existing.AccountID).Return(existing, nil).Once()
	suite.mockAccountRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Name == newName && a.AccountType == domain.AccountCash
	})).Return(nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, existing.AccountID, dto.UpdateAccountRequest{Name: &newName}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_Success() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("SetAccountActive", ctx, accountID, false, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeactivateAccount(ctx, accountID, suite.userID)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetAccountByID(ctx, accountID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestCalculateAccountBalance_Success() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("GetBalance", ctx, accountID).Return(decimal.NewFromInt(720), nil).Once()

	balance, err := suite.service.CalculateAccountBalance(ctx, accountID)

	suite.Require().NoError(err)
	suite.True(balance.Equal(decimal.NewFromInt(720)))
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
