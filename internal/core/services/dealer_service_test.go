package services_test

import (
	"context"
	"testing"

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

type DealerServiceTestSuite struct {
	suite.Suite
	mockDealerRepo *MockDealerRepository
	service        portssvc.DealerSvcFacade
	userID         string
}

func (suite *DealerServiceTestSuite) SetupTest() {
	suite.mockDealerRepo = new(MockDealerRepository)
	suite.service = services.NewDealerService(suite.mockDealerRepo)
	suite.userID = uuid.NewString()
}

func (suite *DealerServiceTestSuite) TestCreateDealer_Success() {
	ctx := context.Background()
	req := dto.CreateDealerRequest{Name: "Akmal Trading", Phone: "+998901234567"}

	suite.mockDealerRepo.On("SaveDealer", ctx, mock.MatchedBy(func(d domain.Dealer) bool {
		return d.Name == req.Name && d.IsActive && d.DebtUSD.IsZero() && d.DebtUZS.IsZero()
	})).Return(nil).Once()

	dealer, err := suite.service.CreateDealer(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(dealer.DealerID)
	suite.Equal(suite.userID, dealer.CreatedBy)
	suite.mockDealerRepo.AssertExpectations(suite.T())
}

func (suite *DealerServiceTestSuite) TestCreateDealer_MissingName() {
	ctx := context.Background()

	_, err := suite.service.CreateDealer(ctx, dto.CreateDealerRequest{}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockDealerRepo.AssertNotCalled(suite.T(), "SaveDealer", mock.Anything, mock.Anything)
}

func (suite *DealerServiceTestSuite) TestGetDealerDebt_Success() {
	ctx := context.Background()
	dealerID := uuid.NewString()

	suite.mockDealerRepo.On("GetDebt", ctx, dealerID, domain.CurrencyUZS).
		Return(decimal.NewFromInt(80000), nil).Once()

	debt, err := suite.service.GetDealerDebt(ctx, dealerID, domain.CurrencyUZS)

	suite.Require().NoError(err)
	suite.True(debt.Equal(decimal.NewFromInt(80000)))
}

func (suite *DealerServiceTestSuite) TestGetDealerDebt_UnknownCurrency() {
	ctx := context.Background()

	_, err := suite.service.GetDealerDebt(ctx, uuid.NewString(), domain.CurrencyCode("EUR"))

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockDealerRepo.AssertNotCalled(suite.T(), "GetDebt", mock.Anything, mock.Anything, mock.Anything)
}

func TestDealerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DealerServiceTestSuite))
}
