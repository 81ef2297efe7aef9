package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/savdoplus/savdo_backend/internal/core/domain"
	portssvc "github.com/savdoplus/savdo_backend/internal/core/ports/services"
	"github.com/savdoplus/savdo_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SummaryServiceTestSuite struct {
	suite.Suite
	mockSummaryRepo *MockSummaryRepository
	service         portssvc.SummarySvcFacade
}

func (suite *SummaryServiceTestSuite) SetupTest() {
	suite.mockSummaryRepo = new(MockSummaryRepository)
	suite.service = services.NewSummaryService(suite.mockSummaryRepo)
}

func (suite *SummaryServiceTestSuite) TestGetCashSummary_Success() {
	ctx := context.Background()
	expected := &domain.CashSummary{
		Accounts: []domain.AccountSummary{
			{
				AccountID:      "acc-1",
				Name:           "Main cash",
				CurrencyCode:   domain.CurrencyUSD,
				IsActive:       true,
				OpeningBalance: decimal.NewFromInt(100),
				IncomeTotal:    decimal.NewFromInt(400),
				ExpenseTotal:   decimal.NewFromInt(150),
				Balance:        decimal.NewFromInt(350),
			},
		},
		TotalBalanceUSD: decimal.NewFromInt(350),
		TotalIncomeUSD:  decimal.NewFromInt(400),
		TotalExpenseUSD: decimal.NewFromInt(150),
	}

	suite.mockSummaryRepo.On("GetCashSummaryData", ctx).Return(expected, nil).Once()

	summary, err := suite.service.GetCashSummary(ctx)

	suite.Require().NoError(err)
	suite.Len(summary.Accounts, 1)
	suite.True(summary.TotalBalanceUSD.Equal(decimal.NewFromInt(350)))
	suite.mockSummaryRepo.AssertExpectations(suite.T())
}

func (suite *SummaryServiceTestSuite) TestGetCashSummary_RepoError() {
	ctx := context.Background()
	boom := errors.New("db down")

	suite.mockSummaryRepo.On("GetCashSummaryData", ctx).Return(nil, boom).Once()

	_, err := suite.service.GetCashSummary(ctx)

	suite.ErrorIs(err, boom)
}

func TestSummaryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SummaryServiceTestSuite))
}
