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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	mockCategoryRepo *MockCategoryRepository
	service          portssvc.CategorySvcFacade
	userID           string
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.service = services.NewCategoryService(suite.mockCategoryRepo)
	suite.userID = uuid.NewString()
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_Success() {
	ctx := context.Background()
	req := dto.CreateCategoryRequest{Name: "Rent", Color: "#ff0000", IsGlobal: true}

	suite.mockCategoryRepo.On("SaveCategory", ctx, mock.AnythingOfType("domain.ExpenseCategory")).Return(nil).Once()

	category, err := suite.service.CreateCategory(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(category.CategoryID)
	suite.True(category.IsActive)
	suite.True(category.IsGlobal)
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_DuplicateName() {
	ctx := context.Background()
	req := dto.CreateCategoryRequest{Name: "Rent"}

	suite.mockCategoryRepo.On("SaveCategory", ctx, mock.AnythingOfType("domain.ExpenseCategory")).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateCategory(ctx, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_PatchesFields() {
	ctx := context.Background()
	existing := &domain.ExpenseCategory{
		CategoryID: uuid.NewString(),
		Name:       "Rent",
		Color:      "#ff0000",
		IsActive:   true,
	}
	newColor := "#00ff00"

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, existing.CategoryID).Return(existing, nil).Once()
	suite.mockCategoryRepo.On("UpdateCategory", ctx, mock.MatchedBy(func(c domain.ExpenseCategory) bool {
		return c.Color == newColor && c.Name == "Rent"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateCategory(ctx, existing.CategoryID, dto.UpdateCategoryRequest{Color: &newColor}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(newColor, updated.Color)
}

func (suite *CategoryServiceTestSuite) TestDeactivateCategory_Success() {
	ctx := context.Background()
	categoryID := uuid.NewString()

	suite.mockCategoryRepo.On("DeactivateCategory", ctx, categoryID, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeactivateCategory(ctx, categoryID, suite.userID)

	suite.Require().NoError(err)
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
