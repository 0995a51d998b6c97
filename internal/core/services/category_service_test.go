package services_test

import (
	"context"
	"testing"

	"github.com/finbook/finbook/internal/core/domain"
	"github.com/finbook/finbook/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategoriesByUser(ctx context.Context, userID string) ([]domain.Category, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) SaveCategories(ctx context.Context, categories []domain.Category) error {
	args := m.Called(ctx, categories)
	return args.Error(0)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

type CategoryServiceTestSuite struct {
	suite.Suite
	mockCategoryRepo *MockCategoryRepository
	service          *services.CategoryService
	userID           string
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.service = services.NewCategoryService(suite.mockCategoryRepo)
	suite.userID = uuid.NewString()
}

func (suite *CategoryServiceTestSuite) TestListCategories_SeedsDefaultsForNewUser() {
	ctx := context.Background()

	suite.mockCategoryRepo.On("ListCategoriesByUser", mock.Anything, suite.userID).Return([]domain.Category{}, nil).Once()
	suite.mockCategoryRepo.On("SaveCategories", mock.Anything, mock.MatchedBy(func(cats []domain.Category) bool {
		if len(cats) != len(domain.DefaultCategories) {
			return false
		}
		for _, c := range cats {
			if c.UserID != suite.userID || c.CategoryID == "" {
				return false
			}
		}
		return true
	})).Return(nil).Once()

	categories, err := suite.service.ListCategories(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Len(categories, len(domain.DefaultCategories))

	names := make(map[string]bool, len(categories))
	for _, c := range categories {
		names[c.Name] = true
	}
	suite.True(names[domain.CategorySalary], "template set must include the salary category")

	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestListCategories_SkipsSeedingWhenPresent() {
	ctx := context.Background()
	existing := []domain.Category{
		{CategoryID: uuid.NewString(), UserID: suite.userID, Name: "Food", Kind: domain.KindExpense},
	}

	suite.mockCategoryRepo.On("ListCategoriesByUser", mock.Anything, suite.userID).Return(existing, nil).Once()

	categories, err := suite.service.ListCategories(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Len(categories, 1)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "SaveCategories", mock.Anything, mock.Anything)
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
