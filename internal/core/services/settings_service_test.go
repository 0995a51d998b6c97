package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/finbook/finbook/internal/apperrors"
	"github.com/finbook/finbook/internal/core/domain"
	"github.com/finbook/finbook/internal/core/services"
	"github.com/finbook/finbook/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SettingsRepository ---
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) FindSettingsByUser(ctx context.Context, userID string) (*domain.Settings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settings), args.Error(1)
}

func (m *MockSettingsRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

func (m *MockSettingsRepository) UpdateSettings(ctx context.Context, settings domain.Settings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

type SettingsServiceTestSuite struct {
	suite.Suite
	mockSettingsRepo *MockSettingsRepository
	mockAccountRepo  *MockAccountRepository
	service          *services.SettingsService
	userID           string
	cashAccount      domain.Account
	bankAccount      domain.Account
	existing         domain.Settings
}

func (suite *SettingsServiceTestSuite) SetupTest() {
	suite.mockSettingsRepo = new(MockSettingsRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewSettingsService(suite.mockSettingsRepo, suite.mockAccountRepo)

	suite.userID = uuid.NewString()
	suite.cashAccount = domain.Account{AccountID: uuid.NewString(), OwnerID: suite.userID, Name: "Cash", Kind: domain.AccountCash}
	suite.bankAccount = domain.Account{AccountID: uuid.NewString(), OwnerID: suite.userID, Name: "Bank", Kind: domain.AccountBank}
	suite.existing = domain.Settings{
		UserID:           suite.userID,
		DefaultAccountID: suite.cashAccount.AccountID,
		Currency:         "VND",
		Allocations:      []domain.Allocation{},
	}
}

func (suite *SettingsServiceTestSuite) ownedAccounts() []domain.Account {
	return []domain.Account{suite.cashAccount, suite.bankAccount}
}

func (suite *SettingsServiceTestSuite) TestGetSettings_InitializesDefaultsOnFirstUse() {
	ctx := context.Background()

	suite.mockSettingsRepo.On("FindSettingsByUser", mock.Anything, suite.userID).
		Return(nil, fmt.Errorf("%w: settings for user %s", apperrors.ErrNotFound, suite.userID)).Once()
	suite.mockSettingsRepo.On("SaveSettings", mock.Anything, mock.MatchedBy(func(s domain.Settings) bool {
		return s.UserID == suite.userID && s.Currency == "VND" && s.DefaultAccountID == "" && len(s.Allocations) == 0
	})).Return(nil).Once()

	settings, err := suite.service.GetSettings(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("VND", settings.Currency)
	suite.Empty(settings.Allocations)
	suite.mockSettingsRepo.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestGetSettings_ReturnsExisting() {
	ctx := context.Background()

	suite.mockSettingsRepo.On("FindSettingsByUser", mock.Anything, suite.userID).Return(&suite.existing, nil).Once()

	settings, err := suite.service.GetSettings(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(suite.cashAccount.AccountID, settings.DefaultAccountID)
	suite.mockSettingsRepo.AssertNotCalled(suite.T(), "SaveSettings", mock.Anything, mock.Anything)
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_RejectsUnknownDefaultAccount() {
	ctx := context.Background()
	req := dto.UpdateSettingsRequest{
		DefaultAccountID: uuid.NewString(),
		Currency:         "VND",
	}

	suite.mockSettingsRepo.On("FindSettingsByUser", mock.Anything, suite.userID).Return(&suite.existing, nil).Once()
	suite.mockAccountRepo.On("ListAccountsByOwner", mock.Anything, suite.userID).Return(suite.ownedAccounts(), nil).Once()

	settings, err := suite.service.UpdateSettings(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(settings)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSettingsRepo.AssertNotCalled(suite.T(), "UpdateSettings", mock.Anything, mock.Anything)
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_RejectsForeignAllocationAccount() {
	ctx := context.Background()
	req := dto.UpdateSettingsRequest{
		DefaultAccountID: suite.cashAccount.AccountID,
		Currency:         "VND",
		Allocations: []dto.AllocationInput{
			{AccountID: uuid.NewString(), Amount: decimal.NewFromInt(100)},
		},
	}

	suite.mockSettingsRepo.On("FindSettingsByUser", mock.Anything, suite.userID).Return(&suite.existing, nil).Once()
	suite.mockAccountRepo.On("ListAccountsByOwner", mock.Anything, suite.userID).Return(suite.ownedAccounts(), nil).Once()

	settings, err := suite.service.UpdateSettings(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(settings)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_RejectsNegativeAllocation() {
	ctx := context.Background()
	req := dto.UpdateSettingsRequest{
		DefaultAccountID: suite.cashAccount.AccountID,
		Currency:         "VND",
		Allocations: []dto.AllocationInput{
			{AccountID: suite.bankAccount.AccountID, Amount: decimal.NewFromInt(-1)},
		},
	}

	suite.mockSettingsRepo.On("FindSettingsByUser", mock.Anything, suite.userID).Return(&suite.existing, nil).Once()
	suite.mockAccountRepo.On("ListAccountsByOwner", mock.Anything, suite.userID).Return(suite.ownedAccounts(), nil).Once()

	settings, err := suite.service.UpdateSettings(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(settings)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_ReplacesTablePreservingOrder() {
	ctx := context.Background()
	req := dto.UpdateSettingsRequest{
		DefaultAccountID: suite.bankAccount.AccountID,
		Currency:         "USD",
		Allocations: []dto.AllocationInput{
			{AccountID: suite.bankAccount.AccountID, Amount: decimal.NewFromInt(700)},
			{AccountID: suite.cashAccount.AccountID, Amount: decimal.NewFromInt(300)},
		},
	}

	suite.mockSettingsRepo.On("FindSettingsByUser", mock.Anything, suite.userID).Return(&suite.existing, nil).Once()
	suite.mockAccountRepo.On("ListAccountsByOwner", mock.Anything, suite.userID).Return(suite.ownedAccounts(), nil).Once()
	suite.mockSettingsRepo.On("UpdateSettings", mock.Anything, mock.MatchedBy(func(s domain.Settings) bool {
		return s.DefaultAccountID == suite.bankAccount.AccountID &&
			s.Currency == "USD" &&
			len(s.Allocations) == 2 &&
			s.Allocations[0].AccountID == suite.bankAccount.AccountID &&
			s.Allocations[1].AccountID == suite.cashAccount.AccountID
	})).Return(nil).Once()

	settings, err := suite.service.UpdateSettings(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.True(settings.AllocationTotal().Equal(decimal.NewFromInt(1000)))
	suite.mockSettingsRepo.AssertExpectations(suite.T())
}

func TestSettingsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}
