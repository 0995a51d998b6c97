package services_test

import (
	"context"
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

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockTxnRepo     *MockTransactionRepository
	service         *services.AccountService
	userID          string
	account         domain.Account
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo, suite.mockTxnRepo)

	suite.userID = uuid.NewString()
	suite.account = domain.Account{
		AccountID: uuid.NewString(),
		OwnerID:   suite.userID,
		Name:      "Cash",
		Kind:      domain.AccountCash,
		Amount:    decimal.NewFromInt(1000),
	}
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:          "Savings",
		Kind:          domain.AccountSaving,
		InitialAmount: decimal.NewFromInt(500),
	}

	suite.mockAccountRepo.On("SaveAccount", mock.Anything, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.NotEmpty(account.AccountID)
	suite.Equal(suite.userID, account.OwnerID)
	suite.Equal("Savings", account.Name)
	suite.True(account.Amount.Equal(decimal.NewFromInt(500)))

	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_Forbidden() {
	ctx := context.Background()
	other := suite.account
	other.OwnerID = uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, other.AccountID).Return(&other, nil).Once()

	account, err := suite.service.GetAccountByID(ctx, suite.userID, other.AccountID)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_PartialFields() {
	ctx := context.Background()
	newName := "Wallet"

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.account.AccountID).Return(&suite.account, nil).Once()
	suite.mockAccountRepo.On("UpdateAccount", mock.Anything, mock.MatchedBy(func(a domain.Account) bool {
		// Only the provided field changes; kind and balance stay put.
		return a.Name == newName && a.Kind == domain.AccountCash && a.Amount.Equal(decimal.NewFromInt(1000))
	})).Return(nil).Once()

	account, err := suite.service.UpdateAccount(ctx, suite.userID, suite.account.AccountID, dto.UpdateAccountRequest{Name: &newName})

	suite.Require().NoError(err)
	suite.Equal(newName, account.Name)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_RefusedWhileReferenced() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.account.AccountID).Return(&suite.account, nil).Once()
	suite.mockTxnRepo.On("CountTransactionsByAccount", mock.Anything, suite.account.AccountID).Return(int64(3), nil).Once()

	err := suite.service.DeleteAccount(ctx, suite.userID, suite.account.AccountID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "DeleteAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_Success() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.account.AccountID).Return(&suite.account, nil).Once()
	suite.mockTxnRepo.On("CountTransactionsByAccount", mock.Anything, suite.account.AccountID).Return(int64(0), nil).Once()
	suite.mockAccountRepo.On("DeleteAccount", mock.Anything, suite.account.AccountID).Return(nil).Once()

	err := suite.service.DeleteAccount(ctx, suite.userID, suite.account.AccountID)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
