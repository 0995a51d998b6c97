package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/finbook/finbook/internal/apperrors"
	"github.com/finbook/finbook/internal/core/domain"
	portsrepo "github.com/finbook/finbook/internal/core/ports/repositories"
	"github.com/finbook/finbook/internal/core/services"
	"github.com/finbook/finbook/internal/dto"
	"github.com/finbook/finbook/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func notFoundErr(email string) error {
	return fmt.Errorf("%w: user %s", apperrors.ErrNotFound, email)
}

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      *services.UserService
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

func (suite *UserServiceTestSuite) TestRegisterUser_Success() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{Name: "Alice", Email: "alice@example.com", Password: "s3cret-password"}

	suite.mockUserRepo.On("FindUserByEmail", mock.Anything, req.Email).Return(nil, notFoundErr(req.Email)).Once()
	suite.mockUserRepo.On("SaveUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == req.Email &&
			u.PasswordHash != "" &&
			u.PasswordHash != req.Password &&
			u.CreatedBy == u.UserID
	})).Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.True(utils.CheckPasswordHash(req.Password, user.PasswordHash))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateEmail() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{Name: "Alice", Email: "alice@example.com", Password: "s3cret-password"}
	existing := domain.User{UserID: uuid.NewString(), Email: req.Email}

	suite.mockUserRepo.On("FindUserByEmail", mock.Anything, req.Email).Return(&existing, nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_ReturnsExisting() {
	ctx := context.Background()
	existing := domain.User{UserID: uuid.NewString(), Email: "bob@example.com", Name: "Bob"}

	suite.mockUserRepo.On("FindUserByEmail", mock.Anything, existing.Email).Return(&existing, nil).Once()

	user, err := suite.service.FindOrCreateOAuthUser(ctx, existing.Email, "ignored")

	suite.Require().NoError(err)
	suite.Equal(existing.UserID, user.UserID)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_CreatesPasswordlessRecord() {
	ctx := context.Background()
	email := "carol@example.com"

	suite.mockUserRepo.On("FindUserByEmail", mock.Anything, email).Return(nil, notFoundErr(email)).Once()
	suite.mockUserRepo.On("SaveUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == email && u.Name == "Carol" && u.PasswordHash == ""
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateOAuthUser(ctx, email, "Carol")

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.Empty(user.PasswordHash)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
