package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/budgie-app/budgie/internal/apperrors"
	"github.com/budgie-app/budgie/internal/core/domain"
	"github.com/budgie-app/budgie/internal/core/services"
	"github.com/budgie-app/budgie/internal/dto"
	"github.com/budgie-app/budgie/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockUserRepository is a mock type for the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
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

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Test Suite Setup ---

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  *services.UserService
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

// hashedUser builds a stored user whose credential material matches the
// given plaintext password.
func (suite *UserServiceTestSuite) hashedUser(email, password string) *domain.User {
	salt, err := utils.GenerateSalt()
	suite.Require().NoError(err)
	hash, err := utils.HashPassword(password, salt)
	suite.Require().NoError(err)
	return &domain.User{
		UserID:       42,
		Email:        email,
		PasswordHash: hash,
		Salt:         salt,
		Name:         "Owner",
		Created:      time.Now(),
	}
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:    "owner@example.com",
		Password: "correct horse battery",
		Name:     "Owner",
	}

	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == req.Email &&
			u.PasswordHash != "" &&
			u.PasswordHash != req.Password &&
			u.Salt != ""
	})).Return(&domain.User{UserID: 1, Email: req.Email, Name: req.Name}, nil).Once()

	created, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal(int64(1), created.UserID)
	suite.Equal(req.Email, created.Email)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateEmail() {
	ctx := context.Background()
	req := dto.RegisterRequest{Email: "owner@example.com", Password: "correct horse battery"}

	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(nil, apperrors.ErrDuplicate).Once()

	created, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetUserByEmail_Success() {
	ctx := context.Background()
	expectedUser := &domain.User{UserID: 42, Email: "owner@example.com", Name: "Owner"}

	suite.mockRepo.On("FindUserByEmail", ctx, "owner@example.com").Return(expectedUser, nil).Once()

	user, err := suite.service.GetUserByEmail(ctx, "owner@example.com")

	suite.Require().NoError(err)
	suite.Equal(expectedUser, user)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetUserByEmail_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrUserNotFound).Once()

	user, err := suite.service.GetUserByEmail(ctx, "nobody@example.com")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUserNotFound)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestResolveIdentity_Success() {
	ctx := context.Background()
	storedUser := &domain.User{UserID: 42, Email: "owner@example.com"}

	suite.mockRepo.On("FindUserByEmail", ctx, "owner@example.com").Return(storedUser, nil).Once()

	identity, err := suite.service.ResolveIdentity(ctx, "owner@example.com")

	suite.Require().NoError(err)
	suite.Equal(int64(42), identity.UserID)
	suite.Equal("owner@example.com", identity.Email)
	suite.False(identity.IsZero())

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestResolveIdentity_UnknownEmail() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrUserNotFound).Once()

	identity, err := suite.service.ResolveIdentity(ctx, "nobody@example.com")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUserNotFound)
	suite.True(identity.IsZero())

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	storedUser := suite.hashedUser("owner@example.com", "correct horse battery")

	suite.mockRepo.On("FindUserByEmail", ctx, "owner@example.com").Return(storedUser, nil).Once()

	user, err := suite.service.Authenticate(ctx, "owner@example.com", "correct horse battery")

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal(storedUser.UserID, user.UserID)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	storedUser := suite.hashedUser("owner@example.com", "correct horse battery")

	suite.mockRepo.On("FindUserByEmail", ctx, "owner@example.com").Return(storedUser, nil).Once()

	user, err := suite.service.Authenticate(ctx, "owner@example.com", "wrong password")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownEmail() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrUserNotFound).Once()

	user, err := suite.service.Authenticate(ctx, "nobody@example.com", "whatever")

	// Indistinguishable from a wrong password
	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticate_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("FindUserByEmail", ctx, "owner@example.com").Return(nil, expectedErr).Once()

	user, err := suite.service.Authenticate(ctx, "owner@example.com", "whatever")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, expectedErr)

	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
