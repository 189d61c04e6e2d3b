package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/budgie-app/budgie/internal/apperrors"
	"github.com/budgie-app/budgie/internal/core/domain"
	portsrepo "github.com/budgie-app/budgie/internal/core/ports/repositories"
	"github.com/budgie-app/budgie/internal/core/services"
	"github.com/budgie-app/budgie/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAccountRepository is a mock type for the AccountRepository interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByName(ctx context.Context, userID int64, name string) (*domain.Account, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, userID int64, filter portsrepo.AccountFilter) ([]domain.Account, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  *services.AccountService
	identity domain.Identity
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
	suite.identity = domain.Identity{UserID: 42, Email: "owner@example.com"}
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:        "Savings",
		Description: "Main savings account",
		Type:        "asset",
	}

	saved := &domain.Account{
		AccountID:   1,
		UserID:      suite.identity.UserID,
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.UserID == suite.identity.UserID && acc.Name == req.Name && acc.Type == req.Type
	})).Return(saved, nil).Once()

	createdAccount, err := suite.service.CreateAccount(ctx, suite.identity, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(createdAccount)
	suite.Equal(int64(1), createdAccount.AccountID)
	suite.Equal(suite.identity.UserID, createdAccount.UserID)
	suite.Equal(req.Name, createdAccount.Name)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Duplicate() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Name: "Savings"}

	dupErr := fmt.Errorf("%w: account %q", apperrors.ErrDuplicateAccount, req.Name)
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil, dupErr).Once()

	createdAccount, err := suite.service.CreateAccount(ctx, suite.identity, req)

	suite.Require().Error(err)
	suite.Nil(createdAccount)
	suite.ErrorIs(err, apperrors.ErrDuplicateAccount)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_NoActiveUser() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Name: "Savings"}

	createdAccount, err := suite.service.CreateAccount(ctx, domain.Identity{}, req)

	suite.Require().Error(err)
	suite.Nil(createdAccount)
	suite.ErrorIs(err, apperrors.ErrNoActiveUser)

	// The repository must never be touched without an identity
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_SaveError() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Name: "Broken"}
	expectedErr := assert.AnError

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil, expectedErr).Once()

	createdAccount, err := suite.service.CreateAccount(ctx, suite.identity, req)

	suite.Require().Error(err)
	suite.Nil(createdAccount)
	suite.ErrorIs(err, expectedErr)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccounts_Success() {
	ctx := context.Background()
	expectedAccounts := []domain.Account{
		{AccountID: 1, UserID: suite.identity.UserID, Name: "Cash", Type: "asset"},
		{AccountID: 2, UserID: suite.identity.UserID, Name: "Groceries", Type: "expense"},
	}

	suite.mockRepo.On("ListAccounts", ctx, suite.identity.UserID, portsrepo.AccountFilter{}).Return(expectedAccounts, nil).Once()

	accounts, err := suite.service.ListAccounts(ctx, suite.identity, dto.ListAccountsParams{})

	suite.Require().NoError(err)
	suite.Equal(expectedAccounts, accounts)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccounts_TypeFilter() {
	ctx := context.Background()
	expectedAccounts := []domain.Account{
		{AccountID: 2, UserID: suite.identity.UserID, Name: "Groceries", Type: "expense"},
	}

	suite.mockRepo.On("ListAccounts", ctx, suite.identity.UserID, portsrepo.AccountFilter{Type: "expense"}).Return(expectedAccounts, nil).Once()

	accounts, err := suite.service.ListAccounts(ctx, suite.identity, dto.ListAccountsParams{Type: "expense"})

	suite.Require().NoError(err)
	suite.Equal(expectedAccounts, accounts)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccounts_Empty() {
	ctx := context.Background()
	var expectedAccounts []domain.Account

	suite.mockRepo.On("ListAccounts", ctx, suite.identity.UserID, portsrepo.AccountFilter{}).Return(expectedAccounts, nil).Once()

	accounts, err := suite.service.ListAccounts(ctx, suite.identity, dto.ListAccountsParams{})

	suite.Require().NoError(err)
	suite.Empty(accounts)
	suite.NotNil(accounts) // Should be an empty slice, not nil

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccounts_NoActiveUser() {
	ctx := context.Background()

	accounts, err := suite.service.ListAccounts(ctx, domain.Identity{}, dto.ListAccountsParams{})

	suite.Require().Error(err)
	suite.Nil(accounts)
	suite.ErrorIs(err, apperrors.ErrNoActiveUser)

	suite.mockRepo.AssertNotCalled(suite.T(), "ListAccounts", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestListAccounts_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("ListAccounts", ctx, suite.identity.UserID, portsrepo.AccountFilter{}).Return(nil, expectedErr).Once()

	accounts, err := suite.service.ListAccounts(ctx, suite.identity, dto.ListAccountsParams{})

	suite.Require().Error(err)
	suite.Nil(accounts)
	suite.ErrorIs(err, expectedErr)

	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
