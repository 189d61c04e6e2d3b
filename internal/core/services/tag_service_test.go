package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/budgie-app/budgie/internal/apperrors"
	"github.com/budgie-app/budgie/internal/core/domain"
	"github.com/budgie-app/budgie/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockTagRepository is a mock type for the TagRepository interface
type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) GetOrCreateTag(ctx context.Context, userID int64, name string) (*domain.Tag, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tag), args.Error(1)
}

func (m *MockTagRepository) CreateTag(ctx context.Context, userID int64, name string) (*domain.Tag, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tag), args.Error(1)
}

// --- Test Suite Setup ---

type TagServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTagRepository
	service  *services.TagService
	identity domain.Identity
}

func (suite *TagServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTagRepository)
	suite.service = services.NewTagService(suite.mockRepo)
	suite.identity = domain.Identity{UserID: 42, Email: "owner@example.com"}
}

// --- Test Cases ---

func (suite *TagServiceTestSuite) TestGetOrCreateTag_Success() {
	ctx := context.Background()
	expectedTag := &domain.Tag{TagID: 7, UserID: suite.identity.UserID, Name: "groceries"}

	suite.mockRepo.On("GetOrCreateTag", ctx, suite.identity.UserID, "groceries").Return(expectedTag, nil).Once()

	tag, err := suite.service.GetOrCreateTag(ctx, suite.identity, "groceries")

	suite.Require().NoError(err)
	suite.Equal(expectedTag, tag)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TagServiceTestSuite) TestGetOrCreateTag_SameTagTwice() {
	ctx := context.Background()
	expectedTag := &domain.Tag{TagID: 7, UserID: suite.identity.UserID, Name: "groceries"}

	// Repeated calls with the same text resolve to the same tag row
	suite.mockRepo.On("GetOrCreateTag", ctx, suite.identity.UserID, "groceries").Return(expectedTag, nil).Twice()

	first, err := suite.service.GetOrCreateTag(ctx, suite.identity, "groceries")
	suite.Require().NoError(err)
	second, err := suite.service.GetOrCreateTag(ctx, suite.identity, "groceries")
	suite.Require().NoError(err)

	suite.Equal(first.TagID, second.TagID)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TagServiceTestSuite) TestGetOrCreateTag_EmptyName() {
	ctx := context.Background()

	tag, err := suite.service.GetOrCreateTag(ctx, suite.identity, "   ")

	suite.Require().Error(err)
	suite.Nil(tag)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockRepo.AssertNotCalled(suite.T(), "GetOrCreateTag", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TagServiceTestSuite) TestGetOrCreateTag_NoActiveUser() {
	ctx := context.Background()

	tag, err := suite.service.GetOrCreateTag(ctx, domain.Identity{}, "groceries")

	suite.Require().Error(err)
	suite.Nil(tag)
	suite.ErrorIs(err, apperrors.ErrNoActiveUser)

	suite.mockRepo.AssertNotCalled(suite.T(), "GetOrCreateTag", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TagServiceTestSuite) TestCreateTag_Success() {
	ctx := context.Background()
	expectedTag := &domain.Tag{TagID: 3, UserID: suite.identity.UserID, Name: "travel"}

	suite.mockRepo.On("CreateTag", ctx, suite.identity.UserID, "travel").Return(expectedTag, nil).Once()

	tag, err := suite.service.CreateTag(ctx, suite.identity, "travel")

	suite.Require().NoError(err)
	suite.Equal(expectedTag, tag)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TagServiceTestSuite) TestCreateTag_Duplicate() {
	ctx := context.Background()
	dupErr := fmt.Errorf("%w: tag %q", apperrors.ErrDuplicate, "travel")

	suite.mockRepo.On("CreateTag", ctx, suite.identity.UserID, "travel").Return(nil, dupErr).Once()

	tag, err := suite.service.CreateTag(ctx, suite.identity, "travel")

	suite.Require().Error(err)
	suite.Nil(tag)
	suite.ErrorIs(err, apperrors.ErrDuplicate)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TagServiceTestSuite) TestCreateTag_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("CreateTag", ctx, suite.identity.UserID, "travel").Return(nil, expectedErr).Once()

	tag, err := suite.service.CreateTag(ctx, suite.identity, "travel")

	suite.Require().Error(err)
	suite.Nil(tag)
	suite.ErrorIs(err, expectedErr)

	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestTagService(t *testing.T) {
	suite.Run(t, new(TagServiceTestSuite))
}
