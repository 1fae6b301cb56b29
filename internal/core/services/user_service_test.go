package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/blog_api/internal/apperrors"
	"github.com/SscSPs/blog_api/internal/core/domain"
	portssvc "github.com/SscSPs/blog_api/internal/core/ports/services"
	"github.com/SscSPs/blog_api/internal/core/services"
	"github.com/SscSPs/blog_api/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	userRepo    *MockUserRepository
	sessionRepo *MockRefreshTokenRepository
	hasher      *MockHasher
	service     portssvc.UserSvcFacade
	ctx         context.Context
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.userRepo = new(MockUserRepository)
	suite.sessionRepo = new(MockRefreshTokenRepository)
	suite.hasher = new(MockHasher)
	suite.service = services.NewUserService(suite.userRepo, suite.sessionRepo, suite.hasher)
	suite.ctx = context.Background()
}

func (suite *UserServiceTestSuite) TearDownTest() {
	suite.userRepo.AssertExpectations(suite.T())
	suite.sessionRepo.AssertExpectations(suite.T())
	suite.hasher.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func strPtr(s string) *string { return &s }

func existingUser() *domain.User {
	return &domain.User{
		UserID:       "user-1",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "old-hash",
		Role:         domain.RoleUser,
		FirstName:    "Alice",
		SocialLinks:  domain.SocialLinks{Website: "https://alice.dev"},
	}
}

func (suite *UserServiceTestSuite) TestGetUserByID_Success() {
	suite.userRepo.On("FindUserByID", suite.ctx, "user-1").Return(existingUser(), nil).Once()

	user, err := suite.service.GetUserByID(suite.ctx, "user-1")
	suite.Require().NoError(err)
	suite.Equal("alice", user.Username)
}

func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	suite.userRepo.On("FindUserByID", suite.ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetUserByID(suite.ctx, "ghost")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestUpdateUser_OnlyProvidedFields() {
	suite.userRepo.On("FindUserByID", suite.ctx, "user-1").Return(existingUser(), nil).Once()
	suite.hasher.On("Hash", "new-password").Return("new-hash", nil).Once()
	suite.userRepo.On("UpdateUser", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "alice@new.example.com" &&
			u.PasswordHash == "new-hash" &&
			u.Username == "alice" &&
			u.FirstName == "Alice" &&
			u.LastName == "Liddell" &&
			u.SocialLinks.Website == "https://alice.dev" &&
			u.SocialLinks.X == "https://x.com/alice" &&
			!u.UpdatedAt.IsZero()
	})).Return(nil).Once()

	req := dto.UpdateUserRequest{
		Email:    strPtr("Alice@New.Example.com"),
		Password: strPtr("new-password"),
		LastName: strPtr("Liddell"),
		X:        strPtr("https://x.com/alice"),
	}
	user, err := suite.service.UpdateUser(suite.ctx, "user-1", req)

	suite.Require().NoError(err)
	suite.Equal("alice@new.example.com", user.Email)
	suite.Equal(domain.RoleUser, user.Role)
}

func (suite *UserServiceTestSuite) TestUpdateUser_Conflict() {
	suite.userRepo.On("FindUserByID", suite.ctx, "user-1").Return(existingUser(), nil).Once()
	suite.userRepo.On("UpdateUser", suite.ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.UpdateUser(suite.ctx, "user-1", dto.UpdateUserRequest{Username: strPtr("bob")})
	suite.Equal(apperrors.CodeConflict, apperrors.Code(err))
}

func (suite *UserServiceTestSuite) TestDeleteUser_RemovesSessions() {
	suite.userRepo.On("FindUserByID", suite.ctx, "user-1").Return(existingUser(), nil).Once()
	suite.userRepo.On("DeleteUser", suite.ctx, "user-1").Return(nil).Once()
	suite.sessionRepo.On("DeleteRefreshTokensByUserID", suite.ctx, "user-1").Return(nil).Once()

	user, err := suite.service.DeleteUser(suite.ctx, "user-1")
	suite.Require().NoError(err)
	suite.Equal("user-1", user.UserID)
}

func (suite *UserServiceTestSuite) TestDeleteUser_SessionRevocationFailureKeepsUser() {
	suite.userRepo.On("FindUserByID", suite.ctx, "user-1").Return(existingUser(), nil).Once()
	suite.sessionRepo.On("DeleteRefreshTokensByUserID", suite.ctx, "user-1").Return(errors.New("redis down")).Once()

	_, err := suite.service.DeleteUser(suite.ctx, "user-1")
	suite.Equal(apperrors.CodeServerError, apperrors.Code(err))
	suite.userRepo.AssertNotCalled(suite.T(), "DeleteUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestDeleteUser_StoreFailure() {
	suite.userRepo.On("FindUserByID", suite.ctx, "user-1").Return(existingUser(), nil).Once()
	suite.sessionRepo.On("DeleteRefreshTokensByUserID", suite.ctx, "user-1").Return(nil).Once()
	suite.userRepo.On("DeleteUser", suite.ctx, "user-1").Return(errors.New("disk full")).Once()

	_, err := suite.service.DeleteUser(suite.ctx, "user-1")
	suite.Equal(apperrors.CodeServerError, apperrors.Code(err))
}

func (suite *UserServiceTestSuite) TestUpdateUser_PasswordTooLong() {
	suite.userRepo.On("FindUserByID", suite.ctx, "user-1").Return(existingUser(), nil).Once()
	suite.hasher.On("Hash", "too-long").Return("", apperrors.NewValidationError("Password must be at most 72 bytes")).Once()

	_, err := suite.service.UpdateUser(suite.ctx, "user-1", dto.UpdateUserRequest{Password: strPtr("too-long")})
	suite.Equal(apperrors.CodeValidation, apperrors.Code(err))
	suite.userRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}
