package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/blog_api/internal/apperrors"
	"github.com/SscSPs/blog_api/internal/core/domain"
	portsrepo "github.com/SscSPs/blog_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/blog_api/internal/core/ports/services"
	"github.com/SscSPs/blog_api/internal/dto"
)

type userService struct {
	BaseService
	userRepo    portsrepo.UserRepositoryFacade
	sessionRepo portsrepo.RefreshTokenRepository
	hasher      portssvc.PasswordHasher
}

// NewUserService creates the current-user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, sessionRepo portsrepo.RefreshTokenRepository, hasher portssvc.PasswordHasher) portssvc.UserSvcFacade {
	return &userService{
		BaseService: newBaseService(),
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		hasher:      hasher,
	}
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("User")
		}
		s.LogError(ctx, err, "Failed to get user by ID", slog.String("user_id", userID))
		return nil, apperrors.NewInternalError(err)
	}
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		user.Username = strings.TrimSpace(*req.Username)
	}
	if req.Email != nil {
		user.Email = normalizeEmail(*req.Email)
	}
	if req.Password != nil {
		hash, err := s.hasher.Hash(*req.Password)
		if errors.Is(err, apperrors.ErrValidation) {
			return nil, err
		}
		if err != nil {
			s.LogError(ctx, err, "Failed to hash password", slog.String("user_id", userID))
			return nil, apperrors.NewInternalError(err)
		}
		user.PasswordHash = hash
	}
	applyString(&user.FirstName, req.FirstName)
	applyString(&user.LastName, req.LastName)
	applyString(&user.SocialLinks.Website, req.Website)
	applyString(&user.SocialLinks.Facebook, req.Facebook)
	applyString(&user.SocialLinks.Instagram, req.Instagram)
	applyString(&user.SocialLinks.LinkedIn, req.LinkedIn)
	applyString(&user.SocialLinks.X, req.X)
	applyString(&user.SocialLinks.YouTube, req.YouTube)
	user.UpdatedAt = s.Now()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			return nil, apperrors.NewConflictError("Username or email already in use")
		case errors.Is(err, apperrors.ErrNotFound):
			return nil, apperrors.NewNotFoundError("User")
		}
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		return nil, apperrors.NewInternalError(err)
	}

	s.LogInfo(ctx, "User updated", slog.String("user_id", userID))
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Sessions go first so a failure never leaves live refresh records for a
	// user that no longer exists.
	if err := s.sessionRepo.DeleteRefreshTokensByUserID(ctx, userID); err != nil {
		s.LogError(ctx, err, "Failed to revoke sessions before deleting user", slog.String("user_id", userID))
		return nil, apperrors.NewInternalError(err)
	}

	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("User")
		}
		s.LogError(ctx, err, "Failed to delete user", slog.String("user_id", userID))
		return nil, apperrors.NewInternalError(err)
	}

	s.LogInfo(ctx, "User deleted", slog.String("user_id", userID))
	return user, nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}
