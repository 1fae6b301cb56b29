package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/blog_api/internal/apperrors"
	"github.com/SscSPs/blog_api/internal/core/domain"
	portsrepo "github.com/SscSPs/blog_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/blog_api/internal/core/ports/services"
	"github.com/SscSPs/blog_api/internal/platform/metrics"
)

type authorizationService struct {
	BaseService
	users portsrepo.UserReader
}

// NewAuthorizationService creates the role gate. Roles are always read from the
// store so a role change applies to tokens already issued.
func NewAuthorizationService(users portsrepo.UserReader) portssvc.AuthorizerSvc {
	return &authorizationService{BaseService: newBaseService(), users: users}
}

func (s *authorizationService) AuthorizeRole(ctx context.Context, userID string, allowed []domain.Role) (*domain.User, error) {
	user, err := s.authorizeRole(ctx, userID, allowed)
	recordOutcome(metrics.EventAuthz, err)
	return user, err
}

func (s *authorizationService) authorizeRole(ctx context.Context, userID string, allowed []domain.Role) (*domain.User, error) {
	if userID == "" {
		return nil, errMissingSubject
	}

	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("User")
		}
		s.LogError(ctx, err, "Failed to load user for authorization", slog.String("user_id", userID))
		return nil, apperrors.NewInternalError(err)
	}

	for _, role := range allowed {
		if user.Role == role {
			return user, nil
		}
	}

	s.GetLogger(ctx).Warn("Role not permitted", slog.String("role", string(user.Role)))
	return nil, apperrors.NewForbiddenError("Access denied, insufficient permissions")
}
