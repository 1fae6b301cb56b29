package services

import (
	"context"
	"time"

	"github.com/SscSPs/blog_api/internal/core/domain"
	"github.com/SscSPs/blog_api/internal/dto"
)

// TokenSvcFacade mints and verifies the two classes of signed, time-bound tokens.
// Implementations are pure: no I/O, deterministic given the secrets and the clock.
type TokenSvcFacade interface {
	// MintAccessToken signs a short-lived token for the subject with the access secret.
	MintAccessToken(userID string) (string, time.Time, error)
	// MintRefreshToken signs a long-lived token for the subject with the refresh secret.
	MintRefreshToken(userID string) (string, time.Time, error)
	// VerifyAccessToken returns the subject, or apperrors.ErrTokenExpired / apperrors.ErrTokenInvalid.
	VerifyAccessToken(token string) (string, error)
	// VerifyRefreshToken returns the subject, or apperrors.ErrTokenExpired / apperrors.ErrTokenInvalid.
	VerifyRefreshToken(token string) (string, error)
}

// PasswordHasher is the secret-hashing collaborator.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare must run in constant time with respect to the candidate.
	Compare(candidate, hash string) bool
}

// SessionSvc covers login and registration.
type SessionSvc interface {
	// Register creates a user and opens a session for it.
	Register(ctx context.Context, req dto.RegisterRequest, client domain.ClientInfo) (*domain.User, *domain.TokenPair, error)
	// Login verifies credentials and opens a session.
	Login(ctx context.Context, req dto.LoginRequest, client domain.ClientInfo) (*domain.User, *domain.TokenPair, error)
}

// RefreshSvc covers the refresh protocol and revocation.
type RefreshSvc interface {
	// RefreshAccessToken mints a new access token for a live session. The returned
	// pair carries a new refresh token only when rotation is enabled.
	RefreshAccessToken(ctx context.Context, refreshToken string, client domain.ClientInfo) (*domain.TokenPair, error)
	// Logout deletes the session record. It is idempotent.
	Logout(ctx context.Context, refreshToken string) error
}

// AuthSvcFacade combines all session-related service interfaces
type AuthSvcFacade interface {
	SessionSvc
	RefreshSvc
}

// AuthorizerSvc loads a subject's current role and checks it against an allowed set.
type AuthorizerSvc interface {
	// AuthorizeRole returns apperrors.ErrNotFound if the user no longer exists and
	// apperrors.ErrForbidden if its role is not allowed.
	AuthorizeRole(ctx context.Context, userID string, allowed []domain.Role) (*domain.User, error)
}
