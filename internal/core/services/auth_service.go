package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/SscSPs/blog_api/internal/apperrors"
	"github.com/SscSPs/blog_api/internal/core/domain"
	portsrepo "github.com/SscSPs/blog_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/blog_api/internal/core/ports/services"
	"github.com/SscSPs/blog_api/internal/dto"
	"github.com/SscSPs/blog_api/internal/platform/metrics"
	"github.com/SscSPs/blog_api/internal/utils"
	"github.com/google/uuid"
)

// AuthConfig holds the policy knobs of the session manager.
type AuthConfig struct {
	// IsAdminEmail decides whether an email may register with the admin role.
	IsAdminEmail func(email string) bool
	// RotateRefreshTokens replaces the presented refresh token on every refresh.
	RotateRefreshTokens bool
}

type authService struct {
	BaseService
	users    portsrepo.UserRepositoryFacade
	sessions portsrepo.RefreshTokenRepository
	tokens   portssvc.TokenSvcFacade
	hasher   portssvc.PasswordHasher
	cfg      AuthConfig
}

// NewAuthService creates the session manager and refresh protocol.
func NewAuthService(
	users portsrepo.UserRepositoryFacade,
	sessions portsrepo.RefreshTokenRepository,
	tokens portssvc.TokenSvcFacade,
	hasher portssvc.PasswordHasher,
	cfg AuthConfig,
) portssvc.AuthSvcFacade {
	if cfg.IsAdminEmail == nil {
		cfg.IsAdminEmail = func(string) bool { return false }
	}
	return &authService{
		BaseService: newBaseService(),
		users:       users,
		sessions:    sessions,
		tokens:      tokens,
		hasher:      hasher,
		cfg:         cfg,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest, client domain.ClientInfo) (*domain.User, *domain.TokenPair, error) {
	user, pair, err := s.register(ctx, req, client)
	recordOutcome(metrics.EventRegister, err)
	return user, pair, err
}

func (s *authService) register(ctx context.Context, req dto.RegisterRequest, client domain.ClientInfo) (*domain.User, *domain.TokenPair, error) {
	email := normalizeEmail(req.Email)
	role := domain.Role(req.Role)
	if !role.IsValid() {
		return nil, nil, apperrors.NewValidationError("Role must be one of admin, user")
	}

	if role == domain.RoleAdmin && !s.cfg.IsAdminEmail(email) {
		s.GetLogger(ctx).Warn("Admin registration attempted with non-allowlisted email")
		return nil, nil, apperrors.NewForbiddenError("You cannot register as an admin")
	}

	hash, err := s.hasher.Hash(req.Password)
	if errors.Is(err, apperrors.ErrValidation) {
		return nil, nil, err
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, nil, apperrors.NewInternalError(err)
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		username = utils.GenerateUsername()
	}

	now := s.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, nil, apperrors.NewConflictError("User with this email or username already exists")
		}
		s.LogError(ctx, err, "Failed to create user")
		return nil, nil, apperrors.NewInternalError(err)
	}

	pair, err := s.openSession(ctx, user.UserID, client)
	if err != nil {
		return nil, nil, err
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID), slog.String("role", string(user.Role)))
	return &user, pair, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest, client domain.ClientInfo) (*domain.User, *domain.TokenPair, error) {
	user, pair, err := s.login(ctx, req, client)
	recordOutcome(metrics.EventLogin, err)
	return user, pair, err
}

func (s *authService) login(ctx context.Context, req dto.LoginRequest, client domain.ClientInfo) (*domain.User, *domain.TokenPair, error) {
	user, err := s.users.FindUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same bcrypt work as the wrong-password path.
			s.hasher.Compare(req.Password, "")
			return nil, nil, apperrors.NewNotFoundError("User")
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, nil, apperrors.NewInternalError(err)
	}

	if !s.hasher.Compare(req.Password, user.PasswordHash) {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	pair, err := s.openSession(ctx, user.UserID, client)
	if err != nil {
		return nil, nil, err
	}

	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID))
	return user, pair, nil
}

func (s *authService) RefreshAccessToken(ctx context.Context, refreshToken string, client domain.ClientInfo) (*domain.TokenPair, error) {
	pair, err := s.refresh(ctx, refreshToken, client)
	recordOutcome(metrics.EventRefresh, err)
	return pair, err
}

func (s *authService) refresh(ctx context.Context, refreshToken string, client domain.ClientInfo) (*domain.TokenPair, error) {
	if refreshToken == "" {
		return nil, apperrors.NewUnauthorizedError("Refresh token required")
	}

	// The record is consulted before the signature: a revoked token is rejected
	// even while it would still verify.
	tokenHash := utils.HashRefreshToken(refreshToken)
	record, err := s.sessions.FindRefreshToken(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("Invalid refresh token")
		}
		s.LogError(ctx, err, "Failed to look up refresh token")
		return nil, apperrors.NewInternalError(err)
	}

	userID, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil || userID != record.UserID {
		s.GetLogger(ctx).Warn("Refresh token failed verification", slog.String("user_id", record.UserID))
		return nil, apperrors.NewUnauthorizedError("Invalid refresh token")
	}

	accessToken, accessExp, err := s.tokens.MintAccessToken(userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to mint access token", slog.String("user_id", userID))
		return nil, apperrors.NewInternalError(err)
	}

	pair := &domain.TokenPair{AccessToken: accessToken, AccessExpiresAt: accessExp}
	if !s.cfg.RotateRefreshTokens {
		return pair, nil
	}

	if err := s.sessions.DeleteRefreshToken(ctx, tokenHash); err != nil {
		s.LogError(ctx, err, "Failed to revoke rotated refresh token", slog.String("user_id", userID))
		return nil, apperrors.NewInternalError(err)
	}
	newRefresh, refreshExp, err := s.persistRefreshToken(ctx, userID, client)
	if err != nil {
		return nil, err
	}
	pair.RefreshToken = newRefresh
	pair.RefreshExpiresAt = refreshExp
	return pair, nil
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	err := s.logout(ctx, refreshToken)
	recordOutcome(metrics.EventLogout, err)
	return err
}

func (s *authService) logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return apperrors.NewUnauthorizedError("Refresh token required")
	}
	if err := s.sessions.DeleteRefreshToken(ctx, utils.HashRefreshToken(refreshToken)); err != nil {
		s.LogError(ctx, err, "Failed to delete refresh token")
		return apperrors.NewInternalError(err)
	}
	s.LogInfo(ctx, "User logged out")
	return nil
}

// openSession mints an access token and a persisted refresh token for userID.
func (s *authService) openSession(ctx context.Context, userID string, client domain.ClientInfo) (*domain.TokenPair, error) {
	accessToken, accessExp, err := s.tokens.MintAccessToken(userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to mint access token", slog.String("user_id", userID))
		return nil, apperrors.NewInternalError(err)
	}

	refreshToken, refreshExp, err := s.persistRefreshToken(ctx, userID, client)
	if err != nil {
		return nil, err
	}

	return &domain.TokenPair{
		AccessToken:      accessToken,
		AccessExpiresAt:  accessExp,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExp,
	}, nil
}

func (s *authService) persistRefreshToken(ctx context.Context, userID string, client domain.ClientInfo) (string, time.Time, error) {
	refreshToken, refreshExp, err := s.tokens.MintRefreshToken(userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to mint refresh token", slog.String("user_id", userID))
		return "", time.Time{}, apperrors.NewInternalError(err)
	}

	record := domain.RefreshToken{
		TokenHash: utils.HashRefreshToken(refreshToken),
		UserID:    userID,
		UserAgent: truncate(client.UserAgent, 512),
		IPAddress: client.IPAddress,
		CreatedAt: s.Now(),
		ExpiresAt: refreshExp,
	}
	if err := s.sessions.CreateRefreshToken(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to persist refresh token", slog.String("user_id", userID))
		return "", time.Time{}, apperrors.NewInternalError(err)
	}
	return refreshToken, refreshExp, nil
}

func recordOutcome(event string, err error) {
	if err != nil {
		metrics.RecordAuthEvent(event, metrics.OutcomeFailure, apperrors.Code(err))
		return
	}
	metrics.RecordAuthEvent(event, metrics.OutcomeSuccess, "")
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// truncate keeps at most max bytes of valid UTF-8, cutting on a rune boundary.
func truncate(s string, max int) string {
	s = strings.ToValidUTF8(s, "")
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

// errMissingSubject is returned when a caller passes an empty user id.
var errMissingSubject = fmt.Errorf("%w: missing user id", apperrors.ErrUnauthorized)
