package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/blog_api/internal/apperrors"
	portssvc "github.com/SscSPs/blog_api/internal/core/ports/services"
	"github.com/SscSPs/blog_api/internal/platform/config"
	"github.com/SscSPs/blog_api/internal/utils"
	"github.com/golang-jwt/jwt/v5"
)

// TokenConfig holds the secrets and lifetimes of the two token classes.
type TokenConfig struct {
	AccessSecret  string
	AccessTTL     time.Duration
	RefreshSecret string
	RefreshTTL    time.Duration
	Issuer        string
	Leeway        time.Duration
}

// TokenConfigFromConfig extracts the codec settings from the application config.
func TokenConfigFromConfig(cfg *config.Config) TokenConfig {
	return TokenConfig{
		AccessSecret:  cfg.JWTAccessSecret,
		AccessTTL:     cfg.JWTAccessExpiryDuration,
		RefreshSecret: cfg.JWTRefreshSecret,
		RefreshTTL:    cfg.RefreshTokenExpiryDuration,
		Issuer:        cfg.JWTIssuer,
		Leeway:        cfg.JWTLeeway,
	}
}

// tokenService implements portssvc.TokenSvcFacade on top of HS256 JWTs.
type tokenService struct {
	cfg TokenConfig
	now func() time.Time
}

// TokenServiceOption configures a tokenService.
type TokenServiceOption func(*tokenService)

// WithTokenClock sets the clock used for minting and verification.
func WithTokenClock(now func() time.Time) TokenServiceOption {
	return func(s *tokenService) {
		s.now = now
	}
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg TokenConfig, opts ...TokenServiceOption) portssvc.TokenSvcFacade {
	s := &tokenService{cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// clock truncates to whole seconds, the resolution of the exp claim, so the
// returned expiry is exactly issuance + TTL.
func (s *tokenService) clock() time.Time {
	return s.now().UTC().Truncate(time.Second)
}

func (s *tokenService) MintAccessToken(userID string) (string, time.Time, error) {
	return s.mint(userID, s.cfg.AccessSecret, s.cfg.AccessTTL)
}

func (s *tokenService) MintRefreshToken(userID string) (string, time.Time, error) {
	return s.mint(userID, s.cfg.RefreshSecret, s.cfg.RefreshTTL)
}

func (s *tokenService) VerifyAccessToken(token string) (string, error) {
	return s.verify(token, s.cfg.AccessSecret)
}

func (s *tokenService) VerifyRefreshToken(token string) (string, error) {
	return s.verify(token, s.cfg.RefreshSecret)
}

func (s *tokenService) mint(userID, secret string, ttl time.Duration) (string, time.Time, error) {
	if userID == "" {
		return "", time.Time{}, errors.New("cannot mint a token without a subject")
	}
	token, expiresAt, err := utils.GenerateJWT(userID, secret, ttl, s.cfg.Issuer, s.clock())
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, expiresAt, nil
}

func (s *tokenService) verify(token, secret string) (string, error) {
	if token == "" {
		return "", apperrors.ErrTokenInvalid
	}
	claims, err := utils.ParseAndValidateJWT(token, secret, s.cfg.Issuer, s.clock, s.cfg.Leeway)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", apperrors.ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %v", apperrors.ErrTokenInvalid, err)
	}
	if claims.Subject == "" {
		return "", apperrors.ErrTokenInvalid
	}
	return claims.Subject, nil
}
