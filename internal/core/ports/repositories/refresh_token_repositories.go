package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/blog_api/internal/core/domain"
)

// RefreshTokenRepository persists revocable session records.
type RefreshTokenRepository interface {
	// CreateRefreshToken stores a new session record.
	CreateRefreshToken(ctx context.Context, token domain.RefreshToken) error

	// FindRefreshToken returns the record for the given token hash.
	// Missing or expired records return apperrors.ErrNotFound.
	FindRefreshToken(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)

	// DeleteRefreshToken removes a record. Deleting an absent record is not an error.
	DeleteRefreshToken(ctx context.Context, tokenHash string) error

	// DeleteRefreshTokensByUserID removes every session of a user.
	DeleteRefreshTokensByUserID(ctx context.Context, userID string) error

	// DeleteExpiredRefreshTokens removes records that expired before the given instant
	// and returns how many were removed.
	DeleteExpiredRefreshTokens(ctx context.Context, before time.Time) (int64, error)
}
