package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/blog_api/internal/apperrors"
	"github.com/SscSPs/blog_api/internal/core/domain"
	portsrepo "github.com/SscSPs/blog_api/internal/core/ports/repositories"
	"github.com/SscSPs/blog_api/internal/models"
	"github.com/SscSPs/blog_api/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxRefreshTokenRepository struct {
	BaseRepository
	now func() time.Time
}

func newPgxRefreshTokenRepository(db DB) *PgxRefreshTokenRepository {
	return &PgxRefreshTokenRepository{BaseRepository: BaseRepository{Pool: db}, now: time.Now}
}

var _ portsrepo.RefreshTokenRepository = (*PgxRefreshTokenRepository)(nil)

func (r *PgxRefreshTokenRepository) CreateRefreshToken(ctx context.Context, token domain.RefreshToken) error {
	m := mapping.ToModelRefreshToken(token)
	query := `
		INSERT INTO refresh_tokens (token_hash, user_id, user_agent, ip_address, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6);`

	_, err := r.Pool.Exec(ctx, query, m.TokenHash, m.UserID, m.UserAgent, m.IPAddress, m.CreatedAt, m.ExpiresAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("refresh token already stored: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert refresh token: %w", err)
	}
	return nil
}

// FindRefreshToken ignores rows past their expiry; the janitor deletes them later.
func (r *PgxRefreshTokenRepository) FindRefreshToken(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	query := `
		SELECT token_hash, user_id, user_agent, ip_address, created_at, expires_at
		FROM refresh_tokens
		WHERE token_hash = $1 AND expires_at > $2;`

	var m models.RefreshToken
	err := r.Pool.QueryRow(ctx, query, tokenHash, r.now().UTC()).Scan(
		&m.TokenHash,
		&m.UserID,
		&m.UserAgent,
		&m.IPAddress,
		&m.CreatedAt,
		&m.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan refresh token: %w", err)
	}

	token := mapping.ToDomainRefreshToken(m)
	return &token, nil
}

func (r *PgxRefreshTokenRepository) DeleteRefreshToken(ctx context.Context, tokenHash string) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM refresh_tokens WHERE token_hash = $1;`, tokenHash); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}

func (r *PgxRefreshTokenRepository) DeleteRefreshTokensByUserID(ctx context.Context, userID string) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1;`, userID); err != nil {
		return fmt.Errorf("failed to delete refresh tokens of user: %w", err)
	}
	return nil
}

func (r *PgxRefreshTokenRepository) DeleteExpiredRefreshTokens(ctx context.Context, before time.Time) (int64, error) {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM refresh_tokens WHERE expires_at <= $1;`, before.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired refresh tokens: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
