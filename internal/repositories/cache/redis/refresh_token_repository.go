package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/blog_api/internal/apperrors"
	"github.com/SscSPs/blog_api/internal/core/domain"
	portsrepo "github.com/SscSPs/blog_api/internal/core/ports/repositories"
	"github.com/SscSPs/blog_api/internal/models"
	"github.com/SscSPs/blog_api/internal/utils/mapping"
	"github.com/redis/go-redis/v9"
)

const (
	tokenKeyPrefix   = "refresh_token:"
	sessionKeyPrefix = "user_sessions:"
)

// RefreshTokenRepository keeps session records in redis. Each record expires
// with its token, so no sweep is needed.
type RefreshTokenRepository struct {
	client *redis.Client
	now    func() time.Time
}

// NewRefreshTokenRepository creates a new Redis-backed session store.
func NewRefreshTokenRepository(client *redis.Client) *RefreshTokenRepository {
	return &RefreshTokenRepository{client: client, now: time.Now}
}

var _ portsrepo.RefreshTokenRepository = (*RefreshTokenRepository)(nil)

func (r *RefreshTokenRepository) CreateRefreshToken(ctx context.Context, token domain.RefreshToken) error {
	ttl := token.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(mapping.ToModelRefreshToken(token))
	if err != nil {
		return fmt.Errorf("marshal refresh token: %w", err)
	}

	sessionsKey := sessionKeyPrefix + token.UserID
	pipe := r.client.TxPipeline()
	setNX := pipe.SetNX(ctx, tokenKeyPrefix+token.TokenHash, data, ttl)
	pipe.SAdd(ctx, sessionsKey, token.TokenHash)
	// Every session has the same lifetime, so the newest one bounds the index.
	pipe.Expire(ctx, sessionsKey, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis store refresh token: %w", err)
	}
	if !setNX.Val() {
		return fmt.Errorf("refresh token already stored: %w", apperrors.ErrDuplicate)
	}
	return nil
}

func (r *RefreshTokenRepository) FindRefreshToken(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	data, err := r.client.Get(ctx, tokenKeyPrefix+tokenHash).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("redis get refresh token: %w", err)
	}

	var m models.RefreshToken
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal refresh token: %w", err)
	}

	token := mapping.ToDomainRefreshToken(m)
	if token.IsExpired(r.now()) {
		return nil, apperrors.ErrNotFound
	}
	return &token, nil
}

func (r *RefreshTokenRepository) DeleteRefreshToken(ctx context.Context, tokenHash string) error {
	key := tokenKeyPrefix + tokenHash

	data, err := r.client.GetDel(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return fmt.Errorf("redis del refresh token: %w", err)
	}

	var m models.RefreshToken
	if err := json.Unmarshal(data, &m); err == nil && m.UserID != "" {
		if err := r.client.SRem(ctx, sessionKeyPrefix+m.UserID, tokenHash).Err(); err != nil {
			return fmt.Errorf("redis srem session: %w", err)
		}
	}
	return nil
}

func (r *RefreshTokenRepository) DeleteRefreshTokensByUserID(ctx context.Context, userID string) error {
	sessionsKey := sessionKeyPrefix + userID

	hashes, err := r.client.SMembers(ctx, sessionsKey).Result()
	if err != nil {
		return fmt.Errorf("redis smembers sessions: %w", err)
	}

	keys := make([]string, 0, len(hashes)+1)
	for _, hash := range hashes {
		keys = append(keys, tokenKeyPrefix+hash)
	}
	keys = append(keys, sessionsKey)

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del sessions: %w", err)
	}
	return nil
}

// DeleteExpiredRefreshTokens is a no-op: redis expires the keys itself.
func (r *RefreshTokenRepository) DeleteExpiredRefreshTokens(context.Context, time.Time) (int64, error) {
	return 0, nil
}
