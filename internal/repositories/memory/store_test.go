package memory

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/blog_api/internal/apperrors"
	"github.com/SscSPs/blog_api/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_UserUniqueness(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	require.NoError(t, s.CreateUser(ctx, domain.User{UserID: "1", Email: "a@example.com", Username: "a"}))
	assert.ErrorIs(t, s.CreateUser(ctx, domain.User{UserID: "2", Email: "a@example.com", Username: "b"}), apperrors.ErrDuplicate)
	assert.ErrorIs(t, s.CreateUser(ctx, domain.User{UserID: "2", Email: "b@example.com", Username: "a"}), apperrors.ErrDuplicate)

	require.NoError(t, s.CreateUser(ctx, domain.User{UserID: "2", Email: "b@example.com", Username: "b"}))
	assert.ErrorIs(t, s.UpdateUser(ctx, domain.User{UserID: "2", Email: "a@example.com", Username: "b"}), apperrors.ErrDuplicate)

	require.NoError(t, s.UpdateUser(ctx, domain.User{UserID: "1", Email: "new@example.com", Username: "a"}))
	_, err := s.FindUserByEmail(ctx, "a@example.com")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	got, err := s.FindUserByEmail(ctx, "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, "1", got.UserID)
}

func TestStore_DeleteUser(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.CreateUser(ctx, domain.User{UserID: "1", Email: "a@example.com", Username: "a"}))

	require.NoError(t, s.DeleteUser(ctx, "1"))
	assert.ErrorIs(t, s.DeleteUser(ctx, "1"), apperrors.ErrNotFound)
	require.NoError(t, s.CreateUser(ctx, domain.User{UserID: "3", Email: "a@example.com", Username: "a"}))
}

func TestStore_RefreshTokenExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewStore()
	s.now = func() time.Time { return now }

	require.NoError(t, s.CreateRefreshToken(ctx, domain.RefreshToken{TokenHash: "live", UserID: "1", ExpiresAt: now.Add(time.Second)}))
	require.NoError(t, s.CreateRefreshToken(ctx, domain.RefreshToken{TokenHash: "edge", UserID: "1", ExpiresAt: now}))
	require.NoError(t, s.CreateRefreshToken(ctx, domain.RefreshToken{TokenHash: "old", UserID: "2", ExpiresAt: now.Add(-time.Hour)}))

	_, err := s.FindRefreshToken(ctx, "live")
	assert.NoError(t, err)
	_, err = s.FindRefreshToken(ctx, "edge")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	removed, err := s.DeleteExpiredRefreshTokens(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	require.NoError(t, s.DeleteRefreshTokensByUserID(ctx, "1"))
	_, err = s.FindRefreshToken(ctx, "live")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, s.DeleteRefreshToken(ctx, "live"))
}

func TestStore_BlogSlugUnique(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	require.NoError(t, s.SaveBlog(ctx, domain.Blog{BlogID: "b1", Slug: "hello-aaaaaa"}))
	assert.ErrorIs(t, s.SaveBlog(ctx, domain.Blog{BlogID: "b2", Slug: "hello-aaaaaa"}), apperrors.ErrDuplicate)

	got, err := s.FindBlogByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "hello-aaaaaa", got.Slug)
}
