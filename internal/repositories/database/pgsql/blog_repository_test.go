package pgsql

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/blog_api/internal/apperrors"
	"github.com/SscSPs/blog_api/internal/core/domain"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBlog() domain.Blog {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return domain.Blog{
		BlogID:      "b-1",
		AuthorID:    "u-1234",
		Title:       "Hello",
		Slug:        "hello-abc123",
		Content:     "<p>Hi</p>",
		Status:      domain.BlogStatusDraft,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
}

func TestBlogRepository_SaveAndFind(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := newPgxBlogRepository(mock)

	b := sampleBlog()
	mock.ExpectExec("INSERT INTO blogs").
		WithArgs(b.BlogID, b.AuthorID, b.Title, b.Slug, b.Content, b.Banner, string(b.Status), b.CreatedAt, b.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery("SELECT .+ FROM blogs").
		WithArgs(b.BlogID).
		WillReturnRows(pgxmock.NewRows([]string{"blog_id", "author_id", "title", "slug", "content", "banner", "status", "created_at", "updated_at"}).
			AddRow(b.BlogID, b.AuthorID, b.Title, b.Slug, b.Content, b.Banner, string(b.Status), b.CreatedAt, b.UpdatedAt))

	require.NoError(t, repo.SaveBlog(context.Background(), b))
	got, err := repo.FindBlogByID(context.Background(), b.BlogID)
	require.NoError(t, err)
	assert.Equal(t, b, *got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlogRepository_SaveDuplicateSlug(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := newPgxBlogRepository(mock)

	mock.ExpectExec("INSERT INTO blogs").
		WillReturnError(fmt.Errorf("ERROR: duplicate key value violates unique constraint \"blogs_slug_key\" (SQLSTATE 23505)"))

	err = repo.SaveBlog(context.Background(), sampleBlog())
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}
