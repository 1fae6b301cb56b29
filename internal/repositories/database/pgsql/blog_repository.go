package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/blog_api/internal/apperrors"
	"github.com/SscSPs/blog_api/internal/core/domain"
	portsrepo "github.com/SscSPs/blog_api/internal/core/ports/repositories"
	"github.com/SscSPs/blog_api/internal/models"
	"github.com/SscSPs/blog_api/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxBlogRepository struct {
	BaseRepository
}

func newPgxBlogRepository(db DB) *PgxBlogRepository {
	return &PgxBlogRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.BlogRepositoryFacade = (*PgxBlogRepository)(nil)

func (r *PgxBlogRepository) SaveBlog(ctx context.Context, blog domain.Blog) error {
	m := mapping.ToModelBlog(blog)
	query := `
		INSERT INTO blogs (blog_id, author_id, title, slug, content, banner, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`

	_, err := r.Pool.Exec(ctx, query,
		m.BlogID, m.AuthorID, m.Title, m.Slug, m.Content, m.Banner, m.Status, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("blog slug %q already taken: %w", m.Slug, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save blog: %w", err)
	}
	return nil
}

func (r *PgxBlogRepository) FindBlogByID(ctx context.Context, blogID string) (*domain.Blog, error) {
	query := `
		SELECT blog_id, author_id, title, slug, content, banner, status, created_at, updated_at
		FROM blogs
		WHERE blog_id = $1;`

	var m models.Blog
	err := r.Pool.QueryRow(ctx, query, blogID).Scan(
		&m.BlogID, &m.AuthorID, &m.Title, &m.Slug, &m.Content, &m.Banner, &m.Status, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find blog by ID %s: %w", blogID, err)
	}

	blog := mapping.ToDomainBlog(m)
	return &blog, nil
}
