package repositories

import (
	"context"

	"github.com/SscSPs/blog_api/internal/core/domain"
)

// BlogWriter defines write operations for blogs.
type BlogWriter interface {
	// SaveBlog persists a new blog. A slug collision returns apperrors.ErrDuplicate.
	SaveBlog(ctx context.Context, blog domain.Blog) error
}

// BlogReader defines read operations for blogs.
type BlogReader interface {
	FindBlogByID(ctx context.Context, blogID string) (*domain.Blog, error)
}

// BlogRepositoryFacade combines all blog-related repository interfaces
type BlogRepositoryFacade interface {
	BlogReader
	BlogWriter
}
