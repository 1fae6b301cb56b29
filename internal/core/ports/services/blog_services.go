package services

import (
	"context"

	"github.com/SscSPs/blog_api/internal/core/domain"
	"github.com/SscSPs/blog_api/internal/dto"
)

// BlogSvcFacade defines blog operations.
type BlogSvcFacade interface {
	// CreateBlog sanitizes and persists a new blog authored by authorID.
	CreateBlog(ctx context.Context, req dto.CreateBlogRequest, authorID string) (*domain.Blog, error)
}
