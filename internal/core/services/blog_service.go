package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/blog_api/internal/apperrors"
	"github.com/SscSPs/blog_api/internal/core/domain"
	portsrepo "github.com/SscSPs/blog_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/blog_api/internal/core/ports/services"
	"github.com/SscSPs/blog_api/internal/dto"
	"github.com/SscSPs/blog_api/internal/utils"
	"github.com/google/uuid"
)

// slugAttempts bounds retries when a generated slug collides.
const slugAttempts = 3

type blogService struct {
	BaseService
	blogRepo portsrepo.BlogRepositoryFacade
}

// NewBlogService creates the blog service.
func NewBlogService(blogRepo portsrepo.BlogRepositoryFacade) portssvc.BlogSvcFacade {
	return &blogService{BaseService: newBaseService(), blogRepo: blogRepo}
}

func (s *blogService) CreateBlog(ctx context.Context, req dto.CreateBlogRequest, authorID string) (*domain.Blog, error) {
	title := utils.StripHTML(req.Title)
	if title == "" {
		return nil, apperrors.NewValidationError("Title must contain text")
	}
	content := utils.SanitizeHTML(req.Content)
	if content == "" {
		return nil, apperrors.NewValidationError("Content must contain text")
	}

	status := domain.BlogStatus(req.Status)
	if status == "" {
		status = domain.BlogStatusDraft
	}

	base := utils.Slugify(title)
	if base == "" {
		base = "blog"
	}

	now := s.Now()
	blog := domain.Blog{
		BlogID:   uuid.NewString(),
		AuthorID: authorID,
		Title:    title,
		Content:  content,
		Banner:   req.Banner,
		Status:   status,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	var err error
	for attempt := 0; attempt < slugAttempts; attempt++ {
		blog.Slug = base + "-" + utils.GenerateSlugSuffix()
		err = s.blogRepo.SaveBlog(ctx, blog)
		if !errors.Is(err, apperrors.ErrDuplicate) {
			break
		}
		s.LogDebug(ctx, "Slug collision, retrying", slog.String("slug", blog.Slug))
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to save blog", slog.String("author_id", authorID))
		return nil, apperrors.NewInternalError(err)
	}

	s.LogInfo(ctx, "Blog created", slog.String("blog_id", blog.BlogID), slog.String("slug", blog.Slug))
	return &blog, nil
}
