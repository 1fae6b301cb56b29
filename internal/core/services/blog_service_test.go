package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/SscSPs/blog_api/internal/apperrors"
	"github.com/SscSPs/blog_api/internal/core/domain"
	"github.com/SscSPs/blog_api/internal/core/services"
	"github.com/SscSPs/blog_api/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateBlog_SanitizesAndSlugs(t *testing.T) {
	ctx := context.Background()
	repo := new(MockBlogRepository)
	repo.On("SaveBlog", ctx, mock.Anything).Return(nil).Once()

	blog, err := services.NewBlogService(repo).CreateBlog(ctx, dto.CreateBlogRequest{
		Title:   "Hello, <b>World</b>!",
		Content: `<p onclick="steal()">Hi</p><script>alert(1)</script>`,
	}, "author-1")

	require.NoError(t, err)
	assert.Equal(t, "author-1", blog.AuthorID)
	assert.Equal(t, "Hello, World!", blog.Title)
	assert.Equal(t, domain.BlogStatusDraft, blog.Status)
	assert.True(t, strings.HasPrefix(blog.Slug, "hello-world-"), blog.Slug)
	assert.Len(t, blog.Slug, len("hello-world-")+6)
	assert.NotContains(t, blog.Content, "script")
	assert.NotContains(t, blog.Content, "onclick")
	assert.Contains(t, blog.Content, "<p>Hi</p>")
	repo.AssertExpectations(t)
}

func TestCreateBlog_RetriesSlugCollision(t *testing.T) {
	ctx := context.Background()
	repo := new(MockBlogRepository)
	repo.On("SaveBlog", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()
	repo.On("SaveBlog", ctx, mock.Anything).Return(nil).Once()

	blog, err := services.NewBlogService(repo).CreateBlog(ctx, dto.CreateBlogRequest{
		Title:   "Second post",
		Content: "text",
		Status:  "published",
	}, "author-1")

	require.NoError(t, err)
	assert.Equal(t, domain.BlogStatusPublished, blog.Status)
	repo.AssertNumberOfCalls(t, "SaveBlog", 2)
}

func TestCreateBlog_EmptyAfterSanitizing(t *testing.T) {
	repo := new(MockBlogRepository)

	_, err := services.NewBlogService(repo).CreateBlog(context.Background(), dto.CreateBlogRequest{
		Title:   "<script>x</script>",
		Content: "text",
	}, "author-1")

	assert.Equal(t, apperrors.CodeValidation, apperrors.Code(err))
	repo.AssertNotCalled(t, "SaveBlog", mock.Anything, mock.Anything)
}
