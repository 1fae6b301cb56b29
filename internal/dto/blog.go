package dto

import (
	"time"

	"github.com/SscSPs/blog_api/internal/core/domain"
)

// --- Blog DTOs ---

// CreateBlogRequest defines data for creating a new blog.
type CreateBlogRequest struct {
	Title   string `json:"title" binding:"required,min=1,max=180"`
	Content string `json:"content" binding:"required"`
	Banner  string `json:"banner" binding:"omitempty,url"`
	Status  string `json:"status" binding:"omitempty,oneof=draft published"`
}

// BlogResponse defines data returned for a blog.
type BlogResponse struct {
	BlogID    string    `json:"blogID"`
	AuthorID  string    `json:"authorID"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Content   string    `json:"content"`
	Banner    string    `json:"banner,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BlogEnvelope wraps a blog with a message and status code.
type BlogEnvelope struct {
	Message string       `json:"message"`
	Code    string       `json:"code"`
	Data    BlogResponse `json:"data"`
}

// ToBlogResponse converts domain.Blog to DTO.
func ToBlogResponse(b *domain.Blog) BlogResponse {
	return BlogResponse{
		BlogID:    b.BlogID,
		AuthorID:  b.AuthorID,
		Title:     b.Title,
		Slug:      b.Slug,
		Content:   b.Content,
		Banner:    b.Banner,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
