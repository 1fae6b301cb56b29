package mapping

import (
	"github.com/SscSPs/blog_api/internal/core/domain"
	"github.com/SscSPs/blog_api/internal/models"
)

// ToModelBlog converts a domain Blog to a model Blog
func ToModelBlog(d domain.Blog) models.Blog {
	return models.Blog{
		BlogID:      d.BlogID,
		AuthorID:    d.AuthorID,
		Title:       d.Title,
		Slug:        d.Slug,
		Content:     d.Content,
		Banner:      d.Banner,
		Status:      string(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBlog converts a model Blog to a domain Blog
func ToDomainBlog(m models.Blog) domain.Blog {
	return domain.Blog{
		BlogID:      m.BlogID,
		AuthorID:    m.AuthorID,
		Title:       m.Title,
		Slug:        m.Slug,
		Content:     m.Content,
		Banner:      m.Banner,
		Status:      domain.BlogStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
