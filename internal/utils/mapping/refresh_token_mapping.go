package mapping

import (
	"github.com/SscSPs/blog_api/internal/core/domain"
	"github.com/SscSPs/blog_api/internal/models"
)

// ToModelRefreshToken converts a domain RefreshToken to a model RefreshToken
func ToModelRefreshToken(d domain.RefreshToken) models.RefreshToken {
	return models.RefreshToken{
		TokenHash: d.TokenHash,
		UserID:    d.UserID,
		UserAgent: d.UserAgent,
		IPAddress: d.IPAddress,
		CreatedAt: d.CreatedAt,
		ExpiresAt: d.ExpiresAt,
	}
}

// ToDomainRefreshToken converts a model RefreshToken to a domain RefreshToken
func ToDomainRefreshToken(m models.RefreshToken) domain.RefreshToken {
	return domain.RefreshToken{
		TokenHash: m.TokenHash,
		UserID:    m.UserID,
		UserAgent: m.UserAgent,
		IPAddress: m.IPAddress,
		CreatedAt: m.CreatedAt,
		ExpiresAt: m.ExpiresAt,
	}
}
