package mapping

import (
	"github.com/SscSPs/blog_api/internal/core/domain"
	"github.com/SscSPs/blog_api/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Username:     d.Username,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Role:         string(d.Role),
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		SocialLinks: models.SocialLinks{
			Website:   d.SocialLinks.Website,
			Facebook:  d.SocialLinks.Facebook,
			Instagram: d.SocialLinks.Instagram,
			LinkedIn:  d.SocialLinks.LinkedIn,
			X:         d.SocialLinks.X,
			YouTube:   d.SocialLinks.YouTube,
		},
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         domain.Role(m.Role),
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		SocialLinks: domain.SocialLinks{
			Website:   m.SocialLinks.Website,
			Facebook:  m.SocialLinks.Facebook,
			Instagram: m.SocialLinks.Instagram,
			LinkedIn:  m.SocialLinks.LinkedIn,
			X:         m.SocialLinks.X,
			YouTube:   m.SocialLinks.YouTube,
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
