package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/blog_api/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestUserMapping_PreservesSocialLinksAndRole(t *testing.T) {
	now := time.Now().UTC()
	u := domain.User{
		UserID:       "u-1",
		Username:     "user-abc12345",
		Email:        "a@b.com",
		PasswordHash: "$2a$hash",
		Role:         domain.RoleAdmin,
		SocialLinks:  domain.SocialLinks{X: "https://x.com/a", YouTube: "https://youtube.com/@a"},
		AuditFields:  domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	m := ToModelUser(u)
	assert.Equal(t, "admin", m.Role)
	assert.Equal(t, "https://x.com/a", m.SocialLinks.X)

	assert.Equal(t, u, ToDomainUser(m))
}
