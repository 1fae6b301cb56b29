package middleware

import (
	"github.com/SscSPs/blog_api/internal/apperrors"
	"github.com/SscSPs/blog_api/internal/core/domain"
	"github.com/SscSPs/blog_api/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// Authorize must run after Authenticate. It loads the subject's current role and
// rejects the request unless the role is one of allowed.
func Authorize(authorizer services.AuthorizerSvc, allowed ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			AbortWithError(c, apperrors.NewUnauthorizedError("Access token missing"))
			return
		}

		user, err := authorizer.AuthorizeRole(c.Request.Context(), userID, allowed)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.Set(string(userKey), user)
		c.Next()
	}
}
