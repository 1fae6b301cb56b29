package middleware

import (
	"context"

	"github.com/SscSPs/blog_api/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// userIDKey is the key used to store the authenticated user's ID.
const userIDKey = contextKey("userID")

// userKey holds the user loaded by the authorization stage.
const userKey = contextKey("user")

// WithUserID returns a copy of ctx carrying the authenticated subject.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userIDVal, exists := c.Get(string(userIDKey)); exists {
		userID, ok := userIDVal.(string)
		return userID, ok && userID != ""
	}
	// check in the request context as well
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// GetUserFromContext returns the user record loaded by Authorize, if any.
func GetUserFromContext(c *gin.Context) (*domain.User, bool) {
	val, exists := c.Get(string(userKey))
	if !exists {
		return nil, false
	}
	user, ok := val.(*domain.User)
	return user, ok && user != nil
}
