package middleware

import (
	"log/slog"
	"strings"

	"github.com/SscSPs/blog_api/internal/apperrors"
	"github.com/SscSPs/blog_api/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// Authenticate validates the bearer access token and stores its subject in the context.
// A missing or malformed header is Unauthorized; codec failures keep their own
// code so clients can tell an expired token from a forged one.
func Authenticate(tokenSvc services.TokenSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			AbortWithError(c, apperrors.NewUnauthorizedError("Access token missing"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
			AbortWithError(c, apperrors.NewUnauthorizedError("Authorization header format must be Bearer {token}"))
			return
		}

		userID, err := tokenSvc.VerifyAccessToken(strings.TrimSpace(parts[1]))
		if err != nil {
			AbortWithError(c, err)
			return
		}

		// Add user ID to the logger and store both in the request context
		enrichedLogger := logger.With(slog.String("user_id", userID))
		ctx := WithLogger(WithUserID(c.Request.Context(), userID), enrichedLogger)
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(userIDKey), userID)

		c.Next()
	}
}
