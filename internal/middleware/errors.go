package middleware

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/blog_api/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// CodeTooManyRequests is returned when a rate limit is exceeded.
const CodeTooManyRequests = "TooManyRequests"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string            `json:"message"`
	Code    string            `json:"code"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// AbortWithError maps err onto the error taxonomy, logs it and aborts the chain.
func AbortWithError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	logger := GetLoggerFromCtx(c.Request.Context())
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", slog.String("error", err.Error()))
	} else {
		logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		Message: apperrors.Message(err),
		Code:    apperrors.Code(err),
	})
}
