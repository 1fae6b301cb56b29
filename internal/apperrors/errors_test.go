package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusAndCode_Sentinels(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", ErrNotFound, http.StatusNotFound, CodeNotFound},
		{"validation", ErrValidation, http.StatusBadRequest, CodeValidation},
		{"duplicate", ErrDuplicate, http.StatusConflict, CodeConflict},
		{"invalid credentials", ErrInvalidCredentials, http.StatusUnauthorized, CodeInvalidCredentials},
		{"token expired", ErrTokenExpired, http.StatusUnauthorized, CodeTokenExpired},
		{"token invalid", ErrTokenInvalid, http.StatusUnauthorized, CodeTokenInvalid},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized, CodeUnauthorized},
		{"forbidden", ErrForbidden, http.StatusForbidden, CodeAuthorization},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, CodeServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, HTTPStatus(tt.err))
			assert.Equal(t, tt.code, Code(tt.err))
		})
	}
}

func TestHTTPStatus_WrappedSentinel(t *testing.T) {
	err := fmt.Errorf("find user: %w", ErrNotFound)
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
	assert.Equal(t, CodeNotFound, Code(err))
}

func TestAppError_TakesPrecedenceAndUnwraps(t *testing.T) {
	err := fmt.Errorf("register: %w", NewForbiddenError("Admin registration is not allowed for this email"))

	assert.Equal(t, http.StatusForbidden, HTTPStatus(err))
	assert.Equal(t, CodeAuthorization, Code(err))
	assert.Equal(t, "Admin registration is not allowed for this email", Message(err))
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestMessage_HidesInternalCause(t *testing.T) {
	err := NewInternalError(errors.New("connection refused on 10.0.0.3"))
	assert.Equal(t, "Internal Server Error", Message(err))
	assert.Equal(t, "Internal Server Error", Message(errors.New("raw driver failure")))
}

func TestNewAppError_DerivesCode(t *testing.T) {
	assert.Equal(t, CodeServerError, NewAppError(http.StatusInternalServerError, "failed to begin transaction", nil).Code)
	assert.Equal(t, CodeConflict, NewAppError(http.StatusConflict, "dup", nil).Code)
}
