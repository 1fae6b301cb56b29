package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidCredentials indicates a password mismatch during login.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrTokenExpired indicates a token whose exp claim has passed.
var ErrTokenExpired = errors.New("token expired")

// ErrTokenInvalid indicates a malformed token or a bad signature.
var ErrTokenInvalid = errors.New("token invalid")

// ErrUnauthorized indicates a missing or unusable credential.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller is authenticated but lacks the required role.
var ErrForbidden = errors.New("forbidden")

// ErrInternal indicates an unexpected failure.
var ErrInternal = errors.New("internal error")

// Machine-readable codes returned to clients.
const (
	CodeNotFound           = "NotFound"
	CodeValidation         = "ValidationError"
	CodeConflict           = "Conflict"
	CodeInvalidCredentials = "InvalidCredentials"
	CodeTokenExpired       = "TokenExpired"
	CodeTokenInvalid       = "InvalidToken"
	CodeUnauthorized       = "Unauthorized"
	CodeAuthorization      = "AuthorizationError"
	CodeServerError        = "ServerError"
)

// AppError carries an HTTP status and a stable code alongside the wrapped cause.
type AppError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError whose code is derived from the status.
func NewAppError(status int, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    codeForStatus(status),
		Message: message,
		Err:     err,
	}
}

// NewNotFoundError creates a 404 error for the named resource.
func NewNotFoundError(resource string) *AppError {
	return &AppError{Status: http.StatusNotFound, Code: CodeNotFound, Message: resource + " not found", Err: ErrNotFound}
}

// NewValidationError creates a 400 error.
func NewValidationError(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Code: CodeValidation, Message: message, Err: ErrValidation}
}

// NewConflictError creates a 409 error.
func NewConflictError(message string) *AppError {
	return &AppError{Status: http.StatusConflict, Code: CodeConflict, Message: message, Err: ErrDuplicate}
}

// NewUnauthorizedError creates a 401 error.
func NewUnauthorizedError(message string) *AppError {
	return &AppError{Status: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message, Err: ErrUnauthorized}
}

// NewForbiddenError creates a 403 error.
func NewForbiddenError(message string) *AppError {
	return &AppError{Status: http.StatusForbidden, Code: CodeAuthorization, Message: message, Err: ErrForbidden}
}

// NewInternalError creates a 500 error that hides the cause from clients.
func NewInternalError(err error) *AppError {
	return &AppError{Status: http.StatusInternalServerError, Code: CodeServerError, Message: "Internal Server Error", Err: err}
}

// HTTPStatus returns the HTTP status code for any error.
func HTTPStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrTokenInvalid),
		errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Code returns the machine-readable code for any error.
func Code(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrDuplicate):
		return CodeConflict
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrTokenExpired):
		return CodeTokenExpired
	case errors.Is(err, ErrTokenInvalid):
		return CodeTokenInvalid
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrForbidden):
		return CodeAuthorization
	default:
		return CodeServerError
	}
}

// Message returns a client-safe message. Unexpected errors never leak their cause.
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return "Not found"
	case errors.Is(err, ErrValidation):
		return "Validation error"
	case errors.Is(err, ErrDuplicate):
		return "Resource already exists"
	case errors.Is(err, ErrInvalidCredentials):
		return "Invalid credentials"
	case errors.Is(err, ErrTokenExpired):
		return "Access token expired, request a new one with refresh token"
	case errors.Is(err, ErrTokenInvalid):
		return "Access token invalid"
	case errors.Is(err, ErrUnauthorized):
		return "Unauthorized"
	case errors.Is(err, ErrForbidden):
		return "Access denied, insufficient permissions"
	default:
		return "Internal Server Error"
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusBadRequest:
		return CodeValidation
	case http.StatusConflict:
		return CodeConflict
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusForbidden:
		return CodeAuthorization
	default:
		return CodeServerError
	}
}
