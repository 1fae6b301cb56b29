package dto

import "github.com/SscSPs/blog_api/internal/core/domain"

// --- Auth DTOs ---

// RegisterRequest defines the body of POST /auth/register.
// Username is generated when omitted.
type RegisterRequest struct {
	Username string `json:"username" binding:"omitempty,min=3,max=30,username"`
	Email    string `json:"email" binding:"required,email,max=50"`
	Password string `json:"password" binding:"required,min=8,passwordbytes"`
	Role     string `json:"role" binding:"required,oneof=admin user"`
}

// LoginRequest defines the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=50"`
	Password string `json:"password" binding:"required,min=8,max=100"`
}

// AuthUserResponse is the public projection returned by login and registration.
type AuthUserResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// AuthResponse is returned by successful login and registration.
type AuthResponse struct {
	Message     string           `json:"message"`
	User        AuthUserResponse `json:"user"`
	AccessToken string           `json:"accessToken"`
}

// RefreshTokenResponse represents the response for a successful token refresh.
type RefreshTokenResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"accessToken"`
}

// MessageResponse carries a bare human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ToAuthResponse builds the login/registration body; the password hash never leaves the domain.
func ToAuthResponse(message string, user *domain.User, accessToken string) AuthResponse {
	return AuthResponse{
		Message: message,
		User: AuthUserResponse{
			Username: user.Username,
			Email:    user.Email,
			Role:     string(user.Role),
		},
		AccessToken: accessToken,
	}
}
