package dto

import (
	"time"

	"github.com/SscSPs/blog_api/internal/core/domain"
)

// UpdateUserRequest defines the data allowed for updating the current user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	Username  *string `json:"username" binding:"omitempty,min=3,max=30,username"`
	Email     *string `json:"email" binding:"omitempty,email,max=50"`
	Password  *string `json:"password" binding:"omitempty,min=8,passwordbytes"`
	FirstName *string `json:"first_name" binding:"omitempty,max=20"`
	LastName  *string `json:"last_name" binding:"omitempty,max=20"`
	Website   *string `json:"website" binding:"omitempty,max=100,url"`
	Facebook  *string `json:"facebook" binding:"omitempty,max=100,url"`
	Instagram *string `json:"instagram" binding:"omitempty,max=100,url"`
	LinkedIn  *string `json:"linkedin" binding:"omitempty,max=100,url"`
	X         *string `json:"x" binding:"omitempty,max=100,url"`
	YouTube   *string `json:"youtube" binding:"omitempty,max=100,url"`
}

// SocialLinksResponse mirrors domain.SocialLinks for API output.
type SocialLinksResponse struct {
	Website   string `json:"website,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	X         string `json:"x,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
}

// UserResponse is the public-safe view of a user.
type UserResponse struct {
	UserID      string              `json:"userID"`
	Username    string              `json:"username"`
	Email       string              `json:"email"`
	Role        string              `json:"role"`
	FirstName   string              `json:"firstName,omitempty"`
	LastName    string              `json:"lastName,omitempty"`
	SocialLinks SocialLinksResponse `json:"socialLinks"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// UserEnvelope wraps a user with a message and status code.
type UserEnvelope struct {
	Message string       `json:"message"`
	Code    string       `json:"code"`
	Data    UserResponse `json:"data"`
}

func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:    user.UserID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      string(user.Role),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		SocialLinks: SocialLinksResponse{
			Website:   user.SocialLinks.Website,
			Facebook:  user.SocialLinks.Facebook,
			Instagram: user.SocialLinks.Instagram,
			LinkedIn:  user.SocialLinks.LinkedIn,
			X:         user.SocialLinks.X,
			YouTube:   user.SocialLinks.YouTube,
		},
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
