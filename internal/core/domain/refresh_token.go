package domain

import "time"

// RefreshToken is a revocable session handle, keyed by the SHA-256 of the token
// string. A refresh token is honored only while a matching, unexpired record exists.
type RefreshToken struct {
	TokenHash string    `json:"-"`
	UserID    string    `json:"userID"`
	UserAgent string    `json:"userAgent,omitempty"`
	IPAddress string    `json:"ipAddress,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// IsExpired checks if the record has passed its expiry at the given instant.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// TokenPair is the transient result of a login or registration.
type TokenPair struct {
	AccessToken      string
	AccessExpiresAt  time.Time
	RefreshToken     string
	RefreshExpiresAt time.Time
}

// ClientInfo describes the client a session was issued to.
type ClientInfo struct {
	UserAgent string
	IPAddress string
}
