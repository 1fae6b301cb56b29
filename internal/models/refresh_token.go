package models

import "time"

// RefreshToken is the persisted session record. The token hash is the lookup key.
type RefreshToken struct {
	TokenHash string    `db:"token_hash" bson:"tokenHash"`
	UserID    string    `db:"user_id" bson:"userId"`
	UserAgent string    `db:"user_agent" bson:"userAgent,omitempty"`
	IPAddress string    `db:"ip_address" bson:"ipAddress,omitempty"`
	CreatedAt time.Time `db:"created_at" bson:"createdAt"`
	ExpiresAt time.Time `db:"expires_at" bson:"expiresAt"`
}
