package models

import "time"

// AuditFields are the timestamp columns shared by stored entities.
type AuditFields struct {
	CreatedAt time.Time `db:"created_at" bson:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" bson:"updatedAt"`
}
