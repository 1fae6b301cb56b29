package domain

import "time"

// AuditFields holds the creation and last-update timestamps of a stored entity.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
