package dto

import "time"

// APIStatusResponse is returned by GET /api/v1.
type APIStatusResponse struct {
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// CheckResult is the outcome of a single readiness check.
type CheckResult struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ReadinessResponse is returned by GET /health/ready.
type ReadinessResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Checks    map[string]CheckResult `json:"checks,omitempty"`
}
