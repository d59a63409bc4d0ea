package models

import "time"

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status   string `json:"status"`
	Strategy string `json:"strategy,omitempty"`
	Time     string `json:"time"`
}

func NewHealthResponse(status, strategy string, now time.Time) HealthResponse {
	return HealthResponse{
		Status:   status,
		Strategy: strategy,
		Time:     now.UTC().Format(time.RFC3339),
	}
}
