package api

import (
	"github.com/jonzim-cmd/kura/pkg/database"
	"github.com/jonzim-cmd/kura/pkg/models"
)

// CreateEventResponse is returned by POST /v1/events.
type CreateEventResponse struct {
	Event    models.Event          `json:"event"`
	Warnings []models.EventWarning `json:"warnings"`
}

// BatchCreateEventsResponse is returned by POST /v1/events/batch.
type BatchCreateEventsResponse struct {
	Events   []models.Event             `json:"events"`
	Warnings []models.BatchEventWarning `json:"warnings"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string                 `json:"status"`
	Version  string                 `json:"version"`
	Database *database.HealthStatus `json:"database,omitempty"`
}
