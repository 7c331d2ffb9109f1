package api

import (
	"github.com/jonzim-cmd/kura/pkg/models"
)

// BatchCreateEventsRequest is the body of POST /v1/events/batch.
type BatchCreateEventsRequest struct {
	Events []models.CreateEventRequest `json:"events"`
}

// SimulateEventsRequest is the body of POST /v1/events/simulate.
type SimulateEventsRequest struct {
	Events []models.CreateEventRequest `json:"events"`
}
