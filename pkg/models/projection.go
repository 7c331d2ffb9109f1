package models

import (
	"time"

	"github.com/google/uuid"
)

// Projection is a materialized read-model snapshot. External workers
// own the write side; this service only reads.
type Projection struct {
	ProjectionType string         `json:"projection_type"`
	Key            string         `json:"key"`
	Data           map[string]any `json:"data"`
	Version        int64          `json:"version"`
	LastEventID    *uuid.UUID     `json:"last_event_id,omitempty"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// ProjectionImpact is a simulate-mode prediction for one projection.
type ProjectionImpact struct {
	ProjectionType   string   `json:"projection_type"`
	Key              string   `json:"key"`
	ChangeMode       string   `json:"change_mode"`
	Reasons          []string `json:"reasons"`
	CurrentVersion   *int64   `json:"current_version,omitempty"`
	PredictedVersion *int64   `json:"predicted_version,omitempty"`
}

// SimulateEventsResponse is the dry-run result: validation outcome plus
// predicted projection impacts; nothing is appended.
type SimulateEventsResponse struct {
	Valid    bool                `json:"valid"`
	Impacts  []ProjectionImpact  `json:"impacts"`
	Warnings []BatchEventWarning `json:"warnings"`
}
