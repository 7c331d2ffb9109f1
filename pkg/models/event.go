// Package models defines the wire and domain types shared across the
// write-path pipeline.
package models

import (
	"time"

	"github.com/google/uuid"
)

// EventMetadata travels with every event. idempotency_key is the only
// required field and must be unique per owner.
type EventMetadata struct {
	Source         string `json:"source,omitempty"`
	Agent          string `json:"agent,omitempty"`
	Device         string `json:"device,omitempty"`
	SessionID      string `json:"session_id,omitempty"`
	IdempotencyKey string `json:"idempotency_key"`
}

// CreateEventRequest is a single event as submitted by a client.
type CreateEventRequest struct {
	Timestamp time.Time      `json:"timestamp"`
	EventType string         `json:"event_type"`
	Data      map[string]any `json:"data"`
	Metadata  EventMetadata  `json:"metadata"`
}

// Event is an immutable stored record. The id is a time-ordered UUIDv7
// assigned at append; events are never mutated or deleted.
type Event struct {
	ID         uuid.UUID      `json:"id"`
	OwnerID    uuid.UUID      `json:"owner_id"`
	OccurredAt time.Time      `json:"timestamp"`
	EventType  string         `json:"event_type"`
	Data       map[string]any `json:"data"`
	Metadata   EventMetadata  `json:"metadata"`
	CreatedAt  time.Time      `json:"created_at"`
}

// EventWarning is a soft, non-fatal finding (plausibility, similarity).
type EventWarning struct {
	Field    string `json:"field"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// BatchEventWarning is an EventWarning anchored to a batch position.
type BatchEventWarning struct {
	EventIndex int    `json:"event_index"`
	Field      string `json:"field"`
	Message    string `json:"message"`
	Severity   string `json:"severity"`
}

// PaginatedEvents is the cursor-paginated list response.
type PaginatedEvents struct {
	Data       []Event `json:"data"`
	NextCursor string  `json:"next_cursor,omitempty"`
	HasMore    bool    `json:"has_more"`
}

// ListEventsParams are the filters accepted by the event list endpoint.
type ListEventsParams struct {
	EventType string
	Since     *time.Time
	Until     *time.Time
	Cursor    string
	Limit     int
}
