package models

import (
	"time"

	"github.com/google/uuid"
)

// AccessLogRecord is one request observation fed into the access log.
type AccessLogRecord struct {
	OwnerID        uuid.UUID
	Path           string
	Method         string
	StatusCode     int
	ResponseTimeMs int
	OccurredAt     time.Time
}

// AccessSignalSnapshot is the 60-second aggregate over an owner's
// agent-path access log rows. Ephemeral; derived per request.
type AccessSignalSnapshot struct {
	TotalRequests60s         int `json:"total_requests_60s"`
	DeniedRequests60s        int `json:"denied_requests_60s"`
	DeniedAuthzRequests60s   int `json:"denied_authz_requests_60s"`
	DeniedNotFoundRequests60s int `json:"denied_not_found_requests_60s"`
	UniquePaths60s           int `json:"unique_paths_60s"`
	ContextReads60s          int `json:"context_reads_60s"`
	WriteRequests60s         int `json:"write_requests_60s"`
}
