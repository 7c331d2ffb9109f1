package models

import (
	"time"

	"github.com/google/uuid"
)

// Action classes derived from the event types in a batch.
const (
	ActionClassLowImpactWrite  = "low_impact_write"
	ActionClassHighImpactWrite = "high_impact_write"
)

// ReadAfterWriteTarget names a projection the caller wants verified
// before a saved claim is allowed.
type ReadAfterWriteTarget struct {
	ProjectionType string `json:"projection_type"`
	Key            string `json:"key"`
}

// Read-after-write check statuses.
const (
	CheckStatusVerified = "verified"
	CheckStatusPending  = "pending"
	CheckStatusFailed   = "failed"
)

// ReadAfterWriteCheck is the per-target verification outcome.
type ReadAfterWriteCheck struct {
	ProjectionType  string    `json:"projection_type"`
	Key             string    `json:"key"`
	RequestedAt     time.Time `json:"requested_at"`
	Status          string    `json:"status"`
	ObservedVersion *int64    `json:"observed_version,omitempty"`
}

// WriteReceipt is the per-event durable append outcome.
type WriteReceipt struct {
	EventID        uuid.UUID `json:"event_id"`
	EventType      string    `json:"event_type"`
	IdempotencyKey string    `json:"idempotency_key"`
}

// WriteWithProofRequest is the body of POST /v1/agent/write-with-proof.
type WriteWithProofRequest struct {
	Events                        []CreateEventRequest    `json:"events"`
	ReadAfterWriteTargets         []ReadAfterWriteTarget  `json:"read_after_write_targets"`
	VerifyTimeoutMs               *int                    `json:"verify_timeout_ms,omitempty"`
	IncludeRepairTechnicalDetails bool                    `json:"include_repair_technical_details,omitempty"`
	IntentHandshake               *IntentHandshake        `json:"intent_handshake,omitempty"`
	HighImpactConfirmation        *HighImpactConfirmation `json:"high_impact_confirmation,omitempty"`
	ModelAttestation              *ModelAttestation       `json:"model_attestation,omitempty"`
}

// VerificationSummary aggregates the read-after-write checks.
type VerificationSummary struct {
	Status         string                `json:"status"`
	WritePath      string                `json:"write_path"`
	RequiredChecks int                   `json:"required_checks"`
	VerifiedChecks int                   `json:"verified_checks"`
	Checks         []ReadAfterWriteCheck `json:"checks"`
}

// InferredFact is one value the pipeline persisted without explicit
// user confirmation, with its provenance.
type InferredFact struct {
	Field      string  `json:"field"`
	Confidence float64 `json:"confidence"`
	Provenance string  `json:"provenance"`
}

// ReliabilityUX tells agents how to phrase the outcome: saved,
// inferred, or unresolved, with the one follow-up question when the
// session audit needs clarification.
type ReliabilityUX struct {
	State                 string         `json:"state"`
	AssistantPhrase       string         `json:"assistant_phrase"`
	InferredFacts         []InferredFact `json:"inferred_facts"`
	ClarificationQuestion string         `json:"clarification_question,omitempty"`
}

// WriteWithProofResponse is the full pipeline result.
type WriteWithProofResponse struct {
	Receipts     []WriteReceipt              `json:"receipts"`
	Verification VerificationSummary         `json:"verification"`
	ClaimGuard   ClaimGuard                  `json:"claim_guard"`
	Warnings     []BatchEventWarning         `json:"warnings"`
	SessionAudit SessionAuditSummary         `json:"session_audit"`
	Intent       *IntentHandshakeConfirmation `json:"intent_handshake_confirmation,omitempty"`
	Reliability  ReliabilityUX               `json:"reliability_ux"`
}
