// Package attest implements model identity resolution: canonical
// request digests, HMAC-signed attestation verification with replay
// protection, and the client-map/runtime-default fallback chain.
package attest

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/jonzim-cmd/kura/pkg/models"
)

// Schema and timing constants.
const (
	AttestationSchemaVersion = "model_attestation.v1"
	MaxAgeSeconds            = 300
	MaxFutureSkewSeconds     = 30
)

// canonical* types pin the field order of the digest payload. Struct
// fields marshal in declaration order, so the byte sequence is stable
// across releases as long as this file is.
type canonicalEventMetadata struct {
	Source         string `json:"source"`
	Agent          string `json:"agent"`
	Device         string `json:"device"`
	SessionID      string `json:"session_id"`
	IdempotencyKey string `json:"idempotency_key"`
}

type canonicalEvent struct {
	Timestamp string                 `json:"timestamp"`
	EventType string                 `json:"event_type"`
	Data      map[string]any         `json:"data"`
	Metadata  canonicalEventMetadata `json:"metadata"`
}

type canonicalTarget struct {
	ProjectionType string `json:"projection_type"`
	Key            string `json:"key"`
}

type canonicalRequest struct {
	Events                        []canonicalEvent               `json:"events"`
	ReadAfterWriteTargets         []canonicalTarget              `json:"read_after_write_targets"`
	VerifyTimeoutMs               *int                           `json:"verify_timeout_ms"`
	IncludeRepairTechnicalDetails bool                           `json:"include_repair_technical_details"`
	IntentHandshake               *models.IntentHandshake        `json:"intent_handshake"`
	ActionClass                   string                         `json:"action_class"`
	HighImpactConfirmation        *models.HighImpactConfirmation `json:"high_impact_confirmation,omitempty"`
}

// StableHashSuffix returns the first chars hex characters of
// SHA-256(seed). Shared by digests and pseudonymized telemetry ids.
func StableHashSuffix(seed string, chars int) string {
	digest := sha256.Sum256([]byte(seed))
	encoded := hex.EncodeToString(digest[:])
	if chars < len(encoded) {
		return encoded[:chars]
	}
	return encoded
}

// CanonicalIssuedAt renders the timestamp the way signatures expect:
// RFC 3339, second precision, UTC, Z suffix. Any deviation silently
// breaks cross-runtime signature compatibility.
func CanonicalIssuedAt(issuedAt time.Time) string {
	return issuedAt.UTC().Format("2006-01-02T15:04:05Z")
}

// BuildWriteRequestDigest computes the canonical digest over the write
// payload. The confirmation block is included for attestation digests
// and excluded for confirmation-token digests, so the confirmation
// round-trip does not alter the identity of the write being confirmed.
func BuildWriteRequestDigest(req *models.WriteWithProofRequest, actionClass string, includeHighImpactConfirmation bool) string {
	events := make([]canonicalEvent, 0, len(req.Events))
	for _, evt := range req.Events {
		events = append(events, canonicalEvent{
			Timestamp: evt.Timestamp.UTC().Format(time.RFC3339),
			EventType: evt.EventType,
			Data:      evt.Data,
			Metadata: canonicalEventMetadata{
				Source:         evt.Metadata.Source,
				Agent:          evt.Metadata.Agent,
				Device:         evt.Metadata.Device,
				SessionID:      evt.Metadata.SessionID,
				IdempotencyKey: evt.Metadata.IdempotencyKey,
			},
		})
	}

	targets := make([]canonicalTarget, 0, len(req.ReadAfterWriteTargets))
	for _, target := range req.ReadAfterWriteTargets {
		targets = append(targets, canonicalTarget{
			ProjectionType: target.ProjectionType,
			Key:            target.Key,
		})
	}

	payload := canonicalRequest{
		Events:                        events,
		ReadAfterWriteTargets:         targets,
		VerifyTimeoutMs:               req.VerifyTimeoutMs,
		IncludeRepairTechnicalDetails: req.IncludeRepairTechnicalDetails,
		IntentHandshake:               req.IntentHandshake,
		ActionClass:                   actionClass,
	}
	if includeHighImpactConfirmation {
		payload.HighImpactConfirmation = req.HighImpactConfirmation
	}

	serialized, err := json.Marshal(payload)
	if err != nil {
		serialized = []byte("{}")
	}
	return StableHashSuffix(string(serialized), 64)
}

// AttestationRequestDigest is the digest an attestation signature binds.
func AttestationRequestDigest(req *models.WriteWithProofRequest, actionClass string) string {
	return BuildWriteRequestDigest(req, actionClass, true)
}

// ConfirmationRequestDigest is the digest a confirmation token binds.
func ConfirmationRequestDigest(req *models.WriteWithProofRequest, actionClass string) string {
	return BuildWriteRequestDigest(req, actionClass, false)
}
