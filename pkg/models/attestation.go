package models

import "time"

// ModelAttestation is the HMAC-signed declaration of the runtime model
// identity, bound to a specific request digest.
type ModelAttestation struct {
	SchemaVersion        string    `json:"schema_version"`
	RuntimeModelIdentity string    `json:"runtime_model_identity"`
	IssuedAt             time.Time `json:"issued_at"`
	RequestID            string    `json:"request_id"`
	RequestDigest        string    `json:"request_digest"`
	Signature            string    `json:"signature"`
}

// Model identity resolution sources.
const (
	IdentitySourceAttestedRuntime    = "attested_runtime"
	IdentitySourceAttestationInvalid = "attestation_invalid"
	IdentitySourceClientMap          = "client_map"
	IdentitySourceRuntimeDefault     = "runtime_default"
	IdentitySourceUnknownFallback    = "unknown_fallback"
)

// ResolvedModelIdentity is the outcome of identity resolution: either a
// verified identity or "unknown" with the accumulated reason codes.
type ResolvedModelIdentity struct {
	ModelIdentity        string   `json:"model_identity"`
	ReasonCodes          []string `json:"reason_codes,omitempty"`
	Source               string   `json:"source"`
	AttestationRequestID string   `json:"attestation_request_id,omitempty"`
}
