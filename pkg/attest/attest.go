package attest

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonzim-cmd/kura/pkg/config"
	"github.com/jonzim-cmd/kura/pkg/models"
)

// Reason codes accumulated during identity resolution.
const (
	ReasonIdentityUnknownFallback = "model_identity_unknown_fallback"
	ReasonAttestationMissing      = "model_attestation_missing_fallback"
	ReasonInvalidSchema           = "model_attestation_invalid_schema"
	ReasonInvalidDigest           = "model_attestation_invalid_digest"
	ReasonInvalidSignature        = "model_attestation_invalid_signature"
	ReasonStale                   = "model_attestation_stale"
	ReasonReplayed                = "model_attestation_replayed"
	ReasonMalformed               = "model_attestation_malformed"
	ReasonSecretUnconfigured      = "model_attestation_secret_unconfigured"
)

const maxRequestIDLength = 256

// Verifier resolves the runtime model identity for writes. It owns the
// nonce cache; the signing secret comes from process configuration.
type Verifier struct {
	process config.ProcessConfig
	nonces  *NonceCache
}

// NewVerifier creates a Verifier with an empty nonce cache.
func NewVerifier(process config.ProcessConfig) *Verifier {
	return &Verifier{process: process, nonces: NewNonceCache()}
}

// NormalizeModelIdentity trims and lowercases; empty means absent.
func NormalizeModelIdentity(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ComputeSignature computes the attestation HMAC over the canonical
// concatenation. Field order and the issued_at encoding are part of
// the contract.
func ComputeSignature(secret, modelIdentity string, issuedAt time.Time, requestID, requestDigest string, ownerID uuid.UUID) string {
	mac := hmac.New(sha256.New, []byte(secret))
	payload := fmt.Sprintf("%s|%s|%s|%s|%s|%s",
		AttestationSchemaVersion,
		NormalizeModelIdentity(modelIdentity),
		CanonicalIssuedAt(issuedAt),
		strings.TrimSpace(requestID),
		strings.ToLower(strings.TrimSpace(requestDigest)),
		ownerID,
	)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

// NormalizeSignature accepts an optional sha256= prefix and requires
// 64 lowercase hex chars; anything else is rejected.
func NormalizeSignature(signature string) (string, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(signature))
	if trimmed == "" {
		return "", false
	}
	trimmed = strings.TrimPrefix(trimmed, "sha256=")
	if len(trimmed) != 64 {
		return "", false
	}
	for _, ch := range trimmed {
		if !isHexDigit(ch) {
			return "", false
		}
	}
	return trimmed, true
}

// NormalizeHex64 validates a 64-char lowercase hex digest.
func NormalizeHex64(raw string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if len(normalized) != 64 {
		return "", false
	}
	for _, ch := range normalized {
		if !isHexDigit(ch) {
			return "", false
		}
	}
	return normalized, true
}

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f')
}

// Verify checks one attestation envelope against the expected digest.
// All reason codes are accumulated rather than failing on the first, so
// a client sees the full picture in a single round-trip. The nonce is
// inserted only when every other check passed; a failed verification
// never records the request id, but a previously consumed id still
// reports replayed.
func (v *Verifier) Verify(attestation *models.ModelAttestation, expectedDigest string, ownerID uuid.UUID, now time.Time) (string, []string) {
	var reasons []string

	if strings.TrimSpace(attestation.SchemaVersion) != AttestationSchemaVersion {
		reasons = append(reasons, ReasonInvalidSchema)
	}

	modelIdentity := NormalizeModelIdentity(attestation.RuntimeModelIdentity)
	if modelIdentity == "" {
		reasons = append(reasons, ReasonMalformed)
		return "", dedupe(reasons)
	}

	requestID := strings.TrimSpace(attestation.RequestID)
	if requestID == "" || len(requestID) > maxRequestIDLength {
		reasons = append(reasons, ReasonMalformed)
	}

	digest := strings.ToLower(strings.TrimSpace(attestation.RequestDigest))
	if digest == "" || digest != strings.ToLower(strings.TrimSpace(expectedDigest)) {
		reasons = append(reasons, ReasonInvalidDigest)
	}

	age := now.Sub(attestation.IssuedAt)
	if age > MaxAgeSeconds*time.Second || age < -MaxFutureSkewSeconds*time.Second {
		reasons = append(reasons, ReasonStale)
	}

	secret := strings.TrimSpace(v.process.AttestationSecret)
	if secret == "" {
		reasons = append(reasons, ReasonSecretUnconfigured)
		return "", dedupe(reasons)
	}

	expectedSignature := ComputeSignature(secret, modelIdentity, attestation.IssuedAt, requestID, digest, ownerID)
	provided, ok := NormalizeSignature(attestation.Signature)
	if !ok || !hmac.Equal([]byte(provided), []byte(expectedSignature)) {
		reasons = append(reasons, ReasonInvalidSignature)
	}

	if len(reasons) > 0 {
		if v.nonces.Contains(requestID, now) {
			reasons = append(reasons, ReasonReplayed)
		}
		return "", dedupe(reasons)
	}

	if !v.nonces.Consume(requestID, now) {
		return "", []string{ReasonReplayed}
	}
	return modelIdentity, nil
}

// ResolveForWrite resolves the model identity for one write request:
// verified attestation when present and valid, otherwise the client-map
// or runtime-default fallback, otherwise unknown with reasons.
func (v *Verifier) ResolveForWrite(req *models.WriteWithProofRequest, actionClass, clientID string, ownerID uuid.UUID, now time.Time) models.ResolvedModelIdentity {
	digest := AttestationRequestDigest(req, actionClass)

	if req.ModelAttestation != nil {
		identity, reasons := v.Verify(req.ModelAttestation, digest, ownerID, now)
		if len(reasons) == 0 {
			return models.ResolvedModelIdentity{
				ModelIdentity:        identity,
				Source:               models.IdentitySourceAttestedRuntime,
				AttestationRequestID: strings.TrimSpace(req.ModelAttestation.RequestID),
			}
		}
		reasons = append(reasons, ReasonIdentityUnknownFallback)
		return models.ResolvedModelIdentity{
			ModelIdentity: "unknown",
			ReasonCodes:   dedupe(reasons),
			Source:        models.IdentitySourceAttestationInvalid,
		}
	}

	fallback := v.resolveFallback(clientID)
	if fallback.Source == models.IdentitySourceUnknownFallback {
		fallback.ReasonCodes = dedupe(append(fallback.ReasonCodes, ReasonAttestationMissing))
	}
	return fallback
}

func (v *Verifier) resolveFallback(clientID string) models.ResolvedModelIdentity {
	if clientID != "" {
		normalized := strings.ToLower(strings.TrimSpace(clientID))
		if identity, ok := v.process.ModelByClientID[normalized]; ok && identity != "" {
			return models.ResolvedModelIdentity{
				ModelIdentity: identity,
				Source:        models.IdentitySourceClientMap,
			}
		}
	}

	if identity := NormalizeModelIdentity(v.process.RuntimeModelIdentity); identity != "" {
		return models.ResolvedModelIdentity{
			ModelIdentity: identity,
			Source:        models.IdentitySourceRuntimeDefault,
		}
	}

	return models.ResolvedModelIdentity{
		ModelIdentity: "unknown",
		ReasonCodes:   []string{ReasonIdentityUnknownFallback},
		Source:        models.IdentitySourceUnknownFallback,
	}
}

func dedupe(codes []string) []string {
	seen := make(map[string]struct{}, len(codes))
	out := codes[:0]
	for _, code := range codes {
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}
