// Package handshake validates intent declarations and runs the
// two-step high-impact confirmation protocol with HMAC-bound tokens.
package handshake

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonzim-cmd/kura/pkg/attest"
)

// Schema versions and timing.
const (
	IntentSchemaVersion        = "intent_handshake.v1"
	ConfirmationSchemaVersion  = "high_impact_confirmation.v1"
	IntentMaxAgeMinutes        = 45
	ConfirmationMaxAgeMinutes  = 45
	ConfirmationFutureSkewMins = 2
)

// Confirmation reason codes.
const (
	ReasonConfirmationRequired = "high_impact_confirmation_required"
	ReasonConfirmationInvalid  = "high_impact_confirmation_invalid"
	ReasonTokenMissing         = "high_impact_confirmation_token_missing"
	ReasonTokenInvalid         = "high_impact_confirmation_token_invalid"
	ReasonTokenStale           = "high_impact_confirmation_token_stale"
	ReasonPayloadMismatch      = "high_impact_confirmation_payload_mismatch"
	ReasonSecretUnconfigured   = "high_impact_confirmation_secret_unconfigured"
)

// ComputeTokenSignature signs the confirmation token payload. The
// digest must already be canonical 64-char hex.
func ComputeTokenSignature(secret string, ownerID uuid.UUID, actionClass, requestDigest string, issuedAt time.Time) (string, bool) {
	digest, ok := attest.NormalizeHex64(requestDigest)
	if !ok {
		return "", false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	payload := fmt.Sprintf("%s|%s|%s|%s|%s",
		ConfirmationSchemaVersion,
		ownerID,
		strings.ToLower(strings.TrimSpace(actionClass)),
		digest,
		attest.CanonicalIssuedAt(issuedAt),
	)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil)), true
}

// IssueToken mints a four-field confirmation token
// v1|issued_at|request_digest|hmac bound to owner, action class, and
// the canonical request digest.
func IssueToken(secret string, ownerID uuid.UUID, actionClass, requestDigest string, issuedAt time.Time) (string, bool) {
	digest, ok := attest.NormalizeHex64(requestDigest)
	if !ok {
		return "", false
	}
	signature, ok := ComputeTokenSignature(secret, ownerID, actionClass, digest, issuedAt)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("v1|%s|%s|%s", attest.CanonicalIssuedAt(issuedAt), digest, signature), true
}

// VerifyToken checks token structure, digest binding, freshness, and
// signature. It returns the accumulated reason codes on failure.
func VerifyToken(token, secret string, ownerID uuid.UUID, actionClass, expectedRequestDigest string, now time.Time) []string {
	parts := strings.Split(strings.TrimSpace(token), "|")
	if len(parts) != 4 || parts[0] != "v1" {
		return []string{ReasonTokenInvalid}
	}

	issuedAt, err := time.Parse(time.RFC3339, parts[1])
	if err != nil {
		return []string{ReasonTokenInvalid}
	}
	tokenDigest, ok := attest.NormalizeHex64(parts[2])
	if !ok {
		return []string{ReasonTokenInvalid}
	}
	expectedDigest, ok := attest.NormalizeHex64(expectedRequestDigest)
	if !ok {
		return []string{ReasonTokenInvalid}
	}

	var reasons []string
	if tokenDigest != expectedDigest {
		reasons = append(reasons, ReasonPayloadMismatch)
	}

	age := now.Sub(issuedAt)
	if age > ConfirmationMaxAgeMinutes*time.Minute || age < -ConfirmationFutureSkewMins*time.Minute {
		reasons = append(reasons, ReasonTokenStale)
	}

	provided, providedOK := attest.NormalizeSignature(parts[3])
	expectedSignature, expectedOK := ComputeTokenSignature(secret, ownerID, actionClass, tokenDigest, issuedAt)
	if !providedOK || !expectedOK || !hmac.Equal([]byte(provided), []byte(expectedSignature)) {
		reasons = append(reasons, ReasonTokenInvalid)
	}

	return dedupe(reasons)
}

func dedupe(codes []string) []string {
	seen := make(map[string]struct{}, len(codes))
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}
