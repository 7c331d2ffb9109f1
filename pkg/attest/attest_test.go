package attest

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonzim-cmd/kura/pkg/config"
	"github.com/jonzim-cmd/kura/pkg/models"
)

const testSecret = "attestation-test-secret"

func testRequest() *models.WriteWithProofRequest {
	return &models.WriteWithProofRequest{
		Events: []models.CreateEventRequest{{
			Timestamp: time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC),
			EventType: "set.logged",
			Data:      map[string]any{"exercise_id": "bench_press", "weight_kg": 80.0, "reps": 5.0},
			Metadata:  models.EventMetadata{Source: "test", IdempotencyKey: "key-1"},
		}},
		ReadAfterWriteTargets: []models.ReadAfterWriteTarget{
			{ProjectionType: "exercise_progression", Key: "bench_press"},
		},
	}
}

func signedAttestation(t *testing.T, req *models.WriteWithProofRequest, ownerID uuid.UUID, issuedAt time.Time, requestID string) *models.ModelAttestation {
	t.Helper()
	digest := AttestationRequestDigest(req, models.ActionClassLowImpactWrite)
	signature := ComputeSignature(testSecret, "claude-sonnet-4", issuedAt, requestID, digest, ownerID)
	return &models.ModelAttestation{
		SchemaVersion:        AttestationSchemaVersion,
		RuntimeModelIdentity: "Claude-Sonnet-4",
		IssuedAt:             issuedAt,
		RequestID:            requestID,
		RequestDigest:        digest,
		Signature:            signature,
	}
}

func newTestVerifier() *Verifier {
	return NewVerifier(config.ProcessConfig{AttestationSecret: testSecret})
}

func TestBuildWriteRequestDigest(t *testing.T) {
	req := testRequest()

	t.Run("is stable and 64 hex chars", func(t *testing.T) {
		first := AttestationRequestDigest(req, models.ActionClassLowImpactWrite)
		second := AttestationRequestDigest(req, models.ActionClassLowImpactWrite)
		assert.Equal(t, first, second)
		assert.Len(t, first, 64)
	})

	t.Run("changes when the payload changes", func(t *testing.T) {
		original := AttestationRequestDigest(req, models.ActionClassLowImpactWrite)

		mutated := testRequest()
		mutated.Events[0].Data["weight_kg"] = 82.5
		assert.NotEqual(t, original, AttestationRequestDigest(mutated, models.ActionClassLowImpactWrite))
	})

	t.Run("confirmation digest ignores the confirmation block", func(t *testing.T) {
		withConfirmation := testRequest()
		withConfirmation.HighImpactConfirmation = &models.HighImpactConfirmation{
			SchemaVersion: "high_impact_confirmation.v1",
			Confirmed:     true,
			ConfirmedAt:   time.Now(),
		}
		assert.Equal(t,
			ConfirmationRequestDigest(testRequest(), models.ActionClassHighImpactWrite),
			ConfirmationRequestDigest(withConfirmation, models.ActionClassHighImpactWrite))
	})
}

func TestVerify(t *testing.T) {
	ownerID := uuid.New()
	now := time.Now().UTC()
	req := testRequest()
	digest := AttestationRequestDigest(req, models.ActionClassLowImpactWrite)

	t.Run("valid attestation resolves the identity", func(t *testing.T) {
		verifier := newTestVerifier()
		attestation := signedAttestation(t, req, ownerID, now, "req-1")

		identity, reasons := verifier.Verify(attestation, digest, ownerID, now)
		require.Empty(t, reasons)
		assert.Equal(t, "claude-sonnet-4", identity)
	})

	t.Run("accepts sha256-prefixed signatures", func(t *testing.T) {
		verifier := newTestVerifier()
		attestation := signedAttestation(t, req, ownerID, now, "req-prefixed")
		attestation.Signature = "sha256=" + attestation.Signature

		_, reasons := verifier.Verify(attestation, digest, ownerID, now)
		assert.Empty(t, reasons)
	})

	t.Run("replay of the same request id is rejected", func(t *testing.T) {
		verifier := newTestVerifier()
		first := signedAttestation(t, req, ownerID, now, "req-replay")
		_, reasons := verifier.Verify(first, digest, ownerID, now)
		require.Empty(t, reasons)

		second := signedAttestation(t, req, ownerID, now.Add(time.Second), "req-replay")
		_, reasons = verifier.Verify(second, digest, ownerID, now.Add(time.Second))
		assert.Contains(t, reasons, ReasonReplayed)
	})

	t.Run("stale attestation accumulates the stale reason", func(t *testing.T) {
		verifier := newTestVerifier()
		issuedAt := now.Add(-10 * time.Minute)
		attestation := signedAttestation(t, req, ownerID, issuedAt, "req-stale")

		_, reasons := verifier.Verify(attestation, digest, ownerID, now)
		assert.Contains(t, reasons, ReasonStale)
	})

	t.Run("future-skewed attestation is stale", func(t *testing.T) {
		verifier := newTestVerifier()
		issuedAt := now.Add(time.Minute)
		attestation := signedAttestation(t, req, ownerID, issuedAt, "req-future")

		_, reasons := verifier.Verify(attestation, digest, ownerID, now)
		assert.Contains(t, reasons, ReasonStale)
	})

	t.Run("digest mismatch is reported", func(t *testing.T) {
		verifier := newTestVerifier()
		attestation := signedAttestation(t, req, ownerID, now, "req-digest")
		attestation.RequestDigest = StableHashSuffix("something else", 64)

		_, reasons := verifier.Verify(attestation, digest, ownerID, now)
		assert.Contains(t, reasons, ReasonInvalidDigest)
	})

	t.Run("tampered signature is rejected", func(t *testing.T) {
		verifier := newTestVerifier()
		attestation := signedAttestation(t, req, ownerID, now, "req-tampered")
		attestation.Signature = StableHashSuffix("forged", 64)

		_, reasons := verifier.Verify(attestation, digest, ownerID, now)
		assert.Contains(t, reasons, ReasonInvalidSignature)
	})

	t.Run("failed verification does not consume the nonce", func(t *testing.T) {
		verifier := newTestVerifier()
		bad := signedAttestation(t, req, ownerID, now, "req-retry")
		bad.Signature = StableHashSuffix("forged", 64)
		_, reasons := verifier.Verify(bad, digest, ownerID, now)
		require.NotEmpty(t, reasons)

		good := signedAttestation(t, req, ownerID, now, "req-retry")
		_, reasons = verifier.Verify(good, digest, ownerID, now)
		assert.Empty(t, reasons)
	})

	t.Run("missing secret short-circuits", func(t *testing.T) {
		verifier := NewVerifier(config.ProcessConfig{})
		attestation := signedAttestation(t, req, ownerID, now, "req-nosecret")

		_, reasons := verifier.Verify(attestation, digest, ownerID, now)
		assert.Contains(t, reasons, ReasonSecretUnconfigured)
	})
}

func TestResolveForWrite(t *testing.T) {
	ownerID := uuid.New()
	now := time.Now().UTC()

	t.Run("verified attestation wins", func(t *testing.T) {
		verifier := newTestVerifier()
		req := testRequest()
		req.ModelAttestation = signedAttestation(t, req, ownerID, now, "resolve-1")

		resolved := verifier.ResolveForWrite(req, models.ActionClassLowImpactWrite, "", ownerID, now)
		assert.Equal(t, "claude-sonnet-4", resolved.ModelIdentity)
		assert.Equal(t, models.IdentitySourceAttestedRuntime, resolved.Source)
		assert.Equal(t, "resolve-1", resolved.AttestationRequestID)
	})

	t.Run("invalid attestation falls back to unknown with reasons", func(t *testing.T) {
		verifier := newTestVerifier()
		req := testRequest()
		req.ModelAttestation = signedAttestation(t, req, ownerID, now.Add(-10*time.Minute), "resolve-2")

		resolved := verifier.ResolveForWrite(req, models.ActionClassLowImpactWrite, "", ownerID, now)
		assert.Equal(t, "unknown", resolved.ModelIdentity)
		assert.Equal(t, models.IdentitySourceAttestationInvalid, resolved.Source)
		assert.Contains(t, resolved.ReasonCodes, ReasonStale)
		assert.Contains(t, resolved.ReasonCodes, ReasonIdentityUnknownFallback)
	})

	t.Run("client map fallback", func(t *testing.T) {
		verifier := NewVerifier(config.ProcessConfig{
			ModelByClientID: map[string]string{"mcp-bridge": "claude-haiku-4"},
		})

		resolved := verifier.ResolveForWrite(testRequest(), models.ActionClassLowImpactWrite, "MCP-Bridge", ownerID, now)
		assert.Equal(t, "claude-haiku-4", resolved.ModelIdentity)
		assert.Equal(t, models.IdentitySourceClientMap, resolved.Source)
	})

	t.Run("runtime default fallback", func(t *testing.T) {
		verifier := NewVerifier(config.ProcessConfig{RuntimeModelIdentity: "claude-opus-4"})

		resolved := verifier.ResolveForWrite(testRequest(), models.ActionClassLowImpactWrite, "", ownerID, now)
		assert.Equal(t, "claude-opus-4", resolved.ModelIdentity)
		assert.Equal(t, models.IdentitySourceRuntimeDefault, resolved.Source)
	})

	t.Run("no source yields unknown with both reasons", func(t *testing.T) {
		verifier := NewVerifier(config.ProcessConfig{})

		resolved := verifier.ResolveForWrite(testRequest(), models.ActionClassLowImpactWrite, "", ownerID, now)
		assert.Equal(t, "unknown", resolved.ModelIdentity)
		assert.Contains(t, resolved.ReasonCodes, ReasonIdentityUnknownFallback)
		assert.Contains(t, resolved.ReasonCodes, ReasonAttestationMissing)
	})
}

func TestNonceCacheSweep(t *testing.T) {
	cache := NewNonceCache()
	now := time.Now()

	require.True(t, cache.Consume("old", now))
	require.True(t, cache.Consume("fresh", now.Add(19*time.Minute)))

	// Retention is 4× max age (20 minutes); "old" expires, "fresh" stays.
	assert.True(t, cache.Consume("old", now.Add(21*time.Minute)))
	assert.False(t, cache.Consume("fresh", now.Add(21*time.Minute)))
	assert.Equal(t, 2, cache.Len())
}
