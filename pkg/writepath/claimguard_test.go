package writepath

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonzim-cmd/kura/pkg/autonomy"
	"github.com/jonzim-cmd/kura/pkg/models"
)

type testEventList struct {
	eventType string
}

func toRequests(events []testEventList) []models.CreateEventRequest {
	out := make([]models.CreateEventRequest, 0, len(events))
	for _, evt := range events {
		out = append(out, models.CreateEventRequest{EventType: evt.eventType})
	}
	return out
}

func completeReceipts(n int) []models.WriteReceipt {
	receipts := make([]models.WriteReceipt, 0, n)
	for i := 0; i < n; i++ {
		id, _ := uuid.NewV7()
		receipts = append(receipts, models.WriteReceipt{
			EventID:        id,
			EventType:      "set.logged",
			IdempotencyKey: uuid.NewString(),
		})
	}
	return receipts
}

func verifiedChecks(n int) []models.ReadAfterWriteCheck {
	checks := make([]models.ReadAfterWriteCheck, 0, n)
	for i := 0; i < n; i++ {
		checks = append(checks, models.ReadAfterWriteCheck{
			ProjectionType: "exercise_progression",
			Key:            "bench_press",
			Status:         models.CheckStatusVerified,
		})
	}
	return checks
}

func allowGate() models.AutonomyGate {
	return models.AutonomyGate{
		Decision:               models.GateDecisionAllow,
		ActionClass:            models.ActionClassLowImpactWrite,
		ModelTier:              models.TierModerate,
		EffectiveQualityStatus: models.QualityHealthy,
		ReasonCodes:            []string{},
	}
}

func TestBuildClaimGuard(t *testing.T) {
	policy := autonomy.DefaultPolicy(nil)

	t.Run("complete receipts and verified checks allow the claim", func(t *testing.T) {
		guard := BuildClaimGuard(completeReceipts(2), 2, verifiedChecks(1), nil, policy, allowGate())

		assert.True(t, guard.AllowSavedClaim)
		assert.Equal(t, models.ClaimStatusSavedVerified, guard.ClaimStatus)
		assert.Empty(t, guard.UncertaintyMarkers)
		assert.NotEmpty(t, guard.RecommendedUserPhrase)
	})

	t.Run("missing receipt fails the claim", func(t *testing.T) {
		guard := BuildClaimGuard(completeReceipts(1), 2, verifiedChecks(1), nil, policy, allowGate())

		assert.False(t, guard.AllowSavedClaim)
		assert.Equal(t, models.ClaimStatusFailed, guard.ClaimStatus)
		assert.Contains(t, guard.UncertaintyMarkers, models.MarkerWriteReceiptIncomplete)
	})

	t.Run("pending read-after-write keeps the claim pending", func(t *testing.T) {
		checks := verifiedChecks(1)
		checks[0].Status = models.CheckStatusPending
		guard := BuildClaimGuard(completeReceipts(1), 1, checks, nil, policy, allowGate())

		assert.False(t, guard.AllowSavedClaim)
		assert.Equal(t, models.ClaimStatusPending, guard.ClaimStatus)
		assert.Contains(t, guard.UncertaintyMarkers, models.MarkerReadAfterWriteUnverified)
	})

	t.Run("claim guard consistency invariant", func(t *testing.T) {
		// allow_saved_claim = true implies every receipt non-empty and
		// every requested check verified.
		guard := BuildClaimGuard(completeReceipts(3), 3, verifiedChecks(2), nil, policy, allowGate())
		require.True(t, guard.AllowSavedClaim)
		for _, marker := range guard.UncertaintyMarkers {
			assert.NotEqual(t, models.MarkerWriteReceiptIncomplete, marker)
			assert.NotEqual(t, models.MarkerReadAfterWriteUnverified, marker)
		}
	})

	t.Run("warnings decorate but do not block", func(t *testing.T) {
		warnings := []models.BatchEventWarning{{EventIndex: 0, Field: "weight_kg", Severity: "warning"}}
		guard := BuildClaimGuard(completeReceipts(1), 1, verifiedChecks(1), warnings, policy, allowGate())

		assert.True(t, guard.AllowSavedClaim)
		assert.Contains(t, guard.UncertaintyMarkers, models.MarkerPlausibilityWarningsPresent)
	})

	t.Run("confirm-first gate marks tier uncertainty and prompts", func(t *testing.T) {
		gate := allowGate()
		gate.Decision = models.GateDecisionConfirmFirst
		gate.ModelTier = models.TierStrict

		guard := BuildClaimGuard(completeReceipts(1), 1, verifiedChecks(1), nil, policy, gate)

		assert.True(t, guard.AllowSavedClaim)
		assert.Contains(t, guard.UncertaintyMarkers, models.MarkerAutonomyConfirmFirstByTier)
		assert.NotEmpty(t, guard.NextActionConfirmationPrompt)
		assert.Equal(t, policy.ConfirmationTemplates["post_save_followup"], guard.RecommendedUserPhrase)
	})

	t.Run("verbosity parameterizes the phrase", func(t *testing.T) {
		concise := policy
		concise.InteractionVerbosity = "concise"
		guard := BuildClaimGuard(completeReceipts(1), 1, verifiedChecks(1), nil, concise, allowGate())
		assert.Equal(t, "Saved.", guard.RecommendedUserPhrase)

		detailed := policy
		detailed.InteractionVerbosity = "detailed"
		guard = BuildClaimGuard(completeReceipts(1), 1, verifiedChecks(1), nil, detailed, allowGate())
		assert.Contains(t, guard.RecommendedUserPhrase, "durable receipt")
	})
}

func TestSaveClaimConfidenceBand(t *testing.T) {
	policy := autonomy.DefaultPolicy(nil)

	verified := BuildClaimGuard(completeReceipts(1), 1, verifiedChecks(1), nil, policy, allowGate())
	assert.Equal(t, "high", SaveClaimConfidenceBand(verified))

	pendingChecks := verifiedChecks(1)
	pendingChecks[0].Status = models.CheckStatusPending
	pending := BuildClaimGuard(completeReceipts(1), 1, pendingChecks, nil, policy, allowGate())
	assert.Equal(t, "medium", SaveClaimConfidenceBand(pending))

	failed := BuildClaimGuard(nil, 1, verifiedChecks(1), nil, policy, allowGate())
	assert.Equal(t, "low", SaveClaimConfidenceBand(failed))
}

func TestBuildSaveClaimCheckedEvent(t *testing.T) {
	policy := autonomy.DefaultPolicy(nil)
	guard := BuildClaimGuard(completeReceipts(1), 1, verifiedChecks(1), nil, policy, allowGate())
	verification := models.VerificationSummary{
		Status: models.CheckStatusVerified, WritePath: WritePathAgentProof,
		RequiredChecks: 1, VerifiedChecks: 1,
	}
	identity := models.ResolvedModelIdentity{ModelIdentity: "claude-sonnet-4", Source: models.IdentitySourceAttestedRuntime}

	event := BuildSaveClaimCheckedEvent(1, completeReceipts(1), verification, guard, models.SessionAuditSummary{Status: models.AuditStatusClean}, identity)

	assert.Equal(t, "quality.save_claim.checked", event.EventType)
	assert.Equal(t, true, event.Data["save_echo_required"])
	assert.Equal(t, "not_assessed", event.Data["save_echo_completeness"])
	assert.Equal(t, false, event.Data["mismatch_detected"])
	assert.Contains(t, event.Metadata.IdempotencyKey, "quality-save-claim-checked-")
}

func TestBuildSaveHandshakeLearningSignals(t *testing.T) {
	policy := autonomy.DefaultPolicy(nil)
	ownerID := uuid.New()
	verification := models.VerificationSummary{Status: models.CheckStatusVerified, WritePath: WritePathAgentProof}
	identity := models.ResolvedModelIdentity{ModelIdentity: "claude-sonnet-4"}

	t.Run("verified write emits one outcome signal", func(t *testing.T) {
		guard := BuildClaimGuard(completeReceipts(1), 1, verifiedChecks(1), nil, policy, allowGate())
		signals := BuildSaveHandshakeLearningSignals(ownerID, "salt", 1, completeReceipts(1), verification, guard, identity)

		require.Len(t, signals, 1)
		assert.Equal(t, "learning.signal.logged", signals[0].EventType)
		assert.Equal(t, "save_handshake_verified", signals[0].Data["signal_type"])
		assert.Equal(t, "outcome_signal", signals[0].Data["category"])
	})

	t.Run("unverified write emits pending and mismatch signals", func(t *testing.T) {
		checks := verifiedChecks(1)
		checks[0].Status = models.CheckStatusPending
		guard := BuildClaimGuard(completeReceipts(1), 1, checks, nil, policy, allowGate())
		signals := BuildSaveHandshakeLearningSignals(ownerID, "salt", 1, completeReceipts(1), verification, guard, identity)

		require.Len(t, signals, 2)
		assert.Equal(t, "save_handshake_pending", signals[0].Data["signal_type"])
		assert.Equal(t, "save_claim_mismatch_attempt", signals[1].Data["signal_type"])
	})

	t.Run("owner reference is pseudonymized", func(t *testing.T) {
		pseudonym := PseudonymizeOwnerID(ownerID, "salt")
		assert.True(t, len(pseudonym) == 2+24)
		assert.NotContains(t, pseudonym, ownerID.String())
		assert.Equal(t, pseudonym, PseudonymizeOwnerID(ownerID, "salt"))
		assert.NotEqual(t, pseudonym, PseudonymizeOwnerID(ownerID, "other-salt"))
	})
}
