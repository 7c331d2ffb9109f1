package handshake

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonzim-cmd/kura/pkg/apperror"
	"github.com/jonzim-cmd/kura/pkg/attest"
	"github.com/jonzim-cmd/kura/pkg/models"
)

const testSecret = "confirmation-test-secret"

func validIntent(now time.Time) *models.IntentHandshake {
	return &models.IntentHandshake{
		SchemaVersion:   IntentSchemaVersion,
		Goal:            "Update the training plan for next week",
		PlannedAction:   "Append training_plan.updated with the new split",
		Assumptions:     []string{"user confirmed the new split in chat"},
		NonGoals:        []string{"no change to nutrition targets"},
		SuccessCriteria: "training_plan projection reflects the new split",
		ImpactClass:     models.ActionClassHighImpactWrite,
		CreatedAt:       now.Add(-5 * time.Minute),
		HandshakeID:     "hs-1",
	}
}

func TestValidateIntent(t *testing.T) {
	now := time.Now().UTC()

	t.Run("valid handshake passes", func(t *testing.T) {
		require.NoError(t, ValidateIntent(validIntent(now), models.ActionClassHighImpactWrite, now))
	})

	t.Run("stale handshake is rejected", func(t *testing.T) {
		intent := validIntent(now)
		intent.CreatedAt = now.Add(-46 * time.Minute)
		err := ValidateIntent(intent, models.ActionClassHighImpactWrite, now)

		var validation *apperror.Validation
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, "intent_handshake.created_at", validation.Field)
	})

	t.Run("impact class mismatch is rejected", func(t *testing.T) {
		intent := validIntent(now)
		intent.ImpactClass = models.ActionClassLowImpactWrite
		err := ValidateIntent(intent, models.ActionClassHighImpactWrite, now)

		var validation *apperror.Validation
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, "intent_handshake.impact_class", validation.Field)
	})

	t.Run("empty assumptions are rejected", func(t *testing.T) {
		intent := validIntent(now)
		intent.Assumptions = nil
		err := ValidateIntent(intent, models.ActionClassHighImpactWrite, now)
		require.Error(t, err)
	})
}

func TestConfirmationToken(t *testing.T) {
	ownerID := uuid.New()
	now := time.Now().UTC()
	digest := attest.StableHashSuffix("payload", 64)

	t.Run("round trip verifies", func(t *testing.T) {
		token, ok := IssueToken(testSecret, ownerID, models.ActionClassHighImpactWrite, digest, now)
		require.True(t, ok)
		assert.True(t, strings.HasPrefix(token, "v1|"))
		assert.Len(t, strings.Split(token, "|"), 4)

		reasons := VerifyToken(token, testSecret, ownerID, models.ActionClassHighImpactWrite, digest, now.Add(time.Minute))
		assert.Empty(t, reasons)
	})

	t.Run("payload mutation invalidates with payload_mismatch", func(t *testing.T) {
		token, _ := IssueToken(testSecret, ownerID, models.ActionClassHighImpactWrite, digest, now)
		otherDigest := attest.StableHashSuffix("different payload", 64)

		reasons := VerifyToken(token, testSecret, ownerID, models.ActionClassHighImpactWrite, otherDigest, now)
		assert.Contains(t, reasons, ReasonPayloadMismatch)
	})

	t.Run("expired token is stale", func(t *testing.T) {
		token, _ := IssueToken(testSecret, ownerID, models.ActionClassHighImpactWrite, digest, now)
		reasons := VerifyToken(token, testSecret, ownerID, models.ActionClassHighImpactWrite, digest, now.Add(46*time.Minute))
		assert.Contains(t, reasons, ReasonTokenStale)
	})

	t.Run("wrong owner invalidates the signature", func(t *testing.T) {
		token, _ := IssueToken(testSecret, ownerID, models.ActionClassHighImpactWrite, digest, now)
		reasons := VerifyToken(token, testSecret, uuid.New(), models.ActionClassHighImpactWrite, digest, now)
		assert.Contains(t, reasons, ReasonTokenInvalid)
	})

	t.Run("malformed token is invalid", func(t *testing.T) {
		reasons := VerifyToken("v1|not-a-token", testSecret, ownerID, models.ActionClassHighImpactWrite, digest, now)
		assert.Equal(t, []string{ReasonTokenInvalid}, reasons)
	})
}

func isHighImpact(eventType string) bool {
	return eventType == "training_plan.updated"
}

func confirmationEvents() []models.CreateEventRequest {
	return []models.CreateEventRequest{{
		EventType: "training_plan.updated",
		Data:      map[string]any{"split": "upper_lower"},
		Metadata:  models.EventMetadata{IdempotencyKey: "plan-1"},
	}}
}

func confirmFirstGate() models.AutonomyGate {
	return models.AutonomyGate{
		Decision:    models.GateDecisionConfirmFirst,
		ActionClass: models.ActionClassHighImpactWrite,
		ModelTier:   models.TierModerate,
		ReasonCodes: []string{"model_tier_requires_confirmation"},
	}
}

func TestValidateConfirmation(t *testing.T) {
	ownerID := uuid.New()
	now := time.Now().UTC()
	digest := attest.StableHashSuffix("confirmation payload", 64)

	t.Run("first call issues a challenge with token and change set", func(t *testing.T) {
		err := ValidateConfirmation(nil, confirmationEvents(), isHighImpact, confirmFirstGate(),
			ownerID, models.ActionClassHighImpactWrite, digest, testSecret, now)

		var validation *apperror.Validation
		require.ErrorAs(t, err, &validation)

		received, ok := validation.Received.(map[string]any)
		require.True(t, ok)
		assert.Contains(t, received["required_reason_codes"], ReasonConfirmationRequired)
		assert.Equal(t, []string{"training_plan.updated:1"}, received["pending_change_set"])
		assert.NotEmpty(t, received["confirmation_token"])
	})

	t.Run("second call with the issued token passes", func(t *testing.T) {
		token, ok := IssueToken(testSecret, ownerID, models.ActionClassHighImpactWrite, digest, now)
		require.True(t, ok)

		confirmation := &models.HighImpactConfirmation{
			SchemaVersion:     ConfirmationSchemaVersion,
			Confirmed:         true,
			ConfirmedAt:       now,
			ConfirmationToken: token,
		}
		err := ValidateConfirmation(confirmation, confirmationEvents(), isHighImpact, confirmFirstGate(),
			ownerID, models.ActionClassHighImpactWrite, digest, testSecret, now.Add(time.Minute))
		assert.NoError(t, err)
	})

	t.Run("confirmed=false is rejected", func(t *testing.T) {
		token, _ := IssueToken(testSecret, ownerID, models.ActionClassHighImpactWrite, digest, now)
		confirmation := &models.HighImpactConfirmation{
			SchemaVersion:     ConfirmationSchemaVersion,
			Confirmed:         false,
			ConfirmedAt:       now,
			ConfirmationToken: token,
		}
		err := ValidateConfirmation(confirmation, confirmationEvents(), isHighImpact, confirmFirstGate(),
			ownerID, models.ActionClassHighImpactWrite, digest, testSecret, now)
		require.Error(t, err)
	})

	t.Run("unconfigured secret fails with its own reason code", func(t *testing.T) {
		err := ValidateConfirmation(nil, confirmationEvents(), isHighImpact, confirmFirstGate(),
			ownerID, models.ActionClassHighImpactWrite, digest, "", now)

		var validation *apperror.Validation
		require.True(t, errors.As(err, &validation))
		received := validation.Received.(map[string]any)
		assert.Contains(t, received["reason_codes"], ReasonSecretUnconfigured)
	})
}

func TestSummarizeChangeSet(t *testing.T) {
	events := []models.CreateEventRequest{
		{EventType: "training_plan.updated"},
		{EventType: "training_plan.updated"},
		{EventType: "set.logged"},
	}
	assert.Equal(t, []string{"training_plan.updated:2"}, SummarizeChangeSet(events, isHighImpact))
}
