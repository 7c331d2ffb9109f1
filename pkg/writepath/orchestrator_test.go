package writepath

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonzim-cmd/kura/pkg/apperror"
	"github.com/jonzim-cmd/kura/pkg/attest"
	"github.com/jonzim-cmd/kura/pkg/config"
	"github.com/jonzim-cmd/kura/pkg/handshake"
	"github.com/jonzim-cmd/kura/pkg/models"
	"github.com/jonzim-cmd/kura/pkg/services"
	"github.com/jonzim-cmd/kura/pkg/tier"
	"github.com/jonzim-cmd/kura/pkg/verify"
	testdb "github.com/jonzim-cmd/kura/test/database"
)

func newTestOrchestrator(t *testing.T) (*Orchestrator, *services.EventService) {
	t.Helper()
	client := testdb.NewTestClient(t)

	cfg := &config.Config{
		Security:              config.SecurityConfig{},
		ConfirmationTemplates: map[string]string{},
		Process: config.ProcessConfig{
			AttestationSecret: "orchestrator-test-secret",
			TelemetrySalt:     config.DefaultTelemetrySalt,
		},
	}

	eventService := services.NewEventService(client)
	projectionService := services.NewProjectionService(client)
	attestor := attest.NewVerifier(cfg.Process)
	tierEngine := tier.NewEngine(eventService)
	verifier := verify.NewVerifier(projectionService)

	return NewOrchestrator(cfg, eventService, projectionService, attestor, tierEngine, verifier), eventService
}

func lowImpactWrite(idempotencyKey string) *models.WriteWithProofRequest {
	return &models.WriteWithProofRequest{
		Events: []models.CreateEventRequest{{
			Timestamp: time.Now().UTC(),
			EventType: "set.logged",
			Data:      map[string]any{"exercise_id": "bench_press", "weight_kg": 80.0, "reps": 5.0},
			Metadata:  models.EventMetadata{Source: "agent", IdempotencyKey: idempotencyKey},
		}},
	}
}

func highImpactWrite(idempotencyKey string, now time.Time) *models.WriteWithProofRequest {
	return &models.WriteWithProofRequest{
		Events: []models.CreateEventRequest{{
			Timestamp: now,
			EventType: "training_plan.updated",
			Data:      map[string]any{"split": "upper_lower"},
			Metadata:  models.EventMetadata{Source: "agent", IdempotencyKey: idempotencyKey},
		}},
		IntentHandshake: &models.IntentHandshake{
			SchemaVersion:   handshake.IntentSchemaVersion,
			Goal:            "Adjust the weekly split",
			PlannedAction:   "Append training_plan.updated",
			Assumptions:     []string{"user approved the split change"},
			NonGoals:        []string{"no nutrition changes"},
			SuccessCriteria: "plan projection reflects the new split",
			ImpactClass:     models.ActionClassHighImpactWrite,
			CreatedAt:       now.Add(-time.Minute),
			HandshakeID:     "hs-test",
		},
	}
}

func TestOrchestratorExecute(t *testing.T) {
	orchestrator, eventService := newTestOrchestrator(t)
	ctx := context.Background()

	t.Run("happy path low-impact write", func(t *testing.T) {
		ownerID := uuid.New()
		response, err := orchestrator.Execute(ctx, ownerID, "", lowImpactWrite("s1-key"))
		require.NoError(t, err)

		require.Len(t, response.Receipts, 1)
		assert.Equal(t, models.CheckStatusVerified, response.Verification.Status)
		assert.True(t, response.ClaimGuard.AllowSavedClaim)
		assert.Equal(t, models.ClaimStatusSavedVerified, response.ClaimGuard.ClaimStatus)
		assert.NotContains(t, response.ClaimGuard.UncertaintyMarkers, models.MarkerWriteReceiptIncomplete)
		assert.Equal(t, models.AuditStatusClean, response.SessionAudit.Status)

		// Derived quality event landed alongside the primary write.
		page, err := eventService.List(ctx, ownerID, models.ListEventsParams{
			EventType: "quality.save_claim.checked", Limit: 10,
		})
		require.NoError(t, err)
		assert.Len(t, page.Data, 1)
	})

	t.Run("high-impact first call returns confirm-first challenge", func(t *testing.T) {
		ownerID := uuid.New()
		now := time.Now().UTC()

		_, err := orchestrator.Execute(ctx, ownerID, "", highImpactWrite("s2-key", now))

		var validation *apperror.Validation
		require.ErrorAs(t, err, &validation)
		received, ok := validation.Received.(map[string]any)
		require.True(t, ok)
		assert.Contains(t, received["reason_codes"], handshake.ReasonConfirmationRequired)
		assert.Equal(t, []string{"training_plan.updated:1"}, received["pending_change_set"])
		require.NotEmpty(t, received["confirmation_token"])

		// Nothing was appended on the rejection.
		count, err := eventService.CountByOwner(ctx, ownerID)
		require.NoError(t, err)
		assert.Zero(t, count)

		t.Run("second call with the issued token succeeds", func(t *testing.T) {
			token, ok := received["confirmation_token"].(string)
			require.True(t, ok)

			confirmed := highImpactWrite("s2-key", now)
			confirmed.HighImpactConfirmation = &models.HighImpactConfirmation{
				SchemaVersion:     handshake.ConfirmationSchemaVersion,
				Confirmed:         true,
				ConfirmedAt:       time.Now().UTC(),
				ConfirmationToken: token,
			}

			response, err := orchestrator.Execute(ctx, ownerID, "", confirmed)
			require.NoError(t, err)
			require.Len(t, response.Receipts, 1)
			assert.True(t, response.ClaimGuard.AllowSavedClaim)
			require.NotNil(t, response.Intent)
			assert.Equal(t, "accepted", response.Intent.Status)
		})

		t.Run("mutated payload invalidates the token", func(t *testing.T) {
			token := received["confirmation_token"].(string)

			mutated := highImpactWrite("s2-key-mutated", now)
			mutated.Events[0].Data["split"] = "push_pull_legs"
			mutated.HighImpactConfirmation = &models.HighImpactConfirmation{
				SchemaVersion:     handshake.ConfirmationSchemaVersion,
				Confirmed:         true,
				ConfirmedAt:       time.Now().UTC(),
				ConfirmationToken: token,
			}

			_, err := orchestrator.Execute(ctx, ownerID, "", mutated)
			var mutationErr *apperror.Validation
			require.ErrorAs(t, err, &mutationErr)
			mutationReceived := mutationErr.Received.(map[string]any)
			assert.Contains(t, mutationReceived["reason_codes"], handshake.ReasonPayloadMismatch)
		})
	})

	t.Run("high-impact write without handshake is rejected", func(t *testing.T) {
		ownerID := uuid.New()
		req := highImpactWrite("no-handshake", time.Now().UTC())
		req.IntentHandshake = nil

		_, err := orchestrator.Execute(ctx, ownerID, "", req)
		var validation *apperror.Validation
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, "intent_handshake", validation.Field)
	})

	t.Run("executing the same write twice conflicts without duplicating", func(t *testing.T) {
		ownerID := uuid.New()
		_, err := orchestrator.Execute(ctx, ownerID, "", lowImpactWrite("idem-key"))
		require.NoError(t, err)
		countAfterFirst, err := eventService.CountByOwner(ctx, ownerID)
		require.NoError(t, err)

		_, err = orchestrator.Execute(ctx, ownerID, "", lowImpactWrite("idem-key"))
		var conflict *apperror.IdempotencyConflict
		require.True(t, errors.As(err, &conflict))
		assert.Equal(t, "idem-key", conflict.IdempotencyKey)

		countAfterSecond, err := eventService.CountByOwner(ctx, ownerID)
		require.NoError(t, err)
		assert.Equal(t, countAfterFirst, countAfterSecond)
	})

	t.Run("invalid invariant rejects before append", func(t *testing.T) {
		ownerID := uuid.New()
		req := &models.WriteWithProofRequest{
			Events: []models.CreateEventRequest{{
				Timestamp: time.Now().UTC(),
				EventType: "event.retracted",
				Data:      map[string]any{},
				Metadata:  models.EventMetadata{IdempotencyKey: "bad-retraction"},
			}},
		}

		_, err := orchestrator.Execute(ctx, ownerID, "", req)
		var violation *apperror.PolicyViolation
		require.ErrorAs(t, err, &violation)

		count, err := eventService.CountByOwner(ctx, ownerID)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("unreachable read-after-write target keeps the claim unproven", func(t *testing.T) {
		ownerID := uuid.New()
		req := lowImpactWrite("raw-key")
		req.ReadAfterWriteTargets = []models.ReadAfterWriteTarget{
			{ProjectionType: "exercise_progression", Key: "bench_press"},
		}
		timeoutMs := 300
		req.VerifyTimeoutMs = &timeoutMs

		response, err := orchestrator.Execute(ctx, ownerID, "", req)
		require.NoError(t, err)
		assert.False(t, response.ClaimGuard.AllowSavedClaim)
		assert.NotEqual(t, models.ClaimStatusSavedVerified, response.ClaimGuard.ClaimStatus)
		assert.Contains(t, response.ClaimGuard.UncertaintyMarkers, models.MarkerReadAfterWriteUnverified)
		assert.Equal(t, "unresolved", response.Reliability.State)
	})
}

func TestOrchestratorSimulate(t *testing.T) {
	orchestrator, eventService := newTestOrchestrator(t)
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("simulate predicts impacts without appending", func(t *testing.T) {
		result, err := orchestrator.Simulate(ctx, ownerID, lowImpactWrite("sim-key").Events)
		require.NoError(t, err)
		require.True(t, result.Valid)

		types := map[string]string{}
		for _, impact := range result.Impacts {
			types[impact.ProjectionType+"/"+impact.Key] = impact.ChangeMode
		}
		assert.Equal(t, ChangeModeCreate, types["exercise_progression/bench_press"])
		assert.Equal(t, ChangeModeCreate, types["user_profile/me"])

		count, err := eventService.CountByOwner(ctx, ownerID)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("custom rules route matching events", func(t *testing.T) {
		_, err := eventService.AppendAtomic(ctx, ownerID, []models.CreateEventRequest{{
			Timestamp: time.Now().UTC(),
			EventType: "projection_rule.created",
			Data: map[string]any{
				"name":          "bench-volume",
				"rule_type":     "field_tracking",
				"source_events": []any{"set.logged"},
				"fields":        []any{"weight_kg"},
			},
			Metadata: models.EventMetadata{IdempotencyKey: "rule-1"},
		}})
		require.NoError(t, err)

		result, err := orchestrator.Simulate(ctx, ownerID, lowImpactWrite("sim-key-2").Events)
		require.NoError(t, err)

		found := false
		for _, impact := range result.Impacts {
			if impact.ProjectionType == "custom" && impact.Key == "bench-volume" {
				found = true
			}
		}
		assert.True(t, found, "custom rule should route set.logged")
	})
}
