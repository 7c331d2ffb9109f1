package autonomy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonzim-cmd/kura/pkg/models"
	"github.com/jonzim-cmd/kura/pkg/tier"
)

func healthyPolicy() models.AutonomyPolicy {
	return DefaultPolicy(nil)
}

func freshUserProfile(now time.Time) *models.Projection {
	return &models.Projection{
		ProjectionType: "user_profile",
		Key:            "current",
		Data: map[string]any{
			"memory_tiers": map[string]any{
				"principles": map[string]any{
					"updated_at": now.Add(-24 * time.Hour).Format(time.RFC3339),
				},
			},
		},
	}
}

func TestEvaluateGate(t *testing.T) {
	advanced := tier.PolicyFromName(models.TierAdvanced)
	moderate := tier.PolicyFromName(models.TierModerate)
	strict := tier.PolicyFromName(models.TierStrict)

	t.Run("low impact always allows", func(t *testing.T) {
		gate := EvaluateGate(models.ActionClassLowImpactWrite, healthyPolicy(), strict, nil)
		assert.Equal(t, models.GateDecisionAllow, gate.Decision)
	})

	t.Run("healthy advanced tier allows high impact", func(t *testing.T) {
		gate := EvaluateGate(models.ActionClassHighImpactWrite, healthyPolicy(), advanced, nil)
		assert.Equal(t, models.GateDecisionAllow, gate.Decision)
	})

	t.Run("degraded quality requires confirmation with per-status reasons", func(t *testing.T) {
		policy := healthyPolicy()
		policy.SLOStatus = models.QualityDegraded
		policy.CalibrationStatus = models.QualityDegraded

		gate := EvaluateGate(models.ActionClassHighImpactWrite, policy, advanced, nil)
		assert.Equal(t, models.GateDecisionConfirmFirst, gate.Decision)
		assert.Equal(t, models.QualityDegraded, gate.EffectiveQualityStatus)
		assert.Contains(t, gate.ReasonCodes, ReasonIntegrityDegraded)
		assert.Contains(t, gate.ReasonCodes, ReasonCalibrationDegraded)
	})

	t.Run("monitor quality requires confirmation", func(t *testing.T) {
		policy := healthyPolicy()
		policy.CalibrationStatus = models.QualityMonitor

		gate := EvaluateGate(models.ActionClassHighImpactWrite, policy, advanced, nil)
		assert.Equal(t, models.GateDecisionConfirmFirst, gate.Decision)
		assert.Contains(t, gate.ReasonCodes, ReasonCalibrationMonitor)
	})

	t.Run("user strictness always forces confirmation", func(t *testing.T) {
		policy := healthyPolicy()
		policy.RequireConfirmationForNonTrivial = true

		gate := EvaluateGate(models.ActionClassHighImpactWrite, policy, advanced, nil)
		assert.Equal(t, models.GateDecisionConfirmFirst, gate.Decision)
		assert.Contains(t, gate.ReasonCodes, ReasonStrictnessAlways)
	})

	t.Run("tier policy confirm-first distinguishes strict", func(t *testing.T) {
		gate := EvaluateGate(models.ActionClassHighImpactWrite, healthyPolicy(), strict, nil)
		assert.Contains(t, gate.ReasonCodes, ReasonModelTierStrict)

		gate = EvaluateGate(models.ActionClassHighImpactWrite, healthyPolicy(), moderate, nil)
		assert.Contains(t, gate.ReasonCodes, ReasonModelTier)
	})
}

func TestApplyPrinciplesMemoryGuard(t *testing.T) {
	now := time.Now()
	advanced := tier.PolicyFromName(models.TierAdvanced)

	t.Run("fresh principles leave the gate untouched", func(t *testing.T) {
		gate := EvaluateGate(models.ActionClassHighImpactWrite, healthyPolicy(), advanced, nil)
		guarded := ApplyPrinciplesMemoryGuard(gate, models.ActionClassHighImpactWrite, freshUserProfile(now), now)
		assert.Equal(t, models.GateDecisionAllow, guarded.Decision)
	})

	t.Run("missing principles upgrade allow to confirm-first", func(t *testing.T) {
		gate := EvaluateGate(models.ActionClassHighImpactWrite, healthyPolicy(), advanced, nil)
		guarded := ApplyPrinciplesMemoryGuard(gate, models.ActionClassHighImpactWrite, nil, now)
		assert.Equal(t, models.GateDecisionConfirmFirst, guarded.Decision)
		assert.Contains(t, guarded.ReasonCodes, ReasonPrinciplesMissing)
	})

	t.Run("stale principles upgrade allow to confirm-first", func(t *testing.T) {
		profile := &models.Projection{Data: map[string]any{
			"memory_tiers": map[string]any{
				"principles": map[string]any{
					"updated_at": now.Add(-200 * 24 * time.Hour).Format(time.RFC3339),
				},
			},
		}}
		gate := EvaluateGate(models.ActionClassHighImpactWrite, healthyPolicy(), advanced, nil)
		guarded := ApplyPrinciplesMemoryGuard(gate, models.ActionClassHighImpactWrite, profile, now)
		assert.Equal(t, models.GateDecisionConfirmFirst, guarded.Decision)
		assert.Contains(t, guarded.ReasonCodes, ReasonPrinciplesStale)
	})

	t.Run("low impact writes are not guarded", func(t *testing.T) {
		gate := DefaultGate()
		guarded := ApplyPrinciplesMemoryGuard(gate, models.ActionClassLowImpactWrite, nil, now)
		assert.Equal(t, models.GateDecisionAllow, guarded.Decision)
	})
}

func TestApplyUserPreferences(t *testing.T) {
	profileWith := func(prefs map[string]any) *models.Projection {
		return &models.Projection{Data: map[string]any{
			"user": map[string]any{"preferences": prefs},
		}}
	}

	t.Run("verbosity override applies", func(t *testing.T) {
		policy := ApplyUserPreferences(healthyPolicy(), profileWith(map[string]any{"verbosity": "short"}))
		assert.Equal(t, "concise", policy.InteractionVerbosity)
	})

	t.Run("strictness never relaxes only when healthy", func(t *testing.T) {
		policy := healthyPolicy()
		policy.RequireConfirmationForNonTrivial = true
		relaxed := ApplyUserPreferences(policy, profileWith(map[string]any{"confirmation_strictness": "never"}))
		assert.False(t, relaxed.RequireConfirmationForNonTrivial)

		degraded := healthyPolicy()
		degraded.SLOStatus = models.QualityDegraded
		degraded.RequireConfirmationForNonTrivial = true
		kept := ApplyUserPreferences(degraded, profileWith(map[string]any{"confirmation_strictness": "never"}))
		assert.True(t, kept.RequireConfirmationForNonTrivial)
	})

	t.Run("scope loosening is clamped under degraded quality", func(t *testing.T) {
		degraded := healthyPolicy()
		degraded.SLOStatus = models.QualityDegraded
		degraded.MaxScopeLevel = "strict"
		policy := ApplyUserPreferences(degraded, profileWith(map[string]any{"autonomy_scope": "proactive"}))
		assert.Equal(t, "strict", policy.MaxScopeLevel)
		assert.Equal(t, "proactive", policy.UserRequestedScopeLevel)
	})

	t.Run("strictness always tightens everything", func(t *testing.T) {
		policy := ApplyUserPreferences(healthyPolicy(), profileWith(map[string]any{"confirmation_strictness": "always"}))
		assert.True(t, policy.RequireConfirmationForNonTrivial)
		assert.True(t, policy.RequireConfirmationForPlanUpdate)
		assert.True(t, policy.RequireConfirmationForRepairs)
		assert.False(t, policy.RepairAutoApplyEnabled)
	})
}

func TestApplyModelTierPolicy(t *testing.T) {
	t.Run("tier overlay only tightens scope", func(t *testing.T) {
		policy := healthyPolicy()
		policy.MaxScopeLevel = "proactive"
		tightened := ApplyModelTierPolicy(policy, "claude-sonnet-4", tier.PolicyFromName(models.TierModerate), nil)
		assert.Equal(t, "moderate", tightened.MaxScopeLevel)
		assert.Equal(t, models.TierModerate, tightened.CapabilityTier)
		assert.False(t, tightened.RepairAutoApplyEnabled)
		assert.True(t, tightened.RequireConfirmationForRepairs)
	})

	t.Run("identity reason codes are appended to the reason", func(t *testing.T) {
		policy := ApplyModelTierPolicy(healthyPolicy(), "unknown",
			tier.PolicyFromName(models.TierModerate), []string{"model_attestation_stale"})
		assert.Contains(t, policy.Reason, "model_identity_resolution=model_attestation_stale")
	})
}
