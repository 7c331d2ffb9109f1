package autonomy

import (
	"time"

	"github.com/jonzim-cmd/kura/pkg/models"
)

// Gate reason codes.
const (
	ReasonCalibrationDegraded = "calibration_degraded_requires_confirmation"
	ReasonIntegrityDegraded   = "integrity_slo_degraded_requires_confirmation"
	ReasonCalibrationMonitor  = "calibration_monitor_requires_confirmation"
	ReasonIntegrityMonitor    = "integrity_slo_monitor_requires_confirmation"
	ReasonStrictnessAlways    = "user_confirmation_strictness_always"
	ReasonModelTierStrict     = "model_tier_strict_requires_confirmation"
	ReasonModelTier           = "model_tier_requires_confirmation"
	ReasonPrinciplesStale     = "memory_tier_principles_stale_requires_confirmation"
	ReasonPrinciplesMissing   = "memory_tier_principles_missing_requires_confirmation"
)

// PrinciplesMaxAge is how long the owner's principles memory tier stays
// fresh before high-impact allows are downgraded to confirm-first.
const PrinciplesMaxAge = 180 * 24 * time.Hour

// EvaluateGate composes the per-write decision from quality posture,
// user strictness, and the tier policy. Low-impact writes always pass.
func EvaluateGate(actionClass string, policy models.AutonomyPolicy, tierPolicy models.ModelTierPolicy, baseReasonCodes []string) models.AutonomyGate {
	reasonCodes := append([]string{}, baseReasonCodes...)
	effectiveQuality := WorstQualityStatus(policy.SLOStatus, policy.CalibrationStatus)
	decision := models.GateDecisionAllow

	if actionClass == models.ActionClassHighImpactWrite {
		switch {
		case effectiveQuality == models.QualityDegraded:
			decision = models.GateDecisionConfirmFirst
			if NormalizeQualityStatus(policy.CalibrationStatus) == models.QualityDegraded {
				reasonCodes = append(reasonCodes, ReasonCalibrationDegraded)
			}
			if NormalizeQualityStatus(policy.SLOStatus) == models.QualityDegraded {
				reasonCodes = append(reasonCodes, ReasonIntegrityDegraded)
			}
		case effectiveQuality == models.QualityMonitor:
			decision = models.GateDecisionConfirmFirst
			if NormalizeQualityStatus(policy.CalibrationStatus) == models.QualityMonitor {
				reasonCodes = append(reasonCodes, ReasonCalibrationMonitor)
			} else {
				reasonCodes = append(reasonCodes, ReasonIntegrityMonitor)
			}
		case policy.RequireConfirmationForNonTrivial:
			decision = models.GateDecisionConfirmFirst
			reasonCodes = append(reasonCodes, ReasonStrictnessAlways)
		case tierPolicy.HighImpactWritePolicy == models.GateDecisionConfirmFirst:
			decision = models.GateDecisionConfirmFirst
			if tierPolicy.CapabilityTier == models.TierStrict {
				reasonCodes = append(reasonCodes, ReasonModelTierStrict)
			} else {
				reasonCodes = append(reasonCodes, ReasonModelTier)
			}
		}
	}

	return models.AutonomyGate{
		Decision:               decision,
		ActionClass:            actionClass,
		ModelTier:              tierPolicy.CapabilityTier,
		EffectiveQualityStatus: effectiveQuality,
		ReasonCodes:            dedupeReasonCodes(reasonCodes),
	}
}

// DefaultGate is the gate used outside high-impact evaluation.
func DefaultGate() models.AutonomyGate {
	return models.AutonomyGate{
		Decision:               models.GateDecisionAllow,
		ActionClass:            models.ActionClassLowImpactWrite,
		ModelTier:              models.TierModerate,
		EffectiveQualityStatus: models.QualityHealthy,
		ReasonCodes:            []string{},
	}
}

// ApplyPrinciplesMemoryGuard upgrades an allow to confirm-first when
// the owner's principles tier is missing or stale. Only high-impact
// writes are affected.
func ApplyPrinciplesMemoryGuard(gate models.AutonomyGate, actionClass string, userProfile *models.Projection, now time.Time) models.AutonomyGate {
	if actionClass != models.ActionClassHighImpactWrite {
		return gate
	}

	reasonCode, guarded := principlesConfirmReason(userProfile, now)
	if !guarded {
		return gate
	}

	if gate.Decision == models.GateDecisionAllow {
		gate.Decision = models.GateDecisionConfirmFirst
	}
	gate.ReasonCodes = dedupeReasonCodes(append(gate.ReasonCodes, reasonCode))
	return gate
}

func principlesConfirmReason(userProfile *models.Projection, now time.Time) (string, bool) {
	if userProfile == nil {
		return ReasonPrinciplesMissing, true
	}
	memory, ok := userProfile.Data["memory_tiers"].(map[string]any)
	if !ok {
		return ReasonPrinciplesMissing, true
	}
	principles, ok := memory["principles"].(map[string]any)
	if !ok {
		return ReasonPrinciplesMissing, true
	}
	updatedAtRaw, ok := principles["updated_at"].(string)
	if !ok {
		return ReasonPrinciplesMissing, true
	}
	updatedAt, err := time.Parse(time.RFC3339, updatedAtRaw)
	if err != nil {
		return ReasonPrinciplesMissing, true
	}
	if now.Sub(updatedAt) > PrinciplesMaxAge {
		return ReasonPrinciplesStale, true
	}
	return "", false
}

func dedupeReasonCodes(codes []string) []string {
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
