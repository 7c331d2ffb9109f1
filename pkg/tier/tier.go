// Package tier computes the per-owner effective capability tier from
// historical save-claim quality telemetry, with hysteresis so noisy
// samples do not flap the tier.
package tier

import (
	"context"
	"math"

	"github.com/google/uuid"

	"github.com/jonzim-cmd/kura/pkg/models"
)

// RegistryVersion identifies the tier → policy mapping in effect.
const RegistryVersion = "model_tier_registry_v1"

// Auto-tiering thresholds. The mismatch rate is a percentage of
// severity-weighted mismatches over the sample window.
const (
	LookbackDays           = 30
	MinSamples             = 12
	AdvancedMaxMismatchPct = 0.60
	ModerateMaxMismatchPct = 4.00
	AdvancedPromotePct     = 0.40
	AdvancedDemotePct      = 1.50
	StrictEnterPct         = 6.00
	StrictExitPct          = 2.00
)

// Reason codes surfaced alongside the tier policy.
const (
	ReasonLowSamplesConfirm = "model_tier_auto_low_samples_confirm"
	ReasonAutoQualityStrict = "model_tier_auto_quality_strict"
)

// TelemetrySource supplies the aggregated quality telemetry; the event
// service implements it.
type TelemetrySource interface {
	TierTelemetry(ctx context.Context, ownerID uuid.UUID, modelIdentity string, lookbackDays int) (sampleCount int64, weightedSum float64, previousTier string, err error)
}

// PolicyFromName maps a tier name to its operating envelope. Unknown
// names resolve to strict.
func PolicyFromName(tierName string) models.ModelTierPolicy {
	switch tierName {
	case models.TierAdvanced:
		return models.ModelTierPolicy{
			RegistryVersion:       RegistryVersion,
			CapabilityTier:        models.TierAdvanced,
			ConfidenceFloor:       0.70,
			AllowedActionScope:    "proactive",
			HighImpactWritePolicy: "allow",
			RepairAutoApplyCap:    "enabled",
		}
	case models.TierModerate:
		return models.ModelTierPolicy{
			RegistryVersion:       RegistryVersion,
			CapabilityTier:        models.TierModerate,
			ConfidenceFloor:       0.80,
			AllowedActionScope:    "moderate",
			HighImpactWritePolicy: "confirm_first",
			RepairAutoApplyCap:    "confirm_only",
		}
	default:
		return models.ModelTierPolicy{
			RegistryVersion:       RegistryVersion,
			CapabilityTier:        models.TierStrict,
			ConfidenceFloor:       0.90,
			AllowedActionScope:    "strict",
			HighImpactWritePolicy: "confirm_first",
			RepairAutoApplyCap:    "confirm_only",
		}
	}
}

// DefaultPolicy is the starting point for every model: moderate.
// Auto-tiering adjusts from observed quality.
func DefaultPolicy() models.ModelTierPolicy {
	return PolicyFromName(models.TierModerate)
}

// CandidateTier picks the tier the raw numbers point at, before
// hysteresis.
func CandidateTier(sampleCount int64, mismatchRatePct float64) string {
	if sampleCount < MinSamples {
		return models.TierModerate
	}
	if mismatchRatePct <= AdvancedMaxMismatchPct {
		return models.TierAdvanced
	}
	if mismatchRatePct <= ModerateMaxMismatchPct {
		return models.TierModerate
	}
	return models.TierStrict
}

// ApplyHysteresis keeps the previous tier unless the evidence clears
// the transition-specific bar, so alternating candidates around a
// threshold flip the effective tier at most once per window.
func ApplyHysteresis(previousTier, candidateTier string, sampleCount int64, mismatchRatePct float64) string {
	if previousTier == "" {
		return candidateTier
	}

	switch previousTier {
	case models.TierAdvanced:
		if candidateTier != models.TierAdvanced &&
			(sampleCount < MinSamples || mismatchRatePct < AdvancedDemotePct) {
			return models.TierAdvanced
		}
	case models.TierModerate:
		if candidateTier == models.TierAdvanced &&
			(sampleCount < MinSamples+5 || mismatchRatePct > AdvancedPromotePct) {
			return models.TierModerate
		}
		if candidateTier == models.TierStrict && mismatchRatePct < StrictEnterPct {
			return models.TierModerate
		}
	case models.TierStrict:
		if candidateTier != models.TierStrict &&
			(sampleCount < MinSamples+3 || mismatchRatePct > StrictExitPct) {
			return models.TierStrict
		}
	}

	return candidateTier
}

// Engine resolves tier policies against the telemetry source.
type Engine struct {
	telemetry TelemetrySource
}

// NewEngine creates a tier Engine.
func NewEngine(telemetry TelemetrySource) *Engine {
	return &Engine{telemetry: telemetry}
}

// ResolveForWrite computes the effective tier policy for one write.
// Model identity is the quality-track key (audit label); tier
// assignment itself is purely quality-driven.
func (e *Engine) ResolveForWrite(ctx context.Context, ownerID uuid.UUID, modelIdentity string) (models.ModelTierPolicy, []string, error) {
	sampleCount, weightedSum, previousTier, err := e.telemetry.TierTelemetry(ctx, ownerID, modelIdentity, LookbackDays)
	if err != nil {
		return models.ModelTierPolicy{}, nil, err
	}

	if sampleCount < 0 {
		sampleCount = 0
	}
	if weightedSum < 0 || math.IsNaN(weightedSum) || math.IsInf(weightedSum, 0) {
		weightedSum = 0
	}

	mismatchRatePct := 0.0
	if sampleCount > 0 {
		mismatchRatePct = weightedSum / float64(sampleCount) * 100.0
	}

	candidate := CandidateTier(sampleCount, mismatchRatePct)
	effective := ApplyHysteresis(previousTier, candidate, sampleCount, mismatchRatePct)

	var reasons []string
	if sampleCount < MinSamples {
		reasons = append(reasons, ReasonLowSamplesConfirm)
	}
	if effective == models.TierStrict && sampleCount >= MinSamples {
		reasons = append(reasons, ReasonAutoQualityStrict)
	}

	return PolicyFromName(effective), reasons, nil
}
