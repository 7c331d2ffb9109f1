package tier

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonzim-cmd/kura/pkg/models"
)

func TestCandidateTier(t *testing.T) {
	t.Run("low samples stay moderate", func(t *testing.T) {
		assert.Equal(t, models.TierModerate, CandidateTier(11, 0.0))
	})

	t.Run("clean record advances", func(t *testing.T) {
		assert.Equal(t, models.TierAdvanced, CandidateTier(20, 0.5))
	})

	t.Run("moderate band", func(t *testing.T) {
		assert.Equal(t, models.TierModerate, CandidateTier(20, 3.0))
	})

	t.Run("poor quality goes strict", func(t *testing.T) {
		assert.Equal(t, models.TierStrict, CandidateTier(20, 8.0))
	})
}

func TestApplyHysteresis(t *testing.T) {
	t.Run("no previous tier takes candidate", func(t *testing.T) {
		assert.Equal(t, models.TierAdvanced, ApplyHysteresis("", models.TierAdvanced, 20, 0.5))
	})

	t.Run("advanced resists demotion on thin evidence", func(t *testing.T) {
		assert.Equal(t, models.TierAdvanced, ApplyHysteresis(models.TierAdvanced, models.TierModerate, 20, 1.0))
	})

	t.Run("advanced demotes when the evidence clears the bar", func(t *testing.T) {
		assert.Equal(t, models.TierModerate, ApplyHysteresis(models.TierAdvanced, models.TierModerate, 20, 2.0))
	})

	t.Run("moderate resists promotion without enough samples", func(t *testing.T) {
		assert.Equal(t, models.TierModerate, ApplyHysteresis(models.TierModerate, models.TierAdvanced, 15, 0.2))
	})

	t.Run("moderate promotes with strong evidence", func(t *testing.T) {
		assert.Equal(t, models.TierAdvanced, ApplyHysteresis(models.TierModerate, models.TierAdvanced, 18, 0.3))
	})

	t.Run("moderate resists strict below the enter threshold", func(t *testing.T) {
		assert.Equal(t, models.TierModerate, ApplyHysteresis(models.TierModerate, models.TierStrict, 20, 5.0))
	})

	t.Run("strict holds until quality recovers", func(t *testing.T) {
		assert.Equal(t, models.TierStrict, ApplyHysteresis(models.TierStrict, models.TierModerate, 20, 3.0))
		assert.Equal(t, models.TierModerate, ApplyHysteresis(models.TierStrict, models.TierModerate, 20, 1.0))
	})

	t.Run("alternating candidates flip at most once", func(t *testing.T) {
		// Rate oscillating around the advanced/moderate boundary: the
		// effective tier must not flap with it.
		effective := models.TierAdvanced
		for _, rate := range []float64{0.5, 0.7, 0.5, 0.7} {
			candidate := CandidateTier(20, rate)
			effective = ApplyHysteresis(effective, candidate, 20, rate)
		}
		assert.Equal(t, models.TierAdvanced, effective)
	})
}

type stubTelemetry struct {
	sampleCount  int64
	weightedSum  float64
	previousTier string
}

func (s *stubTelemetry) TierTelemetry(_ context.Context, _ uuid.UUID, _ string, _ int) (int64, float64, string, error) {
	return s.sampleCount, s.weightedSum, s.previousTier, nil
}

func TestEngineResolveForWrite(t *testing.T) {
	ownerID := uuid.New()
	ctx := context.Background()

	t.Run("fresh owner lands at moderate with low-samples reason", func(t *testing.T) {
		engine := NewEngine(&stubTelemetry{})
		policy, reasons, err := engine.ResolveForWrite(ctx, ownerID, "claude-sonnet-4")
		require.NoError(t, err)

		assert.Equal(t, models.TierModerate, policy.CapabilityTier)
		assert.Contains(t, reasons, ReasonLowSamplesConfirm)
	})

	t.Run("clean history advances", func(t *testing.T) {
		engine := NewEngine(&stubTelemetry{sampleCount: 20, weightedSum: 0.05, previousTier: models.TierModerate})
		policy, reasons, err := engine.ResolveForWrite(ctx, ownerID, "claude-sonnet-4")
		require.NoError(t, err)

		// 0.05/20 = 0.25% ≤ 0.40% promote bar with 20 ≥ 17 samples.
		assert.Equal(t, models.TierAdvanced, policy.CapabilityTier)
		assert.Equal(t, "allow", policy.HighImpactWritePolicy)
		assert.Empty(t, reasons)
	})

	t.Run("bad history goes strict with reason", func(t *testing.T) {
		engine := NewEngine(&stubTelemetry{sampleCount: 20, weightedSum: 2.0, previousTier: models.TierModerate})
		policy, reasons, err := engine.ResolveForWrite(ctx, ownerID, "claude-sonnet-4")
		require.NoError(t, err)

		// 2.0/20 = 10% ≥ 6% strict enter threshold.
		assert.Equal(t, models.TierStrict, policy.CapabilityTier)
		assert.Contains(t, reasons, ReasonAutoQualityStrict)
	})
}
