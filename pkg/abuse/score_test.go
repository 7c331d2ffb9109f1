package abuse

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonzim-cmd/kura/pkg/config"
	"github.com/jonzim-cmd/kura/pkg/models"
)

func adaptiveTuning() config.SecurityProfileConfig {
	return config.SecurityProfileConfig{
		ThrottleScoreThreshold: 40,
		BlockScoreThreshold:    75,
		ThrottleCooldownSecs:   45,
		BlockCooldownSecs:      120,
		ThrottleDelayLowMs:     150,
		ThrottleDelayMediumMs:  300,
		ThrottleDelayHighMs:    500,
	}
}

func defaultTuning() config.SecurityProfileConfig {
	return config.SecurityProfileConfig{
		ThrottleScoreThreshold: 70,
		BlockScoreThreshold:    90,
		ThrottleCooldownSecs:   15,
		BlockCooldownSecs:      45,
		ThrottleDelayLowMs:     90,
		ThrottleDelayMediumMs:  140,
		ThrottleDelayHighMs:    200,
	}
}

func TestEvaluateRisk(t *testing.T) {
	t.Run("returns allow when signals absent", func(t *testing.T) {
		snapshot := models.AccessSignalSnapshot{TotalRequests60s: 3}
		assessment := EvaluateRisk(snapshot, config.ProfileAdaptive, adaptiveTuning())

		assert.Equal(t, ActionAllow, assessment.BaseAction)
		assert.Zero(t, assessment.Score)
		assert.Empty(t, assessment.Signals)
	})

	t.Run("context scrape alone stays below the adaptive throttle threshold", func(t *testing.T) {
		snapshot := models.AccessSignalSnapshot{
			TotalRequests60s: 10,
			ContextReads60s:  9,
		}
		assessment := EvaluateRisk(snapshot, config.ProfileAdaptive, adaptiveTuning())

		assert.Equal(t, ActionAllow, assessment.BaseAction)
		assert.Equal(t, 20, assessment.Score)
		assert.Contains(t, assessment.Signals, SignalContextScrapeBurst)
	})

	t.Run("multi-signal abuse triggers block", func(t *testing.T) {
		snapshot := models.AccessSignalSnapshot{
			TotalRequests60s: 40,
			ContextReads60s:  12,
			WriteRequests60s: 15,
		}
		assessment := EvaluateRisk(snapshot, config.ProfileAdaptive, adaptiveTuning())

		assert.Equal(t, ActionBlock, assessment.BaseAction)
		assert.GreaterOrEqual(t, assessment.Score, 75)
		assert.Contains(t, assessment.Signals, SignalBurstRate)
		assert.Contains(t, assessment.Signals, SignalWriteBurst)
	})

	t.Run("default profile stays low friction for mild risk", func(t *testing.T) {
		snapshot := models.AccessSignalSnapshot{
			TotalRequests60s: 26,
			ContextReads60s:  8,
		}
		assessment := EvaluateRisk(snapshot, config.ProfileDefault, defaultTuning())

		// 30 + 20 = 50, below the default throttle threshold of 70.
		assert.Equal(t, ActionAllow, assessment.BaseAction)
	})

	t.Run("denied ratio is tempered for small samples", func(t *testing.T) {
		// 5 of 10 denied looks alarming raw, but the Beta prior keeps
		// the smoothed ratio below the spike threshold for authz-light
		// traffic.
		snapshot := models.AccessSignalSnapshot{
			TotalRequests60s:          10,
			DeniedRequests60s:         5,
			DeniedNotFoundRequests60s: 5,
		}
		assert.Less(t, SmoothedWeightedDeniedRatio(snapshot), 0.45)
	})

	t.Run("high volume denied ratio fires high confidence signal", func(t *testing.T) {
		snapshot := models.AccessSignalSnapshot{
			TotalRequests60s:       40,
			DeniedRequests60s:      30,
			DeniedAuthzRequests60s: 30,
		}
		assessment := EvaluateRisk(snapshot, config.ProfileAdaptive, adaptiveTuning())

		assert.Contains(t, assessment.Signals, SignalDeniedRatioSpike)
		assert.Contains(t, assessment.Signals, SignalDeniedRatioHighConfidence)
		assert.Contains(t, assessment.Signals, SignalAuthzDeniedBurst)
	})
}

func TestNormalizeAgentPath(t *testing.T) {
	assert.Equal(t, "/v1/agent/evidence/event/{event_id}",
		NormalizeAgentPath("/v1/agent/evidence/event/0191e6a2-7aaa-7bbb-8ccc-0123456789ab"))
	assert.Equal(t, "/v1/agent/context", NormalizeAgentPath("/v1/agent/context"))
}

func TestCooldownRegistry(t *testing.T) {
	ownerID := uuid.New()
	now := time.Now()

	t.Run("throttle extends cooldown and picks delay", func(t *testing.T) {
		registry := NewCooldownRegistry()
		assessment := RiskAssessment{Score: 45, BaseAction: ActionThrottle}

		decision := registry.Apply(ownerID, assessment, adaptiveTuning(), now)

		require.NotNil(t, decision.CooldownUntil)
		assert.Equal(t, ActionThrottle, decision.Action)
		assert.True(t, decision.CooldownActive)
		assert.Equal(t, int64(150), decision.ThrottleDelayMs)
	})

	t.Run("allow during active cooldown upgrades to throttle", func(t *testing.T) {
		registry := NewCooldownRegistry()
		block := RiskAssessment{Score: 80, BaseAction: ActionBlock}
		registry.Apply(ownerID, block, adaptiveTuning(), now)

		calm := RiskAssessment{Score: 0, BaseAction: ActionAllow}
		decision := registry.Apply(ownerID, calm, adaptiveTuning(), now.Add(5*time.Second))

		assert.Equal(t, ActionThrottle, decision.Action)
		assert.True(t, decision.CooldownActive)
	})

	t.Run("retry-after shrinks while the block window drains", func(t *testing.T) {
		registry := NewCooldownRegistry()
		block := RiskAssessment{Score: 80, BaseAction: ActionBlock}

		first := registry.Apply(ownerID, block, adaptiveTuning(), now)
		second := registry.Apply(ownerID, RiskAssessment{BaseAction: ActionAllow}, adaptiveTuning(), now.Add(30*time.Second))

		assert.LessOrEqual(t, second.RetryAfterSecs, first.RetryAfterSecs)
	})

	t.Run("expired cooldown is reclaimed and flagged as recovery", func(t *testing.T) {
		registry := NewCooldownRegistry()
		throttle := RiskAssessment{Score: 45, BaseAction: ActionThrottle}
		registry.Apply(ownerID, throttle, adaptiveTuning(), now)

		later := now.Add(time.Duration(adaptiveTuning().ThrottleCooldownSecs+1) * time.Second)
		decision := registry.Apply(ownerID, RiskAssessment{BaseAction: ActionAllow}, adaptiveTuning(), later)

		assert.Equal(t, ActionAllow, decision.Action)
		assert.True(t, decision.RecoveredFromCooldown)
		assert.False(t, decision.CooldownActive)
	})

	t.Run("block escalation keeps the later cooldown", func(t *testing.T) {
		registry := NewCooldownRegistry()
		registry.Apply(ownerID, RiskAssessment{Score: 80, BaseAction: ActionBlock}, adaptiveTuning(), now)
		decision := registry.Apply(ownerID, RiskAssessment{Score: 45, BaseAction: ActionThrottle}, adaptiveTuning(), now.Add(time.Second))

		require.NotNil(t, decision.CooldownUntil)
		// The throttle cooldown target (now+1s+45s) is earlier than the
		// block target (now+120s); the block window must win.
		assert.True(t, decision.CooldownUntil.After(now.Add(100*time.Second)))
	})
}
