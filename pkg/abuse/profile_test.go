package abuse

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jonzim-cmd/kura/pkg/config"
)

func testSecurity() config.SecurityConfig {
	return config.SecurityConfig{
		DefaultProfile: config.ProfileAdaptive,
		Profiles: map[string]config.SecurityProfileConfig{
			config.ProfileAdaptive: adaptiveTuning(),
			config.ProfileStrict: {
				ThrottleScoreThreshold: 25,
				BlockScoreThreshold:    55,
				ThrottleCooldownSecs:   90,
				BlockCooldownSecs:      180,
				ThrottleDelayLowMs:     350,
				ThrottleDelayMediumMs:  550,
				ThrottleDelayHighMs:    800,
			},
		},
		OwnerOverrides: map[string]string{},
	}
}

func TestResolveProfile(t *testing.T) {
	ownerID := uuid.New()

	t.Run("default profile with stable bucket", func(t *testing.T) {
		first := ResolveProfile(testSecurity(), ownerID)
		second := ResolveProfile(testSecurity(), ownerID)

		assert.Equal(t, config.ProfileAdaptive, first.Name)
		assert.Equal(t, "default", first.Source)
		assert.Equal(t, first.RolloutBucket, second.RolloutBucket)
		assert.GreaterOrEqual(t, first.RolloutBucket, 0)
		assert.Less(t, first.RolloutBucket, 100)
	})

	t.Run("owner override wins", func(t *testing.T) {
		security := testSecurity()
		security.OwnerOverrides[ownerID.String()] = config.ProfileStrict

		resolved := ResolveProfile(security, ownerID)
		assert.Equal(t, config.ProfileStrict, resolved.Name)
		assert.Equal(t, "override", resolved.Source)
		assert.Equal(t, 25, resolved.Tuning.ThrottleScoreThreshold)
	})

	t.Run("missing default profile falls back", func(t *testing.T) {
		security := testSecurity()
		security.DefaultProfile = "missing"

		resolved := ResolveProfile(security, ownerID)
		assert.Equal(t, "fallback", resolved.Source)
		assert.Equal(t, config.ProfileAdaptive, resolved.Name)
	})
}
