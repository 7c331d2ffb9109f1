package abuse

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/google/uuid"

	"github.com/jonzim-cmd/kura/pkg/config"
)

// Telemetry sampling: allow-path decisions are persisted only for
// owners whose rollout bucket falls below this threshold.
const allowTelemetrySampleBucketThreshold = 20

// ResolvedProfile is the owner's effective security profile with its
// provenance, surfaced in response headers.
type ResolvedProfile struct {
	Name          string
	Source        string
	RolloutBucket int
	Tuning        config.SecurityProfileConfig
}

// ResolveProfile picks the owner's profile: explicit override when
// configured, otherwise the registry default. The rollout bucket is a
// stable hash of the owner id in [0, 100).
func ResolveProfile(security config.SecurityConfig, ownerID uuid.UUID) ResolvedProfile {
	bucket := rolloutBucket(ownerID)

	if name, ok := security.OwnerOverrides[ownerID.String()]; ok {
		if tuning, ok := security.Profiles[name]; ok {
			return ResolvedProfile{Name: name, Source: "override", RolloutBucket: bucket, Tuning: tuning}
		}
	}

	name := security.DefaultProfile
	if tuning, ok := security.Profiles[name]; ok {
		return ResolvedProfile{Name: name, Source: "default", RolloutBucket: bucket, Tuning: tuning}
	}

	// Registry misconfigured; fall back to adaptive built-ins.
	return ResolvedProfile{
		Name:          config.ProfileAdaptive,
		Source:        "fallback",
		RolloutBucket: bucket,
		Tuning: config.SecurityProfileConfig{
			ThrottleScoreThreshold: 40,
			BlockScoreThreshold:    75,
			ThrottleCooldownSecs:   45,
			BlockCooldownSecs:      120,
			ThrottleDelayLowMs:     150,
			ThrottleDelayMediumMs:  300,
			ThrottleDelayHighMs:    500,
		},
	}
}

func rolloutBucket(ownerID uuid.UUID) int {
	digest := sha256.Sum256(ownerID[:])
	return int(binary.BigEndian.Uint32(digest[:4]) % 100)
}
