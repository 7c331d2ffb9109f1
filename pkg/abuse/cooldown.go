package abuse

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonzim-cmd/kura/pkg/config"
)

// CooldownRegistry is the process-local cooldown map. It is a
// best-effort dampening layer, not a security boundary: a restart
// loses all entries, which is acceptable.
//
// A writer-exclusive lock is correct because every decision mutates
// (expired entries are reclaimed on read). Lock hold time is bounded to
// the map operations; no I/O happens under the lock.
type CooldownRegistry struct {
	mu      sync.Mutex
	entries map[uuid.UUID]time.Time
}

// NewCooldownRegistry creates an empty registry.
func NewCooldownRegistry() *CooldownRegistry {
	return &CooldownRegistry{entries: make(map[uuid.UUID]time.Time)}
}

// Decision is the combined risk + cooldown outcome for one request.
type Decision struct {
	Action                string
	CooldownActive        bool
	CooldownUntil         *time.Time
	ThrottleDelayMs       int64
	RetryAfterSecs        int64
	RecoveredFromCooldown bool
}

// Apply combines the risk assessment with the owner's cooldown state:
//   - an active cooldown upgrades Allow to Throttle
//   - an expired cooldown is reclaimed and flagged as recovery
//   - Throttle/Block extends the cooldown to max(existing, now+profile)
func (r *CooldownRegistry) Apply(ownerID uuid.UUID, assessment RiskAssessment, tuning config.SecurityProfileConfig, now time.Time) Decision {
	r.mu.Lock()
	defer r.mu.Unlock()

	recovered := false
	var activeCooldownUntil *time.Time
	if until, ok := r.entries[ownerID]; ok {
		if until.After(now) {
			activeCooldownUntil = &until
		} else {
			delete(r.entries, ownerID)
			recovered = true
		}
	}

	action := assessment.BaseAction
	cooldownUntil := activeCooldownUntil

	switch assessment.BaseAction {
	case ActionBlock:
		target := now.Add(time.Duration(tuning.BlockCooldownSecs) * time.Second)
		cooldownUntil = laterOf(cooldownUntil, target)
	case ActionThrottle:
		target := now.Add(time.Duration(tuning.ThrottleCooldownSecs) * time.Second)
		cooldownUntil = laterOf(cooldownUntil, target)
	case ActionAllow:
		if cooldownUntil != nil {
			action = ActionThrottle
		}
	}

	if cooldownUntil != nil {
		r.entries[ownerID] = *cooldownUntil
	} else {
		delete(r.entries, ownerID)
	}

	cooldownActive := cooldownUntil != nil && cooldownUntil.After(now)
	var retryAfterSecs int64
	if cooldownUntil != nil {
		retryAfterSecs = int64(cooldownUntil.Sub(now).Seconds())
		if retryAfterSecs < 1 {
			retryAfterSecs = 1
		}
	}

	var throttleDelayMs int64
	if action == ActionThrottle {
		switch {
		case assessment.Score >= tuning.BlockScoreThreshold:
			throttleDelayMs = tuning.ThrottleDelayHighMs
		case assessment.Score >= tuning.ThrottleScoreThreshold+10:
			throttleDelayMs = tuning.ThrottleDelayMediumMs
		default:
			throttleDelayMs = tuning.ThrottleDelayLowMs
		}
	}

	return Decision{
		Action:                action,
		CooldownActive:        cooldownActive,
		CooldownUntil:         cooldownUntil,
		ThrottleDelayMs:       throttleDelayMs,
		RetryAfterSecs:        retryAfterSecs,
		RecoveredFromCooldown: recovered && action == ActionAllow && !cooldownActive,
	}
}

func laterOf(existing *time.Time, target time.Time) *time.Time {
	if existing != nil && existing.After(target) {
		return existing
	}
	return &target
}
