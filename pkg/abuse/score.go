// Package abuse implements the adaptive abuse gate: per-owner risk
// scoring over a 60-second access snapshot, cooldown state, and the
// echo middleware that throttles or blocks agent traffic.
package abuse

import (
	"github.com/jonzim-cmd/kura/pkg/config"
	"github.com/jonzim-cmd/kura/pkg/models"
)

// Signal thresholds over the 60-second window.
const (
	burstRequestThreshold          = 25
	deniedRatioThreshold           = 0.45
	deniedRatioBlockThreshold      = 0.55
	minRequestsForDeniedRatio      = 10
	minRequestsForDeniedRatioBlock = 30
	uniquePathThreshold            = 5
	contextReadThreshold           = 8
	writeBurstThreshold            = 12

	// Beta prior smoothing for the denied ratio; not_found denials are
	// softer evidence than authz denials.
	deniedRatioPriorDenied = 2.0
	deniedRatioPriorTotal  = 8.0
	notFoundDeniedWeight   = 0.35
)

// Actions the gate can take.
const (
	ActionAllow    = "allow"
	ActionThrottle = "throttle"
	ActionBlock    = "block"
	ActionRecovery = "recovery"
)

// Signal names attached to assessments and telemetry.
const (
	SignalBurstRate                  = "burst_rate_60s"
	SignalDeniedRatioSpike           = "denied_ratio_spike_60s"
	SignalDeniedRatioHighConfidence  = "denied_ratio_high_confidence_60s"
	SignalAuthzDeniedBurst           = "authz_denied_burst_60s"
	SignalEndpointEnumerationPattern = "endpoint_enumeration_pattern_60s"
	SignalContextScrapeBurst         = "context_scrape_burst_60s"
	SignalWriteBurst                 = "write_burst_60s"
	SignalCooldownRecovered          = "cooldown_recovered"
)

// RiskAssessment is the profile-independent scoring outcome.
type RiskAssessment struct {
	Snapshot   models.AccessSignalSnapshot
	Profile    string
	Score      int
	Signals    []string
	BaseAction string
}

// DeniedRatio is the raw denied/total ratio of the snapshot.
func DeniedRatio(snapshot models.AccessSignalSnapshot) float64 {
	if snapshot.TotalRequests60s <= 0 {
		return 0
	}
	return float64(snapshot.DeniedRequests60s) / float64(snapshot.TotalRequests60s)
}

// SmoothedWeightedDeniedRatio applies the Beta prior and the not_found
// down-weighting, so a handful of 404s on a quiet minute does not read
// as an attack.
func SmoothedWeightedDeniedRatio(snapshot models.AccessSignalSnapshot) float64 {
	total := float64(max(snapshot.TotalRequests60s, 0))
	weightedDenied := float64(max(snapshot.DeniedAuthzRequests60s, 0)) +
		float64(max(snapshot.DeniedNotFoundRequests60s, 0))*notFoundDeniedWeight
	denominator := total + deniedRatioPriorTotal
	if denominator <= 0 {
		return 0
	}
	return (weightedDenied + deniedRatioPriorDenied) / denominator
}

// EvaluateRisk scores the snapshot and picks the base action from the
// profile thresholds. Each firing signal adds a fixed weight.
func EvaluateRisk(snapshot models.AccessSignalSnapshot, profileName string, tuning config.SecurityProfileConfig) RiskAssessment {
	score := 0
	signals := []string{}
	smoothedDeniedRatio := SmoothedWeightedDeniedRatio(snapshot)

	if snapshot.TotalRequests60s >= burstRequestThreshold {
		score += 30
		signals = append(signals, SignalBurstRate)
	}

	if snapshot.TotalRequests60s >= minRequestsForDeniedRatio &&
		smoothedDeniedRatio >= deniedRatioThreshold {
		score += 20
		signals = append(signals, SignalDeniedRatioSpike)
	}
	if snapshot.TotalRequests60s >= minRequestsForDeniedRatioBlock &&
		smoothedDeniedRatio >= deniedRatioBlockThreshold {
		score += 25
		signals = append(signals, SignalDeniedRatioHighConfidence)
	}
	if snapshot.TotalRequests60s >= 12 && snapshot.DeniedAuthzRequests60s >= 8 {
		score += 20
		signals = append(signals, SignalAuthzDeniedBurst)
	}

	if snapshot.UniquePaths60s >= uniquePathThreshold &&
		snapshot.DeniedRequests60s >= 3 &&
		snapshot.TotalRequests60s >= 12 {
		score += 20
		signals = append(signals, SignalEndpointEnumerationPattern)
	}

	if snapshot.ContextReads60s >= contextReadThreshold {
		score += 20
		signals = append(signals, SignalContextScrapeBurst)
	}

	if snapshot.WriteRequests60s >= writeBurstThreshold {
		score += 25
		signals = append(signals, SignalWriteBurst)
	}

	baseAction := ActionAllow
	switch {
	case score >= tuning.BlockScoreThreshold:
		baseAction = ActionBlock
	case score >= tuning.ThrottleScoreThreshold:
		baseAction = ActionThrottle
	}

	return RiskAssessment{
		Snapshot:   snapshot,
		Profile:    profileName,
		Score:      score,
		Signals:    signals,
		BaseAction: baseAction,
	}
}

// NormalizeAgentPath collapses the per-event evidence path so id
// enumeration does not inflate the unique-path signal.
func NormalizeAgentPath(path string) string {
	const evidencePrefix = "/v1/agent/evidence/event/"
	if len(path) > len(evidencePrefix) && path[:len(evidencePrefix)] == evidencePrefix {
		return evidencePrefix + "{event_id}"
	}
	return path
}
