// Package autonomy derives the quality-aware autonomy policy and
// evaluates the allow / confirm-first gate for writes.
package autonomy

import (
	"fmt"
	"strings"

	"github.com/jonzim-cmd/kura/pkg/models"
	"github.com/jonzim-cmd/kura/pkg/tier"
)

// PolicyVersion identifies the derivation in effect.
const PolicyVersion = "phase_3_integrity_slo_v1"

// NormalizeQualityStatus folds arbitrary status strings into the
// healthy / monitor / degraded set.
func NormalizeQualityStatus(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case models.QualityDegraded:
		return models.QualityDegraded
	case models.QualityMonitor:
		return models.QualityMonitor
	default:
		return models.QualityHealthy
	}
}

// WorstQualityStatus returns the more severe of two statuses.
func WorstQualityStatus(left, right string) string {
	rank := func(status string) int {
		switch NormalizeQualityStatus(status) {
		case models.QualityDegraded:
			return 2
		case models.QualityMonitor:
			return 1
		default:
			return 0
		}
	}
	if rank(left) >= rank(right) {
		return NormalizeQualityStatus(left)
	}
	return NormalizeQualityStatus(right)
}

// Scope ranks: strict < moderate < proactive. Unknown scopes rank as
// strict so a typo can only tighten.
func scopeRank(scopeLevel string) int {
	switch strings.ToLower(strings.TrimSpace(scopeLevel)) {
	case "moderate":
		return 1
	case "proactive":
		return 2
	default:
		return 0
	}
}

// StricterScopeLevel returns the tighter of two scope levels.
func StricterScopeLevel(currentScope, tierScope string) string {
	if scopeRank(currentScope) <= scopeRank(tierScope) {
		return strings.ToLower(strings.TrimSpace(currentScope))
	}
	return strings.ToLower(strings.TrimSpace(tierScope))
}

// NormalizeScopeOverride validates a user scope preference.
func NormalizeScopeOverride(raw string) (string, bool) {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch value {
	case "strict", "moderate", "proactive":
		return value, true
	}
	return "", false
}

// NormalizeVerbosityOverride folds verbosity synonyms.
func NormalizeVerbosityOverride(raw string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "concise", "short", "brief":
		return "concise", true
	case "balanced", "normal", "default":
		return "balanced", true
	case "detailed", "verbose", "long":
		return "detailed", true
	}
	return "", false
}

// NormalizeConfirmationStrictnessOverride folds strictness synonyms.
func NormalizeConfirmationStrictnessOverride(raw string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "auto":
		return "auto", true
	case "always", "strict":
		return "always", true
	case "never", "relaxed":
		return "never", true
	}
	return "", false
}

// DefaultPolicy is the healthy-defaults policy used when no
// quality_health projection exists.
func DefaultPolicy(templates map[string]string) models.AutonomyPolicy {
	merged := map[string]string{
		"non_trivial_action": "Wenn du willst, kann ich als nächsten Schritt direkt fortfahren.",
		"plan_update":        "Wenn du willst, passe ich den Plan jetzt entsprechend an.",
		"repair_action":      "Eine risikoarme Reparatur ist möglich. Soll ich sie ausführen?",
		"post_save_followup": "Speichern ist verifiziert.",
	}
	for key, value := range templates {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			merged[key] = trimmed
		}
	}

	return models.AutonomyPolicy{
		PolicyVersion:          PolicyVersion,
		SLOStatus:              models.QualityHealthy,
		CalibrationStatus:      models.QualityHealthy,
		ModelIdentity:          "unknown",
		CapabilityTier:         models.TierStrict,
		TierPolicyVersion:      tier.RegistryVersion,
		TierConfidenceFloor:    0.90,
		MaxScopeLevel:          "moderate",
		InteractionVerbosity:   "balanced",
		ConfirmationStrictness: "auto",
		RepairAutoApplyEnabled: true,
		Reason:                 "No quality_health autonomy policy available; using healthy defaults.",
		ConfirmationTemplates:  merged,
	}
}

// FromQualityHealth derives the policy from the owner's quality_health
// projection; absent or malformed fields fall back to defaults.
func FromQualityHealth(projection *models.Projection, templates map[string]string) models.AutonomyPolicy {
	policy := DefaultPolicy(templates)
	if projection == nil {
		return policy
	}
	raw, ok := projection.Data["autonomy_policy"].(map[string]any)
	if !ok {
		return policy
	}

	getString := func(key, fallback string) string {
		if v, ok := raw[key].(string); ok && strings.TrimSpace(v) != "" {
			return v
		}
		return fallback
	}
	getBool := func(key string, fallback bool) bool {
		if v, ok := raw[key].(bool); ok {
			return v
		}
		return fallback
	}
	getFloat := func(key string, fallback float64) float64 {
		if v, ok := raw[key].(float64); ok {
			return v
		}
		return fallback
	}

	policy.PolicyVersion = getString("policy_version", PolicyVersion)
	policy.SLOStatus = getString("slo_status", models.QualityHealthy)
	policy.CalibrationStatus = getString("calibration_status", models.QualityHealthy)
	policy.ModelIdentity = getString("model_identity", "unknown")
	policy.CapabilityTier = getString("capability_tier", models.TierStrict)
	policy.TierPolicyVersion = getString("tier_policy_version", tier.RegistryVersion)
	policy.TierConfidenceFloor = getFloat("tier_confidence_floor", 0.90)
	policy.ThrottleActive = getBool("throttle_active", false)
	policy.MaxScopeLevel = getString("max_scope_level", "moderate")
	policy.InteractionVerbosity = getString("interaction_verbosity", "balanced")
	policy.ConfirmationStrictness = getString("confirmation_strictness", "auto")
	policy.UserRequestedScopeLevel = getString("user_requested_scope_level", "")
	policy.RequireConfirmationForNonTrivial = getBool("require_confirmation_for_non_trivial_actions", false)
	policy.RequireConfirmationForPlanUpdate = getBool("require_confirmation_for_plan_updates", false)
	policy.RequireConfirmationForRepairs = getBool("require_confirmation_for_repairs", false)
	policy.RepairAutoApplyEnabled = getBool("repair_auto_apply_enabled", true)
	policy.Reason = getString("reason", "Autonomy policy derived from quality_health.")

	if custom, ok := raw["confirmation_templates"].(map[string]any); ok {
		for key, value := range custom {
			if text, ok := value.(string); ok {
				if trimmed := strings.TrimSpace(text); trimmed != "" {
					policy.ConfirmationTemplates[key] = trimmed
				}
			}
		}
	}

	return policy
}

// ApplyModelTierPolicy overlays the capability tier onto the policy:
// the scope ceiling only tightens, and a disabled repair cap switches
// repairs to confirmation-gated.
func ApplyModelTierPolicy(policy models.AutonomyPolicy, modelIdentity string, tierPolicy models.ModelTierPolicy, identityReasonCodes []string) models.AutonomyPolicy {
	policy.ModelIdentity = modelIdentity
	policy.CapabilityTier = tierPolicy.CapabilityTier
	policy.TierPolicyVersion = tierPolicy.RegistryVersion
	policy.TierConfidenceFloor = tierPolicy.ConfidenceFloor
	policy.MaxScopeLevel = StricterScopeLevel(policy.MaxScopeLevel, tierPolicy.AllowedActionScope)

	switch tierPolicy.RepairAutoApplyCap {
	case "disabled", "confirm_only":
		policy.RepairAutoApplyEnabled = false
		policy.RequireConfirmationForRepairs = true
	}

	if len(identityReasonCodes) > 0 {
		policy.Reason = fmt.Sprintf("%s [model_identity_resolution=%s]",
			policy.Reason, strings.Join(identityReasonCodes, ","))
	}

	return policy
}

// ApplyUserPreferences overlays the owner's preferences from the user
// profile projection. Loosening (confirmation_strictness=never) is
// honored only when integrity and calibration are healthy and no
// throttle is active.
func ApplyUserPreferences(policy models.AutonomyPolicy, userProfile *models.Projection) models.AutonomyPolicy {
	scopeRaw := preferenceString(userProfile, "autonomy_scope")
	verbosityRaw := preferenceString(userProfile, "verbosity")
	confirmationRaw := preferenceString(userProfile, "confirmation_strictness")

	if verbosity, ok := NormalizeVerbosityOverride(verbosityRaw); ok {
		policy.InteractionVerbosity = verbosity
	}

	if scopeLevel, ok := NormalizeScopeOverride(scopeRaw); ok {
		currentScope := policy.MaxScopeLevel
		healthyQuality := NormalizeQualityStatus(policy.SLOStatus) == models.QualityHealthy &&
			NormalizeQualityStatus(policy.CalibrationStatus) == models.QualityHealthy &&
			!policy.ThrottleActive
		policy.UserRequestedScopeLevel = scopeLevel
		if healthyQuality {
			policy.MaxScopeLevel = scopeLevel
		} else {
			policy.MaxScopeLevel = StricterScopeLevel(scopeLevel, currentScope)
		}
	}

	if mode, ok := NormalizeConfirmationStrictnessOverride(confirmationRaw); ok {
		policy.ConfirmationStrictness = mode
		switch mode {
		case "always":
			policy.RequireConfirmationForNonTrivial = true
			policy.RequireConfirmationForPlanUpdate = true
			policy.RequireConfirmationForRepairs = true
			policy.RepairAutoApplyEnabled = false
		case "never":
			relaxedAllowed := NormalizeQualityStatus(policy.SLOStatus) == models.QualityHealthy &&
				NormalizeQualityStatus(policy.CalibrationStatus) == models.QualityHealthy &&
				!policy.ThrottleActive
			if relaxedAllowed {
				policy.RequireConfirmationForNonTrivial = false
				policy.RequireConfirmationForPlanUpdate = false
				policy.RequireConfirmationForRepairs = false
				policy.RepairAutoApplyEnabled = true
			}
		}
	}

	return policy
}

// RequiresConfirmation reports whether the policy by itself demands
// confirm-first behavior for follow-up actions.
func RequiresConfirmation(policy models.AutonomyPolicy) bool {
	return policy.ThrottleActive ||
		policy.RequireConfirmationForNonTrivial ||
		policy.RequireConfirmationForPlanUpdate ||
		policy.RequireConfirmationForRepairs
}

func preferenceString(userProfile *models.Projection, key string) string {
	if userProfile == nil {
		return ""
	}
	user, ok := userProfile.Data["user"].(map[string]any)
	if !ok {
		return ""
	}
	prefs, ok := user["preferences"].(map[string]any)
	if !ok {
		return ""
	}
	if value, ok := prefs[key].(string); ok {
		return value
	}
	return ""
}
