package models

// Capability tiers, ordered from most to least trusted.
const (
	TierAdvanced = "advanced"
	TierModerate = "moderate"
	TierStrict   = "strict"
)

// Autonomy gate decisions.
const (
	GateDecisionAllow        = "allow"
	GateDecisionConfirmFirst = "confirm_first"
)

// Normalized quality statuses.
const (
	QualityHealthy  = "healthy"
	QualityMonitor  = "monitor"
	QualityDegraded = "degraded"
)

// ModelTierPolicy maps a capability tier to its operating envelope.
type ModelTierPolicy struct {
	RegistryVersion       string  `json:"registry_version"`
	CapabilityTier        string  `json:"capability_tier"`
	ConfidenceFloor       float64 `json:"confidence_floor"`
	AllowedActionScope    string  `json:"allowed_action_scope"`
	HighImpactWritePolicy string  `json:"high_impact_write_policy"`
	RepairAutoApplyCap    string  `json:"repair_auto_apply_cap"`
}

// AutonomyPolicy is the quality-aware autonomy posture derived from the
// quality_health projection, overlaid with the capability tier and user
// preferences.
type AutonomyPolicy struct {
	PolicyVersion                    string            `json:"policy_version"`
	SLOStatus                        string            `json:"slo_status"`
	CalibrationStatus                string            `json:"calibration_status"`
	ModelIdentity                    string            `json:"model_identity"`
	CapabilityTier                   string            `json:"capability_tier"`
	TierPolicyVersion                string            `json:"tier_policy_version"`
	TierConfidenceFloor              float64           `json:"tier_confidence_floor"`
	ThrottleActive                   bool              `json:"throttle_active"`
	MaxScopeLevel                    string            `json:"max_scope_level"`
	InteractionVerbosity             string            `json:"interaction_verbosity"`
	ConfirmationStrictness           string            `json:"confirmation_strictness"`
	UserRequestedScopeLevel          string            `json:"user_requested_scope_level,omitempty"`
	RequireConfirmationForNonTrivial bool              `json:"require_confirmation_for_non_trivial_actions"`
	RequireConfirmationForPlanUpdate bool              `json:"require_confirmation_for_plan_updates"`
	RequireConfirmationForRepairs    bool              `json:"require_confirmation_for_repairs"`
	RepairAutoApplyEnabled           bool              `json:"repair_auto_apply_enabled"`
	Reason                           string            `json:"reason"`
	ConfirmationTemplates            map[string]string `json:"confirmation_templates"`
}

// AutonomyGate is the per-write decision composed from tier policy,
// quality posture, and user preferences.
type AutonomyGate struct {
	Decision               string   `json:"decision"`
	ActionClass            string   `json:"action_class"`
	ModelTier              string   `json:"model_tier"`
	EffectiveQualityStatus string   `json:"effective_quality_status"`
	ReasonCodes            []string `json:"reason_codes"`
}
