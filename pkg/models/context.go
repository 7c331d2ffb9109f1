package models

import "time"

// TemporalContext is the grounding block attached to every context
// bundle. It is the sole fresh source of the temporal_basis that
// high-impact writes must cite in their intent handshake.
type TemporalContext struct {
	SchemaVersion         string    `json:"schema_version"`
	NowUTC                time.Time `json:"now_utc"`
	Timezone              string    `json:"timezone"`
	TimezoneAssumed       bool      `json:"timezone_assumed"`
	TodayLocalDate        string    `json:"today_local_date"`
	LastTrainingDate      string    `json:"last_training_date,omitempty"`
	DaysSinceLastTraining *int      `json:"days_since_last_training,omitempty"`
}

// ContextSection is one ranked projection inside the bundle.
type ContextSection struct {
	Name           string         `json:"name"`
	ProjectionType string         `json:"projection_type"`
	Rank           int            `json:"rank"`
	Data           map[string]any `json:"data"`
	Truncated      bool           `json:"truncated,omitempty"`
}

// ContextBundle is the ranked, budgeted read-context agents consume
// before writing.
type ContextBundle struct {
	ContractVersion string           `json:"contract_version"`
	TemporalContext TemporalContext  `json:"temporal_context"`
	Sections        []ContextSection `json:"sections"`
	PayloadBudget   int              `json:"payload_budget_bytes"`
}

// Agent capabilities manifest types.

type AgentSelfModelContracts struct {
	Read  string `json:"read"`
	Write string `json:"write"`
}

type AgentSelfModelFallback struct {
	UnknownIdentityAction string `json:"unknown_identity_action"`
	UnknownPolicyAction   string `json:"unknown_policy_action"`
}

type AgentSelfModelDocs struct {
	RuntimePolicy string `json:"runtime_policy"`
	UpgradeHint   string `json:"upgrade_hint"`
}

// AgentSelfModel describes what the current runtime model is allowed
// to do and what it should assume about itself.
type AgentSelfModel struct {
	SchemaVersion      string                  `json:"schema_version"`
	ModelIdentity      string                  `json:"model_identity"`
	CapabilityTier     string                  `json:"capability_tier"`
	KnownLimitations   []string                `json:"known_limitations"`
	PreferredContracts AgentSelfModelContracts `json:"preferred_contracts"`
	FallbackBehavior   AgentSelfModelFallback  `json:"fallback_behavior"`
	Docs               AgentSelfModelDocs      `json:"docs"`
}

// VerificationContract states what a write must prove before an agent
// may claim persistence.
type VerificationContract struct {
	RequiresReceipts        bool   `json:"requires_receipts"`
	RequiresReadAfterWrite  bool   `json:"requires_read_after_write"`
	RequiredClaimGuardField string `json:"required_claim_guard_field"`
}

// AgentCapabilities is the manifest served at /v1/agent/capabilities.
type AgentCapabilities struct {
	SchemaVersion          string               `json:"schema_version"`
	ProtocolVersion        string               `json:"protocol_version"`
	PreferredReadEndpoint  string               `json:"preferred_read_endpoint"`
	PreferredWriteEndpoint string               `json:"preferred_write_endpoint"`
	SelfModel              AgentSelfModel       `json:"self_model"`
	VerificationContract   VerificationContract `json:"required_verification_contract"`
	UpgradePolicy          string               `json:"upgrade_policy"`
}
