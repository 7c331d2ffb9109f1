// Package config provides the security-profile and template registries
// plus process-level environment configuration.
package config

// SecurityProfileConfig tunes the adaptive abuse gate for one profile.
type SecurityProfileConfig struct {
	ThrottleScoreThreshold int   `yaml:"throttle_score_threshold"`
	BlockScoreThreshold    int   `yaml:"block_score_threshold"`
	ThrottleCooldownSecs   int64 `yaml:"throttle_cooldown_secs"`
	BlockCooldownSecs      int64 `yaml:"block_cooldown_secs"`
	ThrottleDelayLowMs     int64 `yaml:"throttle_delay_low_ms"`
	ThrottleDelayMediumMs  int64 `yaml:"throttle_delay_medium_ms"`
	ThrottleDelayHighMs    int64 `yaml:"throttle_delay_high_ms"`
}

// SecurityConfig groups the abuse-gate profile registry.
type SecurityConfig struct {
	// DefaultProfile is used when an owner has no explicit override.
	DefaultProfile string `yaml:"default_profile"`
	// Profiles keys are default | adaptive | strict.
	Profiles map[string]SecurityProfileConfig `yaml:"profiles"`
	// OwnerOverrides maps owner UUIDs to a profile name.
	OwnerOverrides map[string]string `yaml:"owner_overrides"`
}

// RetentionConfig bounds the access-log and telemetry tables.
type RetentionConfig struct {
	AccessLogTTLDays int    `yaml:"access_log_ttl_days"`
	TelemetryTTLDays int    `yaml:"telemetry_ttl_days"`
	CleanupInterval  string `yaml:"cleanup_interval"`
}

// KuraYAMLConfig is the optional kura.yaml override file structure.
// Anything omitted falls back to the built-in defaults.
type KuraYAMLConfig struct {
	Security              *SecurityConfig   `yaml:"security"`
	ConfirmationTemplates map[string]string `yaml:"confirmation_templates"`
	Retention             *RetentionConfig  `yaml:"retention"`
}

// Config is the merged, validated runtime configuration.
type Config struct {
	Security              SecurityConfig
	ConfirmationTemplates map[string]string
	Retention             RetentionConfig
	Process               ProcessConfig
}
