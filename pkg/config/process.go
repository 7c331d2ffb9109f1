package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Environment variable names for process configuration.
const (
	EnvAttestationSecret        = "KURA_AGENT_MODEL_ATTESTATION_SECRET"
	EnvRuntimeModelIdentity     = "KURA_AGENT_MODEL_IDENTITY"
	EnvModelByClientID          = "KURA_AGENT_MODEL_BY_CLIENT_ID_JSON"
	EnvDeveloperRawAllowlist    = "KURA_AGENT_DEVELOPER_RAW_USER_ALLOWLIST"
	EnvTelemetrySalt            = "KURA_TELEMETRY_SALT"
	EnvRequireAttestationSecret = "KURA_REQUIRE_ATTESTATION_SECRET"
)

// DefaultTelemetrySalt is used when KURA_TELEMETRY_SALT is unset.
const DefaultTelemetrySalt = "kura-learning-telemetry-v1"

// ProcessConfig holds secrets and identity mappings read once from the
// environment at startup. The attestation secret doubles as the
// confirmation-token secret; all other fields are optional.
type ProcessConfig struct {
	AttestationSecret    string
	RuntimeModelIdentity string
	ModelByClientID      map[string]string
	DeveloperRawUsers    []string
	TelemetrySalt        string
}

// LoadProcessConfigFromEnv reads the process configuration.
// When KURA_REQUIRE_ATTESTATION_SECRET=true an empty secret is a
// startup error; otherwise attestation degrades to unknown-identity
// resolution with reason codes.
func LoadProcessConfigFromEnv() (ProcessConfig, error) {
	cfg := ProcessConfig{
		AttestationSecret:    strings.TrimSpace(os.Getenv(EnvAttestationSecret)),
		RuntimeModelIdentity: strings.TrimSpace(os.Getenv(EnvRuntimeModelIdentity)),
		TelemetrySalt:        os.Getenv(EnvTelemetrySalt),
	}

	if raw := os.Getenv(EnvModelByClientID); raw != "" {
		parsed := map[string]string{}
		if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
			return ProcessConfig{}, fmt.Errorf("invalid %s: %w", EnvModelByClientID, err)
		}
		normalized := make(map[string]string, len(parsed))
		for clientID, identity := range parsed {
			clientID = strings.ToLower(strings.TrimSpace(clientID))
			identity = strings.ToLower(strings.TrimSpace(identity))
			if clientID != "" && identity != "" {
				normalized[clientID] = identity
			}
		}
		cfg.ModelByClientID = normalized
	}

	if raw := os.Getenv(EnvDeveloperRawAllowlist); raw != "" {
		for _, entry := range strings.Split(raw, ",") {
			entry = strings.ToLower(strings.TrimSpace(entry))
			if entry != "" {
				cfg.DeveloperRawUsers = append(cfg.DeveloperRawUsers, entry)
			}
		}
	}

	if cfg.TelemetrySalt == "" {
		cfg.TelemetrySalt = DefaultTelemetrySalt
		slog.Warn("Telemetry salt not configured; using built-in default",
			"env", EnvTelemetrySalt)
	}

	if cfg.AttestationSecret == "" {
		if strings.EqualFold(os.Getenv(EnvRequireAttestationSecret), "true") {
			return ProcessConfig{}, fmt.Errorf("%s is required when %s=true",
				EnvAttestationSecret, EnvRequireAttestationSecret)
		}
		slog.Warn("Attestation secret not configured; model identity will resolve as unknown",
			"env", EnvAttestationSecret)
	}

	return cfg, nil
}

// IsDeveloperRawUser reports whether the owner may request the raw
// response language mode. A "*" entry allowlists everyone.
func (c ProcessConfig) IsDeveloperRawUser(ownerID string) bool {
	normalized := strings.ToLower(strings.TrimSpace(ownerID))
	for _, entry := range c.DeveloperRawUsers {
		if entry == "*" || entry == normalized {
			return true
		}
	}
	return false
}
