package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	t.Run("builtins apply without a config file", func(t *testing.T) {
		cfg, err := Initialize(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, ProfileAdaptive, cfg.Security.DefaultProfile)
		assert.Len(t, cfg.Security.Profiles, 3)
		assert.Equal(t, 40, cfg.Security.Profiles[ProfileAdaptive].ThrottleScoreThreshold)
		assert.NotEmpty(t, cfg.ConfirmationTemplates[TemplatePostSaveFollowup])
	})

	t.Run("yaml overrides merge over builtins", func(t *testing.T) {
		dir := t.TempDir()
		yaml := `
security:
  default_profile: strict
confirmation_templates:
  post_save_followup: "Alles gespeichert und geprüft."
retention:
  access_log_ttl_days: 7
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "kura.yaml"), []byte(yaml), 0o600))

		cfg, err := Initialize(dir)
		require.NoError(t, err)

		assert.Equal(t, ProfileStrict, cfg.Security.DefaultProfile)
		// Untouched builtins survive the merge.
		assert.Equal(t, 25, cfg.Security.Profiles[ProfileStrict].ThrottleScoreThreshold)
		assert.Equal(t, "Alles gespeichert und geprüft.", cfg.ConfirmationTemplates[TemplatePostSaveFollowup])
		assert.Equal(t, 7, cfg.Retention.AccessLogTTLDays)
		assert.Equal(t, 90, cfg.Retention.TelemetryTTLDays)
	})

	t.Run("unknown default profile is rejected", func(t *testing.T) {
		dir := t.TempDir()
		yaml := "security:\n  default_profile: paranoid\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "kura.yaml"), []byte(yaml), 0o600))

		_, err := Initialize(dir)
		require.Error(t, err)
	})
}

func TestLoadProcessConfigFromEnv(t *testing.T) {
	t.Run("client map is normalized", func(t *testing.T) {
		t.Setenv(EnvModelByClientID, `{" MCP-Bridge ": " Claude-Haiku-4 "}`)
		t.Setenv(EnvAttestationSecret, "secret")

		cfg, err := LoadProcessConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "claude-haiku-4", cfg.ModelByClientID["mcp-bridge"])
	})

	t.Run("telemetry salt defaults when unset", func(t *testing.T) {
		t.Setenv(EnvTelemetrySalt, "")
		cfg, err := LoadProcessConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, DefaultTelemetrySalt, cfg.TelemetrySalt)
	})

	t.Run("strict mode requires the attestation secret", func(t *testing.T) {
		t.Setenv(EnvAttestationSecret, "")
		t.Setenv(EnvRequireAttestationSecret, "true")
		_, err := LoadProcessConfigFromEnv()
		require.Error(t, err)
	})

	t.Run("wildcard allowlist admits everyone", func(t *testing.T) {
		t.Setenv(EnvDeveloperRawAllowlist, "*")
		cfg, err := LoadProcessConfigFromEnv()
		require.NoError(t, err)
		assert.True(t, cfg.IsDeveloperRawUser("0191e6a2-7aaa-7bbb-8ccc-0123456789ab"))
	})

	t.Run("allowlist matches case-insensitively", func(t *testing.T) {
		t.Setenv(EnvDeveloperRawAllowlist, "0191E6A2-7AAA-7BBB-8CCC-0123456789AB, other")
		cfg, err := LoadProcessConfigFromEnv()
		require.NoError(t, err)
		assert.True(t, cfg.IsDeveloperRawUser("0191e6a2-7aaa-7bbb-8ccc-0123456789ab"))
		assert.False(t, cfg.IsDeveloperRawUser("11111111-2222-3333-4444-555555555555"))
	})
}
