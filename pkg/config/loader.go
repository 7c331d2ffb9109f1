package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Initialize loads, merges, and validates the runtime configuration.
//
// Steps performed:
//  1. Start from built-in defaults
//  2. Load kura.yaml from configDir when present
//  3. Merge user values over the defaults (mergo, override semantics)
//  4. Load process secrets from the environment
//  5. Validate everything
func Initialize(configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg := &Config{
		Security:              builtinSecurity(),
		ConfirmationTemplates: builtinConfirmationTemplates(),
		Retention:             builtinRetention(),
	}

	if configDir != "" {
		path := filepath.Join(configDir, "kura.yaml")
		if raw, err := os.ReadFile(path); err == nil {
			var user KuraYAMLConfig
			if err := yaml.Unmarshal(raw, &user); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", path, err)
			}
			if err := mergeUserConfig(cfg, &user); err != nil {
				return nil, fmt.Errorf("failed to merge %s: %w", path, err)
			}
			log.Info("Applied configuration overrides", "file", path)
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}

	process, err := LoadProcessConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load process configuration: %w", err)
	}
	cfg.Process = process

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized",
		"default_profile", cfg.Security.DefaultProfile,
		"profiles", len(cfg.Security.Profiles),
		"templates", len(cfg.ConfirmationTemplates))

	return cfg, nil
}

func mergeUserConfig(cfg *Config, user *KuraYAMLConfig) error {
	if user.Security != nil {
		if err := mergo.Merge(&cfg.Security, *user.Security, mergo.WithOverride); err != nil {
			return err
		}
	}
	if len(user.ConfirmationTemplates) > 0 {
		if err := mergo.Merge(&cfg.ConfirmationTemplates, user.ConfirmationTemplates, mergo.WithOverride); err != nil {
			return err
		}
	}
	if user.Retention != nil {
		if err := mergo.Merge(&cfg.Retention, *user.Retention, mergo.WithOverride); err != nil {
			return err
		}
	}
	return nil
}

func validate(cfg *Config) error {
	if _, ok := cfg.Security.Profiles[cfg.Security.DefaultProfile]; !ok {
		return fmt.Errorf("default_profile %q has no profile definition", cfg.Security.DefaultProfile)
	}
	for name, profile := range cfg.Security.Profiles {
		if profile.ThrottleScoreThreshold <= 0 || profile.BlockScoreThreshold <= 0 {
			return fmt.Errorf("profile %q: score thresholds must be positive", name)
		}
		if profile.BlockScoreThreshold < profile.ThrottleScoreThreshold {
			return fmt.Errorf("profile %q: block threshold below throttle threshold", name)
		}
	}
	for owner, profile := range cfg.Security.OwnerOverrides {
		if _, ok := cfg.Security.Profiles[profile]; !ok {
			return fmt.Errorf("owner override %s references unknown profile %q", owner, profile)
		}
	}
	if _, err := cfg.CleanupInterval(); err != nil {
		return fmt.Errorf("retention.cleanup_interval: %w", err)
	}
	return nil
}

// CleanupInterval parses the retention sweep interval.
func (c *Config) CleanupInterval() (time.Duration, error) {
	return time.ParseDuration(c.Retention.CleanupInterval)
}
