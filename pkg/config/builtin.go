package config

// Built-in defaults. User YAML overrides are merged on top; see loader.go.

// Security profile names.
const (
	ProfileDefault  = "default"
	ProfileAdaptive = "adaptive"
	ProfileStrict   = "strict"
)

func builtinSecurity() SecurityConfig {
	return SecurityConfig{
		DefaultProfile: ProfileAdaptive,
		Profiles: map[string]SecurityProfileConfig{
			// Default profile stays low-friction for normal users.
			ProfileDefault: {
				ThrottleScoreThreshold: 70,
				BlockScoreThreshold:    90,
				ThrottleCooldownSecs:   15,
				BlockCooldownSecs:      45,
				ThrottleDelayLowMs:     90,
				ThrottleDelayMediumMs:  140,
				ThrottleDelayHighMs:    200,
			},
			ProfileAdaptive: {
				ThrottleScoreThreshold: 40,
				BlockScoreThreshold:    75,
				ThrottleCooldownSecs:   45,
				BlockCooldownSecs:      120,
				ThrottleDelayLowMs:     150,
				ThrottleDelayMediumMs:  300,
				ThrottleDelayHighMs:    500,
			},
			ProfileStrict: {
				ThrottleScoreThreshold: 25,
				BlockScoreThreshold:    55,
				ThrottleCooldownSecs:   90,
				BlockCooldownSecs:      180,
				ThrottleDelayLowMs:     350,
				ThrottleDelayMediumMs:  550,
				ThrottleDelayHighMs:    800,
			},
		},
		OwnerOverrides: map[string]string{},
	}
}

// Confirmation template keys.
const (
	TemplateNonTrivialAction = "non_trivial_action"
	TemplatePlanUpdate       = "plan_update"
	TemplateRepairAction     = "repair_action"
	TemplatePostSaveFollowup = "post_save_followup"
)

func builtinConfirmationTemplates() map[string]string {
	return map[string]string{
		TemplateNonTrivialAction: "Wenn du willst, kann ich als nächsten Schritt direkt fortfahren.",
		TemplatePlanUpdate:       "Wenn du willst, passe ich den Plan jetzt entsprechend an.",
		TemplateRepairAction:     "Eine risikoarme Reparatur ist möglich. Soll ich sie ausführen?",
		TemplatePostSaveFollowup: "Speichern ist verifiziert.",
	}
}

func builtinRetention() RetentionConfig {
	return RetentionConfig{
		AccessLogTTLDays: 14,
		TelemetryTTLDays: 90,
		CleanupInterval:  "1h",
	}
}
