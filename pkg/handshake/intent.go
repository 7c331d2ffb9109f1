package handshake

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonzim-cmd/kura/pkg/apperror"
	"github.com/jonzim-cmd/kura/pkg/models"
)

// ValidateIntent checks a handshake for schema version, required text
// fields, impact class agreement, and freshness.
func ValidateIntent(handshake *models.IntentHandshake, actionClass string, now time.Time) error {
	if strings.TrimSpace(handshake.SchemaVersion) != IntentSchemaVersion {
		return &apperror.Validation{
			Message:  "intent_handshake.schema_version is not supported",
			Field:    "intent_handshake.schema_version",
			Received: handshake.SchemaVersion,
			DocsHint: fmt.Sprintf("Use schema_version '%s'.", IntentSchemaVersion),
		}
	}

	if strings.TrimSpace(handshake.Goal) == "" {
		return &apperror.Validation{
			Message:  "intent_handshake.goal must not be empty",
			Field:    "intent_handshake.goal",
			Received: handshake.Goal,
			DocsHint: "Provide a concise execution goal.",
		}
	}
	if strings.TrimSpace(handshake.PlannedAction) == "" {
		return &apperror.Validation{
			Message:  "intent_handshake.planned_action must not be empty",
			Field:    "intent_handshake.planned_action",
			Received: handshake.PlannedAction,
			DocsHint: "Describe the planned write action before execution.",
		}
	}
	if strings.TrimSpace(handshake.SuccessCriteria) == "" {
		return &apperror.Validation{
			Message:  "intent_handshake.success_criteria must not be empty",
			Field:    "intent_handshake.success_criteria",
			Received: handshake.SuccessCriteria,
			DocsHint: "Define how success is validated.",
		}
	}
	if len(handshake.Assumptions) == 0 {
		return &apperror.Validation{
			Message:  "intent_handshake.assumptions must not be empty",
			Field:    "intent_handshake.assumptions",
			DocsHint: "List at least one explicit assumption.",
		}
	}
	if len(handshake.NonGoals) == 0 {
		return &apperror.Validation{
			Message:  "intent_handshake.non_goals must not be empty",
			Field:    "intent_handshake.non_goals",
			DocsHint: "List at least one explicit non-goal.",
		}
	}

	impactClass := strings.ToLower(strings.TrimSpace(handshake.ImpactClass))
	if impactClass != models.ActionClassHighImpactWrite && impactClass != models.ActionClassLowImpactWrite {
		return &apperror.Validation{
			Message:  "intent_handshake.impact_class must be low_impact_write or high_impact_write",
			Field:    "intent_handshake.impact_class",
			Received: handshake.ImpactClass,
			DocsHint: "Set impact_class to match the intended write scope.",
		}
	}
	if impactClass != actionClass {
		return &apperror.Validation{
			Message: "intent_handshake.impact_class does not match detected action class",
			Field:   "intent_handshake.impact_class",
			Received: map[string]any{
				"handshake":             impactClass,
				"detected_action_class": actionClass,
			},
			DocsHint: "Refresh the handshake for the current action scope before executing.",
		}
	}

	if now.Sub(handshake.CreatedAt) > IntentMaxAgeMinutes*time.Minute {
		return &apperror.Validation{
			Message:  "intent_handshake is stale",
			Field:    "intent_handshake.created_at",
			Received: handshake.CreatedAt,
			DocsHint: fmt.Sprintf("Create a fresh handshake within %d minutes of execution.", IntentMaxAgeMinutes),
		}
	}

	return nil
}

// BuildIntentConfirmation echoes an accepted handshake back to the
// client with a user-facing confirmation line.
func BuildIntentConfirmation(handshake *models.IntentHandshake) models.IntentHandshakeConfirmation {
	return models.IntentHandshakeConfirmation{
		SchemaVersion: IntentSchemaVersion,
		Status:        "accepted",
		ImpactClass:   strings.ToLower(strings.TrimSpace(handshake.ImpactClass)),
		HandshakeID:   handshake.HandshakeID,
		ChatConfirmation: fmt.Sprintf(
			"Intent bestätigt: Ziel='%s', Aktion='%s', Erfolg='%s'.",
			strings.TrimSpace(handshake.Goal),
			strings.TrimSpace(handshake.PlannedAction),
			strings.TrimSpace(handshake.SuccessCriteria),
		),
	}
}
