package handshake

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonzim-cmd/kura/pkg/apperror"
	"github.com/jonzim-cmd/kura/pkg/models"
)

// SummarizeChangeSet renders "type:count" entries (sorted) for the
// high-impact events in the batch, shown to the user before confirming.
func SummarizeChangeSet(events []models.CreateEventRequest, isHighImpactType func(string) bool) []string {
	counts := map[string]int{}
	for _, evt := range events {
		eventType := strings.ToLower(strings.TrimSpace(evt.EventType))
		if isHighImpactType(eventType) {
			counts[eventType]++
		}
	}

	entries := make([]string, 0, len(counts))
	for eventType, count := range counts {
		entries = append(entries, fmt.Sprintf("%s:%d", eventType, count))
	}
	sort.Strings(entries)
	return entries
}

// ValidateConfirmation runs the second leg of the confirm-first
// protocol. When the confirmation block is absent it returns a
// Validation error whose Received block carries a freshly issued token,
// its TTL, and the pending change set so the client can complete the
// round-trip. A missing or invalid token is rejected with reason codes
// (plus the pending change set for an invalid token); no new token is
// issued in that case.
func ValidateConfirmation(
	confirmation *models.HighImpactConfirmation,
	events []models.CreateEventRequest,
	isHighImpactType func(string) bool,
	gate models.AutonomyGate,
	ownerID uuid.UUID,
	actionClass string,
	requestDigest string,
	secret string,
	now time.Time,
) error {
	baseReasons := dedupe(append(append([]string{}, gate.ReasonCodes...), ReasonConfirmationRequired))

	secret = strings.TrimSpace(secret)
	if secret == "" {
		return &apperror.Validation{
			Message: "High-impact confirmation secret is not configured.",
			Field:   "high_impact_confirmation.confirmation_token",
			Received: map[string]any{
				"reason_codes": dedupe(append(append([]string{}, baseReasons...), ReasonSecretUnconfigured)),
			},
			DocsHint: "Set KURA_AGENT_MODEL_ATTESTATION_SECRET so confirmation tokens can be issued and verified.",
		}
	}

	pendingChangeSet := SummarizeChangeSet(events, isHighImpactType)
	if len(pendingChangeSet) == 0 {
		pendingChangeSet = []string{models.ActionClassHighImpactWrite + ":1"}
	}

	docsHint := fmt.Sprintf(
		"Show pending_change_set to the user, then resend with high_impact_confirmation { schema_version: '%s', confirmed: true, confirmed_at: <current_utc_timestamp>, confirmation_token: <confirmation_token> }.",
		ConfirmationSchemaVersion)

	if confirmation == nil {
		token, _ := IssueToken(secret, ownerID, actionClass, requestDigest, now)
		return &apperror.Validation{
			Message: "Explicit user confirmation is required for this high-impact write.",
			Field:   "high_impact_confirmation",
			Received: map[string]any{
				"reason_codes":                   baseReasons,
				"required_reason_codes":          baseReasons,
				"pending_change_set":             pendingChangeSet,
				"confirmation_token":             token,
				"confirmation_token_ttl_minutes": ConfirmationMaxAgeMinutes,
			},
			DocsHint: docsHint,
		}
	}

	token := strings.TrimSpace(confirmation.ConfirmationToken)
	if token == "" {
		return &apperror.Validation{
			Message: "high_impact_confirmation.confirmation_token is required",
			Field:   "high_impact_confirmation.confirmation_token",
			Received: map[string]any{
				"reason_codes": dedupe(append(append([]string{}, baseReasons...), ReasonTokenMissing)),
			},
			DocsHint: "Replay the latest confirm-first request payload with the confirmation_token returned by Kura.",
		}
	}

	if tokenReasons := VerifyToken(token, secret, ownerID, actionClass, requestDigest, now); len(tokenReasons) > 0 {
		return &apperror.Validation{
			Message: "high_impact_confirmation.confirmation_token is invalid",
			Field:   "high_impact_confirmation.confirmation_token",
			Received: map[string]any{
				"reason_codes":       dedupe(append(tokenReasons, ReasonConfirmationInvalid)),
				"pending_change_set": pendingChangeSet,
			},
			DocsHint: "Request a fresh confirm-first challenge and resend the unchanged write payload with the new token.",
		}
	}

	if strings.TrimSpace(confirmation.SchemaVersion) != ConfirmationSchemaVersion {
		return &apperror.Validation{
			Message: "high_impact_confirmation.schema_version is not supported",
			Field:   "high_impact_confirmation.schema_version",
			Received: map[string]any{
				"schema_version": confirmation.SchemaVersion,
				"reason_codes":   dedupe(append(append([]string{}, baseReasons...), ReasonConfirmationInvalid)),
			},
			DocsHint: fmt.Sprintf("Use schema_version '%s'.", ConfirmationSchemaVersion),
		}
	}
	if !confirmation.Confirmed {
		return &apperror.Validation{
			Message: "high_impact_confirmation.confirmed must be true",
			Field:   "high_impact_confirmation.confirmed",
			Received: map[string]any{
				"confirmed":    confirmation.Confirmed,
				"reason_codes": dedupe(append(append([]string{}, baseReasons...), ReasonConfirmationInvalid)),
			},
			DocsHint: "Set confirmed=true only after the user explicitly approves the pending change set.",
		}
	}

	age := now.Sub(confirmation.ConfirmedAt)
	if age > ConfirmationMaxAgeMinutes*time.Minute || age < -ConfirmationFutureSkewMins*time.Minute {
		return &apperror.Validation{
			Message: "high_impact_confirmation is stale",
			Field:   "high_impact_confirmation.confirmed_at",
			Received: map[string]any{
				"confirmed_at": confirmation.ConfirmedAt,
				"reason_codes": dedupe(append(append([]string{}, baseReasons...), ReasonConfirmationInvalid)),
			},
			DocsHint: fmt.Sprintf("Send confirmation within %d minutes of execution.", ConfirmationMaxAgeMinutes),
		}
	}

	return nil
}
