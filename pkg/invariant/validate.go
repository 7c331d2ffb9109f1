// Package invariant enforces the semantic write invariants: per-event
// structural checks, soft plausibility warnings, exercise-id
// similarity, and the batch-wide session audit.
package invariant

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jonzim-cmd/kura/pkg/apperror"
	"github.com/jonzim-cmd/kura/pkg/models"
)

// Per-rule size bounds.
const (
	maxRuleSourceEvents = 32
	maxRuleFields       = 64
)

// ValidateEvent runs the structural checks for one event.
func ValidateEvent(req *models.CreateEventRequest) error {
	if req.EventType == "" {
		return &apperror.Validation{
			Message:  "event_type must not be empty",
			Field:    "event_type",
			Received: req.EventType,
			DocsHint: "event_type is a free-form string like 'set.logged', 'meal.logged', 'metric.logged'",
		}
	}

	if req.Metadata.IdempotencyKey == "" {
		return &apperror.Validation{
			Message: "metadata.idempotency_key must not be empty",
			Field:   "metadata.idempotency_key",
			DocsHint: "Generate a unique idempotency_key per event (e.g. a UUID). " +
				"This allows safe retries without duplicate events.",
		}
	}

	return validateCriticalInvariants(req)
}

func validateCriticalInvariants(req *models.CreateEventRequest) error {
	switch req.EventType {
	case "event.retracted":
		return validateRetraction(req.Data)
	case "set.corrected":
		return validateSetCorrection(req.Data)
	case "projection_rule.created":
		return validateProjectionRuleCreated(req.Data)
	case "projection_rule.archived":
		return validateProjectionRuleArchived(req.Data)
	}
	return nil
}

func policyViolation(code, message, field string, received any, docsHint string) error {
	return &apperror.PolicyViolation{
		Code:     code,
		Message:  message,
		Field:    field,
		Received: received,
		DocsHint: docsHint,
	}
}

func nonEmptyStringField(data map[string]any, key string) (string, bool) {
	raw, ok := data[key].(string)
	if !ok {
		return "", false
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}
	return trimmed, true
}

func nonEmptyStringArray(data map[string]any, key string) ([]string, bool) {
	raw, ok := data[key].([]any)
	if !ok {
		return nil, false
	}
	values := make([]string, 0, len(raw))
	for _, item := range raw {
		text, ok := item.(string)
		if !ok {
			return nil, false
		}
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			return nil, false
		}
		values = append(values, trimmed)
	}
	if len(values) == 0 {
		return nil, false
	}
	return values, true
}

func validateRetraction(data map[string]any) error {
	targetID, ok := nonEmptyStringField(data, "retracted_event_id")
	if !ok {
		return policyViolation(
			"inv_retraction_target_required",
			"event.retracted requires data.retracted_event_id",
			"data.retracted_event_id",
			data["retracted_event_id"],
			"Provide the UUID of the event that should be retracted.",
		)
	}

	if _, err := uuid.Parse(targetID); err != nil {
		return policyViolation(
			"inv_retraction_target_invalid_uuid",
			"data.retracted_event_id must be a valid UUID",
			"data.retracted_event_id",
			targetID,
			"Use the exact event.id of the event to retract.",
		)
	}

	if _, present := data["retracted_event_type"]; present {
		if _, ok := nonEmptyStringField(data, "retracted_event_type"); !ok {
			return policyViolation(
				"inv_retraction_type_invalid",
				"data.retracted_event_type, when provided, must be a non-empty string",
				"data.retracted_event_type",
				data["retracted_event_type"],
				"Set retracted_event_type to the original event_type, for example 'set.logged'.",
			)
		}
	}

	return nil
}

func validateSetCorrection(data map[string]any) error {
	targetID, ok := nonEmptyStringField(data, "target_event_id")
	if !ok {
		return policyViolation(
			"inv_set_correction_target_required",
			"set.corrected requires data.target_event_id",
			"data.target_event_id",
			data["target_event_id"],
			"Provide the UUID of the set.logged event that should be corrected.",
		)
	}

	if _, err := uuid.Parse(targetID); err != nil {
		return policyViolation(
			"inv_set_correction_target_invalid_uuid",
			"data.target_event_id must be a valid UUID",
			"data.target_event_id",
			targetID,
			"Use the exact event.id of the target set.logged event.",
		)
	}

	changedFields, present := data["changed_fields"]
	if !present {
		return policyViolation(
			"inv_set_correction_changed_fields_required",
			"set.corrected requires data.changed_fields",
			"data.changed_fields",
			nil,
			"Provide an object with at least one field patch.",
		)
	}

	changedFieldsObj, ok := changedFields.(map[string]any)
	if !ok {
		return policyViolation(
			"inv_set_correction_changed_fields_invalid",
			"data.changed_fields must be an object",
			"data.changed_fields",
			changedFields,
			"Use an object map, e.g. {'rest_seconds': 90}.",
		)
	}

	if len(changedFieldsObj) == 0 {
		return policyViolation(
			"inv_set_correction_changed_fields_empty",
			"data.changed_fields must not be empty",
			"data.changed_fields",
			changedFields,
			"Include at least one changed field in set.corrected.",
		)
	}

	for key := range changedFieldsObj {
		if strings.TrimSpace(key) == "" {
			return policyViolation(
				"inv_set_correction_changed_fields_key_invalid",
				"data.changed_fields contains an empty field name",
				"data.changed_fields",
				changedFields,
				"Each changed_fields key must be a non-empty field name.",
			)
		}
	}

	return nil
}

func validateProjectionRuleCreated(data map[string]any) error {
	name, ok := nonEmptyStringField(data, "name")
	if !ok {
		return policyViolation(
			"inv_projection_rule_name_required",
			"projection_rule.created requires data.name",
			"data.name",
			data["name"],
			"Provide a stable non-empty rule name.",
		)
	}

	ruleType, ok := nonEmptyStringField(data, "rule_type")
	if !ok {
		return policyViolation(
			"inv_projection_rule_type_required",
			"projection_rule.created requires data.rule_type",
			"data.rule_type",
			data["rule_type"],
			"Use one of: field_tracking, categorized_tracking.",
		)
	}

	if ruleType != "field_tracking" && ruleType != "categorized_tracking" {
		return policyViolation(
			"inv_projection_rule_type_invalid",
			fmt.Sprintf("projection_rule.created has unsupported rule_type '%s'", ruleType),
			"data.rule_type",
			ruleType,
			"Allowed values: field_tracking, categorized_tracking.",
		)
	}

	sourceEvents, ok := nonEmptyStringArray(data, "source_events")
	if !ok {
		return policyViolation(
			"inv_projection_rule_source_events_invalid",
			fmt.Sprintf("projection_rule.created '%s' requires non-empty data.source_events", name),
			"data.source_events",
			data["source_events"],
			"Provide at least one non-empty source event type.",
		)
	}

	fields, ok := nonEmptyStringArray(data, "fields")
	if !ok {
		return policyViolation(
			"inv_projection_rule_fields_invalid",
			fmt.Sprintf("projection_rule.created '%s' requires non-empty data.fields", name),
			"data.fields",
			data["fields"],
			"Provide at least one non-empty field name.",
		)
	}

	if len(sourceEvents) > maxRuleSourceEvents {
		return policyViolation(
			"inv_projection_rule_source_events_too_large",
			fmt.Sprintf("data.source_events exceeds maximum length of %d", maxRuleSourceEvents),
			"data.source_events",
			len(sourceEvents),
			"Split very broad rules into smaller focused projection rules.",
		)
	}

	if len(fields) > maxRuleFields {
		return policyViolation(
			"inv_projection_rule_fields_too_large",
			fmt.Sprintf("data.fields exceeds maximum length of %d", maxRuleFields),
			"data.fields",
			len(fields),
			"Reduce tracked fields per rule to keep processing bounded.",
		)
	}

	if ruleType == "categorized_tracking" {
		groupBy, ok := nonEmptyStringField(data, "group_by")
		if !ok {
			return policyViolation(
				"inv_projection_rule_group_by_required",
				"categorized_tracking requires data.group_by",
				"data.group_by",
				data["group_by"],
				"Set group_by to one of the declared fields.",
			)
		}

		found := false
		for _, field := range fields {
			if field == groupBy {
				found = true
				break
			}
		}
		if !found {
			return policyViolation(
				"inv_projection_rule_group_by_not_in_fields",
				fmt.Sprintf("data.group_by '%s' must be included in data.fields", groupBy),
				"data.group_by",
				groupBy,
				"Add group_by to data.fields or choose an existing field.",
			)
		}
	}

	return nil
}

func validateProjectionRuleArchived(data map[string]any) error {
	if _, ok := nonEmptyStringField(data, "name"); !ok {
		return policyViolation(
			"inv_projection_rule_archive_name_required",
			"projection_rule.archived requires data.name",
			"data.name",
			data["name"],
			"Provide the exact rule name to archive.",
		)
	}
	return nil
}

// ValidateBatch runs per-event validation, prefixing field paths and
// messages with the batch index. The first failure aborts: if any event
// would violate an invariant, no event is appended.
func ValidateBatch(events []models.CreateEventRequest) error {
	for i := range events {
		if err := ValidateEvent(&events[i]); err != nil {
			return prefixBatchIndex(err, i)
		}
	}
	return nil
}

func prefixBatchIndex(err error, index int) error {
	switch typed := err.(type) {
	case *apperror.Validation:
		return &apperror.Validation{
			Message:  fmt.Sprintf("events[%d]: %s", index, typed.Message),
			Field:    prefixField(typed.Field, index),
			Received: typed.Received,
			DocsHint: typed.DocsHint,
		}
	case *apperror.PolicyViolation:
		return &apperror.PolicyViolation{
			Code:     typed.Code,
			Message:  fmt.Sprintf("events[%d]: %s", index, typed.Message),
			Field:    prefixField(typed.Field, index),
			Received: typed.Received,
			DocsHint: typed.DocsHint,
		}
	}
	return err
}

func prefixField(field string, index int) string {
	if field == "" {
		return ""
	}
	return fmt.Sprintf("events[%d].%s", index, field)
}
