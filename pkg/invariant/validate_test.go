package invariant

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonzim-cmd/kura/pkg/apperror"
	"github.com/jonzim-cmd/kura/pkg/models"
)

func makeRequest(eventType string, data map[string]any) models.CreateEventRequest {
	return models.CreateEventRequest{
		EventType: eventType,
		Data:      data,
		Metadata:  models.EventMetadata{IdempotencyKey: uuid.NewString()},
	}
}

func assertPolicyViolation(t *testing.T, err error, expectedCode, expectedField string) {
	t.Helper()
	var violation *apperror.PolicyViolation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, expectedCode, violation.Code)
	assert.Equal(t, expectedField, violation.Field)
}

func TestValidateEvent(t *testing.T) {
	t.Run("empty event_type is rejected", func(t *testing.T) {
		req := makeRequest("", nil)
		err := ValidateEvent(&req)
		var validation *apperror.Validation
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, "event_type", validation.Field)
	})

	t.Run("empty idempotency_key is rejected", func(t *testing.T) {
		req := models.CreateEventRequest{EventType: "set.logged"}
		err := ValidateEvent(&req)
		var validation *apperror.Validation
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, "metadata.idempotency_key", validation.Field)
	})

	t.Run("retraction requires target event id", func(t *testing.T) {
		req := makeRequest("event.retracted", map[string]any{})
		err := ValidateEvent(&req)
		assertPolicyViolation(t, err, "inv_retraction_target_required", "data.retracted_event_id")
	})

	t.Run("retraction requires uuid target", func(t *testing.T) {
		req := makeRequest("event.retracted", map[string]any{"retracted_event_id": "not-a-uuid"})
		err := ValidateEvent(&req)
		assertPolicyViolation(t, err, "inv_retraction_target_invalid_uuid", "data.retracted_event_id")
	})

	t.Run("valid retraction passes", func(t *testing.T) {
		req := makeRequest("event.retracted", map[string]any{"retracted_event_id": uuid.NewString()})
		assert.NoError(t, ValidateEvent(&req))
	})

	t.Run("set.corrected requires non-empty changed fields", func(t *testing.T) {
		req := makeRequest("set.corrected", map[string]any{
			"target_event_id": uuid.NewString(),
			"changed_fields":  map[string]any{},
		})
		err := ValidateEvent(&req)
		assertPolicyViolation(t, err, "inv_set_correction_changed_fields_empty", "data.changed_fields")
	})

	t.Run("projection rule rejects invalid rule type", func(t *testing.T) {
		req := makeRequest("projection_rule.created", map[string]any{
			"name":          "my-rule",
			"rule_type":     "windowed_tracking",
			"source_events": []any{"set.logged"},
			"fields":        []any{"weight_kg"},
		})
		err := ValidateEvent(&req)
		assertPolicyViolation(t, err, "inv_projection_rule_type_invalid", "data.rule_type")
	})

	t.Run("categorized rule requires group_by in fields", func(t *testing.T) {
		req := makeRequest("projection_rule.created", map[string]any{
			"name":          "my-rule",
			"rule_type":     "categorized_tracking",
			"source_events": []any{"set.logged"},
			"fields":        []any{"weight_kg"},
			"group_by":      "exercise_id",
		})
		err := ValidateEvent(&req)
		assertPolicyViolation(t, err, "inv_projection_rule_group_by_not_in_fields", "data.group_by")
	})

	t.Run("rule with too many source events is rejected", func(t *testing.T) {
		sourceEvents := make([]any, 33)
		for i := range sourceEvents {
			sourceEvents[i] = uuid.NewString()
		}
		req := makeRequest("projection_rule.created", map[string]any{
			"name":          "broad-rule",
			"rule_type":     "field_tracking",
			"source_events": sourceEvents,
			"fields":        []any{"weight_kg"},
		})
		err := ValidateEvent(&req)
		assertPolicyViolation(t, err, "inv_projection_rule_source_events_too_large", "data.source_events")
	})

	t.Run("valid rule passes", func(t *testing.T) {
		req := makeRequest("projection_rule.created", map[string]any{
			"name":          "bench-tracking",
			"rule_type":     "categorized_tracking",
			"source_events": []any{"set.logged"},
			"fields":        []any{"weight_kg", "exercise_id"},
			"group_by":      "exercise_id",
		})
		assert.NoError(t, ValidateEvent(&req))
	})

	t.Run("rule archive requires name", func(t *testing.T) {
		req := makeRequest("projection_rule.archived", map[string]any{})
		err := ValidateEvent(&req)
		assertPolicyViolation(t, err, "inv_projection_rule_archive_name_required", "data.name")
	})
}

func TestValidateBatch(t *testing.T) {
	t.Run("failure carries the batch index", func(t *testing.T) {
		events := []models.CreateEventRequest{
			makeRequest("set.logged", map[string]any{"weight_kg": 80.0}),
			makeRequest("event.retracted", map[string]any{}),
		}
		err := ValidateBatch(events)
		var violation *apperror.PolicyViolation
		require.ErrorAs(t, err, &violation)
		assert.Equal(t, "events[1].data.retracted_event_id", violation.Field)
		assert.Contains(t, violation.Message, "events[1]:")
	})

	t.Run("clean batch passes", func(t *testing.T) {
		events := []models.CreateEventRequest{
			makeRequest("set.logged", map[string]any{"weight_kg": 80.0}),
			makeRequest("session.completed", map[string]any{"enjoyment": 7.0}),
		}
		assert.NoError(t, ValidateBatch(events))
	})
}

func TestCheckPlausibility(t *testing.T) {
	t.Run("normal set has no warnings", func(t *testing.T) {
		assert.Empty(t, CheckPlausibility("set.logged", map[string]any{"weight_kg": 80.0, "reps": 5.0}))
	})

	t.Run("extreme weight warns", func(t *testing.T) {
		warnings := CheckPlausibility("set.logged", map[string]any{"weight_kg": 600.0})
		require.Len(t, warnings, 1)
		assert.Equal(t, "weight_kg", warnings[0].Field)
		assert.Equal(t, "warning", warnings[0].Severity)
	})

	t.Run("multiple warnings accumulate", func(t *testing.T) {
		warnings := CheckPlausibility("set.logged", map[string]any{"weight_kg": -5.0, "reps": 150.0})
		assert.Len(t, warnings, 2)
	})

	t.Run("meal macros are bounded", func(t *testing.T) {
		warnings := CheckPlausibility("meal.logged", map[string]any{"calories": 9000.0, "protein_g": 600.0})
		assert.Len(t, warnings, 2)
	})

	t.Run("unknown event types have no checks", func(t *testing.T) {
		assert.Empty(t, CheckPlausibility("custom.logged", map[string]any{"weight_kg": 9999.0}))
	})
}

func knownIDs(ids ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}

func TestCheckExerciseIDSimilarity(t *testing.T) {
	t.Run("similar id warns with sorted candidates", func(t *testing.T) {
		warnings := CheckExerciseIDSimilarity("set.logged",
			map[string]any{"exercise_id": "bench_pres"},
			knownIDs("bench_press", "squat"))
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0].Message, "bench_press")
	})

	t.Run("known id never warns", func(t *testing.T) {
		warnings := CheckExerciseIDSimilarity("set.logged",
			map[string]any{"exercise_id": "Bench_Press"},
			knownIDs("bench_press"))
		assert.Empty(t, warnings)
	})

	t.Run("dissimilar id does not warn", func(t *testing.T) {
		warnings := CheckExerciseIDSimilarity("set.logged",
			map[string]any{"exercise_id": "deadlift"},
			knownIDs("bench_press"))
		assert.Empty(t, warnings)
	})

	t.Run("irrelevant event type is skipped", func(t *testing.T) {
		warnings := CheckExerciseIDSimilarity("meal.logged",
			map[string]any{"exercise_id": "bench_pres"},
			knownIDs("bench_press"))
		assert.Empty(t, warnings)
	})
}
