package invariant

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xrash/smetrics"

	"github.com/jonzim-cmd/kura/pkg/models"
)

// Jaro–Winkler threshold above which a new exercise_id is flagged as a
// likely duplicate of an existing one.
const similarityThreshold = 0.8

// CheckExerciseIDSimilarity warns when a new exercise_id closely
// matches existing ones. Only set.logged and exercise.alias_created
// carry exercise ids; known ids never warn.
func CheckExerciseIDSimilarity(eventType string, data map[string]any, knownIDs map[string]struct{}) []models.EventWarning {
	if eventType != "set.logged" && eventType != "exercise.alias_created" {
		return nil
	}

	raw, ok := data["exercise_id"].(string)
	if !ok {
		return nil
	}
	exerciseID := strings.ToLower(strings.TrimSpace(raw))
	if exerciseID == "" {
		return nil
	}

	if _, known := knownIDs[exerciseID]; known {
		return nil
	}

	var similar []string
	for existing := range knownIDs {
		if smetrics.JaroWinkler(exerciseID, existing, 0.7, 4) >= similarityThreshold {
			similar = append(similar, existing)
		}
	}
	if len(similar) == 0 {
		return nil
	}

	sort.Strings(similar)
	return []models.EventWarning{{
		Field:    "exercise_id",
		Message:  fmt.Sprintf("New exercise_id '%s'. Similar existing: %s", exerciseID, strings.Join(similar, ", ")),
		Severity: "warning",
	}}
}
