package invariant

import (
	"fmt"

	"github.com/jonzim-cmd/kura/pkg/models"
)

// CheckPlausibility returns soft warnings for values outside plausible
// ranges. Events are always accepted; these only decorate the response.
func CheckPlausibility(eventType string, data map[string]any) []models.EventWarning {
	var warnings []models.EventWarning

	warn := func(field, message string) {
		warnings = append(warnings, models.EventWarning{
			Field:    field,
			Message:  message,
			Severity: "warning",
		})
	}
	number := func(field string) (float64, bool) {
		v, ok := data[field].(float64)
		return v, ok
	}

	switch eventType {
	case "set.logged":
		if w, ok := number("weight_kg"); ok && (w < 0 || w > 500) {
			warn("weight_kg", fmt.Sprintf("weight_kg=%v outside plausible range [0, 500]", w))
		}
		if r, ok := number("reps"); ok && (r < 0 || r > 100) {
			warn("reps", fmt.Sprintf("reps=%v outside plausible range [0, 100]", r))
		}
	case "bodyweight.logged":
		if w, ok := number("weight_kg"); ok && (w < 20 || w > 300) {
			warn("weight_kg", fmt.Sprintf("weight_kg=%v outside plausible range [20, 300]", w))
		}
	case "meal.logged":
		if c, ok := number("calories"); ok && (c < 0 || c > 5000) {
			warn("calories", fmt.Sprintf("calories=%v outside plausible range [0, 5000]", c))
		}
		for _, macroField := range []string{"protein_g", "carbs_g", "fat_g"} {
			if v, ok := number(macroField); ok && (v < 0 || v > 500) {
				warn(macroField, fmt.Sprintf("%s=%v outside plausible range [0, 500]", macroField, v))
			}
		}
	case "sleep.logged":
		if d, ok := number("duration_hours"); ok && (d < 0 || d > 20) {
			warn("duration_hours", fmt.Sprintf("duration_hours=%v outside plausible range [0, 20]", d))
		}
	case "soreness.logged":
		if s, ok := number("severity"); ok && (s < 1 || s > 5) {
			warn("severity", fmt.Sprintf("severity=%v outside plausible range [1, 5]", s))
		}
	case "energy.logged":
		if l, ok := number("level"); ok && (l < 1 || l > 10) {
			warn("level", fmt.Sprintf("level=%v outside plausible range [1, 10]", l))
		}
	case "measurement.logged":
		if v, ok := number("value_cm"); ok && (v < 1 || v > 300) {
			warn("value_cm", fmt.Sprintf("value_cm=%v outside plausible range [1, 300]", v))
		}
	}

	return warnings
}
