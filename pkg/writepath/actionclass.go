// Package writepath orchestrates the write pipeline and assembles the
// claim guard, derived quality events, and learning signals.
package writepath

import (
	"strings"

	"github.com/jonzim-cmd/kura/pkg/models"
)

// High-impact event types: planning/coaching changes plus workflow
// onboarding transitions.
var planningOrCoachingEventTypes = map[string]struct{}{
	"training_plan.created":    {},
	"training_plan.updated":    {},
	"training_plan.archived":   {},
	"projection_rule.created":  {},
	"projection_rule.archived": {},
	"weight_target.set":        {},
	"sleep_target.set":         {},
	"nutrition_target.set":     {},
}

const (
	workflowOnboardingClosedEventType   = "workflow.onboarding.closed"
	workflowOnboardingOverrideEventType = "workflow.onboarding.override_granted"
)

// IsHighImpactEventType reports whether one event type escalates the
// batch to high-impact.
func IsHighImpactEventType(eventType string) bool {
	normalized := strings.ToLower(strings.TrimSpace(eventType))
	if _, ok := planningOrCoachingEventTypes[normalized]; ok {
		return true
	}
	return normalized == workflowOnboardingClosedEventType ||
		normalized == workflowOnboardingOverrideEventType
}

// ClassifyActionClass derives the batch's action class from its event
// types.
func ClassifyActionClass(events []models.CreateEventRequest) string {
	for _, evt := range events {
		if IsHighImpactEventType(evt.EventType) {
			return models.ActionClassHighImpactWrite
		}
	}
	return models.ActionClassLowImpactWrite
}
