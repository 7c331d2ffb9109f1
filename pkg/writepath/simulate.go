package writepath

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/jonzim-cmd/kura/pkg/models"
	"github.com/jonzim-cmd/kura/pkg/services"
)

// Projection change modes predicted by simulate.
const (
	ChangeModeCreate  = "create"
	ChangeModeUpdate  = "update"
	ChangeModeDelete  = "delete"
	ChangeModeUnknown = "unknown"
)

type targetKey struct {
	projectionType string
	key            string
}

type targetCandidate struct {
	reasons       []string
	deleteHint    bool
	unknownTarget bool
}

type targetSet map[targetKey]*targetCandidate

func (t targetSet) add(projectionType, key, reason string, deleteHint, unknownTarget bool) {
	entryKey := targetKey{projectionType: projectionType, key: key}
	entry, ok := t[entryKey]
	if !ok {
		entry = &targetCandidate{}
		t[entryKey] = entry
	}
	for _, existing := range entry.reasons {
		if existing == reason {
			reason = ""
			break
		}
	}
	if reason != "" {
		entry.reasons = append(entry.reasons, reason)
	}
	if deleteHint {
		entry.deleteHint = true
	}
	if unknownTarget {
		entry.unknownTarget = true
	}
}

func normalizeFallbackExerciseKey(raw string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), " ", "_")
}

func extractExerciseKey(data map[string]any) string {
	if exerciseID, ok := data["exercise_id"].(string); ok {
		if key := strings.ToLower(strings.TrimSpace(exerciseID)); key != "" {
			return key
		}
	}
	if exercise, ok := data["exercise"].(string); ok {
		if key := normalizeFallbackExerciseKey(exercise); key != "" {
			return key
		}
	}
	return ""
}

func extractObservationDimension(data map[string]any) string {
	if dimension, ok := data["dimension"].(string); ok {
		return strings.ToLower(strings.TrimSpace(dimension))
	}
	return ""
}

func userProfileHandlesEvent(eventType string) bool {
	switch eventType {
	case "set.logged", "set.corrected", "exercise.alias_created", "preference.set",
		"goal.set", "profile.updated", "program.started", "injury.reported",
		"bodyweight.logged", "measurement.logged", "sleep.logged", "soreness.logged",
		"energy.logged", "meal.logged", "training_plan.created", "training_plan.updated",
		"training_plan.archived", "nutrition_target.set", "sleep_target.set",
		"weight_target.set", "session.completed":
		return true
	}
	return false
}

// addStandardTargets routes one event through the built-in projection
// table. Returns whether any standard projection handles the type.
func addStandardTargets(targets targetSet, eventType string, data map[string]any) bool {
	mapped := false

	if userProfileHandlesEvent(eventType) {
		mapped = true
		targets.add("user_profile", "me",
			fmt.Sprintf("event_type '%s' triggers user_profile recompute", eventType), false, false)
	}

	switch eventType {
	case "set.logged":
		mapped = true
		targets.add("training_timeline", "overview",
			"set.logged updates training timeline aggregates", false, false)
		if exerciseKey := extractExerciseKey(data); exerciseKey != "" {
			targets.add("exercise_progression", exerciseKey,
				"set.logged updates per-exercise progression", false, false)
			targets.add("strength_inference", exerciseKey,
				"set.logged updates Bayesian strength inference per exercise", false, false)
		} else {
			targets.add("exercise_progression", "*",
				"set.logged without exercise_id/exercise cannot map to a concrete exercise key", false, true)
			targets.add("strength_inference", "*",
				"set.logged without exercise identifier cannot map to strength_inference key", false, true)
		}
		targets.add("readiness_inference", "overview",
			"set.logged contributes training load signal for readiness inference", false, false)
		targets.add("causal_inference", "overview",
			"set.logged contributes intervention context for causal inference", false, false)
		targets.add("semantic_memory", "overview",
			"set.logged contributes user exercise vocabulary for semantic indexing", false, false)

	case "set.corrected":
		mapped = true
		targets.add("training_timeline", "overview",
			"set.corrected can update effective set load in training timeline", false, false)
		targets.add("exercise_progression", "*",
			"set.corrected can update per-exercise progression via corrected set values", false, true)
		targets.add("session_feedback", "overview",
			"set.corrected can update load-to-feedback alignment", false, false)

	case "exercise.alias_created":
		mapped = true
		targets.add("training_timeline", "overview",
			"exercise.alias_created can remap historical exercise keys in timeline", false, false)
		if exerciseKey := extractExerciseKey(data); exerciseKey != "" {
			targets.add("exercise_progression", exerciseKey,
				"exercise.alias_created can trigger exercise progression consolidation", false, false)
			targets.add("strength_inference", exerciseKey,
				"exercise.alias_created can remap Bayesian strength inference keys", false, false)
		} else {
			targets.add("exercise_progression", "*",
				"exercise.alias_created without exercise_id cannot map to a concrete exercise key", false, true)
			targets.add("strength_inference", "*",
				"exercise.alias_created without exercise_id cannot map strength_inference key", false, true)
		}
		targets.add("semantic_memory", "overview",
			"exercise.alias_created contributes semantic alias memory", false, false)

	case "session.completed":
		mapped = true
		targets.add("session_feedback", "overview",
			"session.completed updates subjective session feedback trends", false, false)

	case "observation.logged":
		mapped = true
		if dimension := extractObservationDimension(data); dimension != "" {
			targets.add("open_observations", dimension,
				"observation.logged updates open observation projection for the given dimension", false, false)
		} else {
			targets.add("open_observations", "*",
				"observation.logged without dimension cannot map to a concrete open_observations key", false, true)
		}

	case "bodyweight.logged", "measurement.logged", "weight_target.set":
		mapped = true
		targets.add("body_composition", "overview",
			fmt.Sprintf("event_type '%s' updates body composition", eventType), false, false)

	case "sleep.logged", "soreness.logged", "energy.logged", "sleep_target.set":
		mapped = true
		targets.add("recovery", "overview",
			fmt.Sprintf("event_type '%s' updates recovery", eventType), false, false)
		targets.add("readiness_inference", "overview",
			fmt.Sprintf("event_type '%s' contributes readiness inference signals", eventType), false, false)
		targets.add("causal_inference", "overview",
			fmt.Sprintf("event_type '%s' contributes causal inference signals", eventType), false, false)

	case "meal.logged", "nutrition_target.set":
		mapped = true
		targets.add("nutrition", "overview",
			fmt.Sprintf("event_type '%s' updates nutrition", eventType), false, false)
		if eventType == "meal.logged" {
			targets.add("semantic_memory", "overview",
				"meal.logged contributes food vocabulary for semantic indexing", false, false)
		}
		targets.add("causal_inference", "overview",
			fmt.Sprintf("event_type '%s' contributes causal nutrition effects", eventType), false, false)

	case "training_plan.created", "training_plan.updated", "training_plan.archived", "program.started":
		mapped = true
		targets.add("training_plan", "overview",
			fmt.Sprintf("event_type '%s' updates training plan state", eventType), false, false)
		targets.add("causal_inference", "overview",
			fmt.Sprintf("event_type '%s' marks causal program intervention timing", eventType), false, false)

	case "projection_rule.created":
		mapped = true
		if name := ruleName(data); name != "" {
			targets.add("custom", name,
				"projection_rule.created creates or updates custom projection", false, false)
		} else {
			targets.add("custom", "*",
				"projection_rule.created without name; custom key cannot be determined", false, true)
		}

	case "projection_rule.archived":
		mapped = true
		if name := ruleName(data); name != "" {
			targets.add("custom", name,
				"projection_rule.archived deletes custom projection", true, false)
		} else {
			targets.add("custom", "*",
				"projection_rule.archived without name; custom key cannot be determined", true, true)
		}
	}

	return mapped
}

func ruleName(data map[string]any) string {
	if name, ok := data["name"].(string); ok {
		return strings.TrimSpace(name)
	}
	return ""
}

// customRule is one active projection_rule.created definition.
type customRule struct {
	Name         string
	SourceEvents map[string]struct{}
}

// activeCustomRules folds the owner's rule events: created minus
// archived, newest definition wins.
func (o *Orchestrator) activeCustomRules(ctx context.Context, ownerID uuid.UUID) ([]customRule, error) {
	created, err := o.events.List(ctx, ownerID, models.ListEventsParams{
		EventType: "projection_rule.created",
		Limit:     200,
	})
	if err != nil {
		return nil, err
	}
	archived, err := o.events.List(ctx, ownerID, models.ListEventsParams{
		EventType: "projection_rule.archived",
		Limit:     200,
	})
	if err != nil {
		return nil, err
	}

	archivedNames := map[string]struct{}{}
	for _, evt := range archived.Data {
		if name := ruleName(evt.Data); name != "" {
			archivedNames[name] = struct{}{}
		}
	}

	seen := map[string]struct{}{}
	var rules []customRule
	// List returns newest first; the first definition per name wins.
	for _, evt := range created.Data {
		name := ruleName(evt.Data)
		if name == "" {
			continue
		}
		if _, isArchived := archivedNames[name]; isArchived {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		sourceEvents := map[string]struct{}{}
		if raw, ok := evt.Data["source_events"].([]any); ok {
			for _, item := range raw {
				if text, ok := item.(string); ok {
					sourceEvents[strings.ToLower(strings.TrimSpace(text))] = struct{}{}
				}
			}
		}
		rules = append(rules, customRule{Name: name, SourceEvents: sourceEvents})
	}

	return rules, nil
}

// Simulate validates the batch and predicts projection impacts without
// appending anything. Parity contract: the impact set equals the
// projections whose version would change after the real write.
func (o *Orchestrator) Simulate(ctx context.Context, ownerID uuid.UUID, events []models.CreateEventRequest) (*models.SimulateEventsResponse, error) {
	warnings, err := o.ValidateAndWarn(ctx, ownerID, events)
	if err != nil {
		return nil, err
	}

	rules, err := o.activeCustomRules(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	targets := targetSet{}
	for i := range events {
		event := &events[i]
		eventType := strings.ToLower(strings.TrimSpace(event.EventType))

		if eventType == "event.retracted" {
			o.addRetractionTargets(ctx, ownerID, targets, event.Data)
			continue
		}

		addStandardTargets(targets, eventType, event.Data)

		for _, rule := range rules {
			if _, handles := rule.SourceEvents[eventType]; handles {
				targets.add("custom", rule.Name,
					fmt.Sprintf("custom rule '%s' tracks event_type '%s'", rule.Name, eventType), false, false)
			}
		}
	}

	impacts := make([]models.ProjectionImpact, 0, len(targets))
	for key, candidate := range targets {
		impact := models.ProjectionImpact{
			ProjectionType: key.projectionType,
			Key:            key.key,
			Reasons:        candidate.reasons,
		}

		switch {
		case candidate.unknownTarget:
			impact.ChangeMode = ChangeModeUnknown
		case candidate.deleteHint:
			impact.ChangeMode = ChangeModeDelete
		default:
			projection, err := o.projections.Get(ctx, ownerID, key.projectionType, key.key)
			if err != nil {
				if !errors.Is(err, services.ErrNotFound) {
					return nil, err
				}
				impact.ChangeMode = ChangeModeCreate
				predicted := int64(1)
				impact.PredictedVersion = &predicted
			} else {
				impact.ChangeMode = ChangeModeUpdate
				current := projection.Version
				predicted := current + 1
				impact.CurrentVersion = &current
				impact.PredictedVersion = &predicted
			}
		}

		impacts = append(impacts, impact)
	}

	sortImpacts(impacts)

	return &models.SimulateEventsResponse{
		Valid:    true,
		Impacts:  impacts,
		Warnings: warnings,
	}, nil
}

// addRetractionTargets routes a retraction through the targets of the
// event it retracts; an unresolvable target stays unknown.
func (o *Orchestrator) addRetractionTargets(ctx context.Context, ownerID uuid.UUID, targets targetSet, data map[string]any) {
	retractedType := ""
	if raw, ok := data["retracted_event_type"].(string); ok {
		retractedType = strings.ToLower(strings.TrimSpace(raw))
	}
	retractedData := map[string]any{}

	if idRaw, ok := data["retracted_event_id"].(string); ok {
		if eventID, err := uuid.Parse(strings.TrimSpace(idRaw)); err == nil {
			if original, err := o.events.Get(ctx, ownerID, eventID); err == nil {
				retractedType = strings.ToLower(strings.TrimSpace(original.EventType))
				retractedData = original.Data
			}
		}
	}

	if retractedType == "" {
		targets.add("*", "*",
			"event.retracted target could not be resolved; impact unknown", false, true)
		return
	}

	addStandardTargets(targets, retractedType, retractedData)
}

func sortImpacts(impacts []models.ProjectionImpact) {
	sort.Slice(impacts, func(i, j int) bool {
		if impacts[i].ProjectionType != impacts[j].ProjectionType {
			return impacts[i].ProjectionType < impacts[j].ProjectionType
		}
		return impacts[i].Key < impacts[j].Key
	})
}
