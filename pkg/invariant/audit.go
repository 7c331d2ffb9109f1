package invariant

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/jonzim-cmd/kura/pkg/models"
)

// Audit mismatch classes.
const (
	AuditClassMissingMentionField      = "missing_mention_bound_field"
	AuditClassScaleOutOfBounds         = "scale_out_of_bounds"
	AuditClassNarrativeContradiction   = "narrative_structured_contradiction"
	AuditClassUnsupportedInferredValue = "unsupported_inferred_value"
)

// Session feedback scale fields audited on session.completed.
var sessionFeedbackScaleFields = []string{"enjoyment", "perceived_quality", "perceived_exertion"}

type unresolvedFinding struct {
	Field         string
	ExerciseLabel string
	Candidates    []string
	Class         string
}

// AuditSession runs the batch-wide session audit over set.logged and
// session.completed events: unresolved mention-bound fields, scale
// bounds, narrative/structured contradictions, and unsupported inferred
// values. set.corrected and all other event types are not audited.
// A failing audit
// yields needs_clarification with a single high-value follow-up
// question.
func AuditSession(events []models.CreateEventRequest) models.SessionAuditSummary {
	var unresolved []unresolvedFinding
	classSet := map[string]struct{}{}

	record := func(finding unresolvedFinding) {
		unresolved = append(unresolved, finding)
		classSet[finding.Class] = struct{}{}
	}

	for i := range events {
		event := &events[i]
		eventType := strings.ToLower(strings.TrimSpace(event.EventType))
		switch eventType {
		case "set.logged":
			auditSetLogged(event, record)
		case "session.completed":
			auditSessionCompleted(event, record)
		}
	}

	summary := models.SessionAuditSummary{
		Status:          models.AuditStatusClean,
		MismatchClasses: []string{},
	}
	for class := range classSet {
		summary.MismatchClasses = append(summary.MismatchClasses, class)
	}
	sort.Strings(summary.MismatchClasses)

	if len(unresolved) > 0 {
		summary.Status = models.AuditStatusNeedsClarification
		summary.MismatchDetected = len(unresolved)
		summary.MismatchUnresolved = len(unresolved)
		summary.ClarificationQuestion = buildClarificationQuestion(unresolved[0])
	}

	return summary
}

func auditSetLogged(event *models.CreateEventRequest, record func(unresolvedFinding)) {
	label := exerciseLabel(event)

	mentions := map[string]any{}
	for _, candidate := range EventTextCandidates(event) {
		for field, value := range ExtractSetContextMentions(candidate[1]) {
			if _, seen := mentions[field]; !seen {
				mentions[field] = value
			}
		}
	}

	for _, field := range MentionBoundFields {
		mention, mentioned := mentions[field]
		structured, structuredPresent := nonNullField(event, field)

		if mentioned && !structuredPresent {
			record(unresolvedFinding{
				Field:         field,
				ExerciseLabel: label,
				Candidates:    []string{CanonicalMentionValue(mention)},
				Class:         AuditClassMissingMentionField,
			})
			continue
		}
		if mentioned && structuredPresent && !mentionMatchesStructured(mention, structured) {
			record(unresolvedFinding{
				Field:         field,
				ExerciseLabel: label,
				Candidates:    []string{CanonicalMentionValue(structured), CanonicalMentionValue(mention)},
				Class:         AuditClassNarrativeContradiction,
			})
		}
	}

	for _, field := range MentionBoundFields {
		if hasUnsupportedInferredValue(event, field) {
			record(unresolvedFinding{
				Field:         field,
				ExerciseLabel: label,
				Class:         AuditClassUnsupportedInferredValue,
			})
		}
	}
}

func auditSessionCompleted(event *models.CreateEventRequest, record func(unresolvedFinding)) {
	for _, field := range sessionFeedbackScaleFields {
		if value, ok := event.Data[field].(float64); ok {
			if value < 1 || value > 10 {
				record(unresolvedFinding{
					Field:         field,
					ExerciseLabel: "dieser Session",
					Candidates:    []string{CanonicalMentionValue(value)},
					Class:         AuditClassScaleOutOfBounds,
				})
			}
		}
		if hasUnsupportedInferredValue(event, field) {
			record(unresolvedFinding{
				Field:         field,
				ExerciseLabel: "dieser Session",
				Class:         AuditClassUnsupportedInferredValue,
			})
		}
	}
}

// hasUnsupportedInferredValue reports a field marked <field>_source =
// inferred without a linked <field>_evidence_claim_id.
func hasUnsupportedInferredValue(event *models.CreateEventRequest, field string) bool {
	source, _ := event.Data[field+"_source"].(string)
	if !strings.EqualFold(strings.TrimSpace(source), "inferred") {
		return false
	}
	evidence, _ := event.Data[field+"_evidence_claim_id"].(string)
	return strings.TrimSpace(evidence) == ""
}

func nonNullField(event *models.CreateEventRequest, field string) (any, bool) {
	value, present := event.Data[field]
	if !present || value == nil {
		return nil, false
	}
	return value, true
}

func mentionMatchesStructured(mention, structured any) bool {
	mentionNum, mentionIsNum := mention.(float64)
	structuredNum, structuredIsNum := toFloat(structured)
	if mentionIsNum && structuredIsNum {
		return math.Abs(mentionNum-structuredNum) < 0.01
	}

	mentionStr, mentionIsStr := mention.(string)
	structuredStr, structuredIsStr := structured.(string)
	if mentionIsStr && structuredIsStr {
		return strings.EqualFold(strings.TrimSpace(mentionStr), strings.TrimSpace(structuredStr))
	}

	return CanonicalMentionValue(mention) == CanonicalMentionValue(structured)
}

func toFloat(value any) (float64, bool) {
	switch typed := value.(type) {
	case float64:
		return typed, true
	case int:
		return float64(typed), true
	}
	return 0, false
}

func exerciseLabel(event *models.CreateEventRequest) string {
	for _, key := range []string{"exercise_id", "exercise"} {
		if label, ok := event.Data[key].(string); ok {
			trimmed := strings.TrimSpace(label)
			if trimmed != "" {
				return trimmed
			}
		}
	}
	return "diesem Satz"
}

func auditFieldLabel(field string) string {
	switch field {
	case "rest_seconds":
		return "Satzpause"
	case "tempo":
		return "Tempo"
	case "rir":
		return "RIR"
	case "set_type":
		return "Satztyp"
	case "enjoyment":
		return "Session-Freude"
	case "perceived_quality":
		return "Session-Qualität"
	case "perceived_exertion":
		return "Session-Anstrengung"
	default:
		return "Feld"
	}
}

func formatValueForQuestion(value string) string {
	if parsed, err := strconv.ParseFloat(value, 64); err == nil {
		if parsed == math.Trunc(parsed) {
			return strconv.FormatInt(int64(parsed), 10)
		}
		return strconv.FormatFloat(parsed, 'f', 2, 64)
	}
	return value
}

// buildClarificationQuestion composes the single follow-up question
// from the highest-value unresolved finding.
func buildClarificationQuestion(first unresolvedFinding) string {
	switch len(first.Candidates) {
	case 0:
		return fmt.Sprintf("Bitte ergänzen: %s bei %s.",
			auditFieldLabel(first.Field), first.ExerciseLabel)
	case 1:
		return fmt.Sprintf("Bitte bestätigen: %s bei %s = %s?",
			auditFieldLabel(first.Field), first.ExerciseLabel,
			formatValueForQuestion(first.Candidates[0]))
	default:
		values := make([]string, 0, len(first.Candidates))
		for _, candidate := range first.Candidates {
			values = append(values, formatValueForQuestion(candidate))
		}
		return fmt.Sprintf("Konflikt bei %s: %s = %s. Welcher Wert stimmt?",
			first.ExerciseLabel, auditFieldLabel(first.Field),
			strings.Join(values, " oder "))
	}
}
