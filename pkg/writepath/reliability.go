package writepath

import (
	"fmt"
	"strings"

	"github.com/jonzim-cmd/kura/pkg/models"
)

// CollectInferredFacts surfaces the values that were persisted from
// parsed mentions rather than explicit user confirmation.
func CollectInferredFacts(evidenceEvents []models.CreateEventRequest) []models.InferredFact {
	facts := []models.InferredFact{}
	seen := map[string]struct{}{}

	for _, event := range evidenceEvents {
		if !strings.EqualFold(event.EventType, EvidenceClaimEventType) {
			continue
		}
		field, _ := event.Data["claim_type"].(string)
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		confidence, _ := event.Data["confidence"].(float64)
		if confidence < 0 {
			confidence = 0
		}
		if confidence > 1 {
			confidence = 1
		}

		provenance := "provenance_not_available"
		if prov, ok := event.Data["provenance"].(map[string]any); ok {
			if text, ok := prov["source_text"].(string); ok && strings.TrimSpace(text) != "" {
				provenance = strings.TrimSpace(text)
			}
		}

		dedupKey := fmt.Sprintf("evidence|%s|%s", field, provenance)
		if _, dup := seen[dedupKey]; dup {
			continue
		}
		seen[dedupKey] = struct{}{}
		facts = append(facts, models.InferredFact{
			Field:      field,
			Confidence: confidence,
			Provenance: provenance,
		})
	}

	return facts
}

// BuildReliabilityUX folds claim guard and session audit state into the
// phrase contract agents follow when reporting the outcome.
func BuildReliabilityUX(guard models.ClaimGuard, sessionAudit models.SessionAuditSummary, inferredFacts []models.InferredFact) models.ReliabilityUX {
	if !guard.AllowSavedClaim || sessionAudit.Status == models.AuditStatusNeedsClarification {
		var assistantPhrase string
		switch {
		case sessionAudit.ClarificationQuestion != "":
			assistantPhrase = fmt.Sprintf("Unresolved: Es gibt einen Konflikt. %s",
				strings.TrimSpace(sessionAudit.ClarificationQuestion))
		case guard.ClaimStatus == models.ClaimStatusFailed:
			assistantPhrase = "Unresolved: Write-Proof ist unvollständig; bitte erneut mit denselben Idempotency-Keys versuchen."
		default:
			assistantPhrase = "Unresolved: Verifikation läuft noch; bitte noch keinen finalen 'saved'-Claim machen."
		}
		return models.ReliabilityUX{
			State:                 "unresolved",
			AssistantPhrase:       assistantPhrase,
			InferredFacts:         inferredFacts,
			ClarificationQuestion: sessionAudit.ClarificationQuestion,
		}
	}

	if len(inferredFacts) > 0 {
		first := inferredFacts[0]
		return models.ReliabilityUX{
			State: "inferred",
			AssistantPhrase: fmt.Sprintf(
				"Inferred: Speicherung ist verifiziert, aber mindestens ein Wert ist inferiert (%s @ %.2f, Quelle: %s).",
				first.Field, first.Confidence, first.Provenance),
			InferredFacts: inferredFacts,
		}
	}

	return models.ReliabilityUX{
		State:           "saved",
		AssistantPhrase: "Saved: Speicherung ist verifiziert (Receipt + Read-after-Write).",
		InferredFacts:   inferredFacts,
	}
}
