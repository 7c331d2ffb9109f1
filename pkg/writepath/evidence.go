package writepath

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jonzim-cmd/kura/pkg/attest"
	"github.com/jonzim-cmd/kura/pkg/invariant"
	"github.com/jonzim-cmd/kura/pkg/models"
)

// EvidenceClaimEventType is appended for every parsed mention.
const EvidenceClaimEventType = "evidence.claim.logged"

func evidenceScopeForEvent(event *models.CreateEventRequest) map[string]any {
	scopeLevel := "session"
	if strings.EqualFold(strings.TrimSpace(event.EventType), "set.logged") {
		scopeLevel = "set"
	}
	scope := map[string]any{
		"level":      scopeLevel,
		"event_type": event.EventType,
		"session_id": event.Metadata.SessionID,
	}
	if exerciseID, ok := event.Data["exercise_id"].(string); ok {
		if trimmed := strings.TrimSpace(exerciseID); trimmed != "" {
			scope["exercise_id"] = trimmed
		}
	}
	return scope
}

// BuildEvidenceClaimEvents turns per-mention drafts into
// evidence.claim.logged events linked to their receipts. Idempotency
// keys derive from (owner, source event, claim type, value
// fingerprint, source span, parser version), so re-running the same
// write cannot duplicate claims.
func BuildEvidenceClaimEvents(
	ownerID uuid.UUID,
	events []models.CreateEventRequest,
	receipts []models.WriteReceipt,
) []models.CreateEventRequest {
	var claimEvents []models.CreateEventRequest
	seenKeys := map[string]struct{}{}

	for index := range events {
		if index >= len(receipts) {
			continue
		}
		event := &events[index]
		receipt := receipts[index]

		for _, draft := range invariant.ExtractEvidenceClaimDrafts(event) {
			valueFingerprint := invariant.CanonicalMentionValue(draft.Value)
			seed := fmt.Sprintf("%s|%s|%s|%s|%s|%d|%d|%s",
				ownerID, receipt.EventID, draft.ClaimType, valueFingerprint,
				draft.SourceField, draft.SourceSpan[0], draft.SourceSpan[1],
				invariant.ParserVersion)
			claimID := "claim_" + attest.StableHashSuffix(seed, 24)
			idempotencyKey := "evidence-claim-" + claimID
			if _, seen := seenKeys[idempotencyKey]; seen {
				continue
			}
			seenKeys[idempotencyKey] = struct{}{}

			claimEvents = append(claimEvents, models.CreateEventRequest{
				Timestamp: event.Timestamp,
				EventType: EvidenceClaimEventType,
				Data: map[string]any{
					"claim_id":   claimID,
					"claim_type": draft.ClaimType,
					"value":      draft.Value,
					"confidence": draft.Confidence,
					"scope":      evidenceScopeForEvent(event),
					"provenance": map[string]any{
						"source_field": draft.SourceField,
						"source_text":  draft.SourceText,
						"source_text_span": map[string]any{
							"start": draft.SourceSpan[0],
							"end":   draft.SourceSpan[1],
						},
						"parser_version": invariant.ParserVersion,
					},
					"lineage": map[string]any{
						"event_id":     receipt.EventID.String(),
						"event_type":   receipt.EventType,
						"lineage_type": "supports",
					},
				},
				Metadata: models.EventMetadata{
					Source:         "agent_write_with_proof",
					Agent:          "api",
					SessionID:      event.Metadata.SessionID,
					IdempotencyKey: idempotencyKey,
				},
			})
		}
	}

	return claimEvents
}
