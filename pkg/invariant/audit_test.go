package invariant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonzim-cmd/kura/pkg/models"
)

func TestMentionParsing(t *testing.T) {
	t.Run("rest mm:ss", func(t *testing.T) {
		mention := ParseRestMention("rest 2:30 between sets")
		require.NotNil(t, mention)
		assert.Equal(t, 150.0, mention.Value)
		assert.Equal(t, "seconds", mention.Unit)
	})

	t.Run("rest seconds", func(t *testing.T) {
		mention := ParseRestMention("pause: 90s")
		require.NotNil(t, mention)
		assert.Equal(t, 90.0, mention.Value)
	})

	t.Run("rest minutes", func(t *testing.T) {
		mention := ParseRestMention("3 min rest after the amrap")
		require.NotNil(t, mention)
		assert.Equal(t, 180.0, mention.Value)
	})

	t.Run("bare rest number defaults to seconds", func(t *testing.T) {
		mention := ParseRestMention("satzpause 120")
		require.NotNil(t, mention)
		assert.Equal(t, 120.0, mention.Value)
	})

	t.Run("rir variants", func(t *testing.T) {
		require.NotNil(t, ParseRIRMention("rir 2"))
		require.NotNil(t, ParseRIRMention("2 rir left"))
		require.NotNil(t, ParseRIRMention("2 reps in reserve"))
	})

	t.Run("rir is clamped", func(t *testing.T) {
		mention := ParseRIRMention("rir 15")
		require.NotNil(t, mention)
		assert.Equal(t, 10.0, mention.Value)
	})

	t.Run("tempo notation", func(t *testing.T) {
		mention := ParseTempoMention("tempo 3-1-x-1 on the way down")
		require.NotNil(t, mention)
		assert.Equal(t, "3-1-x-1", mention.Value)
	})

	t.Run("set type", func(t *testing.T) {
		mention := ParseSetTypeMention("that was a warm-up set")
		require.NotNil(t, mention)
		assert.Equal(t, "warmup", mention.Value)
	})

	t.Run("no mentions in plain text", func(t *testing.T) {
		mentions := ExtractSetContextMentions("felt strong today")
		assert.Empty(t, mentions)
	})
}

func TestExtractEvidenceClaimDrafts(t *testing.T) {
	event := models.CreateEventRequest{
		EventType: "set.logged",
		Data: map[string]any{
			"exercise_id": "bench_press",
			"notes":       "rest 90s, rir 2, tempo 3-1-1-1",
		},
		Metadata: models.EventMetadata{IdempotencyKey: "set-1"},
	}

	drafts := ExtractEvidenceClaimDrafts(&event)
	require.Len(t, drafts, 3)

	claimTypes := make([]string, 0, len(drafts))
	for _, draft := range drafts {
		claimTypes = append(claimTypes, draft.ClaimType)
		assert.Equal(t, "notes", draft.SourceField)
		assert.Equal(t, ParserVersion, draft.ParserVersion)
		assert.Greater(t, draft.Confidence, 0.0)
	}
	assert.Contains(t, claimTypes, "set_context.rest_seconds")
	assert.Contains(t, claimTypes, "set_context.rir")
	assert.Contains(t, claimTypes, "set_context.tempo")
}

func TestAuditSession(t *testing.T) {
	t.Run("clean batch", func(t *testing.T) {
		events := []models.CreateEventRequest{{
			EventType: "set.logged",
			Data: map[string]any{
				"exercise_id":  "bench_press",
				"rest_seconds": 90.0,
				"notes":        "rest 90s felt fine",
			},
		}}
		summary := AuditSession(events)
		assert.Equal(t, models.AuditStatusClean, summary.Status)
		assert.Empty(t, summary.ClarificationQuestion)
	})

	t.Run("mentioned but unstructured field needs clarification", func(t *testing.T) {
		events := []models.CreateEventRequest{{
			EventType: "set.logged",
			Data: map[string]any{
				"exercise_id": "bench_press",
				"notes":       "rest 90s this time",
			},
		}}
		summary := AuditSession(events)
		assert.Equal(t, models.AuditStatusNeedsClarification, summary.Status)
		assert.Contains(t, summary.MismatchClasses, AuditClassMissingMentionField)
		assert.Contains(t, summary.ClarificationQuestion, "Satzpause")
		assert.Contains(t, summary.ClarificationQuestion, "bench_press")
	})

	t.Run("narrative contradiction surfaces both candidates", func(t *testing.T) {
		events := []models.CreateEventRequest{{
			EventType: "set.logged",
			Data: map[string]any{
				"exercise_id":  "bench_press",
				"rest_seconds": 120.0,
				"notes":        "rest 90s",
			},
		}}
		summary := AuditSession(events)
		assert.Equal(t, models.AuditStatusNeedsClarification, summary.Status)
		assert.Contains(t, summary.MismatchClasses, AuditClassNarrativeContradiction)
		assert.Contains(t, summary.ClarificationQuestion, "Konflikt")
		assert.Contains(t, summary.ClarificationQuestion, "120")
		assert.Contains(t, summary.ClarificationQuestion, "90")
	})

	t.Run("scale out of bounds", func(t *testing.T) {
		events := []models.CreateEventRequest{{
			EventType: "session.completed",
			Data:      map[string]any{"enjoyment": 14.0},
		}}
		summary := AuditSession(events)
		assert.Contains(t, summary.MismatchClasses, AuditClassScaleOutOfBounds)
	})

	t.Run("unsupported inferred value", func(t *testing.T) {
		events := []models.CreateEventRequest{{
			EventType: "session.completed",
			Data: map[string]any{
				"perceived_exertion":        7.0,
				"perceived_exertion_source": "inferred",
			},
		}}
		summary := AuditSession(events)
		assert.Contains(t, summary.MismatchClasses, AuditClassUnsupportedInferredValue)
	})

	t.Run("inferred value with evidence is supported", func(t *testing.T) {
		events := []models.CreateEventRequest{{
			EventType: "session.completed",
			Data: map[string]any{
				"perceived_exertion":                   7.0,
				"perceived_exertion_source":            "inferred",
				"perceived_exertion_evidence_claim_id": "claim_abc",
			},
		}}
		summary := AuditSession(events)
		assert.Equal(t, models.AuditStatusClean, summary.Status)
	})
}
