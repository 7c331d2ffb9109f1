package invariant

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonzim-cmd/kura/pkg/models"
)

// ParserVersion stamps evidence claims so re-parsing with a newer
// parser produces new claim ids instead of silently overwriting.
const ParserVersion = "mention_parser.v1"

// MentionBoundFields are the set-context fields the session audit
// binds to narrative mentions.
var MentionBoundFields = []string{"rest_seconds", "tempo", "rir", "set_type"}

var (
	tempoRe     = regexp.MustCompile(`(?i)\btempo\s*[:=]?\s*(\d-[\dx]-[\dx]-[\dx])\b`)
	tempoBareRe = regexp.MustCompile(`(?i)\b(\d-[\dx]-[\dx]-[\dx])\b`)
	rirRe       = regexp.MustCompile(`(?i)\b(?:rir\s*[:=]?\s*(\d+(?:\.\d+)?)|(\d+(?:\.\d+)?)\s*rir|(\d+)\s*reps?\s+in\s+reserve)\b`)
	restMMSSRe  = regexp.MustCompile(`(?i)\b(?:rest|pause|break|satzpause)\s*[:=]?\s*(\d{1,2}):(\d{2})\b`)
	restSecsRe  = regexp.MustCompile(`(?i)\b(?:(?:rest|pause|break|satzpause)\s*[:=]?\s*(\d{1,3})\s*(?:s|sec|secs|second|seconds)|(\d{1,3})\s*(?:s|sec|secs|second|seconds)\s*(?:rest|pause|break|satzpause))\b`)
	restMinsRe  = regexp.MustCompile(`(?i)\b(?:(?:rest|pause|break|satzpause)\s*[:=]?\s*(\d{1,2})\s*(?:m|min|mins|minute|minutes)|(\d{1,2})\s*(?:m|min|mins|minute|minutes)\s*(?:rest|pause|break|satzpause))\b`)
	restNumRe   = regexp.MustCompile(`(?i)\b(?:rest|pause|break|satzpause)\s*[:=]?\s*(\d{1,3})\b`)
	setTypeRe   = regexp.MustCompile(`(?i)\b(warm[\s-]?up|back[\s-]?off|amrap|working)\b`)
)

// Mention is one parsed value with its source span.
type Mention struct {
	Value      any
	Unit       string
	SpanStart  int
	SpanEnd    int
	SpanText   string
	Confidence float64
}

func roundToTwo(value float64) float64 {
	return math.Round(value*100) / 100
}

func normalizeRestSeconds(value float64) (float64, bool) {
	if math.IsInf(value, 0) || math.IsNaN(value) || value < 0 {
		return 0, false
	}
	return roundToTwo(value), true
}

func normalizeRIR(value float64) (float64, bool) {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, false
	}
	return roundToTwo(math.Min(math.Max(value, 0), 10)), true
}

// ParseRestMention extracts a rest duration (mm:ss, seconds, minutes,
// or a bare "rest: N") and normalizes to seconds.
func ParseRestMention(text string) *Mention {
	if loc := restMMSSRe.FindStringSubmatchIndex(text); loc != nil {
		minutes, err1 := strconv.ParseFloat(text[loc[2]:loc[3]], 64)
		seconds, err2 := strconv.ParseFloat(text[loc[4]:loc[5]], 64)
		if err1 == nil && err2 == nil {
			if value, ok := normalizeRestSeconds(minutes*60 + seconds); ok {
				return &Mention{Value: value, Unit: "seconds", SpanStart: loc[0], SpanEnd: loc[1], SpanText: text[loc[0]:loc[1]], Confidence: 0.95}
			}
		}
	}
	if mention := parseAlternating(text, restSecsRe, 1, 0.95); mention != nil {
		return mention
	}
	if mention := parseAlternating(text, restMinsRe, 60, 0.93); mention != nil {
		return mention
	}
	if loc := restNumRe.FindStringSubmatchIndex(text); loc != nil {
		raw, err := strconv.ParseFloat(text[loc[2]:loc[3]], 64)
		if err == nil {
			if value, ok := normalizeRestSeconds(raw); ok {
				return &Mention{Value: value, Unit: "seconds", SpanStart: loc[0], SpanEnd: loc[1], SpanText: text[loc[0]:loc[1]], Confidence: 0.9}
			}
		}
	}
	return nil
}

// parseAlternating handles patterns with the number in either of two
// capture groups (keyword-first or unit-first phrasing).
func parseAlternating(text string, re *regexp.Regexp, multiplier float64, confidence float64) *Mention {
	loc := re.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil
	}
	for _, group := range []int{1, 2} {
		start, end := loc[2*group], loc[2*group+1]
		if start < 0 {
			continue
		}
		raw, err := strconv.ParseFloat(text[start:end], 64)
		if err != nil {
			continue
		}
		if value, ok := normalizeRestSeconds(raw * multiplier); ok {
			return &Mention{Value: value, Unit: "seconds", SpanStart: loc[0], SpanEnd: loc[1], SpanText: text[loc[0]:loc[1]], Confidence: confidence}
		}
	}
	return nil
}

// ParseRIRMention extracts a reps-in-reserve value.
func ParseRIRMention(text string) *Mention {
	loc := rirRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil
	}
	for _, group := range []int{1, 2, 3} {
		start, end := loc[2*group], loc[2*group+1]
		if start < 0 {
			continue
		}
		raw, err := strconv.ParseFloat(text[start:end], 64)
		if err != nil {
			continue
		}
		if value, ok := normalizeRIR(raw); ok {
			return &Mention{Value: value, Unit: "reps_in_reserve", SpanStart: loc[0], SpanEnd: loc[1], SpanText: text[loc[0]:loc[1]], Confidence: 0.95}
		}
	}
	return nil
}

// ParseTempoMention extracts a 4-digit tempo notation like 3-1-x-1.
func ParseTempoMention(text string) *Mention {
	loc := tempoRe.FindStringSubmatchIndex(text)
	if loc == nil {
		loc = tempoBareRe.FindStringSubmatchIndex(text)
	}
	if loc == nil {
		return nil
	}
	raw := strings.ToLower(strings.TrimSpace(text[loc[2]:loc[3]]))
	if raw == "" {
		return nil
	}
	return &Mention{Value: raw, SpanStart: loc[0], SpanEnd: loc[1], SpanText: text[loc[0]:loc[1]], Confidence: 0.95}
}

// NormalizeSetType folds set-type phrasings into canonical labels.
func NormalizeSetType(value string) (string, bool) {
	text := strings.ToLower(strings.TrimSpace(value))
	if text == "" {
		return "", false
	}
	for _, pair := range [][2]string{
		{"warmup", "warmup"},
		{"warm-up", "warmup"},
		{"warm up", "warmup"},
		{"backoff", "backoff"},
		{"back-off", "backoff"},
		{"back off", "backoff"},
		{"amrap", "amrap"},
		{"working", "working"},
	} {
		if strings.Contains(text, pair[0]) {
			return pair[1], true
		}
	}
	return "", false
}

// ParseSetTypeMention extracts a set-type mention.
func ParseSetTypeMention(text string) *Mention {
	loc := setTypeRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil
	}
	canonical, ok := NormalizeSetType(text[loc[2]:loc[3]])
	if !ok {
		return nil
	}
	return &Mention{Value: canonical, SpanStart: loc[2], SpanEnd: loc[3], SpanText: text[loc[2]:loc[3]], Confidence: 0.9}
}

// ExtractSetContextMentions parses all mention-bound fields from one
// text candidate.
func ExtractSetContextMentions(text string) map[string]any {
	mentions := map[string]any{}
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return mentions
	}

	if mention := ParseRestMention(normalized); mention != nil {
		mentions["rest_seconds"] = mention.Value
	}
	if mention := ParseRIRMention(normalized); mention != nil {
		mentions["rir"] = mention.Value
	}
	if mention := ParseTempoMention(normalized); mention != nil {
		mentions["tempo"] = mention.Value
	}
	if canonical, ok := NormalizeSetType(normalized); ok {
		mentions["set_type"] = canonical
	}

	return mentions
}

// EventTextCandidates lists the narrative text fields of one event.
func EventTextCandidates(event *models.CreateEventRequest) [][2]string {
	var out [][2]string
	for _, key := range []string{"notes", "context_text", "utterance"} {
		if text, ok := event.Data[key].(string); ok {
			trimmed := strings.TrimSpace(text)
			if trimmed != "" {
				out = append(out, [2]string{key, trimmed})
			}
		}
	}
	return out
}

// ExtractEvidenceClaimDrafts parses all text candidates of one event
// into evidence claim drafts.
func ExtractEvidenceClaimDrafts(event *models.CreateEventRequest) []models.EvidenceClaimDraft {
	var drafts []models.EvidenceClaimDraft
	appendDraft := func(claimType, sourceField, sourceText string, mention *Mention) {
		if mention == nil {
			return
		}
		drafts = append(drafts, models.EvidenceClaimDraft{
			ClaimType:     claimType,
			Field:         strings.TrimPrefix(claimType, "set_context."),
			Value:         mention.Value,
			Confidence:    mention.Confidence,
			SourceText:    sourceText,
			SourceSpan:    [2]int{mention.SpanStart, mention.SpanEnd},
			SourceField:   sourceField,
			ParserVersion: ParserVersion,
		})
	}

	for _, candidate := range EventTextCandidates(event) {
		sourceField, sourceText := candidate[0], candidate[1]
		lowered := strings.ToLower(sourceText)
		appendDraft("set_context.rest_seconds", sourceField, sourceText, ParseRestMention(lowered))
		appendDraft("set_context.rir", sourceField, sourceText, ParseRIRMention(lowered))
		appendDraft("set_context.tempo", sourceField, sourceText, ParseTempoMention(lowered))
		appendDraft("set_context.set_type", sourceField, sourceText, ParseSetTypeMention(lowered))
	}
	return drafts
}

// CanonicalMentionValue renders a mention value for fingerprinting.
func CanonicalMentionValue(value any) string {
	switch typed := value.(type) {
	case float64:
		return strconv.FormatFloat(roundToTwo(typed), 'f', 2, 64)
	case string:
		return strings.ToLower(strings.TrimSpace(typed))
	default:
		return ""
	}
}
