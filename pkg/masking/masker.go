// Package masking redacts secrets before they reach logs: HMAC
// signatures, confirmation tokens, and bearer credentials.
package masking

import (
	"regexp"
)

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
	Description string
}

// builtinPatterns covers everything this service ever logs verbatim.
// Patterns are applied in order; invalid patterns cannot occur because
// these are compile-time literals.
var builtinPatterns = []*CompiledPattern{
	{
		Name:        "confirmation_token",
		Regex:       regexp.MustCompile(`v1\|[0-9TZ:\-]+\|[0-9a-f]{64}\|[0-9a-f]{64}`),
		Replacement: "v1|***MASKED_TOKEN***",
		Description: "High-impact confirmation tokens",
	},
	{
		Name:        "hex_signature",
		Regex:       regexp.MustCompile(`(?i)\b(?:sha256=)?[0-9a-f]{64}\b`),
		Replacement: "***MASKED_SIGNATURE***",
		Description: "HMAC signatures and request digests",
	},
	{
		Name:        "bearer_token",
		Regex:       regexp.MustCompile(`(?i)bearer\s+[a-z0-9._\-]+`),
		Replacement: "Bearer ***MASKED***",
		Description: "Authorization bearer credentials",
	},
}

// Mask applies every builtin pattern to the input.
func Mask(data string) string {
	masked := data
	for _, pattern := range builtinPatterns {
		masked = pattern.Regex.ReplaceAllString(masked, pattern.Replacement)
	}
	return masked
}
