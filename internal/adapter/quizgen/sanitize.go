package quizgen

import "strings"

// Sanitize strips markdown code fences and any wrapper prose around a JSON
// object in raw model output: everything before the first '{' and after the
// last '}' is discarded. Idempotent on already-clean input.
//
// The brace search is a heuristic, not a parser; it can misfire when the
// surrounding prose itself contains braces. The generator therefore tries a
// direct decode first and only falls back to this.
func Sanitize(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	if start := strings.Index(text, "{"); start != -1 {
		text = text[start:]
	}
	if end := strings.LastIndex(text, "}"); end != -1 {
		text = text[:end+1]
	}

	return strings.TrimSpace(text)
}
