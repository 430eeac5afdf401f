package chat

import "strings"

const assistantPrefix = "Assistant:"

// NormalizeResponse trims the agent's raw output and strips any leading
// "Assistant:" speaker prefixes some models echo back. Stripping repeats
// until the prefix is gone so the function is idempotent even on doubled
// prefixes.
func NormalizeResponse(raw string) string {
	text := strings.TrimSpace(raw)
	for strings.HasPrefix(text, assistantPrefix) {
		text = strings.TrimSpace(strings.TrimPrefix(text, assistantPrefix))
	}
	return text
}
