package chat

import (
	"fmt"
	"regexp"
	"strings"
)

// Intent is the result of the cheap pre-filter that runs before any agent
// call.
type Intent int

const (
	IntentGeneral Intent = iota
	IntentGreeting
)

// Phrases a token is matched against. Matching is substring containment of
// the phrase inside the token, so "this" matches "hi". That approximation is
// deliberate: it buys a skipped agent round-trip for pure small talk at the
// cost of the occasional false positive. The two-word phrases can never
// match a single token and are kept for parity with the product wording.
var greetingPhrases = []string{
	"hi", "hello", "hey", "yo", "sup", "hej", "hola", "salut",
	"good morning", "good afternoon", "good evening",
}

var nonLetter = regexp.MustCompile(`[^a-z\s]`)

// ClassifyIntent labels message as a greeting when it is at most four tokens
// long and every token contains a greeting phrase. Everything else,
// including an empty message, is general and goes to the agent.
func ClassifyIntent(message string) Intent {
	cleaned := nonLetter.ReplaceAllString(strings.ToLower(strings.TrimSpace(message)), "")
	tokens := strings.Fields(cleaned)
	if len(tokens) == 0 || len(tokens) > 4 {
		return IntentGeneral
	}

	for _, token := range tokens {
		if !containsGreeting(token) {
			return IntentGeneral
		}
	}
	return IntentGreeting
}

func containsGreeting(token string) bool {
	for _, phrase := range greetingPhrases {
		if strings.Contains(token, phrase) {
			return true
		}
	}
	return false
}

// GreetingReply is the canned fast-path response, personalized with the
// user's display name.
func GreetingReply(name string) string {
	return fmt.Sprintf(
		"Hi %s! 👋 What would you like help with today — a workout plan, nutrition guidance (like meal ideas), or something else?",
		name,
	)
}
