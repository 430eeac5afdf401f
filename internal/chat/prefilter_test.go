package chat

import (
	"strings"
	"testing"
)

func TestClassifyIntent(t *testing.T) {
	cases := []struct {
		name    string
		message string
		want    Intent
	}{
		{"single greeting", "hi", IntentGreeting},
		{"greeting with punctuation", "Hey!!", IntentGreeting},
		{"multiple greetings", "hey yo sup", IntentGreeting},
		{"four greeting tokens", "hi hello hey yo", IntentGreeting},
		{"five greeting tokens", "hi hello hey yo sup", IntentGeneral},
		{"greeting followed by request", "hi, can you build me a leg day workout", IntentGeneral},
		{"plain question", "what should I eat after training", IntentGeneral},
		{"empty message", "", IntentGeneral},
		{"whitespace only", "   ", IntentGeneral},
		{"digits only", "12345", IntentGeneral},
		{"mixed case greeting", "HeLLo", IntentGreeting},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyIntent(tc.message); got != tc.want {
				t.Fatalf("ClassifyIntent(%q) = %v, want %v", tc.message, got, tc.want)
			}
		})
	}
}

// The per-token match is substring containment, so unrelated words that
// happen to contain a greeting phrase slip through. That trade-off is part
// of the contract.
func TestClassifyIntentSubstringContainment(t *testing.T) {
	if got := ClassifyIntent("this"); got != IntentGreeting {
		t.Fatalf(`ClassifyIntent("this") = %v, want IntentGreeting ("hi" is contained)`, got)
	}
	if got := ClassifyIntent("hij"); got != IntentGreeting {
		t.Fatalf(`ClassifyIntent("hij") = %v, want IntentGreeting`, got)
	}
}

// Two-word phrases can never match a single whitespace-split token, so a
// bare "good morning" goes to the agent like any other message.
func TestClassifyIntentTwoWordPhrasesNeverMatch(t *testing.T) {
	if got := ClassifyIntent("good morning"); got != IntentGeneral {
		t.Fatalf(`ClassifyIntent("good morning") = %v, want IntentGeneral`, got)
	}
}

func TestGreetingReplyContainsName(t *testing.T) {
	reply := GreetingReply("Test User")
	if !strings.Contains(reply, "Test User") {
		t.Fatalf("greeting reply does not mention the user: %q", reply)
	}
}
