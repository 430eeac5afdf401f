package chat

import (
	"testing"

	"github.com/nourjazi01/hack-seneca/internal/models"
	"github.com/nourjazi01/hack-seneca/internal/session"
	"github.com/nourjazi01/hack-seneca/internal/store"
)

func TestBuildAgentInputUsesSessionSummaries(t *testing.T) {
	sess := &session.Session{
		UserID: "user_00001",
		Data: &models.UserData{
			UserID: "user_00001",
			Summary: map[string]string{
				store.SummaryProfile:    "Age: 25, Weight: 70kg",
				store.SummaryActivities: "Recent avg: 9000 steps/day",
				store.SummaryNutrition:  "Recent avg: 2500 calories/day",
			},
		},
	}

	w := NewWindow()
	w.Append(SpeakerUser, "hello coach")

	input := BuildAgentInput("plan my week", sess, w)

	if input.Message != "plan my week" || input.UserID != "user_00001" {
		t.Fatalf("unexpected message/user: %+v", input)
	}
	if input.ProfileSummary != "Age: 25, Weight: 70kg" {
		t.Fatalf("profile summary = %q", input.ProfileSummary)
	}
	if input.MeasurementsSummary != "No recent measurements" {
		t.Fatalf("missing category should use placeholder, got %q", input.MeasurementsSummary)
	}
	if input.Context != "User: hello coach" {
		t.Fatalf("context = %q", input.Context)
	}
}

func TestBuildAgentInputEmptySession(t *testing.T) {
	sess := &session.Session{
		UserID: "user_99999",
		Data:   &models.UserData{UserID: "user_99999", Summary: map[string]string{}},
	}

	input := BuildAgentInput("hi there coach, help me", sess, NewWindow())

	if input.ProfileSummary != "No profile data available" {
		t.Fatalf("profile placeholder missing: %q", input.ProfileSummary)
	}
	if input.ActivitiesSummary != "No recent activity data" {
		t.Fatalf("activities placeholder missing: %q", input.ActivitiesSummary)
	}
	if input.NutritionSummary != "No recent nutrition data" {
		t.Fatalf("nutrition placeholder missing: %q", input.NutritionSummary)
	}
	if input.Context != "This is the start of a new conversation." {
		t.Fatalf("context placeholder missing: %q", input.Context)
	}
}

func TestCoerceText(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"string passthrough", "  hello  ", "hello"},
		{"nil", nil, ""},
		{"string map", map[string]string{"name": "Test User", "fitness_level": "intermediate"}, "fitness_level: intermediate, name: Test User"},
		{"nested map", map[string]any{"goals": []string{"muscle_gain", "endurance"}}, "goals: muscle_gain, endurance"},
		{"any slice", []any{"a", "b"}, "a, b"},
		{"number", 42, "42"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CoerceText(tc.in); got != tc.want {
				t.Fatalf("CoerceText(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNewAgentInputCoercesStructuredFields(t *testing.T) {
	input := NewAgentInput(
		"what should I eat",
		"user_00001",
		map[string]any{"name": "Test User", "age": 25},
		"",
		nil,
		"Recent avg: 2500 calories/day",
		"",
	)

	if input.ProfileSummary != "age: 25, name: Test User" {
		t.Fatalf("coerced profile = %q", input.ProfileSummary)
	}
	if input.ActivitiesSummary != "No recent activity data" {
		t.Fatalf("empty activities should fall back, got %q", input.ActivitiesSummary)
	}
	if input.NutritionSummary != "Recent avg: 2500 calories/day" {
		t.Fatalf("nutrition = %q", input.NutritionSummary)
	}
}
