package agent

import (
	"strings"
	"testing"

	"github.com/nourjazi01/hack-seneca/internal/chat"
)

func TestRenderTaskInterpolatesAllFields(t *testing.T) {
	input := chat.AgentInput{
		Message:             "plan my week",
		UserID:              "user_00001",
		ProfileSummary:      "Age: 25, Weight: 70kg",
		ActivitiesSummary:   "Recent avg: 9000 steps/day",
		MeasurementsSummary: "Latest: 70kg",
		NutritionSummary:    "Recent avg: 2500 calories/day",
		Context:             "User: hello",
	}

	task := renderTask(input)
	for _, want := range []string{
		"plan my week",
		"User ID: user_00001",
		"Profile: Age: 25, Weight: 70kg",
		"Recent Activities: Recent avg: 9000 steps/day",
		"Body Measurements: Latest: 70kg",
		"Nutrition Intake: Recent avg: 2500 calories/day",
		"User: hello",
	} {
		if !strings.Contains(task, want) {
			t.Fatalf("task prompt missing %q:\n%s", want, task)
		}
	}
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(&Config{APIKey: "k"})
	if c.config.Model == "" {
		t.Fatal("model default not applied")
	}
	if c.config.MaxRetries < 1 {
		t.Fatalf("retries = %d", c.config.MaxRetries)
	}
	if c.config.Timeout <= 0 {
		t.Fatalf("timeout = %v", c.config.Timeout)
	}
}
