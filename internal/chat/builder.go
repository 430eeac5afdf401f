package chat

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nourjazi01/hack-seneca/internal/session"
	"github.com/nourjazi01/hack-seneca/internal/store"
)

// Placeholders used when a summary category is absent.
const (
	noProfileData     = "No profile data available"
	noActivityData    = "No recent activity data"
	noMeasurementData = "No recent measurements"
	noNutritionData   = "No recent nutrition data"
	freshConversation = "This is the start of a new conversation."
)

// AgentInput is the canonical payload handed to the external agent
// collaborator. All fields are plain strings; anything structured has been
// through CoerceText before landing here.
type AgentInput struct {
	Message             string
	UserID              string
	ProfileSummary      string
	ActivitiesSummary   string
	MeasurementsSummary string
	NutritionSummary    string
	Context             string
}

// NewAgentInput assembles an AgentInput from possibly heterogeneous field
// values. Callers inside this package always pass strings; the any-typed
// parameters exist because upstream payloads legally arrive either as
// summary strings or as structured maps, and both shapes must collapse to
// one canonical form before anything downstream inspects them.
func NewAgentInput(message, userID string, profile, activities, measurements, nutrition any, context string) AgentInput {
	input := AgentInput{
		Message:             message,
		UserID:              userID,
		ProfileSummary:      CoerceText(profile),
		ActivitiesSummary:   CoerceText(activities),
		MeasurementsSummary: CoerceText(measurements),
		NutritionSummary:    CoerceText(nutrition),
		Context:             context,
	}
	if input.ProfileSummary == "" {
		input.ProfileSummary = noProfileData
	}
	if input.ActivitiesSummary == "" {
		input.ActivitiesSummary = noActivityData
	}
	if input.MeasurementsSummary == "" {
		input.MeasurementsSummary = noMeasurementData
	}
	if input.NutritionSummary == "" {
		input.NutritionSummary = noNutritionData
	}
	if input.Context == "" {
		input.Context = freshConversation
	}
	return input
}

// BuildAgentInput merges a session's aggregated data with the rendered
// conversation window. Pure: neither argument is mutated.
func BuildAgentInput(message string, sess *session.Session, window *Window) AgentInput {
	var summary map[string]string
	if sess.Data != nil {
		summary = sess.Data.Summary
	}

	var context string
	if window != nil {
		context = window.Render()
	}

	return NewAgentInput(
		message,
		sess.UserID,
		summary[store.SummaryProfile],
		summary[store.SummaryActivities],
		summary[store.SummaryMeasurements],
		summary[store.SummaryNutrition],
		context,
	)
}

// CoerceText maps the legal prompt-value shapes to one canonical string.
// Strings pass through trimmed; maps render as sorted "key: value" pairs;
// slices join their coerced elements; nil is empty.
func CoerceText(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(value)
	case map[string]string:
		generic := make(map[string]any, len(value))
		for k, val := range value {
			generic[k] = val
		}
		return coerceMap(generic)
	case map[string]any:
		return coerceMap(value)
	case []string:
		return strings.Join(value, ", ")
	case []any:
		parts := make([]string, 0, len(value))
		for _, item := range value {
			parts = append(parts, CoerceText(item))
		}
		return strings.Join(parts, ", ")
	case fmt.Stringer:
		return strings.TrimSpace(value.String())
	default:
		return strings.TrimSpace(fmt.Sprint(value))
	}
}

func coerceMap(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+CoerceText(m[k]))
	}
	return strings.Join(parts, ", ")
}
