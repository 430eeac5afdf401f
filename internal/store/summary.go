package store

import (
	"fmt"
	"strings"

	"github.com/nourjazi01/hack-seneca/internal/models"
)

// Summary map keys, one per record category.
const (
	SummaryProfile      = "profile"
	SummaryActivities   = "activities"
	SummaryMeasurements = "measurements"
	SummaryNutrition    = "nutrition"
)

// buildSummary derives the one-line-per-category summaries from the record
// slices already on data. Categories without enough data get no entry.
func buildSummary(data *models.UserData) {
	if p := data.Profile; p != nil {
		data.Summary[SummaryProfile] = fmt.Sprintf(
			"Age: %d, Weight: %gkg, Height: %gcm, BMI: %g, Fitness Level: %s, Goals: %s",
			p.Age, p.WeightKG, p.HeightCM, p.BMI, p.FitnessLevel, formatGoals(p.Goals),
		)
	}

	if len(data.RecentActivities) > 0 {
		var steps, calories float64
		for _, a := range data.RecentActivities {
			steps += float64(a.Steps)
			calories += a.CaloriesBurned
		}
		n := float64(len(data.RecentActivities))
		data.Summary[SummaryActivities] = fmt.Sprintf(
			"Recent avg: %.0f steps/day, %.0f calories burned/day", steps/n, calories/n,
		)
	}

	// The weight-change line compares the two most recent measurements, so a
	// single data point yields no summary.
	if len(data.RecentMeasurements) >= 2 {
		latest := data.RecentMeasurements[0]
		previous := data.RecentMeasurements[1]
		data.Summary[SummaryMeasurements] = fmt.Sprintf(
			"Latest: %gkg, %g%% body fat. Weight change: %+.1fkg since last measurement",
			latest.Weight, latest.BodyFat, latest.Weight-previous.Weight,
		)
	}

	if len(data.RecentNutrition) > 0 {
		var calories, protein float64
		for _, n := range data.RecentNutrition {
			calories += n.CaloriesConsumed
			protein += n.ProteinG
		}
		count := float64(len(data.RecentNutrition))
		data.Summary[SummaryNutrition] = fmt.Sprintf(
			"Recent avg: %.0f calories/day, %.0fg protein/day", calories/count, protein/count,
		)
	}
}

func formatGoals(goals []string) string {
	if len(goals) == 0 {
		return "[]"
	}
	return "[" + strings.Join(goals, ", ") + "]"
}
