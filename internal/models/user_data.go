package models

// UserProfile is the static part of a user's fitness record. It is loaded
// once per login and treated as read-only for the rest of the session.
type UserProfile struct {
	UserID       string   `json:"user_id"`
	Name         string   `json:"name"`
	Age          int      `json:"age"`
	WeightKG     float64  `json:"weight"`
	HeightCM     float64  `json:"height"`
	BMI          float64  `json:"bmi"`
	FitnessLevel string   `json:"fitness_level"`
	Goals        []string `json:"goals"`
}

// ActivityRecord is one day of tracked movement. Dates are kept in their
// textual form ("2006-01-02") so records sort the same way regardless of
// which source produced them.
type ActivityRecord struct {
	UserID         string  `json:"user_id"`
	Date           string  `json:"date"`
	Steps          int     `json:"steps"`
	CaloriesBurned float64 `json:"calories_burned"`
}

type MeasurementRecord struct {
	UserID  string  `json:"user_id"`
	Date    string  `json:"date"`
	Weight  float64 `json:"weight"`
	BodyFat float64 `json:"body_fat"`
}

type NutritionRecord struct {
	UserID           string  `json:"user_id"`
	Date             string  `json:"date"`
	CaloriesConsumed float64 `json:"calories_consumed"`
	ProteinG         float64 `json:"protein_g"`
}

// UserData is the aggregate handed to the session on login: the profile (nil
// when no record exists), the recent record slices already truncated to
// their caps, and the derived one-line summaries keyed by category. A
// category with no usable data has no summary entry.
type UserData struct {
	UserID             string              `json:"user_id"`
	Profile            *UserProfile        `json:"profile"`
	RecentActivities   []ActivityRecord    `json:"recent_activities"`
	RecentMeasurements []MeasurementRecord `json:"recent_measurements"`
	RecentNutrition    []NutritionRecord   `json:"recent_nutrition"`
	Summary            map[string]string   `json:"summary"`
}

// DisplayName returns the profile name, falling back to a neutral greeting
// target when the user has no profile record.
func (d *UserData) DisplayName() string {
	if d == nil || d.Profile == nil || d.Profile.Name == "" {
		return "there"
	}
	return d.Profile.Name
}
