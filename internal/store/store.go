package store

import (
	"context"
	"errors"
	"log"

	"github.com/nourjazi01/hack-seneca/internal/models"
)

// Caps on how much history a session carries per category.
const (
	ActivityCap    = 7
	MeasurementCap = 5
	NutritionCap   = 7
)

// ErrProfileNotFound is returned by a RecordSource when no profile record
// matches the user id. The store degrades it to a nil profile.
var ErrProfileNotFound = errors.New("profile not found")

// RecordSource serves the four record collections for one user. Record
// slices come back sorted by date descending (ties keep source order) and
// already trimmed to at most limit entries.
type RecordSource interface {
	Profile(ctx context.Context, userID string) (*models.UserProfile, error)
	Activities(ctx context.Context, userID string, limit int) ([]models.ActivityRecord, error)
	Measurements(ctx context.Context, userID string, limit int) ([]models.MeasurementRecord, error)
	Nutrition(ctx context.Context, userID string, limit int) ([]models.NutritionRecord, error)
}

// UserDataStore aggregates a user's records into the UserData handed to a
// session. Category-level failures never abort a load: the category is
// logged and left empty so login always produces a usable (possibly sparse)
// result.
type UserDataStore struct {
	source RecordSource
}

func NewUserDataStore(source RecordSource) *UserDataStore {
	return &UserDataStore{source: source}
}

func (s *UserDataStore) Load(ctx context.Context, userID string) (*models.UserData, error) {
	data := &models.UserData{
		UserID:  userID,
		Summary: map[string]string{},
	}

	profile, err := s.source.Profile(ctx, userID)
	switch {
	case err == nil:
		data.Profile = profile
	case errors.Is(err, ErrProfileNotFound):
		// Unknown users still get a session, just with nothing in it.
	default:
		log.Printf("user data: load profile for %s: %v", userID, err)
	}

	activities, err := s.source.Activities(ctx, userID, ActivityCap)
	if err != nil {
		log.Printf("user data: load activities for %s: %v", userID, err)
	} else {
		data.RecentActivities = capActivities(activities)
	}

	measurements, err := s.source.Measurements(ctx, userID, MeasurementCap)
	if err != nil {
		log.Printf("user data: load measurements for %s: %v", userID, err)
	} else {
		data.RecentMeasurements = capMeasurements(measurements)
	}

	nutrition, err := s.source.Nutrition(ctx, userID, NutritionCap)
	if err != nil {
		log.Printf("user data: load nutrition for %s: %v", userID, err)
	} else {
		data.RecentNutrition = capNutrition(nutrition)
	}

	buildSummary(data)
	return data, nil
}

// The caps are an invariant of UserData, not a courtesy of the source, so
// they are enforced again here.
func capActivities(records []models.ActivityRecord) []models.ActivityRecord {
	if len(records) > ActivityCap {
		return records[:ActivityCap]
	}
	return records
}

func capMeasurements(records []models.MeasurementRecord) []models.MeasurementRecord {
	if len(records) > MeasurementCap {
		return records[:MeasurementCap]
	}
	return records
}

func capNutrition(records []models.NutritionRecord) []models.NutritionRecord {
	if len(records) > NutritionCap {
		return records[:NutritionCap]
	}
	return records
}
