package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/nourjazi01/hack-seneca/internal/models"
)

// Record collection file names inside the data directory.
const (
	usersFile        = "fitness-users.json"
	activitiesFile   = "fitness-activities.json"
	measurementsFile = "fitness-measurements.json"
	nutritionFile    = "fitness-nutrition.json"
)

// FileSource reads the four record collections from flat JSON files. Files
// are re-read on every call so edits to the data directory show up on the
// next login without a restart. A missing file is an empty collection, not
// an error.
type FileSource struct {
	dir string
}

func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

func (s *FileSource) Profile(_ context.Context, userID string) (*models.UserProfile, error) {
	var users []models.UserProfile
	if err := s.readCollection(usersFile, &users); err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].UserID == userID {
			return &users[i], nil
		}
	}
	return nil, ErrProfileNotFound
}

func (s *FileSource) Activities(_ context.Context, userID string, limit int) ([]models.ActivityRecord, error) {
	var all []models.ActivityRecord
	if err := s.readCollection(activitiesFile, &all); err != nil {
		return nil, err
	}

	matched := make([]models.ActivityRecord, 0, limit)
	for _, record := range all {
		if record.UserID == userID {
			matched = append(matched, record)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date > matched[j].Date
	})
	return matched[:min(limit, len(matched))], nil
}

func (s *FileSource) Measurements(_ context.Context, userID string, limit int) ([]models.MeasurementRecord, error) {
	var all []models.MeasurementRecord
	if err := s.readCollection(measurementsFile, &all); err != nil {
		return nil, err
	}

	matched := make([]models.MeasurementRecord, 0, limit)
	for _, record := range all {
		if record.UserID == userID {
			matched = append(matched, record)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date > matched[j].Date
	})
	return matched[:min(limit, len(matched))], nil
}

func (s *FileSource) Nutrition(_ context.Context, userID string, limit int) ([]models.NutritionRecord, error) {
	var all []models.NutritionRecord
	if err := s.readCollection(nutritionFile, &all); err != nil {
		return nil, err
	}

	matched := make([]models.NutritionRecord, 0, limit)
	for _, record := range all {
		if record.UserID == userID {
			matched = append(matched, record)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date > matched[j].Date
	})
	return matched[:min(limit, len(matched))], nil
}

func (s *FileSource) readCollection(name string, out any) error {
	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}
