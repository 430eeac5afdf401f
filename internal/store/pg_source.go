package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nourjazi01/hack-seneca/internal/models"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresSource serves the record collections from the fitness_* tables.
// Sorting and trimming happen in SQL; tie order on equal dates follows the
// insertion id, which matches the stable sort of the file source.
type PostgresSource struct {
	db DBTX
}

func NewPostgresSource(db DBTX) *PostgresSource {
	return &PostgresSource{db: db}
}

func (s *PostgresSource) Profile(ctx context.Context, userID string) (*models.UserProfile, error) {
	query := `
		SELECT user_id, name, age, weight_kg, height_cm, bmi, fitness_level, goals
		FROM fitness_profiles
		WHERE user_id = $1
	`
	var profile models.UserProfile
	err := s.db.QueryRow(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.Name,
		&profile.Age,
		&profile.WeightKG,
		&profile.HeightCM,
		&profile.BMI,
		&profile.FitnessLevel,
		&profile.Goals,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (s *PostgresSource) Activities(ctx context.Context, userID string, limit int) ([]models.ActivityRecord, error) {
	query := `
		SELECT user_id, date, steps, calories_burned
		FROM fitness_activities
		WHERE user_id = $1
		ORDER BY date DESC, id ASC
		LIMIT $2
	`
	rows, err := s.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.ActivityRecord
	for rows.Next() {
		var record models.ActivityRecord
		var date time.Time
		if err := rows.Scan(&record.UserID, &date, &record.Steps, &record.CaloriesBurned); err != nil {
			return nil, err
		}
		record.Date = date.Format("2006-01-02")
		records = append(records, record)
	}
	return records, rows.Err()
}

func (s *PostgresSource) Measurements(ctx context.Context, userID string, limit int) ([]models.MeasurementRecord, error) {
	query := `
		SELECT user_id, date, weight_kg, body_fat
		FROM fitness_measurements
		WHERE user_id = $1
		ORDER BY date DESC, id ASC
		LIMIT $2
	`
	rows, err := s.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.MeasurementRecord
	for rows.Next() {
		var record models.MeasurementRecord
		var date time.Time
		if err := rows.Scan(&record.UserID, &date, &record.Weight, &record.BodyFat); err != nil {
			return nil, err
		}
		record.Date = date.Format("2006-01-02")
		records = append(records, record)
	}
	return records, rows.Err()
}

func (s *PostgresSource) Nutrition(ctx context.Context, userID string, limit int) ([]models.NutritionRecord, error) {
	query := `
		SELECT user_id, date, calories_consumed, protein_g
		FROM fitness_nutrition
		WHERE user_id = $1
		ORDER BY date DESC, id ASC
		LIMIT $2
	`
	rows, err := s.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.NutritionRecord
	for rows.Next() {
		var record models.NutritionRecord
		var date time.Time
		if err := rows.Scan(&record.UserID, &date, &record.CaloriesConsumed, &record.ProteinG); err != nil {
			return nil, err
		}
		record.Date = date.Format("2006-01-02")
		records = append(records, record)
	}
	return records, rows.Err()
}
