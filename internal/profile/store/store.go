package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finpilot/internal/profile"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Get(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	query := `
		SELECT user_id, name, age, country, savings_goal_per_year, total_savings
		FROM user_profile
		WHERE user_id = $1
	`

	var p profile.Profile

	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&p.UserID, &p.Name, &p.Age, &p.Country, &p.SavingsGoalPerYear, &p.TotalSavings,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, profile.ErrNotFound
		}

		return nil, fmt.Errorf("getting profile: %w", err)
	}

	return &p, nil
}

func (s *Store) Upsert(ctx context.Context, p *profile.Profile) error {
	query := `
		INSERT INTO user_profile (user_id, name, age, country, savings_goal_per_year, total_savings, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			age = EXCLUDED.age,
			country = EXCLUDED.country,
			savings_goal_per_year = EXCLUDED.savings_goal_per_year,
			total_savings = EXCLUDED.total_savings,
			updated_at = NOW()
	`

	_, err := s.db.ExecContext(ctx, query,
		p.UserID, p.Name, p.Age, p.Country, p.SavingsGoalPerYear, p.TotalSavings,
	)
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}

	return nil
}
