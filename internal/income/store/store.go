package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finpilot/internal/income"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Get(ctx context.Context, userID uuid.UUID) (float64, error) {
	query := `SELECT amount FROM user_incomes WHERE user_id = $1`

	var amount float64

	err := s.db.QueryRowContext(ctx, query, userID).Scan(&amount)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, income.ErrNotFound
		}

		return 0, fmt.Errorf("getting income: %w", err)
	}

	return amount, nil
}

func (s *Store) Upsert(ctx context.Context, userID uuid.UUID, amount float64) error {
	query := `
		INSERT INTO user_incomes (user_id, amount, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE SET amount = EXCLUDED.amount, updated_at = NOW()
	`

	_, err := s.db.ExecContext(ctx, query, userID, amount)
	if err != nil {
		return fmt.Errorf("upserting income: %w", err)
	}

	return nil
}
