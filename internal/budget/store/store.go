package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finpilot/internal/budget"
	"github.com/MrJamesThe3rd/finpilot/internal/month"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func decodeAllocation(payload []byte) (budget.Allocation, error) {
	var alloc budget.Allocation
	if err := json.Unmarshal(payload, &alloc); err != nil {
		return nil, fmt.Errorf("%w: %v", budget.ErrBadPayload, err)
	}

	return alloc, nil
}

func (s *Store) Get(ctx context.Context, userID uuid.UUID, m month.Month) (budget.Allocation, error) {
	query := `SELECT budget_json FROM user_budgets WHERE user_id = $1 AND month = $2`

	var payload []byte

	err := s.db.QueryRowContext(ctx, query, userID, m.String()).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, budget.ErrNotFound
		}

		return nil, fmt.Errorf("getting budget: %w", err)
	}

	return decodeAllocation(payload)
}

func (s *Store) Latest(ctx context.Context, userID uuid.UUID) (budget.Allocation, month.Month, error) {
	query := `
		SELECT budget_json, month
		FROM user_budgets
		WHERE user_id = $1
		ORDER BY month DESC
		LIMIT 1
	`

	var (
		payload  []byte
		monthStr string
	)

	err := s.db.QueryRowContext(ctx, query, userID).Scan(&payload, &monthStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, "", budget.ErrNotFound
		}

		return nil, "", fmt.Errorf("getting latest budget: %w", err)
	}

	m, err := month.Parse(monthStr)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", budget.ErrBadPayload, err)
	}

	alloc, err := decodeAllocation(payload)
	if err != nil {
		return nil, "", err
	}

	return alloc, m, nil
}

func (s *Store) Upsert(ctx context.Context, userID uuid.UUID, m month.Month, alloc budget.Allocation) error {
	payload, err := json.Marshal(alloc)
	if err != nil {
		return fmt.Errorf("encoding budget: %w", err)
	}

	query := `
		INSERT INTO user_budgets (user_id, month, budget_json, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, month) DO UPDATE SET budget_json = EXCLUDED.budget_json, updated_at = NOW()
	`

	if _, err := s.db.ExecContext(ctx, query, userID, m.String(), payload); err != nil {
		return fmt.Errorf("upserting budget: %w", err)
	}

	return nil
}
