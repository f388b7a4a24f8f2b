package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finpilot/internal/month"
	"github.com/MrJamesThe3rd/finpilot/internal/savings"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

// scanEntry reads a savings row from the scanner.
// Expected column order: id, user_id, month, amount, recorded_on
func scanEntry(s scanner) (*savings.Entry, error) {
	var e savings.Entry

	var monthStr string

	if err := s.Scan(&e.ID, &e.UserID, &monthStr, &e.Amount, &e.RecordedOn); err != nil {
		return nil, err
	}

	e.Month = month.Month(monthStr)

	return &e, nil
}

func (s *Store) Get(ctx context.Context, userID uuid.UUID, m month.Month) (*savings.Entry, error) {
	query := `
		SELECT id, user_id, month, amount, recorded_on
		FROM monthly_savings
		WHERE user_id = $1 AND month = $2
	`

	entry, err := scanEntry(s.db.QueryRowContext(ctx, query, userID, m.String()))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, savings.ErrNotFound
		}

		return nil, fmt.Errorf("getting savings: %w", err)
	}

	return entry, nil
}

// Upsert inserts or replaces the single savings row for (user, month). The
// unique constraint on (user_id, month) makes concurrent reconciliations
// converge on one row instead of duplicating it.
func (s *Store) Upsert(ctx context.Context, e *savings.Entry) error {
	query := `
		INSERT INTO monthly_savings (user_id, month, amount, recorded_on)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, month) DO UPDATE SET amount = EXCLUDED.amount, recorded_on = EXCLUDED.recorded_on
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		e.UserID,
		e.Month.String(),
		e.Amount,
		e.RecordedOn,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("upserting savings: %w", err)
	}

	return nil
}

func (s *Store) ListByUser(ctx context.Context, userID uuid.UUID) ([]*savings.Entry, error) {
	query := `
		SELECT id, user_id, month, amount, recorded_on
		FROM monthly_savings
		WHERE user_id = $1
		ORDER BY month ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing savings: %w", err)
	}
	defer rows.Close()

	var entries []*savings.Entry

	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning savings: %w", err)
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating savings rows: %w", err)
	}

	return entries, nil
}
