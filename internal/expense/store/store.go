package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finpilot/internal/expense"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanExpense reads an expense row from the scanner.
// Expected column order: id, user_id, category, amount, note, created_at
func scanExpense(s scanner) (*expense.Expense, error) {
	var e expense.Expense

	var note sql.NullString

	if err := s.Scan(&e.ID, &e.UserID, &e.Category, &e.Amount, &note, &e.CreatedAt); err != nil {
		return nil, err
	}

	e.Note = note.String

	return &e, nil
}

func (s *Store) Insert(ctx context.Context, e *expense.Expense) error {
	query := `
		INSERT INTO expenses (user_id, category, amount, note, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		e.UserID,
		e.Category,
		e.Amount,
		e.Note,
		e.CreatedAt,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("inserting expense: %w", err)
	}

	return nil
}

func (s *Store) ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*expense.Expense, error) {
	query := `
		SELECT id, user_id, category, amount, note, created_at
		FROM expenses
		WHERE user_id = $1 AND created_at >= $2 AND created_at < $3
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*expense.Expense

	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}

		expenses = append(expenses, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating expense rows: %w", err)
	}

	return expenses, nil
}
