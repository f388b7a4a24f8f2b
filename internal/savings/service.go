package savings

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finpilot/internal/month"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=savings
type Repository interface {
	Get(ctx context.Context, userID uuid.UUID, m month.Month) (*Entry, error)
	Upsert(ctx context.Context, e *Entry) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Entry, error)
}

type IncomeSource interface {
	Amount(ctx context.Context, userID uuid.UUID) (float64, error)
}

type SpendSource interface {
	TotalSpent(ctx context.Context, userID uuid.UUID, m month.Month) (float64, error)
}

type Service struct {
	repo    Repository
	incomes IncomeSource
	spend   SpendSource
}

func NewService(repo Repository, incomes IncomeSource, spend SpendSource) *Service {
	return &Service{repo: repo, incomes: incomes, spend: spend}
}

// Reconcile recomputes the month's savings as income minus total spend and
// upserts the single record for (user, month). A zero income makes the
// figure undefined, so nothing is written. Re-running with unchanged inputs
// stores the same amount in the same row.
func (s *Service) Reconcile(ctx context.Context, userID uuid.UUID, m month.Month) error {
	income, err := s.incomes.Amount(ctx, userID)
	if err != nil {
		return fmt.Errorf("getting income: %w", err)
	}

	if income == 0 {
		return nil
	}

	total, err := s.spend.TotalSpent(ctx, userID, m)
	if err != nil {
		return fmt.Errorf("getting total spend: %w", err)
	}

	entry := &Entry{
		UserID:     userID,
		Month:      m,
		Amount:     round2(income - total),
		RecordedOn: time.Now().UTC(),
	}

	if err := s.repo.Upsert(ctx, entry); err != nil {
		return fmt.Errorf("upserting savings: %w", err)
	}

	return nil
}

// RecordInitial seeds the month's savings record with the full income,
// but only when no record exists yet. Called when a budget is first saved
// for the month; subsequent reconciliations take over from there.
func (s *Service) RecordInitial(ctx context.Context, userID uuid.UUID, m month.Month) error {
	income, err := s.incomes.Amount(ctx, userID)
	if err != nil {
		return fmt.Errorf("getting income: %w", err)
	}

	if income <= 0 {
		return nil
	}

	_, err = s.repo.Get(ctx, userID, m)
	if err == nil {
		return nil
	}

	if !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("getting savings: %w", err)
	}

	entry := &Entry{
		UserID:     userID,
		Month:      m,
		Amount:     round2(income),
		RecordedOn: time.Now().UTC(),
	}

	if err := s.repo.Upsert(ctx, entry); err != nil {
		return fmt.Errorf("seeding savings: %w", err)
	}

	return nil
}

// Amount returns the recorded savings for the month, or 0 when absent.
func (s *Service) Amount(ctx context.Context, userID uuid.UUID, m month.Month) (float64, error) {
	entry, err := s.repo.Get(ctx, userID, m)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return 0, nil
		}

		return 0, fmt.Errorf("getting savings: %w", err)
	}

	return entry.Amount, nil
}

// History returns all of the user's monthly savings records, oldest first.
func (s *Service) History(ctx context.Context, userID uuid.UUID) ([]*Entry, error) {
	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing savings: %w", err)
	}

	return entries, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
