package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finpilot/internal/month"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=budget
type Repository interface {
	Get(ctx context.Context, userID uuid.UUID, m month.Month) (Allocation, error)
	Latest(ctx context.Context, userID uuid.UUID) (Allocation, month.Month, error)
	Upsert(ctx context.Context, userID uuid.UUID, m month.Month, alloc Allocation) error
}

// InitialSavingsRecorder seeds the month's savings record with the full
// income when a budget is first saved for the month.
type InitialSavingsRecorder interface {
	RecordInitial(ctx context.Context, userID uuid.UUID, m month.Month) error
}

type Service struct {
	repo    Repository
	initial InitialSavingsRecorder
}

func NewService(repo Repository, initial InitialSavingsRecorder) *Service {
	return &Service{repo: repo, initial: initial}
}

// Save validates the supplied percentages, derives the Savings remainder and
// upserts the single budget row for (user, month). On success the month's
// savings record is seeded with the full income if none exists yet.
func (s *Service) Save(ctx context.Context, userID uuid.UUID, m month.Month, percents map[string]float64) (Allocation, error) {
	alloc, err := NewAllocation(percents)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Upsert(ctx, userID, m, alloc); err != nil {
		return nil, fmt.Errorf("saving budget: %w", err)
	}

	if err := s.initial.RecordInitial(ctx, userID, m); err != nil {
		return nil, fmt.Errorf("recording initial savings: %w", err)
	}

	return alloc, nil
}

// Get returns the allocation for (user, month). An absent budget reads as an
// empty allocation, and a malformed persisted payload is recovered the same
// way so one bad row cannot wedge the ledger.
func (s *Service) Get(ctx context.Context, userID uuid.UUID, m month.Month) (Allocation, error) {
	alloc, err := s.repo.Get(ctx, userID, m)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrBadPayload) {
			return Allocation{}, nil
		}

		return nil, fmt.Errorf("getting budget: %w", err)
	}

	return alloc, nil
}

// Defaults returns candidate percentages for editing the budget of month m.
// When the latest saved budget belongs to an earlier month, fromPrior is
// true and the caller must get explicit confirmation before applying the
// values; unconfirmed defaults are all zero.
func (s *Service) Defaults(ctx context.Context, userID uuid.UUID, m month.Month) (percents map[string]float64, fromPrior bool, err error) {
	alloc, latest, err := s.repo.Latest(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrBadPayload) {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("getting latest budget: %w", err)
	}

	return alloc.Percents(), latest != m, nil
}
