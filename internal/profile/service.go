package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finpilot/internal/savings"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=profile
type Repository interface {
	Get(ctx context.Context, userID uuid.UUID) (*Profile, error)
	Upsert(ctx context.Context, p *Profile) error
}

type SavingsSource interface {
	History(ctx context.Context, userID uuid.UUID) ([]*savings.Entry, error)
}

type Service struct {
	repo           Repository
	savingsHistory SavingsSource
}

func NewService(repo Repository, savingsHistory SavingsSource) *Service {
	return &Service{repo: repo, savingsHistory: savingsHistory}
}

// Ensure returns the user's profile, creating a default one on first access.
func (s *Service) Ensure(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	p, err := s.repo.Get(ctx, userID)
	if err == nil {
		return p, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("getting profile: %w", err)
	}

	total, err := s.totalSavings(ctx, userID)
	if err != nil {
		return nil, err
	}

	p = &Profile{
		UserID:       userID,
		Age:          20,
		Country:      "India",
		TotalSavings: total,
	}

	if err := s.repo.Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("creating profile: %w", err)
	}

	return p, nil
}

type UpdateParams struct {
	Name               string
	Age                int
	Country            string
	SavingsGoalPerYear float64
}

// Update writes the user-editable profile fields and refreshes the derived
// total savings in the same pass.
func (s *Service) Update(ctx context.Context, userID uuid.UUID, params UpdateParams) (*Profile, error) {
	if params.Age < 0 || params.Age > 120 {
		return nil, ErrInvalidAge
	}

	if params.SavingsGoalPerYear < 0 {
		return nil, ErrNegativeGoal
	}

	total, err := s.totalSavings(ctx, userID)
	if err != nil {
		return nil, err
	}

	p := &Profile{
		UserID:             userID,
		Name:               params.Name,
		Age:                params.Age,
		Country:            params.Country,
		SavingsGoalPerYear: params.SavingsGoalPerYear,
		TotalSavings:       total,
	}

	if err := s.repo.Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}

	return p, nil
}

// RefreshTotalSavings recomputes the cumulative savings sum and persists it.
func (s *Service) RefreshTotalSavings(ctx context.Context, userID uuid.UUID) (float64, error) {
	p, err := s.Ensure(ctx, userID)
	if err != nil {
		return 0, err
	}

	total, err := s.totalSavings(ctx, userID)
	if err != nil {
		return 0, err
	}

	p.TotalSavings = total

	if err := s.repo.Upsert(ctx, p); err != nil {
		return 0, fmt.Errorf("updating total savings: %w", err)
	}

	return total, nil
}

// YearProgress reports how far the user has come towards the annual savings
// goal: the year's summed savings, the goal, and the completion rate
// (0 when no goal is set).
func (s *Service) YearProgress(ctx context.Context, userID uuid.UUID, year int) (saved, goal, completion float64, err error) {
	entries, err := s.savingsHistory.History(ctx, userID)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("listing savings: %w", err)
	}

	for _, e := range entries {
		if e.Month.Year() == year {
			saved += e.Amount
		}
	}

	p, err := s.Ensure(ctx, userID)
	if err != nil {
		return 0, 0, 0, err
	}

	goal = p.SavingsGoalPerYear
	if goal > 0 {
		completion = saved / goal
	}

	return saved, goal, completion, nil
}

func (s *Service) totalSavings(ctx context.Context, userID uuid.UUID) (float64, error) {
	entries, err := s.savingsHistory.History(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("listing savings: %w", err)
	}

	var total float64
	for _, e := range entries {
		total += e.Amount
	}

	return total, nil
}
