package income

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNotFound is returned by the repository when no income has been recorded
// for the user.
var ErrNotFound = errors.New("income not found")

// ErrNegativeAmount rejects attempts to record a negative income.
var ErrNegativeAmount = errors.New("income must not be negative")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=income
type Repository interface {
	Get(ctx context.Context, userID uuid.UUID) (float64, error)
	Upsert(ctx context.Context, userID uuid.UUID, amount float64) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Amount returns the user's current income. An unset income reads as 0 so
// downstream logic can run in an unconfigured mode instead of failing.
func (s *Service) Amount(ctx context.Context, userID uuid.UUID) (float64, error) {
	amount, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return 0, nil
		}

		return 0, fmt.Errorf("getting income: %w", err)
	}

	return amount, nil
}

// Set overwrites the user's single current income value.
func (s *Service) Set(ctx context.Context, userID uuid.UUID, amount float64) error {
	if amount < 0 {
		return ErrNegativeAmount
	}

	if err := s.repo.Upsert(ctx, userID, amount); err != nil {
		return fmt.Errorf("setting income: %w", err)
	}

	return nil
}
