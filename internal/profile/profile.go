package profile

import (
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned by the repository when the user has no profile.
	ErrNotFound = errors.New("profile not found")

	ErrInvalidAge   = errors.New("age must be between 0 and 120")
	ErrNegativeGoal = errors.New("savings goal must not be negative")
)

// Profile holds per-user attributes. TotalSavings is derived from the
// monthly savings history and recomputed on every profile write, never
// authored directly.
type Profile struct {
	UserID             uuid.UUID
	Name               string
	Age                int
	Country            string
	SavingsGoalPerYear float64
	TotalSavings       float64
}
