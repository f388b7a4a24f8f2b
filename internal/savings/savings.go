package savings

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finpilot/internal/month"
)

// ErrNotFound is returned by the repository when no savings record exists
// for the month.
var ErrNotFound = errors.New("monthly savings not found")

// Entry is the single savings record for a (user, month) pair.
type Entry struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Month      month.Month
	Amount     float64
	RecordedOn time.Time
}
