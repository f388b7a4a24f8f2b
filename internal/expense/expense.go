package expense

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finpilot/internal/budget"
)

var (
	ErrNonPositiveAmount = errors.New("expense amount must be positive")
	ErrUnknownCategory   = errors.New("category is not part of the active budget")
	ErrOverBudget        = errors.New("expense exceeds the remaining category allocation")

	// ErrSetupIncomplete blocks all ledger mutation until both income and a
	// budget have been configured for the month.
	ErrSetupIncomplete = errors.New("income and budget must be set before adding expenses")
)

// Expense is an immutable ledger row. There is no update or delete path.
type Expense struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Category  string
	Amount    float64
	Note      string
	CreatedAt time.Time
}

// Aggregate sums expense amounts per category and in total. Empty input
// yields an empty map and a zero total.
func Aggregate(expenses []*Expense) (byCategory map[string]float64, total float64) {
	byCategory = make(map[string]float64, len(expenses))

	for _, e := range expenses {
		byCategory[e.Category] += e.Amount
		total += e.Amount
	}

	return byCategory, total
}

// Remaining computes the allocated amount for a category
// (income * percent / 100) and what is left of it after the aggregated
// spend. Returns (0, 0) when the category is absent from the budget or
// income is not positive.
func Remaining(category string, alloc budget.Allocation, income float64, byCategory map[string]float64) (allocated, remaining float64) {
	pct, ok := alloc[category]
	if !ok || income <= 0 {
		return 0, 0
	}

	allocated = pct / 100 * income
	remaining = allocated - byCategory[category]

	return allocated, remaining
}
