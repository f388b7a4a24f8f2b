package budget

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// SavingsCategory is the derived category completing every allocation to
// 100%. Users cannot allocate it directly and cannot record expenses
// against it.
const SavingsCategory = "Savings"

var (
	ErrOverAllocated    = errors.New("budget allocation exceeds 100%")
	ErrInvalidPercent   = errors.New("category percent must be between 0 and 100")
	ErrReservedCategory = errors.New("the Savings category is derived and cannot be set directly")

	// ErrNotFound is returned by the repository when no budget exists.
	ErrNotFound = errors.New("budget not found")
	// ErrBadPayload is returned by the repository when the persisted budget
	// payload cannot be decoded.
	ErrBadPayload = errors.New("malformed budget payload")
)

// Allocation maps category names to their percentage share of monthly
// income. A valid allocation always carries the derived Savings category and
// sums to 100.
type Allocation map[string]float64

// NewAllocation validates user-supplied category percentages and derives the
// Savings remainder, rounded to two decimals.
func NewAllocation(percents map[string]float64) (Allocation, error) {
	var total float64

	for category, pct := range percents {
		if category == SavingsCategory {
			return nil, ErrReservedCategory
		}

		if pct < 0 || pct > 100 {
			return nil, fmt.Errorf("%w: %s is %.2f", ErrInvalidPercent, category, pct)
		}

		total += pct
	}

	if total > 100 {
		return nil, fmt.Errorf("%w: categories sum to %.2f", ErrOverAllocated, total)
	}

	alloc := make(Allocation, len(percents)+1)
	for category, pct := range percents {
		alloc[category] = pct
	}

	alloc[SavingsCategory] = round2(100 - total)

	return alloc, nil
}

// Categories returns the spendable category names (Savings excluded),
// sorted for stable iteration.
func (a Allocation) Categories() []string {
	cats := make([]string, 0, len(a))

	for category := range a {
		if category == SavingsCategory {
			continue
		}

		cats = append(cats, category)
	}

	sort.Strings(cats)

	return cats
}

// Spendable reports whether expenses may be recorded against the category.
func (a Allocation) Spendable(category string) bool {
	if category == SavingsCategory {
		return false
	}

	_, ok := a[category]

	return ok
}

// SavingsPercent returns the derived Savings share.
func (a Allocation) SavingsPercent() float64 {
	return a[SavingsCategory]
}

// Percents returns the user-editable percentages with the derived Savings
// entry stripped, e.g. for seeding a new month's form.
func (a Allocation) Percents() map[string]float64 {
	percents := make(map[string]float64, len(a))

	for category, pct := range a {
		if category == SavingsCategory {
			continue
		}

		percents[category] = pct
	}

	return percents
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
