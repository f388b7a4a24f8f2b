package month

import (
	"fmt"
	"time"
)

// Month is a calendar month key in "YYYY-MM" form. All ledger entities
// scoped to a month (budgets, monthly savings) use it as part of their key.
type Month string

func Parse(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return "", fmt.Errorf("invalid month %q: %w", s, err)
	}

	return Month(t.Format("2006-01")), nil
}

// Of returns the month containing t.
func Of(t time.Time) Month {
	return Month(t.Format("2006-01"))
}

// Current returns the month containing the present moment.
func Current() Month {
	return Of(time.Now())
}

func (m Month) String() string {
	return string(m)
}

// Time returns midnight UTC on the first day of the month.
func (m Month) Time() time.Time {
	t, _ := time.Parse("2006-01", string(m))
	return t
}

// Range returns the inclusive [first instant, last instant) bounds of the
// month, suitable for created_at range queries.
func (m Month) Range() (time.Time, time.Time) {
	start := m.Time()
	return start, start.AddDate(0, 1, 0)
}

// Year returns the calendar year of the month.
func (m Month) Year() int {
	return m.Time().Year()
}

// Prev returns the preceding month.
func (m Month) Prev() Month {
	return Of(m.Time().AddDate(0, -1, 0))
}
