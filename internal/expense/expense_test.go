package expense_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/finpilot/internal/budget"
	"github.com/MrJamesThe3rd/finpilot/internal/expense"
)

func TestAggregate(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		byCategory, total := expense.Aggregate(nil)
		assert.Empty(t, byCategory)
		assert.Zero(t, total)
	})

	t.Run("SumsPerCategory", func(t *testing.T) {
		expenses := []*expense.Expense{
			{Category: "Food", Amount: 1000},
			{Category: "Food", Amount: 250.50},
			{Category: "Housing", Amount: 12000},
		}

		byCategory, total := expense.Aggregate(expenses)

		assert.Equal(t, map[string]float64{"Food": 1250.50, "Housing": 12000}, byCategory)
		assert.Equal(t, 13250.50, total)
	})
}

func TestRemaining(t *testing.T) {
	alloc := budget.Allocation{"Housing": 30, "Food": 20, "Savings": 50}

	type testCase struct {
		name          string
		category      string
		income        float64
		byCategory    map[string]float64
		wantAllocated float64
		wantRemaining float64
	}

	tests := []testCase{
		{
			name:          "NoSpendYet",
			category:      "Food",
			income:        50000,
			byCategory:    map[string]float64{},
			wantAllocated: 10000,
			wantRemaining: 10000,
		},
		{
			name:          "PartiallySpent",
			category:      "Food",
			income:        50000,
			byCategory:    map[string]float64{"Food": 1000},
			wantAllocated: 10000,
			wantRemaining: 9000,
		},
		{
			name:          "Overspent",
			category:      "Housing",
			income:        50000,
			byCategory:    map[string]float64{"Housing": 16000},
			wantAllocated: 15000,
			wantRemaining: -1000,
		},
		{
			name:       "CategoryAbsent",
			category:   "Travel",
			income:     50000,
			byCategory: map[string]float64{},
		},
		{
			name:       "ZeroIncome",
			category:   "Food",
			income:     0,
			byCategory: map[string]float64{},
		},
		{
			name:       "NegativeIncome",
			category:   "Food",
			income:     -10,
			byCategory: map[string]float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allocated, remaining := expense.Remaining(tt.category, alloc, tt.income, tt.byCategory)
			assert.Equal(t, tt.wantAllocated, allocated)
			assert.Equal(t, tt.wantRemaining, remaining)
		})
	}
}
