package insight

import (
	"context"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finpilot/internal/budget"
	"github.com/MrJamesThe3rd/finpilot/internal/expense"
	"github.com/MrJamesThe3rd/finpilot/internal/month"
)

// Summary is the month-at-a-glance view: income against actual spend and
// recorded savings, with per-category budget comparisons.
type Summary struct {
	Month      month.Month
	Income     float64
	TotalSpent float64
	Savings    float64
	Categories []CategoryInsight
	Overspent  []Overspend
}

// CategoryInsight compares a category's planned share with its actual spend.
type CategoryInsight struct {
	Category string
	Percent  float64
	Budgeted float64
	Spent    float64
}

// Overspend flags a category whose spend exceeds its allocation.
type Overspend struct {
	Category string
	Amount   float64
}

//go:generate mockgen -source=service.go -destination=sources_mock.go -package=insight
type IncomeSource interface {
	Amount(ctx context.Context, userID uuid.UUID) (float64, error)
}

type BudgetSource interface {
	Get(ctx context.Context, userID uuid.UUID, m month.Month) (budget.Allocation, error)
}

type ExpenseSource interface {
	ListMonth(ctx context.Context, userID uuid.UUID, m month.Month) ([]*expense.Expense, error)
}

type SavingsSource interface {
	Amount(ctx context.Context, userID uuid.UUID, m month.Month) (float64, error)
}

type Service struct {
	incomes  IncomeSource
	budgets  BudgetSource
	expenses ExpenseSource
	savings  SavingsSource
}

func NewService(incomes IncomeSource, budgets BudgetSource, expenses ExpenseSource, savings SavingsSource) *Service {
	return &Service{incomes: incomes, budgets: budgets, expenses: expenses, savings: savings}
}

// MonthlySummary assembles the analysis view for (user, month). It is a
// read-only path: a failing collaborator degrades to a neutral zero/empty
// value so a partial summary still renders.
func (s *Service) MonthlySummary(ctx context.Context, userID uuid.UUID, m month.Month) *Summary {
	income, err := s.incomes.Amount(ctx, userID)
	if err != nil {
		slog.Warn("summary: income unavailable", "user_id", userID, "error", err)

		income = 0
	}

	alloc, err := s.budgets.Get(ctx, userID, m)
	if err != nil {
		slog.Warn("summary: budget unavailable", "user_id", userID, "error", err)

		alloc = budget.Allocation{}
	}

	expenses, err := s.expenses.ListMonth(ctx, userID, m)
	if err != nil {
		slog.Warn("summary: expenses unavailable", "user_id", userID, "error", err)

		expenses = nil
	}

	saved, err := s.savings.Amount(ctx, userID, m)
	if err != nil {
		slog.Warn("summary: savings unavailable", "user_id", userID, "error", err)

		saved = 0
	}

	byCategory, total := expense.Aggregate(expenses)

	summary := &Summary{
		Month:      m,
		Income:     income,
		TotalSpent: total,
		Savings:    saved,
	}

	for _, category := range alloc.Categories() {
		pct := alloc[category]
		budgeted := round2(income * pct / 100)
		spent := byCategory[category]

		summary.Categories = append(summary.Categories, CategoryInsight{
			Category: category,
			Percent:  pct,
			Budgeted: budgeted,
			Spent:    spent,
		})

		if spent > budgeted {
			summary.Overspent = append(summary.Overspent, Overspend{
				Category: category,
				Amount:   round2(spent - budgeted),
			})
		}
	}

	return summary
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
