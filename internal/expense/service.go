package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finpilot/internal/budget"
	"github.com/MrJamesThe3rd/finpilot/internal/month"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=expense
type Repository interface {
	Insert(ctx context.Context, e *Expense) error
	ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*Expense, error)
}

type IncomeSource interface {
	Amount(ctx context.Context, userID uuid.UUID) (float64, error)
}

type BudgetSource interface {
	Get(ctx context.Context, userID uuid.UUID, m month.Month) (budget.Allocation, error)
}

// Reconciler recomputes the month's savings record after the ledger changes.
type Reconciler interface {
	Reconcile(ctx context.Context, userID uuid.UUID, m month.Month) error
}

type Service struct {
	repo       Repository
	incomes    IncomeSource
	budgets    BudgetSource
	reconciler Reconciler
}

func NewService(repo Repository, incomes IncomeSource, budgets BudgetSource, reconciler Reconciler) *Service {
	return &Service{repo: repo, incomes: incomes, budgets: budgets, reconciler: reconciler}
}

// Insert appends an expense to the current month's ledger after enforcing
// the allocation limit: the amount must not exceed what remains of the
// category's allocated share (an amount exactly equal to the remainder is
// accepted). The monthly savings record is reconciled on success.
func (s *Service) Insert(ctx context.Context, userID uuid.UUID, category string, amount float64, note string) (*Expense, error) {
	m := month.Current()

	income, err := s.incomes.Amount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting income: %w", err)
	}

	alloc, err := s.budgets.Get(ctx, userID, m)
	if err != nil {
		return nil, fmt.Errorf("getting budget: %w", err)
	}

	if income <= 0 || len(alloc) == 0 {
		return nil, ErrSetupIncomplete
	}

	if amount <= 0 {
		return nil, ErrNonPositiveAmount
	}

	if !alloc.Spendable(category) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}

	existing, err := s.ListMonth(ctx, userID, m)
	if err != nil {
		return nil, err
	}

	byCategory, _ := Aggregate(existing)

	_, remaining := Remaining(category, alloc, income, byCategory)
	if amount > remaining {
		return nil, fmt.Errorf("%w: %.2f left for %s", ErrOverBudget, remaining, category)
	}

	e := &Expense{
		UserID:    userID,
		Category:  category,
		Amount:    amount,
		Note:      note,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, e); err != nil {
		return nil, fmt.Errorf("inserting expense: %w", err)
	}

	if err := s.reconciler.Reconcile(ctx, userID, m); err != nil {
		return nil, fmt.Errorf("reconciling savings: %w", err)
	}

	return e, nil
}

// ListMonth returns the user's expenses for the month, newest first.
func (s *Service) ListMonth(ctx context.Context, userID uuid.UUID, m month.Month) ([]*Expense, error) {
	from, to := m.Range()

	expenses, err := s.repo.ListRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}

	return expenses, nil
}

// TotalSpent returns the sum of the user's expenses for the month.
func (s *Service) TotalSpent(ctx context.Context, userID uuid.UUID, m month.Month) (float64, error) {
	expenses, err := s.ListMonth(ctx, userID, m)
	if err != nil {
		return 0, err
	}

	_, total := Aggregate(expenses)

	return total, nil
}
