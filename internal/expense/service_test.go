package expense_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/finpilot/internal/budget"
	"github.com/MrJamesThe3rd/finpilot/internal/expense"
	"github.com/MrJamesThe3rd/finpilot/internal/month"
)

type insertFixture struct {
	repo       *expense.MockRepository
	incomes    *expense.MockIncomeSource
	budgets    *expense.MockBudgetSource
	reconciler *expense.MockReconciler
	svc        *expense.Service
}

func newInsertFixture(t *testing.T) *insertFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &insertFixture{
		repo:       expense.NewMockRepository(ctrl),
		incomes:    expense.NewMockIncomeSource(ctrl),
		budgets:    expense.NewMockBudgetSource(ctrl),
		reconciler: expense.NewMockReconciler(ctrl),
	}
	f.svc = expense.NewService(f.repo, f.incomes, f.budgets, f.reconciler)

	return f
}

// setup arranges income 50000 and a Housing 30 / Food 20 budget with the
// given prior Food spend.
func (f *insertFixture) setup(userID uuid.UUID, foodSpent float64) {
	alloc, _ := budget.NewAllocation(map[string]float64{"Housing": 30, "Food": 20})

	f.incomes.EXPECT().Amount(gomock.Any(), userID).Return(50000.0, nil)
	f.budgets.EXPECT().Get(gomock.Any(), userID, month.Current()).Return(alloc, nil)

	var existing []*expense.Expense
	if foodSpent > 0 {
		existing = []*expense.Expense{{UserID: userID, Category: "Food", Amount: foodSpent}}
	}

	f.repo.EXPECT().
		ListRange(gomock.Any(), userID, gomock.Any(), gomock.Any()).
		Return(existing, nil)
}

func TestService_Insert(t *testing.T) {
	userID := uuid.New()

	t.Run("Accepted", func(t *testing.T) {
		f := newInsertFixture(t)
		f.setup(userID, 1000)

		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		f.reconciler.EXPECT().Reconcile(gomock.Any(), userID, month.Current()).Return(nil)

		e, err := f.svc.Insert(context.Background(), userID, "Food", 500, "groceries")

		require.NoError(t, err)
		assert.Equal(t, "Food", e.Category)
		assert.Equal(t, 500.0, e.Amount)
		assert.False(t, e.CreatedAt.IsZero())
	})

	t.Run("ExactlyRemainingAccepted", func(t *testing.T) {
		// Food allocation is 10000; 1000 already spent leaves 9000.
		f := newInsertFixture(t)
		f.setup(userID, 1000)

		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		f.reconciler.EXPECT().Reconcile(gomock.Any(), userID, month.Current()).Return(nil)

		_, err := f.svc.Insert(context.Background(), userID, "Food", 9000, "")
		require.NoError(t, err)
	})

	t.Run("JustOverRemainingRejected", func(t *testing.T) {
		f := newInsertFixture(t)
		f.setup(userID, 1000)

		_, err := f.svc.Insert(context.Background(), userID, "Food", 9000.01, "")
		assert.ErrorIs(t, err, expense.ErrOverBudget)
	})

	t.Run("UnknownCategoryRejected", func(t *testing.T) {
		f := newInsertFixture(t)

		alloc, _ := budget.NewAllocation(map[string]float64{"Housing": 30, "Food": 20})
		f.incomes.EXPECT().Amount(gomock.Any(), userID).Return(50000.0, nil)
		f.budgets.EXPECT().Get(gomock.Any(), userID, month.Current()).Return(alloc, nil)

		_, err := f.svc.Insert(context.Background(), userID, "Travel", 100, "")
		assert.ErrorIs(t, err, expense.ErrUnknownCategory)
	})

	t.Run("SavingsCategoryRejected", func(t *testing.T) {
		f := newInsertFixture(t)

		alloc, _ := budget.NewAllocation(map[string]float64{"Housing": 30})
		f.incomes.EXPECT().Amount(gomock.Any(), userID).Return(50000.0, nil)
		f.budgets.EXPECT().Get(gomock.Any(), userID, month.Current()).Return(alloc, nil)

		_, err := f.svc.Insert(context.Background(), userID, "Savings", 100, "")
		assert.ErrorIs(t, err, expense.ErrUnknownCategory)
	})

	t.Run("NonPositiveAmountRejected", func(t *testing.T) {
		f := newInsertFixture(t)

		alloc, _ := budget.NewAllocation(map[string]float64{"Food": 20})
		f.incomes.EXPECT().Amount(gomock.Any(), userID).Return(50000.0, nil)
		f.budgets.EXPECT().Get(gomock.Any(), userID, month.Current()).Return(alloc, nil)

		_, err := f.svc.Insert(context.Background(), userID, "Food", 0, "")
		assert.ErrorIs(t, err, expense.ErrNonPositiveAmount)
	})

	t.Run("NoIncomeBlocked", func(t *testing.T) {
		f := newInsertFixture(t)

		alloc, _ := budget.NewAllocation(map[string]float64{"Food": 20})
		f.incomes.EXPECT().Amount(gomock.Any(), userID).Return(0.0, nil)
		f.budgets.EXPECT().Get(gomock.Any(), userID, month.Current()).Return(alloc, nil)

		_, err := f.svc.Insert(context.Background(), userID, "Food", 100, "")
		assert.ErrorIs(t, err, expense.ErrSetupIncomplete)
	})

	t.Run("NoBudgetBlocked", func(t *testing.T) {
		f := newInsertFixture(t)

		f.incomes.EXPECT().Amount(gomock.Any(), userID).Return(50000.0, nil)
		f.budgets.EXPECT().Get(gomock.Any(), userID, month.Current()).Return(budget.Allocation{}, nil)

		_, err := f.svc.Insert(context.Background(), userID, "Food", 100, "")
		assert.ErrorIs(t, err, expense.ErrSetupIncomplete)
	})
}

func TestService_TotalSpent(t *testing.T) {
	userID := uuid.New()
	m := month.Month("2024-05")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := expense.NewMockRepository(ctrl)
	from, to := m.Range()
	repo.EXPECT().ListRange(gomock.Any(), userID, from, to).Return([]*expense.Expense{
		{Category: "Food", Amount: 1200},
		{Category: "Housing", Amount: 8000},
	}, nil)

	svc := expense.NewService(repo, nil, nil, nil)
	total, err := svc.TotalSpent(context.Background(), userID, m)

	require.NoError(t, err)
	assert.Equal(t, 9200.0, total)
}
