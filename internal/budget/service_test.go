package budget_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/finpilot/internal/budget"
	"github.com/MrJamesThe3rd/finpilot/internal/month"
)

func TestService_Save(t *testing.T) {
	userID := uuid.New()
	m := month.Month("2024-05")

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := budget.NewMockRepository(ctrl)
		initial := budget.NewMockInitialSavingsRecorder(ctrl)

		repo.EXPECT().
			Upsert(gomock.Any(), userID, m, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ month.Month, alloc budget.Allocation) error {
				assert.Equal(t, 50.0, alloc.SavingsPercent())
				return nil
			})
		initial.EXPECT().RecordInitial(gomock.Any(), userID, m).Return(nil)

		svc := budget.NewService(repo, initial)
		alloc, err := svc.Save(context.Background(), userID, m, map[string]float64{"Housing": 30, "Food": 20})

		require.NoError(t, err)
		assert.Equal(t, 50.0, alloc.SavingsPercent())
	})

	t.Run("OverAllocatedNoWrite", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := budget.NewMockRepository(ctrl)
		initial := budget.NewMockInitialSavingsRecorder(ctrl)

		svc := budget.NewService(repo, initial)
		_, err := svc.Save(context.Background(), userID, m, map[string]float64{"Housing": 80, "Food": 30})

		assert.ErrorIs(t, err, budget.ErrOverAllocated)
	})

	t.Run("RepoErrorSurfaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := budget.NewMockRepository(ctrl)
		initial := budget.NewMockInitialSavingsRecorder(ctrl)
		repo.EXPECT().Upsert(gomock.Any(), userID, m, gomock.Any()).Return(errors.New("db error"))

		svc := budget.NewService(repo, initial)
		_, err := svc.Save(context.Background(), userID, m, map[string]float64{"Housing": 30})

		assert.Error(t, err)
	})
}

func TestService_Get(t *testing.T) {
	userID := uuid.New()
	m := month.Month("2024-05")

	type testCase struct {
		name      string
		setupMock func(r *budget.MockRepository)
		want      budget.Allocation
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Found",
			setupMock: func(r *budget.MockRepository) {
				r.EXPECT().Get(gomock.Any(), userID, m).
					Return(budget.Allocation{"Housing": 30, "Savings": 70}, nil)
			},
			want: budget.Allocation{"Housing": 30, "Savings": 70},
		},
		{
			name: "AbsentReadsAsEmpty",
			setupMock: func(r *budget.MockRepository) {
				r.EXPECT().Get(gomock.Any(), userID, m).Return(nil, budget.ErrNotFound)
			},
			want: budget.Allocation{},
		},
		{
			name: "MalformedPayloadRecovered",
			setupMock: func(r *budget.MockRepository) {
				r.EXPECT().Get(gomock.Any(), userID, m).Return(nil, budget.ErrBadPayload)
			},
			want: budget.Allocation{},
		},
		{
			name: "UpstreamFailure",
			setupMock: func(r *budget.MockRepository) {
				r.EXPECT().Get(gomock.Any(), userID, m).Return(nil, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := budget.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := budget.NewService(repo, budget.NewMockInitialSavingsRecorder(ctrl))
			got, err := svc.Get(context.Background(), userID, m)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_Defaults(t *testing.T) {
	userID := uuid.New()

	t.Run("PriorMonthNeedsConfirmation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := budget.NewMockRepository(ctrl)
		repo.EXPECT().Latest(gomock.Any(), userID).
			Return(budget.Allocation{"Housing": 30, "Savings": 70}, month.Month("2024-04"), nil)

		svc := budget.NewService(repo, budget.NewMockInitialSavingsRecorder(ctrl))
		percents, fromPrior, err := svc.Defaults(context.Background(), userID, month.Month("2024-05"))

		require.NoError(t, err)
		assert.True(t, fromPrior)
		assert.Equal(t, map[string]float64{"Housing": 30}, percents)
	})

	t.Run("SameMonthNoConfirmation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := budget.NewMockRepository(ctrl)
		repo.EXPECT().Latest(gomock.Any(), userID).
			Return(budget.Allocation{"Housing": 30, "Savings": 70}, month.Month("2024-05"), nil)

		svc := budget.NewService(repo, budget.NewMockInitialSavingsRecorder(ctrl))
		percents, fromPrior, err := svc.Defaults(context.Background(), userID, month.Month("2024-05"))

		require.NoError(t, err)
		assert.False(t, fromPrior)
		assert.Equal(t, map[string]float64{"Housing": 30}, percents)
	})

	t.Run("NoBudgetYet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := budget.NewMockRepository(ctrl)
		repo.EXPECT().Latest(gomock.Any(), userID).Return(nil, month.Month(""), budget.ErrNotFound)

		svc := budget.NewService(repo, budget.NewMockInitialSavingsRecorder(ctrl))
		percents, fromPrior, err := svc.Defaults(context.Background(), userID, month.Month("2024-05"))

		require.NoError(t, err)
		assert.False(t, fromPrior)
		assert.Nil(t, percents)
	})
}
