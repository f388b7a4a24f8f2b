package income_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/finpilot/internal/income"
)

func TestService_Amount(t *testing.T) {
	userID := uuid.New()

	type testCase struct {
		name      string
		setupMock func(m *income.MockRepository)
		want      float64
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Recorded",
			setupMock: func(m *income.MockRepository) {
				m.EXPECT().Get(gomock.Any(), userID).Return(50000.0, nil)
			},
			want: 50000.0,
		},
		{
			name: "AbsentReadsAsZero",
			setupMock: func(m *income.MockRepository) {
				m.EXPECT().Get(gomock.Any(), userID).Return(0.0, income.ErrNotFound)
			},
			want: 0,
		},
		{
			name: "UpstreamFailure",
			setupMock: func(m *income.MockRepository) {
				m.EXPECT().Get(gomock.Any(), userID).Return(0.0, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := income.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := income.NewService(repo)
			got, err := svc.Amount(context.Background(), userID)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_Set(t *testing.T) {
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := income.NewMockRepository(ctrl)
		repo.EXPECT().Upsert(gomock.Any(), userID, 42000.0).Return(nil)

		svc := income.NewService(repo)
		require.NoError(t, svc.Set(context.Background(), userID, 42000.0))
	})

	t.Run("NegativeRejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := income.NewMockRepository(ctrl)

		svc := income.NewService(repo)
		err := svc.Set(context.Background(), userID, -1)
		assert.ErrorIs(t, err, income.ErrNegativeAmount)
	})

	t.Run("RepoError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := income.NewMockRepository(ctrl)
		repo.EXPECT().Upsert(gomock.Any(), userID, 100.0).Return(errors.New("db error"))

		svc := income.NewService(repo)
		assert.Error(t, svc.Set(context.Background(), userID, 100.0))
	})
}
