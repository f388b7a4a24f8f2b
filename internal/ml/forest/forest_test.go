package forest_test

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/finpilot/internal/ml/forest"
)

// synthetic regression set: y depends on column 0, column 1 is noise.
func syntheticData(n int, seed int64) ([][]float64, []float64) {
	rng := rand.New(rand.NewSource(seed))

	x := make([][]float64, n)
	y := make([]float64, n)

	for i := range x {
		signal := rng.Float64() * 100
		noise := rng.Float64() * 100

		x[i] = []float64{signal, noise}
		y[i] = 3*signal + 10
	}

	return x, y
}

func TestTrain(t *testing.T) {
	t.Run("LearnsSignal", func(t *testing.T) {
		x, y := syntheticData(200, 1)

		model, err := forest.Train(x, y, forest.Config{Trees: 30, Seed: 42})
		require.NoError(t, err)

		pred, err := model.Predict([]float64{50, 13})
		require.NoError(t, err)

		// 3*50+10 = 160; the forest interpolates within training range.
		assert.InDelta(t, 160, pred, 15)
	})

	t.Run("ImportancesFavorSignal", func(t *testing.T) {
		x, y := syntheticData(200, 1)

		model, err := forest.Train(x, y, forest.Config{Trees: 30, Seed: 42})
		require.NoError(t, err)

		imp := model.FeatureImportances()
		require.Len(t, imp, 2)

		assert.Greater(t, imp[0], imp[1])
		assert.InDelta(t, 1, imp[0]+imp[1], 1e-9)
	})

	t.Run("Deterministic", func(t *testing.T) {
		x, y := syntheticData(100, 1)

		m1, err := forest.Train(x, y, forest.Config{Trees: 10, Seed: 42})
		require.NoError(t, err)

		m2, err := forest.Train(x, y, forest.Config{Trees: 10, Seed: 42})
		require.NoError(t, err)

		assert.Equal(t, m1, m2)
	})

	t.Run("EmptyInputRejected", func(t *testing.T) {
		_, err := forest.Train(nil, nil, forest.Config{})
		assert.Error(t, err)
	})

	t.Run("LengthMismatchRejected", func(t *testing.T) {
		_, err := forest.Train([][]float64{{1}}, []float64{1, 2}, forest.Config{})
		assert.Error(t, err)
	})
}

func TestRegressor_Predict(t *testing.T) {
	t.Run("ConstantTarget", func(t *testing.T) {
		x := [][]float64{{1}, {2}, {3}, {4}}
		y := []float64{7, 7, 7, 7}

		model, err := forest.Train(x, y, forest.Config{Trees: 5, Seed: 1})
		require.NoError(t, err)

		pred, err := model.Predict([]float64{2.5})
		require.NoError(t, err)
		assert.Equal(t, 7.0, pred)
	})

	t.Run("WidthMismatchRejected", func(t *testing.T) {
		x, y := syntheticData(50, 1)

		model, err := forest.Train(x, y, forest.Config{Trees: 5, Seed: 1})
		require.NoError(t, err)

		_, err = model.Predict([]float64{1})
		assert.Error(t, err)
	})
}

func TestRegressor_JSONRoundTrip(t *testing.T) {
	x, y := syntheticData(80, 1)

	model, err := forest.Train(x, y, forest.Config{Trees: 8, Seed: 42})
	require.NoError(t, err)

	raw, err := json.Marshal(model)
	require.NoError(t, err)

	var loaded forest.Regressor
	require.NoError(t, json.Unmarshal(raw, &loaded))

	want, err := model.Predict([]float64{33, 4})
	require.NoError(t, err)

	got, err := loaded.Predict([]float64{33, 4})
	require.NoError(t, err)

	assert.Equal(t, want, got)
}
