package predict_test

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/finpilot/internal/ml/artifact"
	"github.com/MrJamesThe3rd/finpilot/internal/ml/dataset"
	"github.com/MrJamesThe3rd/finpilot/internal/ml/pipeline"
	"github.com/MrJamesThe3rd/finpilot/internal/predict"
)

func trainSavingsModel(t *testing.T) *artifact.Bundle {
	t.Helper()

	rng := rand.New(rand.NewSource(3))
	cities := []string{"Mumbai", "Delhi"}

	var sb strings.Builder
	sb.WriteString("income,age,city,savings\n")

	for i := 0; i < 100; i++ {
		income := 20000 + rng.Float64()*60000
		age := 20 + rng.Intn(40)
		city := cities[rng.Intn(len(cities))]

		fmt.Fprintf(&sb, "%.2f,%d,%s,%.2f\n", income, age, city, 0.2*income)
	}

	table, err := dataset.Read(strings.NewReader(sb.String()))
	require.NoError(t, err)

	bundle, err := pipeline.Run(table, pipeline.Config{
		Target:         "savings",
		Categorical:    []string{"city"},
		Scale:          true,
		SelectFeatures: true,
	})
	require.NoError(t, err)

	return bundle
}

func TestPredictor_Predict(t *testing.T) {
	bundle := trainSavingsModel(t)
	p := predict.NewPredictor(bundle)

	observation := func() predict.Observation {
		obs := predict.Observation{
			Numeric:     map[string]float64{},
			Categorical: map[string]string{},
		}

		for _, f := range bundle.NumericFields {
			obs.Numeric[f] = 40000
		}

		for _, f := range bundle.CategoricalFields {
			obs.Categorical[f] = "Mumbai"
		}

		return obs
	}

	t.Run("PointEstimate", func(t *testing.T) {
		got, err := p.Predict(observation())

		require.NoError(t, err)
		assert.Greater(t, got, 0.0)
	})

	t.Run("UnknownCategoryTolerated", func(t *testing.T) {
		obs := observation()
		for _, f := range bundle.CategoricalFields {
			obs.Categorical[f] = "Atlantis"
		}

		_, err := p.Predict(obs)
		assert.NoError(t, err)
	})

	t.Run("MissingFieldRejected", func(t *testing.T) {
		obs := observation()
		if len(bundle.NumericFields) == 0 {
			t.Skip("model kept no numeric fields")
		}

		delete(obs.Numeric, bundle.NumericFields[0])

		_, err := p.Predict(obs)
		assert.ErrorIs(t, err, predict.ErrObservationSchema)
	})

	t.Run("ExtraFieldRejected", func(t *testing.T) {
		obs := observation()
		obs.Numeric["shoe_size"] = 42

		_, err := p.Predict(obs)
		assert.ErrorIs(t, err, predict.ErrObservationSchema)
	})

	t.Run("RenamedFieldRejected", func(t *testing.T) {
		obs := observation()
		if len(bundle.NumericFields) == 0 {
			t.Skip("model kept no numeric fields")
		}

		v := obs.Numeric[bundle.NumericFields[0]]
		delete(obs.Numeric, bundle.NumericFields[0])
		obs.Numeric["renamed"] = v

		_, err := p.Predict(obs)
		assert.ErrorIs(t, err, predict.ErrObservationSchema)
	})
}

func TestOpen(t *testing.T) {
	t.Run("RoundTripThroughDisk", func(t *testing.T) {
		bundle := trainSavingsModel(t)
		path := filepath.Join(t.TempDir(), "savings.json")

		require.NoError(t, artifact.Save(path, bundle))

		p, err := predict.Open(path)
		require.NoError(t, err)
		assert.Equal(t, "savings", p.Target())
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := predict.Open(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})
}

func TestClassifySavings(t *testing.T) {
	tests := []struct {
		name      string
		predicted float64
		income    float64
		want      predict.Tier
	}{
		{name: "JustBelowTen", predicted: 9990, income: 100000, want: predict.TierLow},
		{name: "ExactlyTen", predicted: 10000, income: 100000, want: predict.TierModerate},
		{name: "JustBelowTwentyFive", predicted: 24990, income: 100000, want: predict.TierModerate},
		{name: "ExactlyTwentyFive", predicted: 25000, income: 100000, want: predict.TierHigh},
		{name: "WellAbove", predicted: 60000, income: 100000, want: predict.TierHigh},
		{name: "ZeroIncome", predicted: 5000, income: 0, want: predict.TierLow},
		{name: "NegativeIncome", predicted: 5000, income: -1, want: predict.TierLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, predict.ClassifySavings(tt.predicted, tt.income))
		})
	}
}

func TestForecast(t *testing.T) {
	t.Run("NonCompounding", func(t *testing.T) {
		got := predict.Forecast(1000, 6)

		require.Len(t, got, 6)
		assert.InDelta(t, 1020, got[0], 1e-9)
		assert.InDelta(t, 1060, got[2], 1e-9)
		assert.InDelta(t, 1120, got[5], 1e-9)
	})

	t.Run("DefaultHorizon", func(t *testing.T) {
		assert.Len(t, predict.Forecast(500, 0), predict.DefaultForecastHorizon)
	})

	t.Run("ZeroBase", func(t *testing.T) {
		for _, v := range predict.Forecast(0, 6) {
			assert.Zero(t, v)
		}
	})
}
