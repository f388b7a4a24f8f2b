package pipeline_test

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/finpilot/internal/ml/dataset"
	"github.com/MrJamesThe3rd/finpilot/internal/ml/pipeline"
)

// syntheticTable builds a dataset where savings tracks income, flat is a
// constant column and city shifts the target by a fixed offset.
func syntheticTable(t *testing.T, rows int) *dataset.Table {
	t.Helper()

	rng := rand.New(rand.NewSource(7))
	cities := []string{"Mumbai", "Delhi", "Pune"}

	var sb strings.Builder
	sb.WriteString("income,flat,city,savings\n")

	for i := 0; i < rows; i++ {
		income := 20000 + rng.Float64()*60000
		city := cities[rng.Intn(len(cities))]
		savings := 0.3*income + float64(rng.Intn(len(city)))*10

		fmt.Fprintf(&sb, "%.2f,1,%s,%.2f\n", income, city, savings)
	}

	table, err := dataset.Read(strings.NewReader(sb.String()))
	require.NoError(t, err)

	return table
}

func TestRun_SelectsAndScales(t *testing.T) {
	table := syntheticTable(t, 120)

	cfg := pipeline.Config{
		Target:         "savings",
		Categorical:    []string{"city"},
		Scale:          true,
		SelectFeatures: true,
	}

	bundle, err := pipeline.Run(table, cfg)
	require.NoError(t, err)

	t.Run("ConstantColumnDropped", func(t *testing.T) {
		assert.NotContains(t, bundle.Features, "flat")
		assert.Contains(t, bundle.Features, "income")
	})

	t.Run("IncomeRankedFirst", func(t *testing.T) {
		require.NotEmpty(t, bundle.Features)
		assert.Equal(t, "income", bundle.Features[0])
	})

	t.Run("ScalerMatchesSelection", func(t *testing.T) {
		require.NotNil(t, bundle.Scaler)
		assert.Len(t, bundle.Scaler.Mean, len(bundle.Features))
	})

	t.Run("MetricsReported", func(t *testing.T) {
		assert.Greater(t, bundle.Metrics.RMSE, 0.0)
		assert.Greater(t, bundle.Metrics.R2, 0.9)
	})

	t.Run("RawFieldsRecorded", func(t *testing.T) {
		assert.Equal(t, []string{"city"}, bundle.CategoricalFields)
		assert.Contains(t, bundle.NumericFields, "income")
		assert.NotContains(t, bundle.NumericFields, "flat")
	})
}

func TestRun_SpendingShape(t *testing.T) {
	table := syntheticTable(t, 100)

	cfg := pipeline.Config{
		Target:      "savings",
		Categorical: []string{"city"},
		Drop:        []string{"flat"},
	}

	bundle, err := pipeline.Run(table, cfg)
	require.NoError(t, err)

	// no scaling, no selection: every encoded column plus income, raw.
	assert.Nil(t, bundle.Scaler)
	assert.Equal(t, []string{"city_Delhi", "city_Mumbai", "city_Pune", "income"}, bundle.Features)
	require.NotNil(t, bundle.Encoder)
	assert.NotContains(t, bundle.Features, "flat")
}

func TestRun_Deterministic(t *testing.T) {
	table := syntheticTable(t, 120)

	cfg := pipeline.Config{
		Target:         "savings",
		Categorical:    []string{"city"},
		Scale:          true,
		SelectFeatures: true,
	}

	b1, err := pipeline.Run(table, cfg)
	require.NoError(t, err)

	b2, err := pipeline.Run(table, cfg)
	require.NoError(t, err)

	assert.Equal(t, b1.Features, b2.Features)
	assert.Equal(t, b1.Metrics, b2.Metrics)
	assert.Equal(t, b1.Forest, b2.Forest)
}

func TestRun_Errors(t *testing.T) {
	t.Run("MissingTarget", func(t *testing.T) {
		table := syntheticTable(t, 20)

		_, err := pipeline.Run(table, pipeline.Config{Target: "nope"})
		assert.ErrorContains(t, err, "no target column")
	})

	t.Run("TooFewRows", func(t *testing.T) {
		table, err := dataset.Read(strings.NewReader("a,savings\n1,2\n3,4\n"))
		require.NoError(t, err)

		_, err = pipeline.Run(table, pipeline.Config{Target: "savings"})
		assert.ErrorContains(t, err, "too small")
	})

	t.Run("NoFeatureColumns", func(t *testing.T) {
		table := syntheticTable(t, 20)

		_, err := pipeline.Run(table, pipeline.Config{
			Target: "savings",
			Drop:   []string{"income", "flat", "city"},
		})
		assert.ErrorContains(t, err, "no feature columns")
	})
}
