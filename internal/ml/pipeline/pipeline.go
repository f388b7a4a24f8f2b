// Package pipeline runs the end-to-end training flow: encode, split,
// scale, rank features by importance, retrain on the survivors and wrap
// the result in a persistable artifact.
package pipeline

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/MrJamesThe3rd/finpilot/internal/ml/artifact"
	"github.com/MrJamesThe3rd/finpilot/internal/ml/dataset"
	"github.com/MrJamesThe3rd/finpilot/internal/ml/forest"
)

// Config shapes one training run. The savings model scales and selects
// features; the spending model only one-hot encodes and trains on
// everything. Identical config and input always produce the same artifact
// apart from the timestamp.
type Config struct {
	Target      string
	Categorical []string
	Drop        []string

	Scale               bool
	SelectFeatures      bool
	ImportanceThreshold float64

	TestFraction float64
	Seed         int64
	Forest       forest.Config
}

func (c Config) withDefaults() Config {
	if c.TestFraction <= 0 {
		c.TestFraction = 0.2
	}

	if c.Seed == 0 {
		c.Seed = 42
	}

	if c.Forest.Seed == 0 {
		c.Forest.Seed = c.Seed
	}

	if c.SelectFeatures && c.ImportanceThreshold <= 0 {
		c.ImportanceThreshold = 0.01
	}

	return c
}

// Run trains a model on the table and returns the finished artifact.
func Run(t *dataset.Table, cfg Config) (*artifact.Bundle, error) {
	cfg = cfg.withDefaults()

	if !t.Has(cfg.Target) {
		return nil, fmt.Errorf("dataset has no target column %q", cfg.Target)
	}

	y, err := t.Floats(cfg.Target)
	if err != nil {
		return nil, fmt.Errorf("target: %w", err)
	}

	if len(y) < 5 {
		return nil, errors.New("dataset too small to split")
	}

	numeric := numericColumns(t, cfg)

	var encoder *dataset.OneHotEncoder
	names := []string{}
	rows := make([][]float64, t.Len())

	if len(cfg.Categorical) > 0 {
		encoder, err = dataset.FitOneHot(t, cfg.Categorical)
		if err != nil {
			return nil, err
		}

		encoded, err := encoder.EncodeTable(t)
		if err != nil {
			return nil, err
		}

		names = append(names, encoder.FeatureNames()...)
		for r := range rows {
			rows[r] = append(rows[r], encoded[r]...)
		}
	}

	for _, col := range numeric {
		values, err := t.Floats(col)
		if err != nil {
			return nil, fmt.Errorf("feature: %w", err)
		}

		names = append(names, col)
		for r := range rows {
			rows[r] = append(rows[r], values[r])
		}
	}

	if len(names) == 0 {
		return nil, errors.New("no feature columns")
	}

	trainIdx, testIdx := dataset.Split(t.Len(), cfg.TestFraction, cfg.Seed)

	trainX := dataset.Take(rows, trainIdx)
	testX := dataset.Take(rows, testIdx)
	trainY := dataset.TakeVec(y, trainIdx)
	testY := dataset.TakeVec(y, testIdx)

	scaler, trainIn, testIn, err := maybeScale(cfg, trainX, testX)
	if err != nil {
		return nil, err
	}

	model, err := forest.Train(trainIn, trainY, cfg.Forest)
	if err != nil {
		return nil, fmt.Errorf("train: %w", err)
	}

	features := names

	if cfg.SelectFeatures {
		selected := selectFeatures(names, model.FeatureImportances(), cfg.ImportanceThreshold)
		if len(selected) == 0 {
			return nil, fmt.Errorf("no feature reached importance %v", cfg.ImportanceThreshold)
		}

		trainX = pick(trainX, names, selected)
		testX = pick(testX, names, selected)
		features = selected

		scaler, trainIn, testIn, err = maybeScale(cfg, trainX, testX)
		if err != nil {
			return nil, err
		}

		model, err = forest.Train(trainIn, trainY, cfg.Forest)
		if err != nil {
			return nil, fmt.Errorf("retrain: %w", err)
		}
	}

	metrics, err := evaluate(model, testIn, testY)
	if err != nil {
		return nil, err
	}

	return &artifact.Bundle{
		SchemaVersion:     artifact.SchemaVersion,
		Target:            cfg.Target,
		NumericFields:     rawNumeric(numeric, features),
		CategoricalFields: append([]string(nil), cfg.Categorical...),
		Encoder:           encoder,
		Scaler:            scaler,
		Features:          features,
		Forest:            model,
		Metrics:           metrics,
		TrainedAt:         time.Now().UTC(),
	}, nil
}

func numericColumns(t *dataset.Table, cfg Config) []string {
	skip := make(map[string]bool, len(cfg.Categorical)+len(cfg.Drop)+1)
	skip[cfg.Target] = true

	for _, c := range cfg.Categorical {
		skip[c] = true
	}

	for _, c := range cfg.Drop {
		skip[c] = true
	}

	var out []string
	for _, col := range t.Columns() {
		if !skip[col] {
			out = append(out, col)
		}
	}

	return out
}

func maybeScale(cfg Config, trainX, testX [][]float64) (*dataset.StandardScaler, [][]float64, [][]float64, error) {
	if !cfg.Scale {
		return nil, trainX, testX, nil
	}

	scaler := dataset.FitScaler(trainX)

	trainS, err := scaler.Transform(trainX)
	if err != nil {
		return nil, nil, nil, err
	}

	testS, err := scaler.Transform(testX)
	if err != nil {
		return nil, nil, nil, err
	}

	return scaler, trainS, testS, nil
}

// selectFeatures keeps columns at or above the threshold, ordered by
// descending importance.
func selectFeatures(names []string, importances []float64, threshold float64) []string {
	type ranked struct {
		name string
		imp  float64
	}

	var kept []ranked
	for i, imp := range importances {
		if imp >= threshold {
			kept = append(kept, ranked{name: names[i], imp: imp})
		}
	}

	sort.SliceStable(kept, func(a, b int) bool {
		return kept[a].imp > kept[b].imp
	})

	out := make([]string, len(kept))
	for i, k := range kept {
		out[i] = k.name
	}

	return out
}

// pick reorders each row down to the selected named columns.
func pick(x [][]float64, names, selected []string) [][]float64 {
	idx := make([]int, len(selected))
	for i, name := range selected {
		idx[i] = slices.Index(names, name)
	}

	out := make([][]float64, len(x))
	for r, row := range x {
		picked := make([]float64, len(idx))
		for i, c := range idx {
			picked[i] = row[c]
		}

		out[r] = picked
	}

	return out
}

func evaluate(model *forest.Regressor, testX [][]float64, testY []float64) (artifact.Metrics, error) {
	preds := make([]float64, len(testX))
	for i, row := range testX {
		p, err := model.Predict(row)
		if err != nil {
			return artifact.Metrics{}, fmt.Errorf("evaluate: %w", err)
		}

		preds[i] = p
	}

	var sq float64
	for i, p := range preds {
		d := p - testY[i]
		sq += d * d
	}

	return artifact.Metrics{
		RMSE: math.Sqrt(sq / float64(len(preds))),
		R2:   stat.RSquaredFrom(preds, testY, nil),
	}, nil
}

// rawNumeric keeps the numeric fields that survived selection. Categorical
// fields stay whole in the bundle because the encoder still needs every raw
// value even when some of its indicator columns were dropped.
func rawNumeric(numeric, features []string) []string {
	var out []string
	for _, col := range numeric {
		if slices.Contains(features, col) {
			out = append(out, col)
		}
	}

	return out
}
