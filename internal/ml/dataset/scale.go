package dataset

import (
	"fmt"
	"math"
)

// StandardScaler standardizes features to zero mean and unit variance.
// It must be fit on the training split only so that test rows carry no
// information into the fitted parameters.
type StandardScaler struct {
	Mean []float64 `json:"mean"`
	Std  []float64 `json:"std"`
}

// FitScaler computes per-column mean and population standard deviation.
// A constant column gets std 1 so transforming it yields zeros.
func FitScaler(x [][]float64) *StandardScaler {
	if len(x) == 0 {
		return &StandardScaler{}
	}

	cols := len(x[0])
	s := &StandardScaler{
		Mean: make([]float64, cols),
		Std:  make([]float64, cols),
	}

	for c := 0; c < cols; c++ {
		var sum float64
		for _, row := range x {
			sum += row[c]
		}

		mean := sum / float64(len(x))

		var sq float64
		for _, row := range x {
			d := row[c] - mean
			sq += d * d
		}

		std := math.Sqrt(sq / float64(len(x)))
		if std == 0 {
			std = 1
		}

		s.Mean[c] = mean
		s.Std[c] = std
	}

	return s
}

// Transform standardizes a matrix without mutating the input.
func (s *StandardScaler) Transform(x [][]float64) ([][]float64, error) {
	out := make([][]float64, len(x))
	for r, row := range x {
		scaled, err := s.TransformRow(row)
		if err != nil {
			return nil, err
		}

		out[r] = scaled
	}

	return out, nil
}

// TransformRow standardizes a single observation.
func (s *StandardScaler) TransformRow(row []float64) ([]float64, error) {
	if len(row) != len(s.Mean) {
		return nil, fmt.Errorf("scaler fitted on %d features, got %d", len(s.Mean), len(row))
	}

	out := make([]float64, len(row))
	for c, v := range row {
		out[c] = (v - s.Mean[c]) / s.Std[c]
	}

	return out, nil
}
