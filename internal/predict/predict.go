// Package predict serves point estimates from trained artifacts and
// derives the savings tier and short-range forecast shown to users.
package predict

import (
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/finpilot/internal/ml/artifact"
)

// ErrObservationSchema means the observation does not carry exactly the
// fields the model was trained on. Fields are never coerced or defaulted.
var ErrObservationSchema = errors.New("observation does not match model schema")

// Observation is one raw input row keyed by the original dataset column
// names, before encoding or scaling.
type Observation struct {
	Numeric     map[string]float64
	Categorical map[string]string
}

// Predictor answers predictions from a single loaded artifact. The bundle
// is read-only after construction, so one Predictor serves concurrent
// requests.
type Predictor struct {
	bundle *artifact.Bundle
}

// Open loads the artifact at path. Call once at startup.
func Open(path string) (*Predictor, error) {
	bundle, err := artifact.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}

	return &Predictor{bundle: bundle}, nil
}

// NewPredictor wraps an already loaded bundle.
func NewPredictor(bundle *artifact.Bundle) *Predictor {
	return &Predictor{bundle: bundle}
}

// Target returns the name of the value the model predicts.
func (p *Predictor) Target() string {
	return p.bundle.Target
}

// Metrics returns the evaluation recorded when the model was trained.
func (p *Predictor) Metrics() artifact.Metrics {
	return p.bundle.Metrics
}

// Predict validates the observation against the model's raw schema,
// applies the recorded encoder and scaler and returns the point estimate.
func (p *Predictor) Predict(obs Observation) (float64, error) {
	if err := p.checkSchema(obs); err != nil {
		return 0, err
	}

	values := make(map[string]float64, len(p.bundle.Features))
	for name, v := range obs.Numeric {
		values[name] = v
	}

	if p.bundle.Encoder != nil {
		encoded := p.bundle.Encoder.Encode(obs.Categorical)
		for i, name := range p.bundle.Encoder.FeatureNames() {
			values[name] = encoded[i]
		}
	}

	row := make([]float64, len(p.bundle.Features))
	for i, name := range p.bundle.Features {
		row[i] = values[name]
	}

	if p.bundle.Scaler != nil {
		scaled, err := p.bundle.Scaler.TransformRow(row)
		if err != nil {
			return 0, fmt.Errorf("scale observation: %w", err)
		}

		row = scaled
	}

	return p.bundle.Forest.Predict(row)
}

// checkSchema requires the observation to carry exactly the recorded raw
// fields: nothing missing, nothing extra.
func (p *Predictor) checkSchema(obs Observation) error {
	if len(obs.Numeric) != len(p.bundle.NumericFields) {
		return fmt.Errorf("%w: want %d numeric fields, got %d",
			ErrObservationSchema, len(p.bundle.NumericFields), len(obs.Numeric))
	}

	for _, name := range p.bundle.NumericFields {
		if _, ok := obs.Numeric[name]; !ok {
			return fmt.Errorf("%w: missing numeric field %q", ErrObservationSchema, name)
		}
	}

	if len(obs.Categorical) != len(p.bundle.CategoricalFields) {
		return fmt.Errorf("%w: want %d categorical fields, got %d",
			ErrObservationSchema, len(p.bundle.CategoricalFields), len(obs.Categorical))
	}

	for _, name := range p.bundle.CategoricalFields {
		if _, ok := obs.Categorical[name]; !ok {
			return fmt.Errorf("%w: missing categorical field %q", ErrObservationSchema, name)
		}
	}

	return nil
}
