// Package artifact defines the persisted form of a trained model: the
// forest together with everything needed to reproduce its input columns
// at inference time.
package artifact

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MrJamesThe3rd/finpilot/internal/ml/dataset"
	"github.com/MrJamesThe3rd/finpilot/internal/ml/forest"
)

// SchemaVersion is bumped whenever the bundle layout changes in a way an
// older reader cannot interpret.
const SchemaVersion = 1

// ErrSchemaMismatch means the file on disk does not describe a bundle this
// build can serve predictions from.
var ErrSchemaMismatch = errors.New("artifact schema mismatch")

// Metrics are the held-out evaluation results recorded at train time.
// They are informational; training persists the artifact regardless.
type Metrics struct {
	RMSE float64 `json:"rmse"`
	R2   float64 `json:"r2"`
}

// Bundle is the complete model artifact. Features lists the model's input
// columns in the exact order the forest was trained on; the scaler, when
// present, was fitted on those same columns in that order.
type Bundle struct {
	SchemaVersion     int                     `json:"schema_version"`
	Target            string                  `json:"target"`
	NumericFields     []string                `json:"numeric_fields"`
	CategoricalFields []string                `json:"categorical_fields"`
	Encoder           *dataset.OneHotEncoder  `json:"encoder,omitempty"`
	Scaler            *dataset.StandardScaler `json:"scaler,omitempty"`
	Features          []string                `json:"features"`
	Forest            *forest.Regressor       `json:"forest"`
	Metrics           Metrics                 `json:"metrics"`
	TrainedAt         time.Time               `json:"trained_at"`
}

// Save writes the bundle as JSON. The write is all-or-nothing: it lands in
// a temp file first and is renamed into place, so a crashed run never
// leaves a truncated artifact behind.
func Save(path string, b *Bundle) error {
	raw, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("encode artifact: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create artifact dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp artifact: %w", err)
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return fmt.Errorf("write artifact: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("close artifact: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("rename artifact: %w", err)
	}

	return nil
}

// Load reads a bundle and validates its schema before anyone predicts
// with it.
func Load(path string) (*Bundle, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}

	var b Bundle
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}

	if b.SchemaVersion != SchemaVersion {
		return nil, fmt.Errorf("%w: version %d, want %d", ErrSchemaMismatch, b.SchemaVersion, SchemaVersion)
	}

	if b.Forest == nil || len(b.Features) == 0 {
		return nil, fmt.Errorf("%w: missing model", ErrSchemaMismatch)
	}

	if b.Forest.NumFeatures != len(b.Features) {
		return nil, fmt.Errorf("%w: forest expects %d features, bundle lists %d",
			ErrSchemaMismatch, b.Forest.NumFeatures, len(b.Features))
	}

	if b.Scaler != nil && len(b.Scaler.Mean) != len(b.Features) {
		return nil, fmt.Errorf("%w: scaler fitted on %d features, bundle lists %d",
			ErrSchemaMismatch, len(b.Scaler.Mean), len(b.Features))
	}

	return &b, nil
}
