package dataset

import (
	"fmt"
	"sort"
)

// OneHotEncoder expands categorical fields into binary indicator columns.
// Categories are recorded at fit time; a value unseen during fitting encodes
// as all-zero indicators rather than an error, matching how the trained
// models tolerate new categories at inference.
type OneHotEncoder struct {
	Fields     []string            `json:"fields"`
	Categories map[string][]string `json:"categories"`
}

// FitOneHot records the sorted distinct categories of each field.
func FitOneHot(t *Table, fields []string) (*OneHotEncoder, error) {
	enc := &OneHotEncoder{
		Fields:     append([]string(nil), fields...),
		Categories: make(map[string][]string, len(fields)),
	}

	for _, field := range fields {
		values, err := t.Strings(field)
		if err != nil {
			return nil, fmt.Errorf("fit one-hot: %w", err)
		}

		seen := make(map[string]struct{})
		for _, v := range values {
			seen[v] = struct{}{}
		}

		cats := make([]string, 0, len(seen))
		for v := range seen {
			cats = append(cats, v)
		}

		sort.Strings(cats)

		enc.Categories[field] = cats
	}

	return enc, nil
}

// FeatureNames lists the indicator columns in encoding order, named
// "field_category".
func (e *OneHotEncoder) FeatureNames() []string {
	var names []string
	for _, field := range e.Fields {
		for _, cat := range e.Categories[field] {
			names = append(names, field+"_"+cat)
		}
	}

	return names
}

// Encode turns one observation's categorical values into the indicator
// vector. Unknown categories produce all zeros for that field.
func (e *OneHotEncoder) Encode(values map[string]string) []float64 {
	var out []float64
	for _, field := range e.Fields {
		v := values[field]
		for _, cat := range e.Categories[field] {
			if v == cat {
				out = append(out, 1)
			} else {
				out = append(out, 0)
			}
		}
	}

	return out
}

// EncodeTable encodes every row of the table's categorical fields.
func (e *OneHotEncoder) EncodeTable(t *Table) ([][]float64, error) {
	columns := make(map[string][]string, len(e.Fields))
	for _, field := range e.Fields {
		values, err := t.Strings(field)
		if err != nil {
			return nil, fmt.Errorf("encode table: %w", err)
		}

		columns[field] = values
	}

	out := make([][]float64, t.Len())
	row := make(map[string]string, len(e.Fields))

	for r := range out {
		for _, field := range e.Fields {
			row[field] = columns[field][r]
		}

		out[r] = e.Encode(row)
	}

	return out, nil
}
