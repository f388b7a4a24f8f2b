package month_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/finpilot/internal/month"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    month.Month
		wantErr bool
	}{
		{name: "Valid", input: "2024-03", want: "2024-03"},
		{name: "December", input: "2023-12", want: "2023-12"},
		{name: "MissingMonth", input: "2024", wantErr: true},
		{name: "FullDate", input: "2024-03-01", wantErr: true},
		{name: "Garbage", input: "march", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := month.Parse(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRange(t *testing.T) {
	m := month.Month("2024-02")
	start, end := m.Range()

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestOf(t *testing.T) {
	ts := time.Date(2024, 7, 15, 13, 45, 0, 0, time.UTC)
	assert.Equal(t, month.Month("2024-07"), month.Of(ts))
}

func TestPrev(t *testing.T) {
	assert.Equal(t, month.Month("2023-12"), month.Month("2024-01").Prev())
	assert.Equal(t, month.Month("2024-06"), month.Month("2024-07").Prev())
}

func TestYear(t *testing.T) {
	assert.Equal(t, 2024, month.Month("2024-11").Year())
}
