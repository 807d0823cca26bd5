package cinelist_test

import (
	"testing"

	"github.com/mtoscano/cinelist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRuntime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  *int
	}{
		{"hours and minutes", "2h 22min", ptr(142)},
		{"minutes with unit", "142 min", ptr(142)},
		{"bare numeral", "142", ptr(142)},
		{"hours only when minutes pattern misses", "1h 30m", ptr(60)},
		{"compact form", "2h22min", ptr(142)},
		{"hours alone", "3h", ptr(180)},
		{"no digits", "runtime unknown", nil},
		{"empty", "", nil},
		{"zero total is unresolved", "0 min", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := cinelist.ParseRuntime(tt.input)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestParseFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  *float64
	}{
		{"plain decimal", "9.3", ptrF(9.3)},
		{"comma decimal separator", "8,7", ptrF(8.7)},
		{"embedded in text", "rated 7.5 overall", ptrF(7.5)},
		{"ratio takes leading number", "9.3/10", ptrF(9.3)},
		{"no numeral", "not rated", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := cinelist.ParseFloat(tt.input)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 0.0001)
		})
	}
}

func TestParseInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  *int
	}{
		{"grouped thousands", "1,600,000", ptr(1600000)},
		{"dot separators", "1.600.000", ptr(1600000)},
		{"digits with suffix", "250,000 votes", ptr(250000)},
		{"no digits", "none", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := cinelist.ParseInt(tt.input)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestParseYear(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  *int
	}{
		{"parenthesized", "(1999)", ptr(1999)},
		{"first match wins", "born 1965, released 1999", ptr(1965)},
		{"future range", "(2101)", ptr(2101)},
		{"below plausible range", "1899", nil},
		{"no year", "The Movie", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := cinelist.ParseYear(tt.input)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestParseAge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"age threshold", "16+", "16+"},
		{"threshold beats certificate", "18+ R", "18+"},
		{"certificate", "PG-13", "PG-13"},
		{"lowercase normalized", "tv-ma", "TV-MA"},
		{"embedded", "Rated R · 2h 22min", "R"},
		{"none", "unrated", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, cinelist.ParseAge(tt.input))
		})
	}
}

func ptr(v int) *int          { return &v }
func ptrF(v float64) *float64 { return &v }
