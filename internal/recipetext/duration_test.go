package recipetext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDurationMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"15 minutes", 15},
		{"15 min", 15},
		{"15m", 15},
		{"1 hour", 60},
		{"2 hours", 120},
		{"1 hr", 60},
		{"1.5 hours", 90},
		{"1 hour 30 minutes", 90},
		{"1h 15m", 75},
		{"45", 45},
		{"0", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDurationMinutes(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDurationMinutesUnparseable(t *testing.T) {
	for _, in := range []string{"", "   ", "a while", "3 fortnights", "soon"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseDurationMinutes(in)
			assert.ErrorIs(t, err, ErrUnparseable)
		})
	}
}

func TestParseServings(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"4", 4},
		{"serves 4", 4},
		{"4-6", 4},
		{"4 to 6", 4},
		{"makes 12 muffins", 12},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseServings(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseServingsUnparseable(t *testing.T) {
	for _, in := range []string{"", "a crowd", "several"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseServings(in)
			assert.ErrorIs(t, err, ErrUnparseable)
		})
	}
}
