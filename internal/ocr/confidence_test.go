package ocr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeuristicConfidence(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float32
	}{
		{"no recipe artifacts", "short note", 0.2},
		{"heading only", "Ingredients", 0.4},
		{"heading and quantity", "Ingredients: 2 cups flour", 0.55},
		{"heading, quantity and time", "Ingredients: 2 cups flour, bake 30 minutes", 0.7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, heuristicConfidence(tt.text), 0.001)
		})
	}
}

func TestHeuristicConfidenceLengthBump(t *testing.T) {
	long := "Ingredients: 2 cups flour, bake 30 minutes. " + strings.Repeat("Stir well. ", 12)
	assert.InDelta(t, 0.8, heuristicConfidence(long), 0.001)
}

func TestHeuristicConfidenceCapped(t *testing.T) {
	text := "Ingredients directions serves: 2 cups flour 1 tbsp sugar bake 30 minutes " + strings.Repeat("x", 200)
	assert.LessOrEqual(t, heuristicConfidence(text), float32(1.0))
}
