package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		in    string
		want  Category
		known bool
	}{
		{"dinner", Dinner, true},
		{"Dinner", Dinner, true},
		{"  DESSERT  ", Dessert, true},
		{"entree", Dinner, true},
		{"main course", Dinner, true},
		{"drinks", Beverage, true},
		{"cookies", Baking, true},
		{"brunch", Breakfast, true},
		{"molecular gastronomy", Other, false},
		{"", Other, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, known := Canonicalize(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.known, known)
		})
	}
}

func TestAsStringSliceIncludesEveryCategory(t *testing.T) {
	got := AsStringSlice()
	assert.Len(t, got, len(allCategories))
	assert.Contains(t, got, "Other")
	assert.Contains(t, got, "Appetizer")
}

func TestCanonicalUnit(t *testing.T) {
	tests := []struct {
		in    string
		want  string
		known bool
	}{
		{"cups", "cup", true},
		{"Tablespoons", "tbsp", true},
		{"LB", "lb", true},
		{" grams ", "g", true},
		{"smidgen", "smidgen", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, known := CanonicalUnit(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.known, known)
		})
	}
}
