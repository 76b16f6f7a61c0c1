package recipetext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRecognizesRecipeText(t *testing.T) {
	v := NewValidator(nil)

	text := `Grandma's Apple Pie
Ingredients:
2 cups flour
1 tsp cinnamon
Directions:
Preheat the oven to 375F and bake for 45 minutes.`

	ok, err := v.Validate(text)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestValidateRejectsNonRecipeText(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"whitespace only", "   \n\t  "},
		{"parking ticket", "NOTICE OF VIOLATION\nVehicle: ABC-123\nFine: $45.00\nDue date: 2026-09-01"},
		{"shopping note", "call dentist\npick up dry cleaning\nbuy stamps"},
		{"two keyword hits only", "stir the pot and mix well"},
	}
	v := NewValidator(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := v.Validate(tt.text)
			require.NoError(t, err, "ambiguity is a negative classification, not an error")
			assert.False(t, ok)
		})
	}
}

func TestValidateCaseInsensitive(t *testing.T) {
	v := NewValidator(nil)
	ok, err := v.Validate("INGREDIENTS: FLOUR\nPREHEAT THE OVEN\nBAKE 20 MINUTES")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestValidateCountsRepeatedKeywords(t *testing.T) {
	// three hits from one repeated keyword are enough
	v := NewValidator(nil)
	ok, err := v.Validate("stir, then stir again, then stir once more")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestValidateThresholdOverride(t *testing.T) {
	v := NewValidator(nil, WithMinKeywordHits(5))
	ok, err := v.Validate("mix and stir and bake") // 3 hits
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValidateMinLines(t *testing.T) {
	v := NewValidator(nil, WithMinLines(3))
	ok, err := v.Validate("mix stir bake simmer boil on one line")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKeywordHits(t *testing.T) {
	assert.Zero(t, KeywordHits("completely unrelated text"))
	assert.Equal(t, 2, KeywordHits("mix then stir"))
}

func TestKeywordHitsMatchesWholeWordsOnly(t *testing.T) {
	// one plural token scores once, not once per vocabulary entry it contains
	assert.Equal(t, 1, KeywordHits("Ingredients"))
	assert.Equal(t, 2, KeywordHits("cup and cups"))
	// substrings inside larger words are not hits
	assert.Zero(t, KeywordHits("the mixture and the fixture"))
	assert.Zero(t, KeywordHits("stirring and simmering"))
}

func TestValidateNotInflatedBySubstrings(t *testing.T) {
	v := NewValidator(nil)
	// "Ingredients" + "mixture" would reach the threshold under substring
	// counting; as whole words they total a single hit
	ok, err := v.Validate("Ingredients for the mixture are listed elsewhere")
	require.NoError(t, err)
	assert.False(t, ok)
}
