package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapdish/snapdish/constants"
)

func TestSchemaAcceptsWellFormedResponse(t *testing.T) {
	schema := BuildRecipeJSONSchema(constants.AsStringSlice())
	data := []byte(`{
		"title": "Chili",
		"category": "Dinner",
		"prep_time": "15 minutes",
		"ingredients": [{"text": "beans", "amount": "2", "unit": "cans"}],
		"directions": [{"text": "Simmer.", "is_list_item": true}],
		"tags": ["spicy"]
	}`)
	require.NoError(t, ValidateJSONAgainstSchema(schema, data))
}

func TestSchemaRejections(t *testing.T) {
	schema := BuildRecipeJSONSchema(constants.AsStringSlice())
	tests := []struct {
		name string
		data string
	}{
		{"missing title", `{"category":"Dinner"}`},
		{"empty title", `{"title":""}`},
		{"unknown category", `{"title":"X","category":"Weird"}`},
		{"unknown key", `{"title":"X","nutrition":{}}`},
		{"ingredient without text", `{"title":"X","ingredients":[{"amount":"2"}]}`},
		{"numeric servings", `{"title":"X","servings":4}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(tt.data)))
		})
	}
}

func TestSchemaSanitizeThenValidate(t *testing.T) {
	// the lenient path: a messy-but-salvageable response passes after sanitize
	schema := BuildRecipeJSONSchema(constants.AsStringSlice())
	raw := []byte(`{"name":"Chili","servings":4,"tags":[{"name":"spicy"}],"junk":true}`)

	require.Error(t, ValidateJSONAgainstSchema(schema, raw), "raw response is rejected by the strict pass")

	cleaned, _, err := NormalizeAndSanitizeJSON(raw, nil)
	require.NoError(t, err)
	assert.NoError(t, ValidateJSONAgainstSchema(schema, cleaned))
}
