package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sanitizeToMap(t *testing.T, raw string) map[string]any {
	t.Helper()
	out, _, err := NormalizeAndSanitizeJSON([]byte(raw), nil)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	return m
}

func TestSanitizeRenamesSynonyms(t *testing.T) {
	m := sanitizeToMap(t, `{"name":"Chili","instructions":[{"text":"Simmer."}],"yield":"4"}`)
	assert.Equal(t, "Chili", m["title"])
	assert.NotNil(t, m["directions"])
	assert.Equal(t, "4", m["servings"])
	assert.NotContains(t, m, "name")
	assert.NotContains(t, m, "instructions")
	assert.NotContains(t, m, "yield")
}

func TestSanitizeDoesNotOverwriteExisting(t *testing.T) {
	m := sanitizeToMap(t, `{"title":"Real Title","name":"Synonym Title"}`)
	assert.Equal(t, "Real Title", m["title"])
}

func TestSanitizeDropsNullAndEmptyOptionals(t *testing.T) {
	m := sanitizeToMap(t, `{"title":"Soup","description":null,"category":"","source":"  "}`)
	assert.NotContains(t, m, "description")
	assert.NotContains(t, m, "category")
	assert.NotContains(t, m, "source")
}

func TestSanitizeCoercesNumericTimes(t *testing.T) {
	m := sanitizeToMap(t, `{"title":"Stew","prep_time":15,"cook_time":1.5,"servings":4}`)
	assert.Equal(t, "15", m["prep_time"])
	assert.Equal(t, "1.5", m["cook_time"])
	assert.Equal(t, "4", m["servings"])
}

func TestSanitizeFlattensTagObjects(t *testing.T) {
	m := sanitizeToMap(t, `{"title":"Salad","tags":[{"name":"vegan"},"fresh",{"color":"green"},null]}`)
	tags, ok := m["tags"].([]any)
	require.True(t, ok)
	assert.Equal(t, []any{"vegan", "fresh"}, tags)
}

func TestSanitizePrunesItemsWithoutText(t *testing.T) {
	m := sanitizeToMap(t, `{"title":"Pie","ingredients":[{"text":"apples"},{"text":"  "},{"amount":"2"},"cinnamon"],"directions":[{"text":""}]}`)
	ings, ok := m["ingredients"].([]any)
	require.True(t, ok)
	require.Len(t, ings, 2)
	assert.NotContains(t, m, "directions", "a list with no valid items is removed")
}

func TestSanitizeRemovesUnknownKeys(t *testing.T) {
	m := sanitizeToMap(t, `{"title":"Tea","nutrition":{"calories":2},"notes":"n/a"}`)
	assert.NotContains(t, m, "nutrition")
	assert.NotContains(t, m, "notes")
	assert.Equal(t, "Tea", m["title"])
}

func TestSanitizeReportsDrops(t *testing.T) {
	_, dropped, err := NormalizeAndSanitizeJSON([]byte(`{"name":"X","junk":1}`), nil)
	require.NoError(t, err)
	assert.Contains(t, dropped, "name->title")
	assert.Contains(t, dropped, "junk(unknown)")
}

func TestSanitizeRejectsInvalidJSON(t *testing.T) {
	_, _, err := NormalizeAndSanitizeJSON([]byte(`{"title":`), nil)
	require.Error(t, err)
}
