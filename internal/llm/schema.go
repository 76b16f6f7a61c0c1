package llm

// BuildRecipeJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a generic map.
// We pass this to the model as a structured output constraint and also use it
// locally to validate the response.
func BuildRecipeJSONSchema(allowedCategories []string) map[string]any {
	ingredient := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"text":   map[string]any{"type": "string", "minLength": 1, "maxLength": 500},
			"amount": map[string]any{"type": "string"},
			"unit":   map[string]any{"type": "string"},
		},
		"required": []string{"text"},
	}
	direction := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"text":         map[string]any{"type": "string", "minLength": 1, "maxLength": 1000},
			"is_list_item": map[string]any{"type": "boolean"},
		},
		"required": []string{"text"},
	}

	props := map[string]any{
		"title":       map[string]any{"type": "string", "minLength": 1, "maxLength": 200},
		"description": map[string]any{"type": "string", "maxLength": 1000},
		"category":    map[string]any{"type": "string"},
		"prep_time":   map[string]any{"type": "string"}, // free text, e.g. "15 minutes"
		"cook_time":   map[string]any{"type": "string"},
		"servings":    map[string]any{"type": "string"},
		"source":      map[string]any{"type": "string", "maxLength": 200},
		"ingredients": map[string]any{"type": "array", "items": ingredient},
		"directions":  map[string]any{"type": "array", "items": direction},
		"tags":        map[string]any{"type": "array", "items": map[string]any{"type": "string", "minLength": 1}},
		"confidence":  map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
	}
	required := []string{"title"}

	// Constrain category if a taxonomy is provided.
	if len(allowedCategories) > 0 {
		props["category"] = map[string]any{
			"type": "string",
			"enum": allowedCategories,
		}
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}
