package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"log/slog"
)

// NormalizeAndSanitizeJSON
// - Renames known synonyms (name -> title, instructions -> directions, ...)
// - Drops null/empty optionals
// - Coerces numeric -> string for time/servings fields
// - Flattens tag objects ({"name": "vegan"}) into plain strings
// - Removes unknown keys (strict additionalProperties = false friendliness)
// We only touch OPTIONALS; the title is left for schema validation to judge.
func NormalizeAndSanitizeJSON(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	dropped := make([]string, 0, 8)
	renamed := func(from, to string) {
		if v, ok := m[from]; ok {
			// don't overwrite existing value if already present
			if _, exists := m[to]; !exists {
				m[to] = v
			}
			delete(m, from)
			dropped = append(dropped, from+"->"+to)
		}
	}

	// 1) rename synonyms to our schema
	renamed("name", "title")
	renamed("recipe_name", "title")
	renamed("summary", "description")
	renamed("instructions", "directions")
	renamed("steps", "directions")
	renamed("method", "directions")
	renamed("prep", "prep_time")
	renamed("preparation_time", "prep_time")
	renamed("cook", "cook_time")
	renamed("cooking_time", "cook_time")
	renamed("yield", "servings")
	renamed("serves", "servings")

	// 2) drop null / "" optionals; coerce time/servings to strings
	textFields := []string{"prep_time", "cook_time", "servings", "description", "category", "source"}
	coerce := func(k string) {
		if v, ok := m[k]; ok {
			switch t := v.(type) {
			case float64:
				if t == float64(int64(t)) {
					m[k] = fmt.Sprintf("%d", int64(t))
				} else {
					m[k] = fmt.Sprintf("%g", t)
				}
			case string:
				s := strings.TrimSpace(t)
				if s == "" || strings.EqualFold(s, "null") {
					delete(m, k)
					dropped = append(dropped, k+"(empty)")
				} else {
					m[k] = s
				}
			case nil:
				delete(m, k)
				dropped = append(dropped, k+"(null)")
			default:
				// unexpected type -> drop
				delete(m, k)
				dropped = append(dropped, k+"(type)")
			}
		}
	}
	for _, k := range textFields {
		coerce(k)
	}

	// 3) flatten tags that came back as objects or mixed arrays
	if v, ok := m["tags"]; ok {
		switch t := v.(type) {
		case []any:
			tags := make([]any, 0, len(t))
			for _, item := range t {
				switch it := item.(type) {
				case string:
					if s := strings.TrimSpace(it); s != "" {
						tags = append(tags, s)
					}
				case map[string]any:
					if name, ok := it["name"].(string); ok && strings.TrimSpace(name) != "" {
						tags = append(tags, strings.TrimSpace(name))
					} else {
						dropped = append(dropped, "tags(item)")
					}
				default:
					dropped = append(dropped, "tags(item)")
				}
			}
			if len(tags) == 0 {
				delete(m, "tags")
				dropped = append(dropped, "tags(empty)")
			} else {
				m["tags"] = tags
			}
		case nil:
			delete(m, "tags")
			dropped = append(dropped, "tags(null)")
		default:
			delete(m, "tags")
			dropped = append(dropped, "tags(type)")
		}
	}

	// 4) ingredients/directions: drop null entries and entries without text
	pruneItems := func(key, textKey string) {
		v, ok := m[key].([]any)
		if !ok {
			if _, present := m[key]; present {
				delete(m, key)
				dropped = append(dropped, key+"(type)")
			}
			return
		}
		kept := make([]any, 0, len(v))
		for _, item := range v {
			obj, ok := item.(map[string]any)
			if !ok {
				// a bare string is salvageable: wrap it
				if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
					kept = append(kept, map[string]any{textKey: strings.TrimSpace(s)})
					continue
				}
				dropped = append(dropped, key+"(item)")
				continue
			}
			text, _ := obj[textKey].(string)
			if strings.TrimSpace(text) == "" {
				dropped = append(dropped, key+"(item)")
				continue
			}
			kept = append(kept, obj)
		}
		if len(kept) == 0 {
			delete(m, key)
		} else {
			m[key] = kept
		}
	}
	pruneItems("ingredients", "text")
	pruneItems("directions", "text")

	// 5) remove unknown keys (everything not in the schema set below)
	allowed := map[string]struct{}{
		"title": {}, "description": {}, "category": {}, "prep_time": {},
		"cook_time": {}, "servings": {}, "source": {}, "ingredients": {},
		"directions": {}, "tags": {},
		"confidence": {}, // harmless if the model added it
	}
	for k := range m {
		if _, ok := allowed[k]; !ok {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
		}
	}

	if len(dropped) > 0 {
		logger.Debug("llm.sanitize.applied", "dropped", dropped)
	}

	b, err := json.Marshal(m)
	if err != nil {
		return nil, nil, err
	}
	return b, dropped, nil
}
