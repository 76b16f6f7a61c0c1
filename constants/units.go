package constants

import "strings"

// IngredientUnits is the canonical set of measurement units recognized when
// mapping structured ingredients. Keys are lowercase; values are the display form.
var IngredientUnits = map[string]string{
	"cup":         "cup",
	"cups":        "cup",
	"c":           "cup",
	"tablespoon":  "tbsp",
	"tablespoons": "tbsp",
	"tbsp":        "tbsp",
	"tbs":         "tbsp",
	"teaspoon":    "tsp",
	"teaspoons":   "tsp",
	"tsp":         "tsp",
	"ounce":       "oz",
	"ounces":      "oz",
	"oz":          "oz",
	"pound":       "lb",
	"pounds":      "lb",
	"lb":          "lb",
	"lbs":         "lb",
	"gram":        "g",
	"grams":       "g",
	"g":           "g",
	"kilogram":    "kg",
	"kilograms":   "kg",
	"kg":          "kg",
	"milliliter":  "ml",
	"milliliters": "ml",
	"ml":          "ml",
	"liter":       "l",
	"liters":      "l",
	"l":           "l",
	"pinch":       "pinch",
	"dash":        "dash",
	"clove":       "clove",
	"cloves":      "clove",
	"slice":       "slice",
	"slices":      "slice",
	"can":         "can",
	"cans":        "can",
	"stick":       "stick",
	"sticks":      "stick",
}

// CanonicalUnit maps a free-form unit word to its display form.
// Unknown units are returned trimmed but otherwise unchanged, with ok=false.
func CanonicalUnit(input string) (string, bool) {
	trimmed := strings.TrimSpace(input)
	if u, ok := IngredientUnits[strings.ToLower(trimmed)]; ok {
		return u, true
	}
	return trimmed, false
}

// TimeUnitMinutes maps time-unit words to their length in minutes. This is the
// unit table for the duration grammar; anything outside it is unparseable.
var TimeUnitMinutes = map[string]int{
	"minute":  1,
	"minutes": 1,
	"min":     1,
	"mins":    1,
	"m":       1,
	"hour":    60,
	"hours":   60,
	"hr":      60,
	"hrs":     60,
	"h":       60,
}
