package constants

import (
	"strings"
)

type Category string

const (
	Appetizer Category = "Appetizer"
	Breakfast Category = "Breakfast"
	Lunch     Category = "Lunch"
	Dinner    Category = "Dinner"
	Dessert   Category = "Dessert"
	Beverage  Category = "Beverage"
	Salad     Category = "Salad"
	Soup      Category = "Soup"
	Side      Category = "Side"
	Snack     Category = "Snack"
	Baking    Category = "Baking"
	Other     Category = "Other"
)

var allCategories = []Category{
	Appetizer,
	Breakfast,
	Lunch,
	Dinner,
	Dessert,
	Beverage,
	Salad,
	Soup,
	Side,
	Snack,
	Baking,
	Other,
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// Canonicalize maps a free-form category label onto the fixed taxonomy.
// Unknown labels fall back to Other with ok=false; they never fail a parse.
func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return Other, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]Category{
		"starter":       Appetizer,
		"starters":      Appetizer,
		"hors d'oeuvre": Appetizer,
		"brunch":        Breakfast,
		"main":          Dinner,
		"main course":   Dinner,
		"main dish":     Dinner,
		"entree":        Dinner,
		"supper":        Dinner,
		"sweets":        Dessert,
		"pudding":       Dessert,
		"drink":         Beverage,
		"drinks":        Beverage,
		"cocktail":      Beverage,
		"smoothie":      Beverage,
		"side dish":     Side,
		"sides":         Side,
		"bread":         Baking,
		"cake":          Baking,
		"cookies":       Baking,
		"pastry":        Baking,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	// check if it matches any category string
	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return Other, false
}
