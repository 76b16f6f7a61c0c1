package ocr

import (
	"regexp"
	"strings"
)

var (
	reQuantity = regexp.MustCompile(`\b\d+([./]\d+)?\s*(cups?|tbsp|tsp|tablespoons?|teaspoons?|oz|ounces?|g|grams?|lbs?|pounds?|ml|liters?)\b`)
	reTime     = regexp.MustCompile(`\b\d+\s*(minutes?|mins?|hours?|hrs?)\b`)
	reHeading  = regexp.MustCompile(`(?i)\b(ingredients?|directions?|instructions?|method|serves|servings|yield)\b`)
)

func hasQuantityPattern(s string) bool { return reQuantity.MatchString(s) }
func hasTimePattern(s string) bool     { return reTime.MatchString(s) }
func hasHeadingPattern(s string) bool  { return reHeading.MatchString(s) }

// naive heuristic confidence based on decoded text characteristics
func heuristicConfidence(txt string) float32 {
	// boost if we see common recipe artifacts: section headings,
	// measured quantities, timing phrases. Each adds a fixed bump.
	txtL := strings.ToLower(txt)
	score := float32(0.2) // base
	if hasHeadingPattern(txtL) {
		score += 0.2
	}
	if hasQuantityPattern(txtL) {
		score += 0.15
	}
	if hasTimePattern(txtL) {
		score += 0.15
	}
	if len(txt) > 120 {
		score += 0.1
	} // enough content
	if score > 1.0 {
		score = 1.0
	}
	return score
}
