package recipetext

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/snapdish/snapdish/constants"
)

// ErrUnparseable is returned when a phrase does not match the duration or
// servings grammar. Callers drop the field rather than guessing.
var ErrUnparseable = errors.New("unparseable value")

var (
	reDurationTerm = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*([a-zA-Z]+)`)
	reServings     = regexp.MustCompile(`(\d+)(?:\s*(?:-|–|to)\s*(\d+))?`)
)

// ParseDurationMinutes parses phrases like "15 minutes", "1 hour 30 min",
// "1.5 hrs" against the fixed time-unit table and returns whole minutes.
// A phrase with no recognized number+unit pair fails with ErrUnparseable;
// a recognized number with an unknown unit also fails rather than guessing.
func ParseDurationMinutes(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrUnparseable
	}

	matches := reDurationTerm.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		// bare number: treat as minutes only when the whole string is numeric
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && n >= 0 {
			return n, nil
		}
		return 0, ErrUnparseable
	}

	total := 0.0
	matched := false
	for _, m := range matches {
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, ErrUnparseable
		}
		unit := strings.ToLower(m[2])
		mins, ok := constants.TimeUnitMinutes[unit]
		if !ok {
			return 0, ErrUnparseable
		}
		total += value * float64(mins)
		matched = true
	}
	if !matched || total < 0 {
		return 0, ErrUnparseable
	}
	return int(total + 0.5), nil
}

// ParseServings parses phrases like "4", "serves 4", "4-6 servings". Ranges
// resolve to their lower bound.
func ParseServings(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrUnparseable
	}

	m := reServings.FindStringSubmatch(s)
	if m == nil {
		return 0, ErrUnparseable
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return 0, ErrUnparseable
	}
	return n, nil
}
