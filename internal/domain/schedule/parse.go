package schedule

import (
	"strings"
	"unicode"

	"github.com/diegoclair/prep-rotation/internal/domain"
	"github.com/diegoclair/prep-rotation/internal/domain/entity"
)

// ParseUserInput reads a loosely typed week/day such as "2 fri" or "tues".
//
// Tokens are scanned left to right and the last match wins per category.
// It returns nil when text is empty, when no token is recognised, or when the
// result (after falling back to fallbackWeek/fallbackDay) is not a valid
// Mon-Fri slot in week 1 or 2. A nil result means "keep the current selection".
func ParseUserInput(text string, fallbackWeek int, fallbackDay string) *entity.Selection {
	if text == "" {
		return nil
	}

	var (
		week    int
		day     string
		matched bool
	)
	for _, token := range tokenize(text) {
		switch token {
		case "1":
			week, matched = 1, true
			continue
		case "2":
			week, matched = 2, true
			continue
		}
		if code, ok := domain.AliasFor(token); ok {
			day, matched = code, true
		}
	}

	if !matched {
		return nil
	}
	if week == 0 {
		week = fallbackWeek
	}
	if day == "" {
		day = fallbackDay
	}

	if day == "" || (week != 1 && week != 2) {
		return nil
	}
	return &entity.Selection{Week: week, Day: day}
}

// tokenize splits lowercased text into maximal runs of letters and digits
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
