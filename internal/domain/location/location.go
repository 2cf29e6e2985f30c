package location

import (
	"slices"
	"strings"
	"unicode/utf16"

	"github.com/diegoclair/prep-rotation/internal/domain"
	"github.com/diegoclair/prep-rotation/internal/domain/entity"
)

// Tags splits a location field on " | " and trims each piece
func Tags(location string) []string {
	if location == "" {
		return nil
	}
	parts := strings.Split(location, domain.LocationSeparator)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// BuildLocationOptions returns the distinct location tags of all items, sorted
// by UTF-16 code units so the order matches what the browser page shows
func BuildLocationOptions(items []entity.Item) []string {
	set := make(map[string]struct{})
	for _, item := range items {
		for _, tag := range Tags(item.Location()) {
			set[tag] = struct{}{}
		}
	}

	options := make([]string, 0, len(set))
	for tag := range set {
		options = append(options, tag)
	}
	slices.SortFunc(options, compareUTF16)
	return options
}

func compareUTF16(a, b string) int {
	return slices.Compare(utf16.Encode([]rune(a)), utf16.Encode([]rune(b)))
}

// FilterByLocations keeps items tagged with at least one selected location.
// An empty selection is no constraint and returns items as given.
func FilterByLocations(items []entity.Item, selected []string) []entity.Item {
	if len(selected) == 0 {
		return items
	}

	result := []entity.Item{}
	for _, item := range items {
		if hasAnyTag(item, selected) {
			result = append(result, item)
		}
	}
	return result
}

func hasAnyTag(item entity.Item, selected []string) bool {
	for _, tag := range Tags(item.Location()) {
		if slices.Contains(selected, tag) {
			return true
		}
	}
	return false
}
