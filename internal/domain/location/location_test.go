package location

import (
	"testing"

	"github.com/diegoclair/prep-rotation/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestTags(t *testing.T) {
	assert.Nil(t, Tags(""))
	assert.Equal(t, []string{"Room A"}, Tags("Room A"))
	assert.Equal(t, []string{"Room A", "Room B"}, Tags(" Room A | Room B "))
	assert.Equal(t, []string{"A|B"}, Tags("A|B"), "separator needs surrounding spaces")
	assert.Equal(t, []string{"A", ""}, Tags("A | "))
}

func TestBuildLocationOptions(t *testing.T) {
	tests := []struct {
		name  string
		items []entity.Item
		want  []string
	}{
		{
			name: "Should dedupe and sort",
			items: []entity.Item{
				{"location": "Room B | Room A"},
				{"location": "Room B"},
			},
			want: []string{"Room A", "Room B"},
		},
		{
			name: "Should skip items without a location",
			items: []entity.Item{
				{"name": "no location"},
				{"location": ""},
				{"location": 42},
				{"location": "Lab"},
			},
			want: []string{"Lab"},
		},
		{
			name: "Should order by UTF-16 code units",
			items: []entity.Item{
				{"location": "\uFF21 Hall | \U0001F600 Room"},
			},
			want: []string{"\U0001F600 Room", "\uFF21 Hall"},
		},
		{
			name:  "Should return an empty list for no items",
			items: nil,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildLocationOptions(tt.items))
		})
	}
}

func TestFilterByLocations(t *testing.T) {
	items := []entity.Item{
		{"name": "a", "location": "Room A | Room B"},
		{"name": "b", "location": "Room B"},
		{"name": "c", "location": "Lab"},
		{"name": "d"},
	}

	t.Run("Should return items unchanged for an empty selection", func(t *testing.T) {
		got := FilterByLocations(items, nil)
		assert.Equal(t, items, got)
		assert.Same(t, &items[0], &got[0])
	})

	t.Run("Should keep items with any selected tag", func(t *testing.T) {
		got := FilterByLocations(items, []string{"Room A", "Lab"})
		assert.Equal(t, []entity.Item{items[0], items[2]}, got)
	})

	t.Run("Should match trimmed tags", func(t *testing.T) {
		got := FilterByLocations(items, []string{"Room B"})
		assert.Equal(t, []entity.Item{items[0], items[1]}, got)
	})

	t.Run("Should return nothing when no tag matches", func(t *testing.T) {
		got := FilterByLocations(items, []string{"Attic"})
		assert.Empty(t, got)
	})
}
