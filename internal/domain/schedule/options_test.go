package schedule

import (
	"testing"

	"github.com/diegoclair/prep-rotation/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdayOptions(t *testing.T) {
	options := WeekdayOptions()
	require.Len(t, options, 10)

	assert.Equal(t, entity.WeekdayOption{Week: 1, Day: "mon", DayLabel: "Monday", Label: "Week 1 · Monday"}, options[0])
	assert.Equal(t, entity.WeekdayOption{Week: 1, Day: "fri", DayLabel: "Friday", Label: "Week 1 · Friday"}, options[4])
	assert.Equal(t, entity.WeekdayOption{Week: 2, Day: "mon", DayLabel: "Monday", Label: "Week 2 · Monday"}, options[5])
	assert.Equal(t, entity.WeekdayOption{Week: 2, Day: "fri", DayLabel: "Friday", Label: "Week 2 · Friday"}, options[9])

	assert.Equal(t, options, WeekdayOptions(), "order must be stable")
}

func TestFilterWeekdayOptions(t *testing.T) {
	options := WeekdayOptions()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty query", query: "", want: []string{}},
		{name: "blank query", query: "   ", want: []string{}},
		{name: "prefix of label", query: "mo", want: []string{"Week 1 · Monday", "Week 2 · Monday"}},
		{name: "case insensitive", query: "WED", want: []string{"Week 1 · Wednesday", "Week 2 · Wednesday"}},
		{name: "shared prefix", query: "t", want: []string{
			"Week 1 · Tuesday", "Week 1 · Thursday", "Week 2 · Tuesday", "Week 2 · Thursday",
		}},
		{name: "full label", query: " friday ", want: []string{"Week 1 · Friday", "Week 2 · Friday"}},
		{name: "weekend never matches", query: "sat", want: []string{}},
		{name: "combined label is not matched", query: "week", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterWeekdayOptions(options, tt.query)
			require.NotNil(t, got)

			labels := make([]string, 0, len(got))
			for _, o := range got {
				labels = append(labels, o.Label)
			}
			assert.Equal(t, tt.want, labels)
		})
	}
}
