package schedule

import (
	"fmt"
	"strings"

	"github.com/diegoclair/prep-rotation/internal/domain"
	"github.com/diegoclair/prep-rotation/internal/domain/entity"
)

// WeekdayOptions lists week 1 Mon..Fri followed by week 2 Mon..Fri
func WeekdayOptions() []entity.WeekdayOption {
	weeks, weekdays := domain.RotationWeeks(), domain.RotationWeekdays()

	options := make([]entity.WeekdayOption, 0, len(weeks)*len(weekdays))
	for _, w := range weeks {
		for _, wd := range weekdays {
			options = append(options, entity.WeekdayOption{
				Week:     w,
				Day:      domain.WeekdayCode(wd),
				DayLabel: domain.WeekdayLabel(wd),
				Label:    OptionLabel(w, domain.WeekdayLabel(wd)),
			})
		}
	}
	return options
}

// OptionLabel formats a slot as "Week 1 · Monday"
func OptionLabel(week int, dayLabel string) string {
	return fmt.Sprintf("Week %d · %s", week, dayLabel)
}

// FilterWeekdayOptions keeps options whose weekday label or short code starts
// with query, ignoring case. An empty query matches nothing.
func FilterWeekdayOptions(options []entity.WeekdayOption, query string) []entity.WeekdayOption {
	q := strings.ToLower(strings.TrimSpace(query))
	result := []entity.WeekdayOption{}
	if q == "" {
		return result
	}

	for _, opt := range options {
		if strings.HasPrefix(strings.ToLower(opt.DayLabel), q) || strings.HasPrefix(opt.Day, q) {
			result = append(result, opt)
		}
	}
	return result
}
