package domain

import "time"

// weekdayCodes and weekdayLabels are indexed by time.Weekday (Sunday = 0)
var (
	weekdayCodes  = [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}
	weekdayLabels = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
)

// weekdayAliases maps free-text spellings to weekday codes.
// Saturday and Sunday are absent: an override can only pick Mon-Fri.
var weekdayAliases = map[string]string{
	"monday":    "mon",
	"mon":       "mon",
	"tuesday":   "tue",
	"tue":       "tue",
	"tues":      "tue",
	"wednesday": "wed",
	"wed":       "wed",
	"weds":      "wed",
	"thursday":  "thu",
	"thu":       "thu",
	"thur":      "thu",
	"thurs":     "thu",
	"friday":    "fri",
	"fri":       "fri",
}

// WeekdayCode returns the short code of a weekday, e.g. "mon"
func WeekdayCode(wd time.Weekday) string {
	return weekdayCodes[wd]
}

// WeekdayLabel returns the English display name of a weekday
func WeekdayLabel(wd time.Weekday) string {
	return weekdayLabels[wd]
}

// RotationWeekdays are the weekdays a rotation slot can land on, in display order
func RotationWeekdays() [5]time.Weekday {
	return [5]time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}
}

// RotationWeeks are the two alternating schedule tracks
func RotationWeeks() [2]int {
	return [2]int{1, 2}
}

// AliasFor resolves a lowercased token to a Mon-Fri weekday code
func AliasFor(token string) (string, bool) {
	code, ok := weekdayAliases[token]
	return code, ok
}

// DefaultAnchorDate is the Monday that starts a "week 2" period
const DefaultAnchorDate = "2025-12-01"

// AnchorWeek is the rotation week assigned to the anchor Monday
const AnchorWeek = 2

// DateLayout is used for anchor dates in configuration
const DateLayout = "2006-01-02"

// LocationSeparator splits an item's location field into tags
const LocationSeparator = " | "

// DefaultNotificationTime is when the daily reminder is posted (HH:MM)
const DefaultNotificationTime = "08:00"

// LabelForCode returns the display label for a weekday code, or "" if unknown
func LabelForCode(code string) string {
	for i, c := range weekdayCodes {
		if c == code {
			return weekdayLabels[i]
		}
	}
	return ""
}
