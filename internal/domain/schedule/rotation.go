package schedule

import (
	"fmt"
	"time"

	"github.com/diegoclair/prep-rotation/internal/domain"
	"github.com/diegoclair/prep-rotation/internal/domain/entity"
)

const secondsPerWeek = 7 * 24 * 60 * 60

// Rotation maps calendar dates to the alternating week 1 / week 2 tracks.
// The anchor is a civil date (no time zone); it is placed at midnight in the
// location of whichever date is being evaluated.
type Rotation struct {
	year  int
	month time.Month
	day   int
}

// NewRotation builds a rotation anchored at the given Monday, which is week 2
func NewRotation(anchor time.Time) (Rotation, error) {
	if anchor.Weekday() != time.Monday {
		return Rotation{}, fmt.Errorf("rotation anchor %s is a %s, expected a Monday",
			anchor.Format(domain.DateLayout), anchor.Weekday())
	}
	return Rotation{year: anchor.Year(), month: anchor.Month(), day: anchor.Day()}, nil
}

// ParseRotation parses a YYYY-MM-DD anchor date
func ParseRotation(anchor string) (Rotation, error) {
	t, err := time.Parse(domain.DateLayout, anchor)
	if err != nil {
		return Rotation{}, fmt.Errorf("failed to parse rotation anchor %q: %w", anchor, err)
	}
	return NewRotation(t)
}

// DefaultRotation is anchored at domain.DefaultAnchorDate
func DefaultRotation() Rotation {
	r, err := ParseRotation(domain.DefaultAnchorDate)
	if err != nil {
		panic(err)
	}
	return r
}

// Anchor returns the anchor Monday at midnight in loc
func (r Rotation) Anchor(loc *time.Location) time.Time {
	return time.Date(r.year, r.month, r.day, 0, 0, 0, 0, loc)
}

// WeekNumber returns 2 when an even number of whole weeks separates the
// date's midnight from the anchor's midnight, 1 otherwise.
// The difference is taken in Unix seconds; time.Duration saturates past ~292 years.
func (r Rotation) WeekNumber(date time.Time) int {
	normalized := normalize(date)
	diff := normalized.Unix() - r.Anchor(normalized.Location()).Unix()

	weeks := floorDiv(diff, secondsPerWeek)
	if weeks%2 == 0 {
		return domain.AnchorWeek
	}
	return 1
}

// Suggest returns the rotation slot for the next workday on or after now
func (r Rotation) Suggest(now time.Time) entity.Suggestion {
	workday := Workday(now)
	return entity.Suggestion{
		Week:     r.WeekNumber(workday),
		DayShort: domain.WeekdayCode(workday.Weekday()),
		DayLabel: domain.WeekdayLabel(workday.Weekday()),
	}
}

// Workday rolls Saturday and Sunday forward to the following Monday.
// The result is always midnight in ref's location.
func Workday(ref time.Time) time.Time {
	switch ref.Weekday() {
	case time.Saturday:
		return normalize(ref.AddDate(0, 0, 2))
	case time.Sunday:
		return normalize(ref.AddDate(0, 0, 1))
	}
	return normalize(ref)
}

func normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// floorDiv rounds toward negative infinity, so dates before the anchor
// land in the right period.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
