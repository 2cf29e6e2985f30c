package entity

// Suggestion is the rotation slot suggested for the next workday
type Suggestion struct {
	Week     int    `json:"week"`
	DayShort string `json:"dayShort"`
	DayLabel string `json:"dayLabel"`
}

// WeekdayOption is one of the ten selectable (week, weekday) combinations
type WeekdayOption struct {
	Week     int    `json:"week"`
	Day      string `json:"day"`
	DayLabel string `json:"dayLabel"`
	Label    string `json:"label"`
}

// Selection is a resolved (week, weekday) pair picked by the user
type Selection struct {
	Week int    `json:"week"`
	Day  string `json:"day"`
}

// Item is an opaque record from the data source. Only the location field is interpreted.
type Item map[string]any

// Location returns the item's location field, or "" when it is missing or not a string
func (i Item) Location() string {
	loc, ok := i["location"].(string)
	if !ok {
		return ""
	}
	return loc
}

