package schedule

// Interval is a span of the day in zero-padded 24-hour "HH:MM" form.
// Booked intervals are half-open [Start, End); free slots are reported with
// inclusive display boundaries.
type Interval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// String renders the interval the way it is embedded in prompts, e.g. "09:15 - 09:30".
func (i Interval) String() string {
	return i.Start + " - " + i.End
}

// Bounds is the working-day window availability is computed against.
type Bounds struct {
	DayStart string
	DayEnd   string
}

// DefaultBounds returns the standard 09:00–17:00 working day.
func DefaultBounds() Bounds {
	return Bounds{DayStart: "09:00", DayEnd: "17:00"}
}

// Suggestion is the structured answer expected from the scheduling model.
type Suggestion struct {
	SuggestedTime string `json:"suggested_time"`
	Reasoning     string `json:"reasoning"`
}
