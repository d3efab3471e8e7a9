package schedule

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrUnparseableRange signals that a model answer did not contain a
// recognizable time range. Callers must surface the original text verbatim and
// never fall back to a guessed time.
var ErrUnparseableRange = errors.New("could not understand the suggested time")

var rangePattern = regexp.MustCompile(`(?i)(\d{1,2}:\d{2})\s*(AM|PM)?\s*-\s*(\d{1,2}:\d{2})\s*(AM|PM)?`)

// ParseRange extracts a structured start/end pair from a free-text time range
// such as "9:30 AM - 10:00 AM" or "14:00 - 14:30". A bare hour without an
// AM/PM marker is taken literally as 24-hour time, so "2:00" means 02:00.
func ParseRange(text string) (Interval, error) {
	m := rangePattern.FindStringSubmatch(text)
	if m == nil {
		return Interval{}, ErrUnparseableRange
	}

	start, err := to24Hour(m[1], m[2])
	if err != nil {
		return Interval{}, ErrUnparseableRange
	}
	end, err := to24Hour(m[3], m[4])
	if err != nil {
		return Interval{}, ErrUnparseableRange
	}

	return Interval{Start: start, End: end}, nil
}

// to24Hour converts a "H:MM" or "HH:MM" token with an optional AM/PM marker to
// zero-padded 24-hour form.
func to24Hour(token, marker string) (string, error) {
	sep := strings.IndexByte(token, ':')
	hour, _ := strconv.Atoi(token[:sep])
	minute, _ := strconv.Atoi(token[sep+1:])

	switch strings.ToUpper(marker) {
	case "PM":
		if hour < 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}

	if hour > 23 || minute > 59 {
		return "", fmt.Errorf("time out of range: %s %s", token, marker)
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}
