package schedule

import (
	"fmt"
	"regexp"
)

// timePattern accepts only zero-padded 24-hour clock strings. Zero-padding is
// required so that string comparison stays equivalent to time comparison.
var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// IsValidTime reports whether s is a well-formed "HH:MM" 24-hour string.
func IsValidTime(s string) bool {
	return timePattern.MatchString(s)
}

// toMinutes converts a valid "HH:MM" string to minutes from midnight.
func toMinutes(s string) int {
	var h, m int
	fmt.Sscanf(s, "%02d:%02d", &h, &m)
	return h*60 + m
}

// toClock converts minutes from midnight back to a zero-padded "HH:MM" string.
func toClock(mins int) string {
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}
