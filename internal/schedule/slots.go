package schedule

import (
	"sort"
	"strings"

	"verdant-agenda/internal/model"
)

// NoAvailability is the sentinel rendered when the working day is fully booked.
// Callers and the prompt template both rely on this exact text being distinct
// from an empty schedule, which yields the full day window instead.
const NoAvailability = "No available slots today."

// FreeSlots computes the open intervals of the working day not covered by any
// task. Booked intervals are unioned before gap extraction, so overlapping and
// fully nested tasks cannot corrupt the result. Tasks entirely outside the
// bounds are ignored; tasks straddling a boundary are clamped to it.
func FreeSlots(tasks []model.Task, b Bounds) []Interval {
	dayStart := toMinutes(b.DayStart)
	dayEnd := toMinutes(b.DayEnd)

	booked := make([][2]int, 0, len(tasks))
	for _, t := range tasks {
		s, e := toMinutes(t.StartTime), toMinutes(t.EndTime)
		if e <= dayStart || s >= dayEnd {
			continue
		}
		if s < dayStart {
			s = dayStart
		}
		if e > dayEnd {
			e = dayEnd
		}
		booked = append(booked, [2]int{s, e})
	}

	if len(booked) == 0 {
		return []Interval{{Start: b.DayStart, End: b.DayEnd}}
	}

	sort.Slice(booked, func(i, j int) bool { return booked[i][0] < booked[j][0] })

	merged := booked[:1]
	for _, iv := range booked[1:] {
		last := &merged[len(merged)-1]
		if iv[0] <= last[1] {
			if iv[1] > last[1] {
				last[1] = iv[1]
			}
			continue
		}
		merged = append(merged, iv)
	}

	var slots []Interval
	cursor := dayStart
	for _, iv := range merged {
		if iv[0] > cursor {
			slots = append(slots, Interval{Start: toClock(cursor), End: toClock(iv[0])})
		}
		cursor = iv[1]
	}
	if cursor < dayEnd {
		slots = append(slots, Interval{Start: toClock(cursor), End: toClock(dayEnd)})
	}

	return slots
}

// FormatSlots serializes open intervals as the comma-separated free-text list
// the prompt embeds, or the NoAvailability sentinel when there are none.
func FormatSlots(slots []Interval) string {
	if len(slots) == 0 {
		return NoAvailability
	}

	parts := make([]string, len(slots))
	for i, s := range slots {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}
