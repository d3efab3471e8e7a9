package schedule_test

import (
	"errors"
	"testing"

	"verdant-agenda/internal/schedule"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    schedule.Interval
		wantErr bool
	}{
		{
			name:  "24-hour round trip",
			input: "14:00 - 14:30",
			want:  schedule.Interval{Start: "14:00", End: "14:30"},
		},
		{
			name:  "morning with AM markers",
			input: "9:30 AM - 10:00 AM",
			want:  schedule.Interval{Start: "09:30", End: "10:00"},
		},
		{
			name:  "afternoon with PM markers",
			input: "1:00 PM - 2:00 PM",
			want:  schedule.Interval{Start: "13:00", End: "14:00"},
		},
		{
			name:  "noon stays twelve",
			input: "12:00 PM - 1:00 PM",
			want:  schedule.Interval{Start: "12:00", End: "13:00"},
		},
		{
			name:  "midnight becomes zero",
			input: "12:00 AM - 1:00 AM",
			want:  schedule.Interval{Start: "00:00", End: "01:00"},
		},
		{
			name:  "lowercase markers",
			input: "9:30am - 10:00am",
			want:  schedule.Interval{Start: "09:30", End: "10:00"},
		},
		{
			name:  "bare hour without marker is taken literally",
			input: "2:00 - 2:30",
			want:  schedule.Interval{Start: "02:00", End: "02:30"},
		},
		{
			name:  "range embedded in prose",
			input: "I suggest 10:15 AM - 10:45 AM for this task.",
			want:  schedule.Interval{Start: "10:15", End: "10:45"},
		},
		{
			name:    "prose without a range fails",
			input:   "sometime in the afternoon",
			wantErr: true,
		},
		{
			name:    "single time is not a range",
			input:   "10:00 AM",
			wantErr: true,
		},
		{
			name:    "empty input fails",
			input:   "",
			wantErr: true,
		},
		{
			name:    "out of range minutes fail",
			input:   "10:75 - 11:80",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := schedule.ParseRange(tt.input)
			if tt.wantErr {
				if !errors.Is(err, schedule.ErrUnparseableRange) {
					t.Fatalf("expected ErrUnparseableRange, got %v (interval=%v)", err, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseRange(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseRangeRoundTrip(t *testing.T) {
	inputs := []string{"09:15 - 09:30", "11:30 - 12:00", "15:00 - 17:00", "00:00 - 23:59"}
	for _, in := range inputs {
		got, err := schedule.ParseRange(in)
		if err != nil {
			t.Fatalf("ParseRange(%q): %v", in, err)
		}
		if got.String() != in {
			t.Errorf("round trip of %q produced %q", in, got.String())
		}
	}
}
