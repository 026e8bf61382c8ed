package entity

import (
	"testing"
	"time"
)

func TestNewDateDimension(t *testing.T) {
	tests := []struct {
		name    string
		input   time.Time
		year    int
		month   int
		day     int
		weekday string
		quarter int
	}{
		{
			name:    "mid-quarter friday",
			input:   time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
			year:    2024,
			month:   3,
			day:     15,
			weekday: "Friday",
			quarter: 1,
		},
		{
			name:    "time component is discarded",
			input:   time.Date(2024, time.March, 15, 23, 45, 12, 0, time.UTC),
			year:    2024,
			month:   3,
			day:     15,
			weekday: "Friday",
			quarter: 1,
		},
		{
			name:    "first day of q2",
			input:   time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
			year:    2024,
			month:   4,
			day:     1,
			weekday: "Monday",
			quarter: 2,
		},
		{
			name:    "last day of the year",
			input:   time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
			year:    2024,
			month:   12,
			day:     31,
			weekday: "Tuesday",
			quarter: 4,
		},
		{
			name:    "leap day",
			input:   time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
			year:    2024,
			month:   2,
			day:     29,
			weekday: "Thursday",
			quarter: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dim := NewDateDimension(tt.input)

			if dim.Year != tt.year || dim.Month != tt.month || dim.Day != tt.day {
				t.Errorf("expected %d-%02d-%02d, got %d-%02d-%02d",
					tt.year, tt.month, tt.day, dim.Year, dim.Month, dim.Day)
			}
			if dim.Weekday != tt.weekday {
				t.Errorf("expected weekday %s, got %s", tt.weekday, dim.Weekday)
			}
			if dim.Quarter != tt.quarter {
				t.Errorf("expected quarter %d, got %d", tt.quarter, dim.Quarter)
			}
			if h, m, s := dim.FullDate.Clock(); h != 0 || m != 0 || s != 0 {
				t.Errorf("expected midnight, got %02d:%02d:%02d", h, m, s)
			}
			if dim.FullDate.Location() != time.UTC {
				t.Errorf("expected UTC, got %s", dim.FullDate.Location())
			}
		})
	}
}

func TestTruncateToDate(t *testing.T) {
	input := time.Date(2024, time.August, 9, 17, 30, 45, 999, time.UTC)
	got := TruncateToDate(input)
	want := time.Date(2024, time.August, 9, 0, 0, 0, 0, time.UTC)

	if !got.Equal(want) {
		t.Errorf("expected %s, got %s", want, got)
	}
}
