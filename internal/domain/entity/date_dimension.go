// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DateDimension is the canonical row for a single calendar date. Exactly one
// row exists per date; every derived field is a pure function of FullDate.
// Rows are created lazily on first reference and never updated or deleted.
type DateDimension struct {
	ID       uuid.UUID
	FullDate time.Time // midnight UTC, date component only
	Year     int
	Month    int
	Day      int
	Weekday  string // English day name, e.g. "Friday"
	Quarter  int    // 1-4
}

// NewDateDimension derives a DateDimension from a calendar date. The time
// component of the input is discarded.
func NewDateDimension(date time.Time) *DateDimension {
	year, month, day := date.Date()
	fullDate := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	return &DateDimension{
		ID:       uuid.New(),
		FullDate: fullDate,
		Year:     year,
		Month:    int(month),
		Day:      day,
		Weekday:  fullDate.Weekday().String(),
		Quarter:  (int(month)-1)/3 + 1,
	}
}

// TruncateToDate strips the time component, normalizing to midnight UTC.
// Lookups and inserts must agree on this form so the uniqueness invariant
// holds regardless of the caller's timezone.
func TruncateToDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
