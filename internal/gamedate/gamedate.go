package gamedate

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDate is returned when a game date string cannot be parsed.
var ErrInvalidDate = errors.New("invalid game date")

const (
	// StorageLayout is how game dates are persisted. Lexical order equals chronological order.
	StorageLayout = "2006-01-02 15:04:05"
	// DisplayLayout is the human readable form used in game listings.
	DisplayLayout = "2006-01-02 03:04 PM"
	// ISOLayout is the form used to round-trip a date back into the record-game form.
	ISOLayout = "2006-01-02T15:04"
)

// Accepted ISO-8601 forms. Offsets are tolerated but the wall clock time is kept as-is.
var inputLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC3339,
}

// Parse turns an ISO-8601 date or date-time string into a naive wall clock time (UTC location).
// Storage keys have one-second resolution, so a non-zero fraction of a second is rejected rather
// than letting two different inputs share a key.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrInvalidDate)
	}
	for _, layout := range inputLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if t.Nanosecond() != 0 {
			return time.Time{}, fmt.Errorf("%w: sub-second precision in %q", ErrInvalidDate, s)
		}
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// Key returns the storage representation of t. Times decoded from other zones are moved back to
// UTC first, which is where Parse puts the wall clock.
func Key(t time.Time) string {
	return t.UTC().Format(StorageLayout)
}

// FromKey parses a stored game date.
func FromKey(key string) (time.Time, error) {
	t, err := time.Parse(StorageLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: stored value %q", ErrInvalidDate, key)
	}
	return t, nil
}

func Display(t time.Time) string { return t.UTC().Format(DisplayLayout) }

func ISO(t time.Time) string { return t.UTC().Format(ISOLayout) }
