// Package timefmt converts between the stored naive local-time string and
// the display form shown in the dashboards. Timestamps carry no timezone
// offset: the deployment runs in a single timezone and the stored wall-clock
// digits must survive every read/write cycle unchanged.
package timefmt

import (
	"fmt"
	"time"
)

const (
	// StorageLayout is the canonical format persisted in the database.
	StorageLayout = "2006-01-02 15:04:05"
	// DisplayLayout is the 24-hour form rendered to users. Same digits,
	// different separators, no timezone shift.
	DisplayLayout = "2006/01/02 15:04:05"
	// DateLayout is the calendar-date portion used by range filters.
	DateLayout = "2006-01-02"
)

// inputLayouts are the formats accepted from the admin edit form. The
// date-and-time picker emits the T-separated forms.
var inputLayouts = []string{
	StorageLayout,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	DisplayLayout,
}

// Now returns the current local wall-clock time in storage format.
func Now() string {
	return time.Now().Format(StorageLayout)
}

// Display re-renders a stored timestamp for presentation. The value is
// returned untouched when it does not parse, so stored digits are never
// mangled.
func Display(stored string) string {
	if stored == "" {
		return ""
	}
	t, err := time.ParseInLocation(StorageLayout, stored, time.Local)
	if err != nil {
		return stored
	}
	return t.Format(DisplayLayout)
}

// Normalize converts user-supplied timestamp input to storage format.
// No timezone conversion happens here either.
func Normalize(input string) (string, error) {
	for _, layout := range inputLayouts {
		if t, err := time.ParseInLocation(layout, input, time.Local); err == nil {
			return t.Format(StorageLayout), nil
		}
	}
	return "", fmt.Errorf("unsupported timestamp %q", input)
}
