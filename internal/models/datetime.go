package models

import (
	"regexp"
	"strings"
	"time"
)

// DateLayout is the only form in which an event date is stored.
const DateLayout = "2006-01-02"

var timePattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

// Accepted input layouts, tried in order. Layouts without a zone are read as UTC.
var dateLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"January 2 2006",
	"2 Jan 2006",
	"2 January 2006",
	"Mon Jan 2 2006",
	time.RFC1123,
	time.RFC1123Z,
}

// NormalizeDate parses a calendar date and returns its UTC date component as YYYY-MM-DD.
func NormalizeDate(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s != "" {
		for _, layout := range dateLayouts {
			if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
				return t.UTC().Format(DateLayout), nil
			}
		}
	}
	return "", &ValidationError{Entity: EventEntity, Field: FieldDate, Msg: "Invalid date format"}
}

// ValidateTime checks a 24-hour HH:MM clock time. The value is not reformatted.
func ValidateTime(raw string) error {
	if !timePattern.MatchString(raw) {
		return &ValidationError{Entity: EventEntity, Field: FieldTime, Msg: "Time must be in HH:MM format (24-hour)"}
	}
	return nil
}
