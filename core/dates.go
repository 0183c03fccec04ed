package core

import (
	"errors"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/huangsam/gantt/schema"
)

var (
	errEmptyDate      = errors.New("empty value")
	errIncompleteDate = errors.New("incomplete date")
)

// ParseDate parses free-form date text into a calendar date at midnight UTC.
// Ambiguous numeric dates such as 02/03/2024 are read month first.
// Any time-of-day component is dropped; the date is taken in the zone the text names.
// Fragments that carry no calendar year, such as "12/" or "3:4:5", are rejected.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errEmptyDate
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, err
	}
	if t.Year() < 1 {
		return time.Time{}, errIncompleteDate
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// epochDays converts a calendar date into days since the Unix epoch.
func epochDays(t time.Time) float64 {
	return float64(t.Unix()) / schema.SecondsPerDay
}
