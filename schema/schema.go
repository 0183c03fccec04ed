// Package schema has models and constants shared by all parts of gantt.
package schema

import (
	"encoding/json"
	"time"

	"gopkg.in/yaml.v3"
)

// DateLayout is the calendar date representation used for display and axis ticks.
const DateLayout = "2006-01-02"

// SecondsPerDay converts between Unix seconds and the day values on the date axis.
const SecondsPerDay = 24 * 60 * 60

// OptionalString is a text value that may be absent.
// Valid is false when the value was not provided at all.
type OptionalString struct {
	Value string
	Valid bool
}

// SomeString returns a present OptionalString holding s.
func SomeString(s string) OptionalString {
	return OptionalString{Value: s, Valid: true}
}

// String returns the display value, which is empty when absent.
func (o OptionalString) String() string {
	if !o.Valid {
		return ""
	}
	return o.Value
}

// MarshalJSON encodes an absent value as null.
func (o OptionalString) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// MarshalYAML encodes an absent value as null.
func (o OptionalString) MarshalYAML() (any, error) {
	if !o.Valid {
		return nil, nil
	}
	return o.Value, nil
}

var (
	_ json.Marshaler = OptionalString{}
	_ yaml.Marshaler = OptionalString{}
)

// TaskRecord is one validated, parsed row of task input.
type TaskRecord struct {
	Name  string         `json:"task" yaml:"task"`
	Start time.Time      `json:"start" yaml:"start"`
	End   time.Time      `json:"end" yaml:"end"`
	Owner OptionalString `json:"owner" yaml:"owner"`
	Line  int            `json:"line" yaml:"line"` // 1-based CSV line number
}

// HasOwner reports whether the task carries a non-empty owner.
func (t TaskRecord) HasOwner() bool {
	return t.Owner.Valid && t.Owner.Value != ""
}

// SpanDays returns End - Start in whole days. It is negative when End precedes Start.
func (t TaskRecord) SpanDays() int {
	return int(t.End.Sub(t.Start) / (24 * time.Hour))
}

// Span classifies the task by the sign of its span.
func (t TaskRecord) Span() SpanKind {
	switch days := t.SpanDays(); {
	case days < 0:
		return NegativeSpan
	case days == 0:
		return SameDaySpan
	default:
		return NormalSpan
	}
}
