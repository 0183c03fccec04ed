package core

import (
	"fmt"
	"strings"
)

// MissingColumnsError reports required CSV columns that are absent from the header.
// Missing is sorted alphabetically.
type MissingColumnsError struct {
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// DateParseError reports a Start or End value that is not a recognizable date.
type DateParseError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("line %d: cannot parse %s date %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}

// IOError reports a tasks file that cannot be read or an image that cannot be written.
type IOError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to %s tasks: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
