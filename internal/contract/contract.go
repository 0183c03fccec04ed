// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import "github.com/huangsam/gantt/schema"

// HistoryManager defines the interface for reaching the render history store.
// This allows the history layer to be mocked for testing.
type HistoryManager interface {
	GetHistoryStore() HistoryStore
}

// HistoryStore defines the interface for tracking render runs.
type HistoryStore interface {
	// RecordRun stores one render invocation and returns its unique ID
	RecordRun(run schema.RenderRun) (int64, error)

	// GetStatus returns status information about the history store
	GetStatus() (schema.HistoryStatus, error)

	// GetAllRuns returns every recorded run ordered by ID
	GetAllRuns() ([]schema.RenderRunRecord, error)

	// Close closes the underlying connection
	Close() error
}
