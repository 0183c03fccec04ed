package schema

import "time"

// HistoryStatus represents the status of the render history store.
type HistoryStatus struct {
	Backend       string    `json:"backend"`
	Connected     bool      `json:"connected"`
	TotalRuns     int       `json:"total_runs"`
	FailedRuns    int       `json:"failed_runs"`
	LastRunID     int64     `json:"last_run_id"`
	LastRunTime   time.Time `json:"last_run_time"`
	OldestRunTime time.Time `json:"oldest_run_time"`
	TotalTasks    int       `json:"total_tasks"`
}

// RenderRun describes one render invocation to be recorded in history.
type RenderRun struct {
	InputPath    string
	OutputPath   string
	TaskCount    int
	OwnerLabeled bool
	StartTime    time.Time
	EndTime      time.Time
	Err          error
}

// RenderRunRecord represents a row from the gantt_render_runs table.
type RenderRunRecord struct {
	RunID        int64
	InputPath    string
	OutputPath   string
	TaskCount    int
	OwnerLabeled bool
	StartTime    time.Time
	EndTime      time.Time
	DurationMs   int64
	ErrorText    *string
}
