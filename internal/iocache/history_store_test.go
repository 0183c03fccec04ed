package iocache

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/gantt/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T) *HistoryStoreImpl {
	t.Helper()
	store, err := NewHistoryStore(schema.SQLiteBackend, filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store.(*HistoryStoreImpl)
}

func sampleRun(start time.Time, tasks int, err error) schema.RenderRun {
	return schema.RenderRun{
		InputPath:    "tasks.csv",
		OutputPath:   "gantt.png",
		TaskCount:    tasks,
		OwnerLabeled: tasks > 0,
		StartTime:    start,
		EndTime:      start.Add(250 * time.Millisecond),
		Err:          err,
	}
}

func TestHistoryStore_NoneBackend(t *testing.T) {
	store, err := NewHistoryStore(schema.NoneBackend, "")
	require.NoError(t, err)

	id, err := store.RecordRun(sampleRun(time.Now(), 1, nil))
	require.NoError(t, err)
	assert.Equal(t, int64(0), id)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, "none", status.Backend)
	assert.False(t, status.Connected)

	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	assert.Empty(t, runs)
	assert.NoError(t, store.Close())
}

func TestHistoryStore_UnsupportedBackend(t *testing.T) {
	_, err := NewHistoryStore(schema.DatabaseBackend("oracle"), "")
	assert.Error(t, err)
}

func TestHistoryStore_InvalidMySQLDSN(t *testing.T) {
	_, err := NewHistoryStore(schema.MySQLBackend, "not a dsn")
	assert.Error(t, err)
}

func TestHistoryStore_SQLiteRecordAndStatus(t *testing.T) {
	store := newSQLiteStore(t)
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, 0, status.TotalRuns)

	id1, err := store.RecordRun(sampleRun(base, 3, nil))
	require.NoError(t, err)
	id2, err := store.RecordRun(sampleRun(base.Add(time.Hour), 0, errors.New("missing required columns: End")))
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", status.Backend)
	assert.Equal(t, 2, status.TotalRuns)
	assert.Equal(t, 1, status.FailedRuns)
	assert.Equal(t, 3, status.TotalTasks)
	assert.Equal(t, id2, status.LastRunID)
	assert.True(t, status.LastRunTime.Equal(base.Add(time.Hour)))
	assert.True(t, status.OldestRunTime.Equal(base))
}

func TestHistoryStore_SQLiteGetAllRuns(t *testing.T) {
	store := newSQLiteStore(t)
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	_, err := store.RecordRun(sampleRun(base, 2, nil))
	require.NoError(t, err)
	_, err = store.RecordRun(sampleRun(base.Add(time.Minute), 0, errors.New("boom")))
	require.NoError(t, err)

	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	require.Len(t, runs, 2)

	assert.Equal(t, "tasks.csv", runs[0].InputPath)
	assert.Equal(t, "gantt.png", runs[0].OutputPath)
	assert.Equal(t, 2, runs[0].TaskCount)
	assert.True(t, runs[0].OwnerLabeled)
	assert.Equal(t, int64(250), runs[0].DurationMs)
	assert.True(t, runs[0].StartTime.Equal(base))
	assert.Nil(t, runs[0].ErrorText)

	assert.False(t, runs[1].OwnerLabeled)
	require.NotNil(t, runs[1].ErrorText)
	assert.Equal(t, "boom", *runs[1].ErrorText)
}

func TestHistoryStore_SQLiteReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	store, err := NewHistoryStore(schema.SQLiteBackend, path)
	require.NoError(t, err)
	_, err = store.RecordRun(sampleRun(time.Now(), 1, nil))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = NewHistoryStore(schema.SQLiteBackend, path)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 1, status.TotalRuns)
}

func TestQuoteTableName(t *testing.T) {
	assert.Equal(t, "`gantt_render_runs`", quoteTableName(renderRunsTable, schema.MySQLBackend))
	assert.Equal(t, `"gantt_render_runs"`, quoteTableName(renderRunsTable, schema.PostgreSQLBackend))
	assert.Equal(t, `"gantt_render_runs"`, quoteTableName(renderRunsTable, schema.SQLiteBackend))
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "$1, $2, $3", placeholders(schema.PostgreSQLBackend, 3))
	assert.Equal(t, "?, ?, ?", placeholders(schema.MySQLBackend, 3))
	assert.Equal(t, "?", placeholders(schema.SQLiteBackend, 1))
}

func TestValidateTableName(t *testing.T) {
	tests := []struct {
		name    string
		table   string
		wantErr bool
	}{
		{"valid", "gantt_render_runs", false},
		{"leading underscore", "_runs", false},
		{"empty", "", true},
		{"leading digit", "1runs", true},
		{"injection", "runs; DROP TABLE x", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTableName(tt.table)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
