package iocache

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/gantt/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteHistoryExport_RequiresOutputFile(t *testing.T) {
	err := ExecuteHistoryExport(&MockHistoryStore{}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--output-file")
}

func TestExecuteHistoryExport_NilStore(t *testing.T) {
	assert.Error(t, ExecuteHistoryExport(nil, "runs.parquet"))
}

func TestExecuteHistoryExport_Empty(t *testing.T) {
	store := &MockHistoryStore{}
	store.On("GetStatus").Return(schema.HistoryStatus{Backend: "sqlite", Connected: true}, nil)

	err := ExecuteHistoryExport(store, filepath.Join(t.TempDir(), "runs.parquet"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no render history")
	store.AssertExpectations(t)
}

func TestExecuteHistoryExport_StatusError(t *testing.T) {
	store := &MockHistoryStore{}
	store.On("GetStatus").Return(schema.HistoryStatus{}, errors.New("connection lost"))

	err := ExecuteHistoryExport(store, filepath.Join(t.TempDir(), "runs.parquet"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection lost")
}

func TestExecuteHistoryExport_SQLite(t *testing.T) {
	store := newSQLiteStore(t)
	_, err := store.RecordRun(sampleRun(time.Now(), 2, nil))
	require.NoError(t, err)

	outputFile := filepath.Join(t.TempDir(), "runs.parquet")
	require.NoError(t, ExecuteHistoryExport(store, outputFile))

	info, err := os.Stat(outputFile)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
