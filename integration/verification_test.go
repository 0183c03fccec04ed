//go:build basic

package integration

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRenderDefaults runs gantt with no arguments in a directory holding tasks.csv.
func TestRenderDefaults(t *testing.T) {
	dir := t.TempDir()
	writeTasksFile(t, dir)

	output, err := runGantt(t, dir)
	require.NoError(t, err)
	assert.Contains(t, output, "Saved gantt.png")

	f, err := os.Open(filepath.Join(dir, "gantt.png"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 1500, cfg.Width)
	assert.Equal(t, 525, cfg.Height)
}

// TestRenderMissingColumns checks that nothing is written for an invalid header.
func TestRenderMissingColumns(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.csv"), []byte("Task,Start\nA,2024-01-01\n"), 0o644))

	output, err := runGantt(t, dir, "render", "bad.csv", "bad.png")
	require.Error(t, err)
	assert.Contains(t, output, "missing required columns: End")

	_, statErr := os.Stat(filepath.Join(dir, "bad.png"))
	assert.True(t, os.IsNotExist(statErr))
}

// TestTasksOrder verifies the listing follows the render order.
func TestTasksOrder(t *testing.T) {
	dir := t.TempDir()
	writeTasksFile(t, dir)

	output, err := runGantt(t, dir, "tasks", "--output", "csv")
	require.NoError(t, err)

	var names []string
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		parts := strings.Split(line, ",")
		if len(parts) < 2 || parts[0] == "row" {
			continue
		}
		names = append(names, parts[1])
	}
	assert.Equal(t, []string{"Design", "Test", "Build"}, names)
}

// TestHistorySQLite renders with a file-backed history and reads it back.
func TestHistorySQLite(t *testing.T) {
	dir := t.TempDir()
	writeTasksFile(t, dir)
	dbPath := filepath.Join(dir, "history.db")
	historyArgs := []string{"--history-backend", "sqlite", "--history-db-connect", dbPath}

	_, err := runGantt(t, dir, append([]string{"history", "migrate"}, historyArgs...)...)
	require.NoError(t, err)

	_, err = runGantt(t, dir, append([]string{"render"}, historyArgs...)...)
	require.NoError(t, err)

	output, err := runGantt(t, dir, append([]string{"history", "status"}, historyArgs...)...)
	require.NoError(t, err)
	assert.Contains(t, output, "Total Runs: 1")
	assert.Contains(t, output, "Total Tasks Rendered: 3")

	parquetPath := filepath.Join(dir, "runs.parquet")
	_, err = runGantt(t, dir, append([]string{"history", "export", "--output-file", parquetPath}, historyArgs...)...)
	require.NoError(t, err)
	assert.FileExists(t, parquetPath)

	_, err = runGantt(t, dir, append([]string{"history", "clear"}, historyArgs...)...)
	require.NoError(t, err)
	assert.NoFileExists(t, dbPath)
}
