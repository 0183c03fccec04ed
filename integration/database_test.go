//go:build database

package integration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestGanttWithMySQL tests render history against a MySQL backend.
func TestGanttWithMySQL(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "gantt",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(60 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/gantt?multiStatements=true", host, port.Port())
	runHistoryLifecycle(t, "mysql", connStr)
}

// TestGanttWithPostgres tests render history against a PostgreSQL backend.
func TestGanttWithPostgres(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(60 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())
	runHistoryLifecycle(t, "postgresql", connStr)
}

// runHistoryLifecycle clears, migrates, renders and reads back the history via env config.
func runHistoryLifecycle(t *testing.T, backend, connStr string) {
	t.Helper()

	t.Setenv("GANTT_HISTORY_BACKEND", backend)
	t.Setenv("GANTT_HISTORY_DB_CONNECT", connStr)

	dir := t.TempDir()
	writeTasksFile(t, dir)

	_, err := runGantt(t, dir, "history", "clear")
	require.NoError(t, err)

	_, err = runGantt(t, dir, "history", "migrate")
	require.NoError(t, err)

	_, err = runGantt(t, dir, "render")
	require.NoError(t, err)

	output, err := runGantt(t, dir, "history", "status")
	require.NoError(t, err)
	assert.Contains(t, output, "Connected: true")
	assert.Contains(t, output, "Total Runs: 1")

	_, err = os.Stat(filepath.Join(dir, "gantt.png"))
	require.NoError(t, err)

	_, err = runGantt(t, dir, "history", "clear")
	require.NoError(t, err)
}
