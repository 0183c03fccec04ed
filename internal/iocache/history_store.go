package iocache

import (
	"database/sql"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql" // MySQL driver
	"github.com/huangsam/gantt/internal/contract"
	"github.com/huangsam/gantt/schema"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver
)

// Tables owned by render history.
const (
	renderRunsTable = "gantt_render_runs"
	migrationsTable = "gantt_schema_migrations"
)

var tableNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// HistoryStoreImpl records render runs using various database backends.
// Times are stored as Unix milliseconds so every backend scans them the same way.
type HistoryStoreImpl struct {
	db         *sql.DB
	backend    schema.DatabaseBackend
	driverName string
}

var _ contract.HistoryStore = &HistoryStoreImpl{} // Compile-time check

// NewHistoryStore creates a new HistoryStore with the specified backend.
func NewHistoryStore(backend schema.DatabaseBackend, connStr string) (contract.HistoryStore, error) {
	var db *sql.DB
	var err error
	var driverName string

	switch backend {
	case schema.SQLiteBackend:
		driverName = "sqlite"
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetHistoryDBFilePath()
		}
		db, err = sql.Open(driverName, dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database at %q: %w. Check that the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		// connStr should be:
		// user:password@tcp(host:port)/dbname
		if _, parseErr := mysql.ParseDSN(connStr); parseErr != nil {
			return nil, fmt.Errorf("invalid MySQL connection string: %w. Check connection format: user:password@tcp(host:port)/dbname", parseErr)
		}
		driverName = "mysql"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open MySQL database: %w", err)
		}

	case schema.PostgreSQLBackend:
		driverName = "pgx"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open PostgreSQL database: %w. Check connection string format: host=... dbname=...", err)
		}

	case schema.NoneBackend:
		// No-op store for disabled history
		return &HistoryStoreImpl{backend: backend}, nil

	default:
		return nil, fmt.Errorf("unsupported backend: %s", backend)
	}

	// Ping to verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database: %w. Verify the database server is running and accessible", backend, err)
	}

	if err := createHistoryTable(db, backend); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create history table: %w", err)
	}

	return &HistoryStoreImpl{
		db:         db,
		backend:    backend,
		driverName: driverName,
	}, nil
}

// createHistoryTable creates the render runs table when missing.
func createHistoryTable(db *sql.DB, backend schema.DatabaseBackend) error {
	if _, err := db.Exec(getCreateRenderRunsQuery(backend)); err != nil {
		return fmt.Errorf("failed to create table %s: %w", renderRunsTable, err)
	}
	return nil
}

// getCreateRenderRunsQuery returns the CREATE TABLE query for gantt_render_runs.
func getCreateRenderRunsQuery(backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(renderRunsTable, backend)

	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT AUTO_INCREMENT PRIMARY KEY,
				input_path VARCHAR(1024) NOT NULL,
				output_path VARCHAR(1024) NOT NULL,
				task_count INT NOT NULL,
				owner_labeled INT NOT NULL,
				start_time_ms BIGINT NOT NULL,
				end_time_ms BIGINT NOT NULL,
				duration_ms BIGINT NOT NULL,
				error_text TEXT
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGSERIAL PRIMARY KEY,
				input_path TEXT NOT NULL,
				output_path TEXT NOT NULL,
				task_count INT NOT NULL,
				owner_labeled INT NOT NULL,
				start_time_ms BIGINT NOT NULL,
				end_time_ms BIGINT NOT NULL,
				duration_ms BIGINT NOT NULL,
				error_text TEXT
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id INTEGER PRIMARY KEY AUTOINCREMENT,
				input_path TEXT NOT NULL,
				output_path TEXT NOT NULL,
				task_count INTEGER NOT NULL,
				owner_labeled INTEGER NOT NULL,
				start_time_ms INTEGER NOT NULL,
				end_time_ms INTEGER NOT NULL,
				duration_ms INTEGER NOT NULL,
				error_text TEXT
			);
		`, quotedTableName)
	}
}

// RecordRun stores one render invocation and returns its ID.
func (hs *HistoryStoreImpl) RecordRun(run schema.RenderRun) (int64, error) {
	// Skip for NoneBackend
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return 0, nil
	}

	var errorText sql.NullString
	if run.Err != nil {
		errorText = sql.NullString{String: run.Err.Error(), Valid: true}
	}
	ownerLabeled := 0
	if run.OwnerLabeled {
		ownerLabeled = 1
	}
	args := []any{
		run.InputPath,
		run.OutputPath,
		run.TaskCount,
		ownerLabeled,
		run.StartTime.UnixMilli(),
		run.EndTime.UnixMilli(),
		run.EndTime.Sub(run.StartTime).Milliseconds(),
		errorText,
	}

	query := fmt.Sprintf(
		`INSERT INTO %s (input_path, output_path, task_count, owner_labeled, start_time_ms, end_time_ms, duration_ms, error_text) VALUES (%s)`,
		quoteTableName(renderRunsTable, hs.backend),
		placeholders(hs.backend, len(args)),
	)

	var runID int64
	switch hs.backend {
	case schema.PostgreSQLBackend:
		if err := hs.db.QueryRow(query+" RETURNING run_id", args...).Scan(&runID); err != nil {
			return 0, fmt.Errorf("failed to insert render run: %w", err)
		}
	default: // SQLite and MySQL
		result, err := hs.db.Exec(query, args...)
		if err != nil {
			return 0, fmt.Errorf("failed to insert render run: %w", err)
		}
		if runID, err = result.LastInsertId(); err != nil {
			return 0, fmt.Errorf("failed to read render run ID: %w", err)
		}
	}

	return runID, nil
}

// GetStatus returns status information about the history store.
func (hs *HistoryStoreImpl) GetStatus() (schema.HistoryStatus, error) {
	status := schema.HistoryStatus{
		Backend:   string(hs.backend),
		Connected: hs.db != nil,
	}

	if hs.backend == schema.NoneBackend || hs.db == nil {
		return status, nil
	}

	quotedTableName := quoteTableName(renderRunsTable, hs.backend)

	totalsQuery := fmt.Sprintf(`
		SELECT COUNT(*),
			COALESCE(SUM(CASE WHEN error_text IS NOT NULL THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(task_count), 0)
		FROM %s`, quotedTableName)
	if err := hs.db.QueryRow(totalsQuery).Scan(&status.TotalRuns, &status.FailedRuns, &status.TotalTasks); err != nil {
		return status, fmt.Errorf("failed to get run totals: %w", err)
	}

	if status.TotalRuns == 0 {
		return status, nil
	}

	var lastMs, oldestMs int64
	lastQuery := fmt.Sprintf("SELECT run_id, start_time_ms FROM %s ORDER BY run_id DESC LIMIT 1", quotedTableName)
	if err := hs.db.QueryRow(lastQuery).Scan(&status.LastRunID, &lastMs); err != nil {
		return status, fmt.Errorf("failed to get last run info: %w", err)
	}
	oldestQuery := fmt.Sprintf("SELECT start_time_ms FROM %s ORDER BY run_id ASC LIMIT 1", quotedTableName)
	if err := hs.db.QueryRow(oldestQuery).Scan(&oldestMs); err != nil {
		return status, fmt.Errorf("failed to get oldest run time: %w", err)
	}
	status.LastRunTime = time.UnixMilli(lastMs)
	status.OldestRunTime = time.UnixMilli(oldestMs)

	return status, nil
}

// GetAllRuns returns every recorded run ordered by ID.
func (hs *HistoryStoreImpl) GetAllRuns() ([]schema.RenderRunRecord, error) {
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return nil, nil
	}

	query := fmt.Sprintf(`
		SELECT run_id, input_path, output_path, task_count, owner_labeled,
			start_time_ms, end_time_ms, duration_ms, error_text
		FROM %s ORDER BY run_id ASC`, quoteTableName(renderRunsTable, hs.backend))

	rows, err := hs.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query render runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []schema.RenderRunRecord
	for rows.Next() {
		var (
			record         schema.RenderRunRecord
			ownerLabeled   int
			startMs, endMs int64
			errorText      sql.NullString
		)
		if err := rows.Scan(
			&record.RunID,
			&record.InputPath,
			&record.OutputPath,
			&record.TaskCount,
			&ownerLabeled,
			&startMs,
			&endMs,
			&record.DurationMs,
			&errorText,
		); err != nil {
			return nil, fmt.Errorf("failed to scan render run: %w", err)
		}
		record.OwnerLabeled = ownerLabeled != 0
		record.StartTime = time.UnixMilli(startMs)
		record.EndTime = time.UnixMilli(endMs)
		if errorText.Valid {
			text := errorText.String
			record.ErrorText = &text
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate render runs: %w", err)
	}
	return records, nil
}

// Close closes the database connection.
func (hs *HistoryStoreImpl) Close() error {
	if hs.db != nil {
		return hs.db.Close()
	}
	return nil
}

// validateTableName ensures the table name is safe to interpolate into SQL.
func validateTableName(name string) error {
	if name == "" {
		return fmt.Errorf("table name cannot be empty")
	}
	if !tableNamePattern.MatchString(name) {
		return fmt.Errorf("invalid table name: %s (must match pattern %s)", name, tableNamePattern)
	}
	return nil
}

// quoteTableName returns the properly quoted table name for the given backend.
func quoteTableName(name string, backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf("`%s`", name)
	default: // SQLite and PostgreSQL
		return fmt.Sprintf("\"%s\"", name)
	}
}

// placeholders returns n bind parameters in the dialect of the backend.
func placeholders(backend schema.DatabaseBackend, n int) string {
	params := make([]string, n)
	for i := range params {
		if backend == schema.PostgreSQLBackend {
			params[i] = fmt.Sprintf("$%d", i+1)
		} else {
			params[i] = "?"
		}
	}
	return strings.Join(params, ", ")
}
