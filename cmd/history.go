package cmd

import (
	"fmt"
	"os"

	"github.com/huangsam/gantt/internal/contract"
	"github.com/huangsam/gantt/internal/iocache"
	"github.com/huangsam/gantt/internal/outwriter"
	"github.com/huangsam/gantt/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// historyConfig resolves the history backend settings from config, env and flags.
func historyConfig() (schema.DatabaseBackend, string, error) {
	if err := loadConfigFile(); err != nil {
		return "", "", err
	}

	backend, err := contract.ParseDatabaseBackend(viper.GetString("history-backend"))
	if err != nil {
		return "", "", err
	}
	connStr := viper.GetString("history-db-connect")
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return "", "", err
	}
	return backend, connStr, nil
}

// historySetup loads the minimal configuration for status and export, and opens the store.
func historySetup() error {
	backend, connStr, err := historyConfig()
	if err != nil {
		return err
	}

	if err := iocache.InitHistory(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize render history: %w", err)
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr
	cfg.OutputFile = viper.GetString("output-file")

	return nil
}

// historySetupWrapper wraps historySetup to provide PreRunE for history commands.
func historySetupWrapper(_ *cobra.Command, _ []string) error {
	return historySetup()
}

// historyMigrateSetup loads the backend settings without opening the store,
// so that clear and migrate work on databases the store has never touched.
func historyMigrateSetup() error {
	backend, connStr, err := historyConfig()
	if err != nil {
		return err
	}

	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetHistoryDBFilePath()
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr

	return nil
}

// historyMigrateSetupWrapper wraps historyMigrateSetup to provide PreRunE for clear and migrate.
func historyMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return historyMigrateSetup()
}

// historyCmd groups render history management.
//
// Note: history subcommands skip sharedSetup, so a missing tasks file or a bad
// --output value does not block them.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the render history and its exports",
	Long: `Manage the optional log of render runs.

When --history-backend is set, each render records the input and output paths,
task count, whether owner labels were drawn, timing and any error.

Supported backends: SQLite, MySQL, PostgreSQL, or None (default, disabled)

Subcommands:
  status  - Show render history statistics
  export  - Export runs to Parquet
  clear   - Remove all recorded runs
  migrate - Run database schema migrations

Examples:
  # Check history status
  gantt history status --history-backend sqlite

  # Export for analysis in pandas/DuckDB
  gantt history export --history-backend sqlite --output-file runs.parquet`,
}

// historyClearCmd clears the render history.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recorded render runs",
	Long: `Delete every recorded render run.

For SQLite the database file is removed; for MySQL and PostgreSQL the runs
table is dropped.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  gantt history export --history-backend sqlite --output-file backup.parquet
  gantt history clear --history-backend sqlite`,
	PreRunE: historyMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ClearHistory(cfg.HistoryBackend, cfg.HistoryDBConnect, cfg.HistoryDBConnect); err != nil {
			contract.LogFatal("Failed to clear render history", err)
		}
		fmt.Println("Render history cleared successfully.")
	},
}

// historyStatusCmd shows render history status.
var historyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display render history statistics and connection details",
	Long: `Show the backend, connection state, run counts and the time span of
recorded renders.

Examples:
  gantt history status --history-backend sqlite`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := iocache.Manager.GetHistoryStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get render history status", err)
		}
		outwriter.PrintHistoryStatus(os.Stdout, status)
	},
}

// historyExportCmd exports render runs to a Parquet file.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export render history to Parquet",
	Long: `Write every recorded render run to a Parquet file for DuckDB, pandas
or BI tools.

Requires: --output-file parameter

Examples:
  gantt history export --history-backend sqlite --output-file runs.parquet
  duckdb -c "SELECT * FROM read_parquet('runs.parquet') LIMIT 10"`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ExecuteHistoryExport(iocache.Manager.GetHistoryStore(), cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export render history", err)
		}
	},
}

// historyMigrateCmd runs database migrations for the history store.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage schema versions of the render history database.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  gantt history migrate --history-backend sqlite

  # Migrate to specific version
  gantt history migrate --history-backend sqlite --target-version 1

  # Rollback to initial state
  gantt history migrate --history-backend sqlite --target-version 0`,
	PreRunE: historyMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iocache.MigrateHistory(cfg.HistoryBackend, cfg.HistoryDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
