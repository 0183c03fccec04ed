package iocache

import (
	"errors"
	"fmt"

	"github.com/huangsam/gantt/internal/contract"
	"github.com/huangsam/gantt/internal/parquet"
)

// ExecuteHistoryExport writes every recorded render run to a Parquet file.
func ExecuteHistoryExport(store contract.HistoryStore, outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}
	if store == nil {
		return errors.New("render history is not initialized")
	}

	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}
	if status.TotalRuns == 0 {
		return errors.New("no render history found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)

	records, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve render runs: %w", err)
	}

	runs := parquet.ConvertRenderRunRecords(records)
	if err := parquet.WriteRenderRunsParquet(runs, outputFile); err != nil {
		return fmt.Errorf("failed to write render runs: %w", err)
	}
	fmt.Printf("Exported %d render runs to: %s\n", len(runs), outputFile)

	return nil
}
