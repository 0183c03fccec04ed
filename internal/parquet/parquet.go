// Package parquet exports render history to Parquet files
// using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/gantt/schema"
	"github.com/parquet-go/parquet-go"
)

// RenderRun represents a single recorded render invocation.
// This struct maps to the gantt_render_runs database table.
type RenderRun struct {
	// RunID is the unique identifier for this run
	RunID int64 `parquet:"run_id,snappy"`

	InputPath  string `parquet:"input_path,snappy"`
	OutputPath string `parquet:"output_path,snappy"`

	// TaskCount is the number of bars drawn
	TaskCount int32 `parquet:"task_count,snappy"`

	// OwnerLabeled is true when rows were labeled by owner instead of by number
	OwnerLabeled bool `parquet:"owner_labeled,snappy"`

	StartTime  time.Time `parquet:"start_time,snappy"`
	EndTime    time.Time `parquet:"end_time,snappy"`
	DurationMs int64     `parquet:"duration_ms,snappy"`

	// ErrorText is set only for failed runs
	ErrorText *string `parquet:"error_text,optional,snappy"`
}

// WriteRenderRunsParquet writes a slice of RenderRun structs to a Parquet file.
func WriteRenderRunsParquet(data []RenderRun, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the RenderRun struct tags
	writer := parquet.NewGenericWriter[RenderRun](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}

	return file.Close()
}

// ConvertRenderRunRecords converts database records to Parquet rows.
func ConvertRenderRunRecords(records []schema.RenderRunRecord) []RenderRun {
	result := make([]RenderRun, len(records))
	for i, r := range records {
		result[i] = RenderRun{
			RunID:        r.RunID,
			InputPath:    r.InputPath,
			OutputPath:   r.OutputPath,
			TaskCount:    int32(r.TaskCount),
			OwnerLabeled: r.OwnerLabeled,
			StartTime:    r.StartTime,
			EndTime:      r.EndTime,
			DurationMs:   r.DurationMs,
			ErrorText:    r.ErrorText,
		}
	}
	return result
}
