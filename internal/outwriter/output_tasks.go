package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/gantt/internal/contract"
	"github.com/huangsam/gantt/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeTasksTable generates and writes the human-readable table.
func writeTasksTable(w io.Writer, tasks []schema.EnrichedTask, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Row", "Task", "Start", "End", "Days", "Span", "Owner"})
	table.Configure(func(config *tablewriter.Config) {
		config.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := GetMaxTaskNameWidth(cfg)
	var data [][]string
	for _, t := range tasks {
		span := string(t.Span)
		if cfg.UseColors {
			span = contract.GetColorLabel(t.Span)
		}
		data = append(data, []string{
			strconv.Itoa(t.Row),
			contract.TruncateText(t.Task, nameWidth),
			t.Start,
			t.End,
			strconv.Itoa(t.SpanDays),
			span,
			ownerText(t.Owner),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if len(tasks) == 0 {
		_, err := fmt.Fprintln(w, "No tasks found")
		return err
	}
	first, last := tasks[0].Start, tasks[0].End
	for _, t := range tasks[1:] {
		last = max(last, t.End)
	}
	_, err := fmt.Fprintf(w, "Showing %d tasks from %s to %s\n", len(tasks), first, last)
	return err
}

// writeTasksCSV writes tasks with a header row in render order.
func writeTasksCSV(w io.Writer, tasks []schema.EnrichedTask) error {
	header := []string{"row", "task", "start", "end", "span_days", "span", "owner"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, t := range tasks {
			row := []string{
				strconv.Itoa(t.Row),
				t.Task,
				t.Start,
				t.End,
				strconv.Itoa(t.SpanDays),
				string(t.Span),
				ownerText(t.Owner),
			}
			if err := csvWriter.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

func ownerText(owner *string) string {
	if owner == nil {
		return ""
	}
	return *owner
}
