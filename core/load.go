package core

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/huangsam/gantt/schema"
)

// utf8BOM is stripped from the first header cell when present.
const utf8BOM = "\ufeff"

// LoadTasks reads and validates the task CSV at path.
func LoadTasks(path string) ([]schema.TaskRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	tasks, err := ReadTasks(f)
	if err != nil {
		var ioErr *IOError
		if errors.As(err, &ioErr) && ioErr.Path == "" {
			ioErr.Path = path
		}
		return nil, err
	}
	return tasks, nil
}

// ReadTasks parses task rows from CSV data with a header row.
// The header must contain Task, Start and End; Owner is optional and other columns are ignored.
// The required column check happens before any date is parsed.
func ReadTasks(r io.Reader) ([]schema.TaskRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, readError(err)
	}

	columns := indexColumns(header)
	if missing := missingColumns(columns); len(missing) > 0 {
		return nil, &MissingColumnsError{Missing: missing}
	}

	ownerIdx, hasOwner := columns[schema.OwnerColumn]

	var tasks []schema.TaskRecord
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, readError(err)
		}
		line, _ := reader.FieldPos(0)

		start, err := parseDateField(record, columns[schema.StartColumn], schema.StartColumn, line)
		if err != nil {
			return nil, err
		}
		end, err := parseDateField(record, columns[schema.EndColumn], schema.EndColumn, line)
		if err != nil {
			return nil, err
		}

		task := schema.TaskRecord{
			Name:  field(record, columns[schema.TaskColumn]),
			Start: start,
			End:   end,
			Line:  line,
		}
		if hasOwner {
			if owner := field(record, ownerIdx); owner != "" {
				task.Owner = schema.SomeString(owner)
			}
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

// indexColumns maps header names to their position. The first occurrence of a name wins.
func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		if _, seen := columns[name]; !seen {
			columns[name] = i
		}
	}
	return columns
}

// missingColumns returns the required columns absent from the header, sorted alphabetically.
func missingColumns(columns map[string]int) []string {
	var missing []string
	for _, name := range schema.RequiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	slices.Sort(missing)
	return missing
}

// field returns the trimmed cell at idx, or "" for short rows.
func field(record []string, idx int) string {
	if idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func parseDateField(record []string, idx int, column string, line int) (t time.Time, err error) {
	value := field(record, idx)
	t, err = ParseDate(value)
	if err != nil {
		return t, &DateParseError{Line: line, Column: column, Value: value, Err: err}
	}
	return t, nil
}

func readError(err error) error {
	return &IOError{Op: "read", Err: fmt.Errorf("malformed CSV: %w", err)}
}
