package core

import (
	"slices"

	"github.com/huangsam/gantt/schema"
)

// SortTasks returns a copy of tasks ordered by start date, then end date.
// The sort is stable, so tasks with equal dates keep their input order.
func SortTasks(tasks []schema.TaskRecord) []schema.TaskRecord {
	sorted := slices.Clone(tasks)
	slices.SortStableFunc(sorted, func(a, b schema.TaskRecord) int {
		if c := a.Start.Compare(b.Start); c != 0 {
			return c
		}
		return a.End.Compare(b.End)
	})
	return sorted
}
