package core

import (
	"testing"
	"time"

	"github.com/huangsam/gantt/schema"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func names(tasks []schema.TaskRecord) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Name
	}
	return out
}

// TestSortTasks tests chronological ordering of tasks.
func TestSortTasks(t *testing.T) {
	t.Run("start then end", func(t *testing.T) {
		tasks := []schema.TaskRecord{
			{Name: "A", Start: day(2024, 1, 2), End: day(2024, 1, 3)},
			{Name: "C", Start: day(2024, 1, 1), End: day(2024, 1, 9)},
			{Name: "B", Start: day(2024, 1, 1), End: day(2024, 1, 4)},
		}
		assert.Equal(t, []string{"B", "C", "A"}, names(SortTasks(tasks)))
	})

	t.Run("stable for equal keys", func(t *testing.T) {
		tasks := []schema.TaskRecord{
			{Name: "first", Start: day(2024, 1, 3), End: day(2024, 1, 4)},
			{Name: "second", Start: day(2024, 1, 3), End: day(2024, 1, 4)},
			{Name: "early", Start: day(2024, 1, 1), End: day(2024, 1, 1)},
			{Name: "third", Start: day(2024, 1, 3), End: day(2024, 1, 4)},
		}
		assert.Equal(t, []string{"early", "first", "second", "third"}, names(SortTasks(tasks)))
	})

	t.Run("does not mutate input", func(t *testing.T) {
		tasks := []schema.TaskRecord{
			{Name: "late", Start: day(2024, 2, 1), End: day(2024, 2, 1)},
			{Name: "early", Start: day(2024, 1, 1), End: day(2024, 1, 1)},
		}
		_ = SortTasks(tasks)
		assert.Equal(t, []string{"late", "early"}, names(tasks))
	})

	t.Run("end before start still sorts by start", func(t *testing.T) {
		tasks := []schema.TaskRecord{
			{Name: "normal", Start: day(2024, 1, 5), End: day(2024, 1, 6)},
			{Name: "backwards", Start: day(2024, 1, 4), End: day(2024, 1, 1)},
		}
		assert.Equal(t, []string{"backwards", "normal"}, names(SortTasks(tasks)))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, SortTasks(nil))
	})
}
