package schema

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOptionalString(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		var o OptionalString
		assert.Equal(t, "", o.String())
		b, err := json.Marshal(o)
		require.NoError(t, err)
		assert.Equal(t, "null", string(b))
	})

	t.Run("present", func(t *testing.T) {
		o := SomeString("Alice")
		assert.Equal(t, "Alice", o.String())
		b, err := json.Marshal(o)
		require.NoError(t, err)
		assert.Equal(t, `"Alice"`, string(b))
	})

	t.Run("yaml", func(t *testing.T) {
		b, err := yaml.Marshal(map[string]OptionalString{"a": SomeString("Bob"), "b": {}})
		require.NoError(t, err)
		assert.Equal(t, "a: Bob\nb: null\n", string(b))
	})
}

func TestTaskRecordSpan(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		wantDays int
		wantKind SpanKind
	}{
		{"normal", date(2024, 1, 1), date(2024, 1, 5), 4, NormalSpan},
		{"same day", date(2024, 1, 3), date(2024, 1, 3), 0, SameDaySpan},
		{"negative", date(2024, 1, 10), date(2024, 1, 8), -2, NegativeSpan},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := TaskRecord{Name: tt.name, Start: tt.start, End: tt.end}
			assert.Equal(t, tt.wantDays, task.SpanDays())
			assert.Equal(t, tt.wantKind, task.Span())
		})
	}
}

func TestTaskRecordHasOwner(t *testing.T) {
	assert.False(t, TaskRecord{}.HasOwner())
	assert.False(t, TaskRecord{Owner: SomeString("")}.HasOwner())
	assert.True(t, TaskRecord{Owner: SomeString("Alice")}.HasOwner())
}

func TestEnrichTasks(t *testing.T) {
	tasks := []TaskRecord{
		{Name: "Design", Start: date(2024, 1, 1), End: date(2024, 1, 5), Owner: SomeString("Alice")},
		{Name: "Build", Start: date(2024, 1, 3), End: date(2024, 1, 3)},
	}

	enriched := EnrichTasks(tasks)
	require.Len(t, enriched, 2)

	assert.Equal(t, 1, enriched[0].Row)
	assert.Equal(t, "2024-01-01", enriched[0].Start)
	assert.Equal(t, "2024-01-05", enriched[0].End)
	require.NotNil(t, enriched[0].Owner)
	assert.Equal(t, "Alice", *enriched[0].Owner)

	assert.Equal(t, 2, enriched[1].Row)
	assert.Equal(t, SameDaySpan, enriched[1].Span)
	assert.Nil(t, enriched[1].Owner)
}

func TestChartHelpers(t *testing.T) {
	c := Chart{
		YLabel:       "Owner",
		Rows:         []ChartRow{{TickLabel: "Alice", Left: 10, Width: 2}, {TickLabel: ""}},
		WidthInches:  10,
		HeightInches: 3,
		DPI:          150,
	}
	assert.Equal(t, 2, c.BarCount())
	assert.Equal(t, []string{"Alice", ""}, c.TickLabels())
	assert.True(t, c.OwnerLabeled())
	assert.InDelta(t, 12.0, c.Rows[0].Right(), 1e-9)

	w, h := c.PixelSize()
	assert.Equal(t, 1500, w)
	assert.Equal(t, 450, h)
}
