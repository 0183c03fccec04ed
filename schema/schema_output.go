package schema

// EnrichedTask adds presentation data to a TaskRecord.
type EnrichedTask struct {
	Row      int      `json:"row" yaml:"row"`
	Task     string   `json:"task" yaml:"task"`
	Start    string   `json:"start" yaml:"start"`
	End      string   `json:"end" yaml:"end"`
	SpanDays int      `json:"span_days" yaml:"span_days"`
	Span     SpanKind `json:"span" yaml:"span"`
	Owner    *string  `json:"owner" yaml:"owner"`
}

// EnrichTasks adds a 1-based row number, formatted dates and a span label to sorted tasks.
func EnrichTasks(tasks []TaskRecord) []EnrichedTask {
	output := make([]EnrichedTask, len(tasks))
	for i, t := range tasks {
		var owner *string
		if t.Owner.Valid {
			v := t.Owner.Value
			owner = &v
		}
		output[i] = EnrichedTask{
			Row:      i + 1,
			Task:     t.Name,
			Start:    t.Start.Format(DateLayout),
			End:      t.End.Format(DateLayout),
			SpanDays: t.SpanDays(),
			Span:     t.Span(),
			Owner:    owner,
		}
	}
	return output
}
