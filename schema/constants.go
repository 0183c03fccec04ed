package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the tasks listing.
	OutputMode string

	// DatabaseBackend represents the database backend for render history.
	DatabaseBackend string

	// SpanKind classifies the relation between a task's start and end dates.
	SpanKind string
)

// All output modes supported by the tasks listing.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
	YAMLOut OutputMode = "yaml"
)

// All history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite"
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none" // default
)

// All span kinds.
const (
	NormalSpan   SpanKind = "Normal"
	SameDaySpan  SpanKind = "Same day"
	NegativeSpan SpanKind = "Negative"
)

// Column names of the task CSV.
const (
	TaskColumn  = "Task"
	StartColumn = "Start"
	EndColumn   = "End"
	OwnerColumn = "Owner"
)

// RequiredColumns lists the columns every task CSV must carry.
var RequiredColumns = []string{TaskColumn, StartColumn, EndColumn}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
	YAMLOut: {},
}

// ValidDatabaseBackends lists all valid history backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
