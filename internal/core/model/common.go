package model

// Persisted document constants
const (
	// BoundarySummary is the summary value a boundary mark is stored under.
	BoundarySummary = "STOP"

	// TimeLayout is the canonical time string layout, always used on save.
	TimeLayout = "2006-01-02T15:04:05"
	// LegacyTimeLayout is accepted on load only.
	LegacyTimeLayout = "2006:01:02T15:04:05"
)

// Output formats
const (
	OutputTable   = "table"
	OutputJSON    = "json"
	OutputCSV     = "csv"
	OutputSummary = "summary"
)

// Store formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)
