package reporting

import (
	"time"

	"github.com/BenjaNor/FinalProject/internal/domain"
)

// Summary represents one pipeline run report.
type Summary struct {
	// Metadata
	GeneratedAt time.Time
	StartedAt   time.Time
	Duration    time.Duration

	// Inputs (one row per loaded file, in load order)
	Sources []SourceRow

	// Panel
	Tickers        int
	Records        int
	ParseFallbacks int
	MissingCells   int
	MissingInputs  []MissingInputRow // sorted by metric

	// Output
	FeatureRows int
	Labels      []LabelRow // one per label, ascending
}

// SourceRow describes one loaded CSV file.
type SourceRow struct {
	Source      string
	Rows        int
	SkippedRows int
	Fallbacks   int
	Missing     int
}

// MissingInputRow counts joined records lacking one input metric.
type MissingInputRow struct {
	Metric domain.Metric
	Count  int
}

// LabelRow is the label distribution entry for one class.
type LabelRow struct {
	Label domain.Label
	Count int
	Share float64 // Count / FeatureRows, 0 when there are no rows
}
