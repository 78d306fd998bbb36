package reporting

import (
	"sort"
	"time"

	"github.com/BenjaNor/FinalProject/internal/domain"
	"github.com/BenjaNor/FinalProject/internal/pipeline"
)

// Generator produces run summaries from pipeline results.
type Generator struct {
	now func() time.Time // Injectable clock for deterministic output
}

// NewGenerator creates a new report generator.
func NewGenerator() *Generator {
	return &Generator{
		now: func() time.Time { return time.Now().UTC() },
	}
}

// WithClock sets a custom clock function for deterministic output.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Generate builds a Summary from a pipeline result.
func (g *Generator) Generate(result *pipeline.Result) *Summary {
	stats := result.Stats

	s := &Summary{
		GeneratedAt:    g.now(),
		StartedAt:      stats.StartedAt,
		Duration:       stats.Duration,
		Tickers:        stats.Tickers,
		Records:        stats.Records,
		ParseFallbacks: stats.ParseFallbacks,
		MissingCells:   stats.MissingCells,
		FeatureRows:    stats.FeatureRows,
	}

	for _, src := range stats.Sources {
		s.Sources = append(s.Sources, SourceRow{
			Source:      src.Source,
			Rows:        src.Rows,
			SkippedRows: src.SkippedRows,
			Fallbacks:   src.Fallbacks,
			Missing:     src.Missing,
		})
	}

	s.MissingInputs = generateMissingInputs(stats.MissingInputs)
	s.Labels = generateLabels(stats.LabelCounts, stats.FeatureRows)

	return s
}

func generateMissingInputs(counts map[domain.Metric]int) []MissingInputRow {
	rows := make([]MissingInputRow, 0, len(counts))
	for m, n := range counts {
		rows = append(rows, MissingInputRow{Metric: m, Count: n})
	}

	// Sort by metric for deterministic output
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Metric < rows[j].Metric
	})
	return rows
}

func generateLabels(counts [domain.LabelCount]int, total int) []LabelRow {
	rows := make([]LabelRow, 0, domain.LabelCount)
	for i, n := range counts {
		row := LabelRow{Label: domain.Label(i), Count: n}
		if total > 0 {
			row.Share = float64(n) / float64(total)
		}
		rows = append(rows, row)
	}
	return rows
}
