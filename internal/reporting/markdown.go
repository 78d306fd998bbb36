package reporting

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// RenderSummaryMarkdown renders a run summary as Markdown string.
func RenderSummaryMarkdown(s *Summary) string {
	var sb strings.Builder

	// Header
	sb.WriteString("# Fundamentals Panel Run\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", s.GeneratedAt.Format(time.RFC3339)))
	if !s.StartedAt.IsZero() {
		sb.WriteString(fmt.Sprintf("Started: %s | Duration: %s\n\n", s.StartedAt.Format(time.RFC3339), s.Duration))
	}

	// Panel Summary
	sb.WriteString("## Panel Summary\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Tickers | %d |\n", s.Tickers))
	sb.WriteString(fmt.Sprintf("| Ticker-Year Records | %d |\n", s.Records))
	sb.WriteString(fmt.Sprintf("| Feature Rows | %d |\n", s.FeatureRows))
	sb.WriteString(fmt.Sprintf("| Parse Fallbacks | %d |\n", s.ParseFallbacks))
	sb.WriteString(fmt.Sprintf("| Missing Cells | %d |\n", s.MissingCells))
	sb.WriteString("\n")

	// Inputs
	sb.WriteString("## Inputs\n\n")
	if len(s.Sources) > 0 {
		sb.WriteString("| Source | Rows | Skipped | Fallbacks | Missing |\n")
		sb.WriteString("|--------|------|---------|-----------|---------|\n")
		for _, src := range s.Sources {
			sb.WriteString(fmt.Sprintf("| %s | %d | %d | %d | %d |\n",
				src.Source, src.Rows, src.SkippedRows, src.Fallbacks, src.Missing))
		}
	} else {
		sb.WriteString("No inputs loaded.\n")
	}
	sb.WriteString("\n")

	// Missing inputs
	sb.WriteString("## Missing Join Inputs\n\n")
	if len(s.MissingInputs) > 0 {
		sb.WriteString("Records whose input defaulted to 0.0:\n\n")
		sb.WriteString("| Metric | Records |\n")
		sb.WriteString("|--------|---------|\n")
		for _, m := range s.MissingInputs {
			sb.WriteString(fmt.Sprintf("| %s | %d |\n", m.Metric, m.Count))
		}
	} else {
		sb.WriteString("Every record had all inputs.\n")
	}
	sb.WriteString("\n")

	// Labels
	sb.WriteString("## Label Distribution\n\n")
	sb.WriteString("| Label | Class | Rows | Share |\n")
	sb.WriteString("|-------|-------|------|-------|\n")
	for _, l := range s.Labels {
		sb.WriteString(fmt.Sprintf("| %d | %s | %d | %.4f |\n", int(l.Label), l.Label, l.Count, l.Share))
	}
	sb.WriteString("\n")

	return sb.String()
}

// WriteSummaryMarkdown writes RenderSummaryMarkdown output to path.
func WriteSummaryMarkdown(path string, s *Summary) error {
	if err := os.WriteFile(path, []byte(RenderSummaryMarkdown(s)), 0644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
