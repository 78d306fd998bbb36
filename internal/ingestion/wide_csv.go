package ingestion

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BenjaNor/FinalProject/internal/domain"
)

// LoadMetricSeries loads one wide metric CSV into ticker -> year -> value.
// Failing to open the file is the only error in lenient mode besides a
// malformed CSV stream.
func LoadMetricSeries(path string, opts ParseOptions) (domain.MetricSeries, LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, LoadStats{Source: path}, fmt.Errorf("open metric file: %w", err)
	}
	defer f.Close()

	return ReadMetricSeries(f, path, opts)
}

// ReadMetricSeries parses a wide metric CSV from r.
//
// Layout:
//   - first row is a header and is ignored
//   - column 0 is the ticker; rows with an empty ticker are skipped
//   - value column i (0-based, after the ticker) holds year AnchorYear - i
//
// A ticker appearing on several rows keeps the last row.
func ReadMetricSeries(r io.Reader, source string, opts ParseOptions) (domain.MetricSeries, LoadStats, error) {
	opts = opts.withDefaults()
	stats := LoadStats{Source: source}
	series := make(domain.MetricSeries)

	reader := newCSVReader(r)
	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return series, stats, nil
		}
		return nil, stats, fmt.Errorf("read header of %s: %w", source, err)
	}

	parser := newFieldParser(source, opts, &stats)

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, stats, fmt.Errorf("read %s: %w", source, err)
		}

		ticker := record[0]
		if ticker == "" {
			stats.SkippedRows++
			continue
		}
		line, _ := reader.FieldPos(0)

		years := make(map[int]float64, len(record)-1)
		for i, cell := range record[1:] {
			v, ok, err := parser.float(line, i+2, cell)
			if err != nil {
				return nil, stats, err
			}
			if !ok {
				continue
			}
			years[opts.AnchorYear-i] = v
		}

		if _, dup := series[ticker]; dup {
			opts.Logger.Debug().Str("source", source).Str("ticker", ticker).Int("line", line).Msg("duplicate ticker row replaces earlier row")
		}
		series[ticker] = years
		stats.Rows++
	}

	stats.record(opts.Metrics)
	opts.Logger.Debug().
		Str("source", source).
		Int("rows", stats.Rows).
		Int("skipped", stats.SkippedRows).
		Int("fallbacks", stats.Fallbacks).
		Int("missing", stats.Missing).
		Msg("loaded metric series")

	return series, stats, nil
}
