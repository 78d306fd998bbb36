package ingestion

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gonum.org/v1/gonum/stat"

	"github.com/BenjaNor/FinalProject/internal/domain"
)

// Month buckets used for the annual price change.
const (
	EarlyMonthMax = 2  // January and February
	LateMonthMin  = 11 // November and December
)

// minDateLen is the shortest date string carrying "YYYY-MM".
const minDateLen = 7

// ComputePriceChanges loads the price-history CSV and returns the annual
// percent change per ticker and year.
func ComputePriceChanges(path string, opts ParseOptions) (domain.PriceChangeTable, LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, LoadStats{Source: path}, fmt.Errorf("open price file: %w", err)
	}
	defer f.Close()

	return ReadPriceChanges(f, path, opts)
}

// ReadPriceChanges parses a price-history CSV from r and computes changes.
func ReadPriceChanges(r io.Reader, source string, opts ParseOptions) (domain.PriceChangeTable, LoadStats, error) {
	opts = opts.withDefaults()

	raw, stats, err := CollectPriceObservations(r, source, opts)
	if err != nil {
		return nil, stats, err
	}

	table := PriceChangesFromObservations(raw)
	for _, ticker := range table.Tickers() {
		for year, pct := range table[ticker] {
			if math.IsNaN(pct) || math.IsInf(pct, 0) {
				opts.Logger.Warn().Str("ticker", ticker).Int("year", year).Float64("change", pct).Msg("non-finite price change, early average is zero")
			}
		}
	}

	stats.record(opts.Metrics)
	opts.Logger.Debug().
		Str("source", source).
		Int("rows", stats.Rows).
		Int("skipped", stats.SkippedRows).
		Int("fallbacks", stats.Fallbacks).
		Int("tickers", len(table)).
		Msg("computed price changes")

	return table, stats, nil
}

// CollectPriceObservations reads the price-history CSV into
// ticker -> year -> (month, price) samples.
//
// Layout:
//   - header row names the ticker of every column from index 2 on
//   - column 0 is unused, column 1 is a date starting with "YYYY-MM"
//   - rows whose date is shorter than 7 characters are skipped
func CollectPriceObservations(r io.Reader, source string, opts ParseOptions) (domain.RawPriceObservations, LoadStats, error) {
	stats := LoadStats{Source: source}
	raw := make(domain.RawPriceObservations)

	reader := newCSVReader(r)
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return raw, stats, nil
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

		var date string
		if len(record) > 1 {
			date = record[1]
		}
		if len(date) < minDateLen {
			stats.SkippedRows++
			continue
		}
		line, _ := reader.FieldPos(0)

		year, err := parser.int(line, 2, date[:4], "year")
		if err != nil {
			return nil, stats, err
		}
		month, err := parser.int(line, 2, date[5:7], "month")
		if err != nil {
			return nil, stats, err
		}

		for i := 2; i < len(header); i++ {
			price := 0.0
			if i < len(record) {
				v, ok, err := parser.float(line, i+1, record[i])
				if err != nil {
					return nil, stats, err
				}
				if !ok {
					continue
				}
				price = v
			} else if opts.Mode == ParseStrict {
				continue
			}
			raw.Add(header[i], year, domain.PriceObservation{Month: month, Price: price})
		}
		stats.Rows++
	}

	return raw, stats, nil
}

// PriceChangesFromObservations reduces raw samples to percent changes.
// A (ticker, year) gets an entry only when both the early and late month
// buckets hold at least one sample.
func PriceChangesFromObservations(raw domain.RawPriceObservations) domain.PriceChangeTable {
	table := make(domain.PriceChangeTable, len(raw))
	for ticker, years := range raw {
		changes := make(map[int]float64, len(years))
		for year, observations := range years {
			if pct, ok := PercentChange(observations); ok {
				changes[year] = pct
			}
		}
		table[ticker] = changes
	}
	return table
}

// PercentChange computes (mean(late) - mean(early)) / mean(early) * 100
// over one year of samples. Months 3 through 10 are ignored.
func PercentChange(observations []domain.PriceObservation) (float64, bool) {
	var early, late []float64
	for _, o := range observations {
		switch {
		case o.Month <= EarlyMonthMax:
			early = append(early, o.Price)
		case o.Month >= LateMonthMin:
			late = append(late, o.Price)
		}
	}

	if len(early) == 0 || len(late) == 0 {
		return 0, false
	}

	earlyAvg := stat.Mean(early, nil)
	lateAvg := stat.Mean(late, nil)
	return (lateAvg - earlyAvg) / earlyAvg * 100, true
}
