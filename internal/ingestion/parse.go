package ingestion

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/BenjaNor/FinalProject/internal/observability"
)

// DefaultAnchorYear is the fiscal year of the first value column in the
// wide metric exports.
const DefaultAnchorYear = 2022

// ErrParse is returned in strict mode when a field is not a valid number.
var ErrParse = errors.New("parse error")

// ParseMode selects how malformed numeric fields are handled.
type ParseMode int

const (
	// ParseLenient defaults malformed fields to zero and keeps going.
	ParseLenient ParseMode = iota
	// ParseStrict records empty cells as missing and fails on malformed ones.
	ParseStrict
)

// String returns the string representation of ParseMode.
func (m ParseMode) String() string {
	if m == ParseStrict {
		return "strict"
	}
	return "lenient"
}

// ParseParseMode converts a config value into a ParseMode.
func ParseParseMode(s string) (ParseMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lenient":
		return ParseLenient, nil
	case "strict":
		return ParseStrict, nil
	}
	return ParseLenient, fmt.Errorf("unknown parse mode %q", s)
}

// ParseOptions configures both CSV loaders.
type ParseOptions struct {
	AnchorYear int                    // year of the first value column, 0 means DefaultAnchorYear
	Mode       ParseMode              // lenient or strict numeric parsing
	Logger     zerolog.Logger         // defaults to a no-op logger
	Metrics    *observability.Metrics // optional
}

// DefaultParseOptions returns lenient parsing anchored at DefaultAnchorYear.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		AnchorYear: DefaultAnchorYear,
		Mode:       ParseLenient,
		Logger:     zerolog.Nop(),
	}
}

func (o ParseOptions) withDefaults() ParseOptions {
	if o.AnchorYear == 0 {
		o.AnchorYear = DefaultAnchorYear
	}
	return o
}

// LoadStats summarizes one loaded CSV source.
type LoadStats struct {
	Source      string // file path or reader name
	Rows        int    // data rows that produced values
	SkippedRows int    // rows skipped for an empty ticker or short date
	Fallbacks   int    // malformed fields defaulted to zero (lenient)
	Missing     int    // empty cells recorded as missing (strict)
}

func (s LoadStats) record(m *observability.Metrics) {
	m.RecordLoad(s.Source, s.Rows, s.SkippedRows, s.Fallbacks, s.Missing)
}

// newCSVReader returns a reader that tolerates ragged rows.
func newCSVReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	return reader
}

// fieldParser applies the configured ParseMode to individual cells.
type fieldParser struct {
	source string
	mode   ParseMode
	logger zerolog.Logger
	stats  *LoadStats
}

func newFieldParser(source string, opts ParseOptions, stats *LoadStats) *fieldParser {
	return &fieldParser{
		source: source,
		mode:   opts.Mode,
		logger: opts.Logger.With().Str("source", source).Logger(),
		stats:  stats,
	}
}

// float parses a numeric cell. ok is false when the cell is treated as
// missing, which only happens for empty cells in strict mode.
func (p *fieldParser) float(line, col int, raw string) (float64, bool, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err == nil || errors.Is(err, strconv.ErrRange) {
		return v, true, nil
	}

	if p.mode == ParseStrict {
		if raw == "" {
			p.stats.Missing++
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("%w: %s line %d column %d: %q is not a number", ErrParse, p.source, line, col, raw)
	}

	p.stats.Fallbacks++
	p.logger.Debug().Int("line", line).Int("column", col).Str("value", raw).Msg("malformed number defaulted to 0")
	return 0, true, nil
}

// int parses a date component. Lenient mode defaults to 0.
func (p *fieldParser) int(line, col int, raw, what string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err == nil {
		return v, nil
	}

	if p.mode == ParseStrict {
		return 0, fmt.Errorf("%w: %s line %d column %d: %q is not a valid %s", ErrParse, p.source, line, col, raw, what)
	}

	p.stats.Fallbacks++
	p.logger.Debug().Int("line", line).Str(what, raw).Msg("malformed date component defaulted to 0")
	return 0, nil
}
