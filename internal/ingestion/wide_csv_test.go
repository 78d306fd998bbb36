package ingestion

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const assetsCSV = `Ticker,2022,2021,2020
AAA,300,200,100
BBB,50,n/a,10
,1,2,3
CCC,7
`

func TestReadMetricSeries_YearAnchoring(t *testing.T) {
	series, stats, err := ReadMetricSeries(strings.NewReader(assetsCSV), "assets", DefaultParseOptions())
	require.NoError(t, err)

	assert.Equal(t, map[int]float64{2022: 300, 2021: 200, 2020: 100}, series["AAA"])
	assert.Equal(t, map[int]float64{2022: 7}, series["CCC"], "ragged rows keep the columns they have")
	assert.Equal(t, 3, stats.Rows)
	assert.Equal(t, 1, stats.SkippedRows)
}

func TestReadMetricSeries_EmptyTickerSkipped(t *testing.T) {
	series, _, err := ReadMetricSeries(strings.NewReader(assetsCSV), "assets", DefaultParseOptions())
	require.NoError(t, err)

	_, ok := series[""]
	assert.False(t, ok)
	assert.Len(t, series, 3)
}

func TestReadMetricSeries_LenientDefaultsToZero(t *testing.T) {
	series, stats, err := ReadMetricSeries(strings.NewReader(assetsCSV), "assets", DefaultParseOptions())
	require.NoError(t, err)

	v, ok := series.Lookup("BBB", 2021)
	assert.True(t, ok, "lenient mode keeps the cell as an explicit zero")
	assert.Equal(t, 0.0, v)
	assert.Equal(t, 1, stats.Fallbacks)
}

func TestReadMetricSeries_StrictRejectsMalformed(t *testing.T) {
	opts := DefaultParseOptions()
	opts.Mode = ParseStrict

	_, _, err := ReadMetricSeries(strings.NewReader(assetsCSV), "assets", opts)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse), "expected ErrParse, got %v", err)
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), `"n/a"`)
}

func TestReadMetricSeries_StrictEmptyCellIsMissing(t *testing.T) {
	opts := DefaultParseOptions()
	opts.Mode = ParseStrict

	input := "Ticker,2022,2021\nAAA,,5\n"
	series, stats, err := ReadMetricSeries(strings.NewReader(input), "cash", opts)
	require.NoError(t, err)

	_, ok := series.Lookup("AAA", 2022)
	assert.False(t, ok)
	v, ok := series.Lookup("AAA", 2021)
	assert.True(t, ok)
	assert.Equal(t, 5.0, v)
	assert.Equal(t, 1, stats.Missing)
}

func TestReadMetricSeries_CustomAnchorYear(t *testing.T) {
	opts := DefaultParseOptions()
	opts.AnchorYear = 2024

	series, _, err := ReadMetricSeries(strings.NewReader(assetsCSV), "assets", opts)
	require.NoError(t, err)

	assert.Equal(t, map[int]float64{2024: 300, 2023: 200, 2022: 100}, series["AAA"])
}

func TestReadMetricSeries_DuplicateTickerLastRowWins(t *testing.T) {
	input := "Ticker,2022\nAAA,1\nAAA,2\n"
	series, _, err := ReadMetricSeries(strings.NewReader(input), "assets", DefaultParseOptions())
	require.NoError(t, err)

	assert.Equal(t, map[int]float64{2022: 2}, series["AAA"])
}

func TestReadMetricSeries_HeaderOnlyAndEmpty(t *testing.T) {
	series, _, err := ReadMetricSeries(strings.NewReader("Ticker,2022\n"), "assets", DefaultParseOptions())
	require.NoError(t, err)
	assert.Empty(t, series)

	series, _, err = ReadMetricSeries(strings.NewReader(""), "assets", DefaultParseOptions())
	require.NoError(t, err)
	assert.Empty(t, series)
}

func TestLoadMetricSeries_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets.csv")
	require.NoError(t, os.WriteFile(path, []byte(assetsCSV), 0o644))

	series, stats, err := LoadMetricSeries(path, DefaultParseOptions())
	require.NoError(t, err)
	assert.Len(t, series, 3)
	assert.Equal(t, path, stats.Source)
}

func TestLoadMetricSeries_MissingFile(t *testing.T) {
	_, _, err := LoadMetricSeries(filepath.Join(t.TempDir(), "nope.csv"), DefaultParseOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist), "expected wrapped ErrNotExist, got %v", err)
}

func TestParseParseMode(t *testing.T) {
	m, err := ParseParseMode("STRICT")
	require.NoError(t, err)
	assert.Equal(t, ParseStrict, m)

	m, err = ParseParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ParseLenient, m)

	_, err = ParseParseMode("loose")
	assert.Error(t, err)
}
