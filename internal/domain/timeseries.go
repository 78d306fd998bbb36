package domain

import "sort"

// MetricSeries holds one financial metric: ticker -> fiscal year -> value.
// Built once by the loader, read-only afterwards.
type MetricSeries map[string]map[int]float64

// Lookup returns the value for (ticker, year) and whether it was present.
func (s MetricSeries) Lookup(ticker string, year int) (float64, bool) {
	years, ok := s[ticker]
	if !ok {
		return 0, false
	}
	v, ok := years[year]
	return v, ok
}

// Set stores a value, creating the ticker entry on first use.
func (s MetricSeries) Set(ticker string, year int, value float64) {
	years, ok := s[ticker]
	if !ok {
		years = make(map[int]float64)
		s[ticker] = years
	}
	years[year] = value
}

// Tickers returns the tickers in ascending order.
func (s MetricSeries) Tickers() []string {
	return sortedKeys(s)
}

// Years returns the years present for a ticker in ascending order.
func (s MetricSeries) Years(ticker string) []int {
	years := make([]int, 0, len(s[ticker]))
	for y := range s[ticker] {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// PriceObservation is a single monthly price sample for one ticker.
type PriceObservation struct {
	Month int     // 1-12, 0 if the date could not be parsed leniently
	Price float64 // observed price
}

// RawPriceObservations groups samples as ticker -> year -> observations.
// Intermediate only; discarded once price changes are computed.
type RawPriceObservations map[string]map[int][]PriceObservation

// Add appends an observation for (ticker, year).
func (r RawPriceObservations) Add(ticker string, year int, obs PriceObservation) {
	years, ok := r[ticker]
	if !ok {
		years = make(map[int][]PriceObservation)
		r[ticker] = years
	}
	years[year] = append(years[year], obs)
}

// PriceChangeTable holds the annual percent price change: ticker -> year -> pct.
// A missing entry means no change could be computed for that year.
type PriceChangeTable map[string]map[int]float64

// Lookup returns the percent change for (ticker, year) and whether it exists.
func (t PriceChangeTable) Lookup(ticker string, year int) (float64, bool) {
	years, ok := t[ticker]
	if !ok {
		return 0, false
	}
	v, ok := years[year]
	return v, ok
}

// Set stores a percent change, creating the ticker entry on first use.
func (t PriceChangeTable) Set(ticker string, year int, pct float64) {
	years, ok := t[ticker]
	if !ok {
		years = make(map[int]float64)
		t[ticker] = years
	}
	years[year] = pct
}

// Tickers returns the tickers in ascending order.
func (t PriceChangeTable) Tickers() []string {
	return sortedKeys(t)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
