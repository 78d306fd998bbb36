package domain

// StockYearRecord is one fiscal year for one ticker.
type StockYearRecord struct {
	Ticker       string  // stock symbol
	Year         int     // fiscal year
	Assets       float64 // total assets
	Cash         float64 // cash and equivalents
	Equity       float64 // shareholder equity
	Profit       float64 // net profit
	Revenue      float64 // revenue
	PriceChange  float64 // annual percent price change, 0 if not computable
	ProfitMargin float64 // profit / revenue, 0 if revenue = 0
	ROA          float64 // profit_margin * revenue / assets, 0 if assets = 0

	DeltaRevenue      *float64 // revenue[t] - revenue[t-1], NULL for earliest year
	DeltaProfitMargin *float64 // profit_margin[t] - profit_margin[t-1], NULL for earliest year
	DeltaROA          *float64 // roa[t] - roa[t-1], NULL for earliest year

	// Missing lists the inputs that were absent for this (ticker, year)
	// and defaulted to zero.
	Missing []Metric
}

// HasDeltas reports whether all three delta fields are populated.
func (r *StockYearRecord) HasDeltas() bool {
	return r.DeltaRevenue != nil && r.DeltaProfitMargin != nil && r.DeltaROA != nil
}

// IsMissing reports whether the given input defaulted to zero.
func (r *StockYearRecord) IsMissing(m Metric) bool {
	for _, missing := range r.Missing {
		if missing == m {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the record.
func (r *StockYearRecord) Clone() *StockYearRecord {
	c := *r
	c.DeltaRevenue = cloneFloat(r.DeltaRevenue)
	c.DeltaProfitMargin = cloneFloat(r.DeltaProfitMargin)
	c.DeltaROA = cloneFloat(r.DeltaROA)
	if r.Missing != nil {
		c.Missing = append([]Metric(nil), r.Missing...)
	}
	return &c
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Dataset maps ticker to its records. Once deltas are computed each slice
// is ordered by year ascending.
type Dataset map[string][]*StockYearRecord

// Tickers returns the tickers in ascending order.
func (d Dataset) Tickers() []string {
	return sortedKeys(d)
}

// Len returns the total number of records across all tickers.
func (d Dataset) Len() int {
	n := 0
	for _, records := range d {
		n += len(records)
	}
	return n
}
