package features

import (
	"gonum.org/v1/gonum/mat"

	"github.com/BenjaNor/FinalProject/internal/domain"
)

// Dataset is the classifier-ready output: Rows[k], Labels[k] and Keys[k]
// all describe the same ticker-year record.
type Dataset struct {
	Rows   []domain.FeatureRow
	Labels []domain.Label
	Keys   []domain.RowKey
}

// Len returns the number of feature rows.
func (d *Dataset) Len() int {
	return len(d.Rows)
}

// Matrix returns the rows as an n x 6 dense matrix, or nil when empty.
func (d *Dataset) Matrix() *mat.Dense {
	if len(d.Rows) == 0 {
		return nil
	}
	data := make([]float64, 0, len(d.Rows)*domain.FeatureCount)
	for _, row := range d.Rows {
		data = append(data, row[:]...)
	}
	return mat.NewDense(len(d.Rows), domain.FeatureCount, data)
}

// LabelVector returns the labels as plain ints.
func (d *Dataset) LabelVector() []int {
	out := make([]int, len(d.Labels))
	for i, l := range d.Labels {
		out[i] = int(l)
	}
	return out
}

// LabelCounts returns how many rows carry each label.
func (d *Dataset) LabelCounts() [domain.LabelCount]int {
	var counts [domain.LabelCount]int
	for _, l := range d.Labels {
		if l.IsValid() {
			counts[l]++
		}
	}
	return counts
}

// Build walks each ticker's year-ordered records and emits one feature row
// per record whose predecessor already carries deltas. Index 1 is always
// skipped, so a ticker needs three years of history before it yields a row.
// Tickers are visited in ascending order so output is reproducible.
func Build(ds domain.Dataset) *Dataset {
	out := &Dataset{}

	for _, ticker := range ds.Tickers() {
		records := ds[ticker]
		for i := 1; i < len(records); i++ {
			prev := records[i-1]
			current := records[i]

			if i == 1 || !prev.HasDeltas() || !current.HasDeltas() {
				continue
			}

			out.Rows = append(out.Rows, Row(prev, current))
			out.Labels = append(out.Labels, Categorize(current.PriceChange))
			out.Keys = append(out.Keys, domain.RowKey{Ticker: current.Ticker, Year: current.Year})
		}
	}

	return out
}

// Row builds the feature vector for the transition prev -> current.
// The first three features are current's precomputed deltas.
func Row(prev, current *domain.StockYearRecord) domain.FeatureRow {
	deltaRevenue := *current.DeltaRevenue
	deltaMargin := *current.DeltaProfitMargin
	deltaROA := *current.DeltaROA

	return domain.FeatureRow{
		deltaRevenue,
		deltaMargin,
		deltaROA,
		CashToAssets(current) - CashToAssets(prev),
		EquityToAssets(current) - EquityToAssets(prev),
		deltaRevenue * deltaMargin,
	}
}

// CashToAssets returns cash / assets, or 0 when assets is 0.
func CashToAssets(r *domain.StockYearRecord) float64 {
	if r.Assets == 0 {
		return 0
	}
	return r.Cash / r.Assets
}

// EquityToAssets returns equity / assets, or 0 when assets is 0.
func EquityToAssets(r *domain.StockYearRecord) float64 {
	if r.Assets == 0 {
		return 0
	}
	return r.Equity / r.Assets
}
