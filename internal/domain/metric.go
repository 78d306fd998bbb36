package domain

// Metric identifies one financial input series.
type Metric string

const (
	MetricAssets      Metric = "assets"
	MetricCash        Metric = "cash"
	MetricEquity      Metric = "equity"
	MetricProfit      Metric = "profit"
	MetricRevenue     Metric = "revenue"
	MetricPriceChange Metric = "price_change"
)

// FinancialMetrics lists the wide-CSV metrics in input order.
// Assets comes first: it is the driving series of the join.
var FinancialMetrics = []Metric{
	MetricAssets,
	MetricCash,
	MetricEquity,
	MetricProfit,
	MetricRevenue,
}

// String returns the string representation of Metric.
func (m Metric) String() string {
	return string(m)
}

// IsValid checks if the metric is a known value.
func (m Metric) IsValid() bool {
	switch m {
	case MetricAssets, MetricCash, MetricEquity, MetricProfit, MetricRevenue, MetricPriceChange:
		return true
	}
	return false
}
