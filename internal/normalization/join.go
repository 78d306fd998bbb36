package normalization

import (
	"github.com/BenjaNor/FinalProject/internal/domain"
)

// JoinInput carries every input series of the join.
// Assets is the driving series: only its (ticker, year) pairs produce records.
type JoinInput struct {
	Assets       domain.MetricSeries
	Cash         domain.MetricSeries
	Equity       domain.MetricSeries
	Profit       domain.MetricSeries
	Revenue      domain.MetricSeries
	PriceChanges domain.PriceChangeTable
}

// JoinMetrics merges the input series into one record per (ticker, year)
// of the assets series. Absent inputs are listed in Record.Missing and
// collapse to 0.0. Delta fields are left nil and records are unordered
// within a ticker.
func JoinMetrics(in JoinInput) domain.Dataset {
	dataset := make(domain.Dataset, len(in.Assets))

	for ticker, years := range in.Assets {
		records := make([]*domain.StockYearRecord, 0, len(years))

		for year, assets := range years {
			cash := lookup(in.Cash, ticker, year)
			equity := lookup(in.Equity, ticker, year)
			profit := lookup(in.Profit, ticker, year)
			revenue := lookup(in.Revenue, ticker, year)
			priceChange := lookupPrice(in.PriceChanges, ticker, year)

			var missing []domain.Metric
			for _, input := range []struct {
				metric domain.Metric
				value  *float64
			}{
				{domain.MetricCash, cash},
				{domain.MetricEquity, equity},
				{domain.MetricProfit, profit},
				{domain.MetricRevenue, revenue},
				{domain.MetricPriceChange, priceChange},
			} {
				if input.value == nil {
					missing = append(missing, input.metric)
				}
			}

			margin := ProfitMargin(valueOrZero(profit), valueOrZero(revenue))

			records = append(records, &domain.StockYearRecord{
				Ticker:       ticker,
				Year:         year,
				Assets:       assets,
				Cash:         valueOrZero(cash),
				Equity:       valueOrZero(equity),
				Profit:       valueOrZero(profit),
				Revenue:      valueOrZero(revenue),
				PriceChange:  valueOrZero(priceChange),
				ProfitMargin: margin,
				ROA:          ReturnOnAssets(margin, valueOrZero(revenue), assets),
				Missing:      missing,
			})
		}

		dataset[ticker] = records
	}

	return dataset
}

// ProfitMargin returns profit / revenue, or 0 when revenue is 0.
func ProfitMargin(profit, revenue float64) float64 {
	if revenue == 0 {
		return 0
	}
	return profit / revenue
}

// ReturnOnAssets returns margin * revenue / assets, or 0 when assets is 0.
// Going through the guarded margin keeps ROA at 0 whenever revenue is 0.
func ReturnOnAssets(margin, revenue, assets float64) float64 {
	if assets == 0 {
		return 0
	}
	return margin * revenue / assets
}

// lookup returns the series value for (ticker, year), NULL if absent.
func lookup(s domain.MetricSeries, ticker string, year int) *float64 {
	if v, ok := s.Lookup(ticker, year); ok {
		return &v
	}
	return nil
}

// lookupPrice returns the price change for (ticker, year), NULL if absent.
func lookupPrice(t domain.PriceChangeTable, ticker string, year int) *float64 {
	if v, ok := t.Lookup(ticker, year); ok {
		return &v
	}
	return nil
}

// valueOrZero collapses a NULL input to 0.0.
func valueOrZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
