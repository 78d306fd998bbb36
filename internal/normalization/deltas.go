package normalization

import (
	"github.com/BenjaNor/FinalProject/internal/domain"
)

// ComputeDeltas sorts each ticker's records by year ascending and fills
// the year-over-year deltas in place.
//
// Formulas:
//   - delta_revenue = revenue[t] - revenue[t-1], NULL if first row
//   - delta_profit_margin = profit_margin[t] - profit_margin[t-1], NULL if first row
//   - delta_roa = roa[t] - roa[t-1], NULL if first row
func ComputeDeltas(dataset domain.Dataset) domain.Dataset {
	for _, records := range dataset {
		ComputeTickerDeltas(records)
	}
	return dataset
}

// ComputeTickerDeltas sorts one ticker's records and fills their deltas.
func ComputeTickerDeltas(records []*domain.StockYearRecord) {
	SortRecords(records)

	for i, current := range records {
		if i == 0 {
			// Earliest year: all deltas NULL
			current.DeltaRevenue = nil
			current.DeltaProfitMargin = nil
			current.DeltaROA = nil
			continue
		}
		prev := records[i-1]

		deltaRevenue := current.Revenue - prev.Revenue
		deltaMargin := current.ProfitMargin - prev.ProfitMargin
		deltaROA := current.ROA - prev.ROA

		current.DeltaRevenue = &deltaRevenue
		current.DeltaProfitMargin = &deltaMargin
		current.DeltaROA = &deltaROA
	}
}
