package normalization

import (
	"context"
	"fmt"

	"github.com/BenjaNor/FinalProject/internal/domain"
)

// Store writes the joined dataset into the record store in ticker order.
func (r *Runner) Store(ctx context.Context, dataset domain.Dataset) error {
	for _, ticker := range dataset.Tickers() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.recordStore.InsertBulk(ctx, dataset[ticker]); err != nil {
			return fmt.Errorf("store records for %s: %w", ticker, err)
		}
	}
	return nil
}

// NormalizeTicker processes a single ticker.
// Steps:
//  1. Load records from the store
//  2. Sort by year ASC
//  3. Compute year-over-year deltas
func (r *Runner) NormalizeTicker(ctx context.Context, ticker string) ([]*domain.StockYearRecord, error) {
	records, err := r.recordStore.GetByTicker(ctx, ticker)
	if err != nil {
		return nil, err
	}

	ComputeTickerDeltas(records)
	return records, nil
}

// NormalizeAll processes every stored ticker and returns the delta-annotated dataset.
func (r *Runner) NormalizeAll(ctx context.Context) (domain.Dataset, error) {
	tickers, err := r.recordStore.Tickers(ctx)
	if err != nil {
		return nil, err
	}

	dataset := make(domain.Dataset, len(tickers))
	for _, ticker := range tickers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		records, err := r.NormalizeTicker(ctx, ticker)
		if err != nil {
			return nil, fmt.Errorf("normalize %s: %w", ticker, err)
		}
		dataset[ticker] = records
	}
	return dataset, nil
}
