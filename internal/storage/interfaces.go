package storage

import (
	"context"

	"github.com/BenjaNor/FinalProject/internal/domain"
)

// RecordStore holds the joined ticker-year records of one pipeline run.
type RecordStore interface {
	// InsertBulk adds multiple records atomically.
	// Fails entire batch on duplicate (ticker, year) or a nil/tickerless record.
	InsertBulk(ctx context.Context, records []*domain.StockYearRecord) error

	// GetByTicker retrieves all records for a ticker, ordered by year ASC.
	// Returns ErrNotFound if the ticker has no records.
	GetByTicker(ctx context.Context, ticker string) ([]*domain.StockYearRecord, error)

	// Tickers returns every stored ticker in ascending order.
	Tickers(ctx context.Context) ([]string, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)
}
