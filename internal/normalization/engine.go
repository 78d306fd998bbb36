package normalization

import (
	"context"

	"github.com/BenjaNor/FinalProject/internal/domain"
	"github.com/BenjaNor/FinalProject/internal/storage"
)

// NormalizationEngine defines the main normalization interface.
type NormalizationEngine interface {
	// NormalizeTicker loads one ticker's records and returns them year-sorted with deltas.
	NormalizeTicker(ctx context.Context, ticker string) ([]*domain.StockYearRecord, error)
}

// Runner implements NormalizationEngine on top of a record store.
type Runner struct {
	recordStore storage.RecordStore
}

// NewRunner creates a new normalization runner.
func NewRunner(recordStore storage.RecordStore) *Runner {
	return &Runner{
		recordStore: recordStore,
	}
}

var _ NormalizationEngine = (*Runner)(nil)
