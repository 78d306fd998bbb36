package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/BenjaNor/FinalProject/internal/domain"
	"github.com/BenjaNor/FinalProject/internal/storage"
)

// RecordStore is an in-memory implementation of storage.RecordStore.
type RecordStore struct {
	mu   sync.RWMutex
	data map[recordKey]*domain.StockYearRecord
}

// recordKey identifies one ticker-year record.
type recordKey struct {
	ticker string
	year   int
}

// NewRecordStore creates a new in-memory record store.
func NewRecordStore() *RecordStore {
	return &RecordStore{
		data: make(map[recordKey]*domain.StockYearRecord),
	}
}

// InsertBulk adds multiple records. Fails entire batch on duplicate.
func (s *RecordStore) InsertBulk(_ context.Context, records []*domain.StockYearRecord) error {
	if len(records) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Track keys in this batch to detect intra-batch duplicates
	batchKeys := make(map[recordKey]struct{}, len(records))

	// First pass: check for duplicates (existing + intra-batch)
	for _, r := range records {
		if r == nil || r.Ticker == "" {
			return storage.ErrInvalidInput
		}
		key := recordKey{ticker: r.Ticker, year: r.Year}

		if _, exists := s.data[key]; exists {
			return storage.ErrDuplicateKey
		}
		if _, exists := batchKeys[key]; exists {
			return storage.ErrDuplicateKey
		}
		batchKeys[key] = struct{}{}
	}

	// Second pass: insert all
	for _, r := range records {
		s.data[recordKey{ticker: r.Ticker, year: r.Year}] = r.Clone()
	}

	return nil
}

// GetByTicker retrieves all records for a ticker, ordered by year ASC.
func (s *RecordStore) GetByTicker(_ context.Context, ticker string) ([]*domain.StockYearRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.StockYearRecord
	for _, r := range s.data {
		if r.Ticker == ticker {
			result = append(result, r.Clone())
		}
	}

	if len(result) == 0 {
		return nil, storage.ErrNotFound
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Year < result[j].Year
	})

	return result, nil
}

// Tickers returns every stored ticker in ascending order.
func (s *RecordStore) Tickers(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, r := range s.data {
		seen[r.Ticker] = struct{}{}
	}

	tickers := make([]string, 0, len(seen))
	for t := range seen {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)

	return tickers, nil
}

// Count returns the number of stored records.
func (s *RecordStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.data), nil
}

var _ storage.RecordStore = (*RecordStore)(nil)
