package normalization

import (
	"sort"

	"github.com/BenjaNor/FinalProject/internal/domain"
)

// SortRecords orders records by (ticker ASC, year ASC).
// Deltas are only meaningful under this chronological order.
func SortRecords(records []*domain.StockYearRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return compareRecords(records[i], records[j]) < 0
	})
}

// compareRecords returns:
//   - negative if a < b
//   - zero if a == b
//   - positive if a > b
func compareRecords(a, b *domain.StockYearRecord) int {
	if a.Ticker != b.Ticker {
		if a.Ticker < b.Ticker {
			return -1
		}
		return 1
	}
	if a.Year != b.Year {
		if a.Year < b.Year {
			return -1
		}
		return 1
	}
	return 0
}
