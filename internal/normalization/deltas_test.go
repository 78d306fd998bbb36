package normalization

import (
	"math"
	"testing"

	"github.com/BenjaNor/FinalProject/internal/domain"
)

func TestComputeTickerDeltas_SortsBeforeDifferencing(t *testing.T) {
	// Deliberately out of order
	records := []*domain.StockYearRecord{
		{Ticker: "AAA", Year: 2022, Revenue: 600, ProfitMargin: 0.3, ROA: 0.03},
		{Ticker: "AAA", Year: 2020, Revenue: 100, ProfitMargin: 0.1, ROA: 0.01},
		{Ticker: "AAA", Year: 2021, Revenue: 300, ProfitMargin: 0.2, ROA: 0.02},
	}

	ComputeTickerDeltas(records)

	for i, want := range []int{2020, 2021, 2022} {
		if records[i].Year != want {
			t.Fatalf("Record %d: expected year %d, got %d", i, want, records[i].Year)
		}
	}

	if records[0].DeltaRevenue != nil || records[0].DeltaProfitMargin != nil || records[0].DeltaROA != nil {
		t.Error("earliest year must keep all deltas NULL")
	}

	if records[1].DeltaRevenue == nil || *records[1].DeltaRevenue != 200 {
		t.Errorf("2021 delta revenue: expected 200, got %v", records[1].DeltaRevenue)
	}
	if records[2].DeltaRevenue == nil || *records[2].DeltaRevenue != 300 {
		t.Errorf("2022 delta revenue: expected 300, got %v", records[2].DeltaRevenue)
	}
	if math.Abs(*records[2].DeltaProfitMargin-0.1) > 1e-12 {
		t.Errorf("2022 delta margin: expected 0.1, got %v", *records[2].DeltaProfitMargin)
	}
	if math.Abs(*records[2].DeltaROA-0.01) > 1e-12 {
		t.Errorf("2022 delta roa: expected 0.01, got %v", *records[2].DeltaROA)
	}
}

func TestComputeTickerDeltas_SetTogether(t *testing.T) {
	records := []*domain.StockYearRecord{
		{Ticker: "AAA", Year: 2019},
		{Ticker: "AAA", Year: 2020},
		{Ticker: "AAA", Year: 2021},
		{Ticker: "AAA", Year: 2022},
	}

	ComputeTickerDeltas(records)

	for i, r := range records {
		set := 0
		for _, p := range []*float64{r.DeltaRevenue, r.DeltaProfitMargin, r.DeltaROA} {
			if p != nil {
				set++
			}
		}
		if i == 0 && set != 0 {
			t.Errorf("record %d: expected no deltas, got %d", i, set)
		}
		if i > 0 && set != 3 {
			t.Errorf("record %d: expected 3 deltas, got %d", i, set)
		}
	}
}

func TestComputeDeltas_SingleAndEmpty(t *testing.T) {
	ds := domain.Dataset{
		"ONE":   {{Ticker: "ONE", Year: 2022, Revenue: 5}},
		"EMPTY": {},
	}

	ComputeDeltas(ds)

	if ds["ONE"][0].HasDeltas() {
		t.Error("single record must not have deltas")
	}
}

func TestComputeDeltas_AfterJoin(t *testing.T) {
	in := JoinInput{
		Assets:  domain.MetricSeries{"AAA": {2022: 1, 2021: 1, 2020: 1}},
		Revenue: domain.MetricSeries{"AAA": {2022: 30, 2021: 20, 2020: 10}},
	}

	ds := ComputeDeltas(JoinMetrics(in))

	records := ds["AAA"]
	if records[0].Year != 2020 || records[2].Year != 2022 {
		t.Fatalf("expected ascending years, got %d..%d", records[0].Year, records[2].Year)
	}
	if *records[1].DeltaRevenue != 10 || *records[2].DeltaRevenue != 10 {
		t.Errorf("expected deltas of 10, got %v and %v", *records[1].DeltaRevenue, *records[2].DeltaRevenue)
	}
}

func TestSortRecords_TickerThenYear(t *testing.T) {
	records := []*domain.StockYearRecord{
		{Ticker: "BBB", Year: 2020},
		{Ticker: "AAA", Year: 2022},
		{Ticker: "AAA", Year: 2021},
	}

	SortRecords(records)

	if records[0].Ticker != "AAA" || records[0].Year != 2021 {
		t.Errorf("expected AAA/2021 first, got %s/%d", records[0].Ticker, records[0].Year)
	}
	if records[2].Ticker != "BBB" {
		t.Errorf("expected BBB last, got %s", records[2].Ticker)
	}
}
