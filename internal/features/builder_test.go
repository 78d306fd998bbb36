package features_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/BenjaNor/FinalProject/internal/domain"
	"github.com/BenjaNor/FinalProject/internal/features"
	"github.com/BenjaNor/FinalProject/internal/normalization"
)

// fakeInput is ticker FAKE over three years; 2021 and 2022 match the
// worked example (margin 0.2 -> 0.25, roa 0.2 -> 0.25).
func fakeInput() normalization.JoinInput {
	return normalization.JoinInput{
		Assets:       domain.MetricSeries{"FAKE": {2020: 50, 2021: 100, 2022: 200}},
		Cash:         domain.MetricSeries{"FAKE": {2020: 10, 2021: 50, 2022: 100}},
		Equity:       domain.MetricSeries{"FAKE": {2020: 10, 2021: 30, 2022: 60}},
		Profit:       domain.MetricSeries{"FAKE": {2020: 5, 2021: 20, 2022: 50}},
		Revenue:      domain.MetricSeries{"FAKE": {2020: 50, 2021: 100, 2022: 200}},
		PriceChanges: domain.PriceChangeTable{"FAKE": {2020: -10, 2021: -70, 2022: 60}},
	}
}

var _ = Describe("Build", func() {
	var ds domain.Dataset

	Context("with three years of history", func() {
		BeforeEach(func() {
			ds = normalization.ComputeDeltas(normalization.JoinMetrics(fakeInput()))
		})

		It("emits exactly one row, for the third year", func() {
			out := features.Build(ds)
			Expect(out.Len()).To(Equal(1))
			Expect(out.Keys).To(Equal([]domain.RowKey{{Ticker: "FAKE", Year: 2022}}))
		})

		It("computes the feature vector from the last transition", func() {
			row := features.Build(ds).Rows[0]
			Expect(row[0]).To(BeNumerically("~", 100, 1e-9))
			Expect(row[1]).To(BeNumerically("~", 0.05, 1e-9))
			Expect(row[2]).To(BeNumerically("~", 0.05, 1e-9))
			Expect(row[3]).To(BeNumerically("~", 0, 1e-9))
			Expect(row[4]).To(BeNumerically("~", 0, 1e-9))
			Expect(row[5]).To(BeNumerically("~", 5, 1e-9))
		})

		It("labels the row from the current year's price change", func() {
			out := features.Build(ds)
			Expect(out.Labels).To(Equal([]domain.Label{domain.LabelStrongGain}))
			Expect(out.LabelVector()).To(Equal([]int{3}))
		})

		It("exposes a 1x6 matrix", func() {
			m := features.Build(ds).Matrix()
			r, c := m.Dims()
			Expect(r).To(Equal(1))
			Expect(c).To(Equal(domain.FeatureCount))
			Expect(m.At(0, 0)).To(BeNumerically("~", 100, 1e-9))
		})
	})

	Context("with only two years", func() {
		It("emits no rows", func() {
			in := fakeInput()
			delete(in.Assets["FAKE"], 2020)
			ds = normalization.ComputeDeltas(normalization.JoinMetrics(in))

			out := features.Build(ds)
			Expect(out.Len()).To(Equal(0))
			Expect(out.Matrix()).To(BeNil())
		})
	})

	Context("with several tickers", func() {
		BeforeEach(func() {
			ds = normalization.ComputeDeltas(normalization.JoinMetrics(fakeInputWithABC()))
		})

		It("keeps rows, labels and keys aligned", func() {
			out := features.Build(ds)
			Expect(out.Rows).To(HaveLen(3))
			Expect(out.Labels).To(HaveLen(3))
			Expect(out.Keys).To(HaveLen(3))

			for k, key := range out.Keys {
				var current *domain.StockYearRecord
				for _, r := range ds[key.Ticker] {
					if r.Year == key.Year {
						current = r
					}
				}
				Expect(current).NotTo(BeNil())
				Expect(out.Rows[k][0]).To(Equal(*current.DeltaRevenue))
				Expect(out.Labels[k]).To(Equal(features.Categorize(current.PriceChange)))
			}
		})

		It("orders by ticker then year", func() {
			out := features.Build(ds)
			Expect(out.Keys).To(Equal([]domain.RowKey{
				{Ticker: "ABC", Year: 2020},
				{Ticker: "ABC", Year: 2021},
				{Ticker: "FAKE", Year: 2022},
			}))
			Expect(out.LabelCounts()).To(Equal([domain.LabelCount]int{1, 0, 1, 1}))
		})

		It("is reproducible across runs", func() {
			first := features.Build(ds)
			again := normalization.ComputeDeltas(normalization.JoinMetrics(fakeInputWithABC()))
			Expect(features.Build(again)).To(Equal(first))
		})
	})

	Context("with a predecessor lacking deltas", func() {
		It("skips the row", func() {
			d := 1.0
			ds = domain.Dataset{"X": {
				{Ticker: "X", Year: 2019},
				{Ticker: "X", Year: 2020, DeltaRevenue: &d, DeltaProfitMargin: &d, DeltaROA: &d},
				{Ticker: "X", Year: 2021},
				{Ticker: "X", Year: 2022, DeltaRevenue: &d, DeltaProfitMargin: &d, DeltaROA: &d},
			}}
			Expect(features.Build(ds).Len()).To(Equal(0))
		})
	})
})

var _ = Describe("ratio guards", func() {
	It("returns 0 when assets are 0", func() {
		r := &domain.StockYearRecord{Cash: 10, Equity: 20}
		Expect(features.CashToAssets(r)).To(Equal(0.0))
		Expect(features.EquityToAssets(r)).To(Equal(0.0))
	})

	It("divides by assets otherwise", func() {
		r := &domain.StockYearRecord{Assets: 40, Cash: 10, Equity: 20}
		Expect(features.CashToAssets(r)).To(Equal(0.25))
		Expect(features.EquityToAssets(r)).To(Equal(0.5))
	})
})

func fakeInputWithABC() normalization.JoinInput {
	in := fakeInput()
	in.Assets["ABC"] = map[int]float64{2018: 1, 2019: 1, 2020: 1, 2021: 1}
	in.Revenue["ABC"] = map[int]float64{2018: 1, 2019: 2, 2020: 4, 2021: 8}
	in.PriceChanges["ABC"] = map[int]float64{2020: -55, 2021: 5}
	return in
}
