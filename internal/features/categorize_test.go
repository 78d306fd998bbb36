package features_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/BenjaNor/FinalProject/internal/domain"
	"github.com/BenjaNor/FinalProject/internal/features"
)

var _ = Describe("Categorize", func() {
	DescribeTable("buckets percent price changes",
		func(pct float64, want domain.Label) {
			Expect(features.Categorize(pct)).To(Equal(want))
		},
		Entry("severe decline", -60.0, domain.LabelSevereDecline),
		Entry("exactly -50 belongs to decline", -50.0, domain.LabelDecline),
		Entry("decline", -30.0, domain.LabelDecline),
		Entry("zero is a gain", 0.0, domain.LabelModerateGain),
		Entry("moderate gain", 10.0, domain.LabelModerateGain),
		Entry("just below 50", 49.999, domain.LabelModerateGain),
		Entry("exactly 50 is strong gain", 50.0, domain.LabelStrongGain),
		Entry("strong gain", 70.0, domain.LabelStrongGain),
		Entry("negative infinity", math.Inf(-1), domain.LabelSevereDecline),
		Entry("positive infinity", math.Inf(1), domain.LabelStrongGain),
		Entry("NaN falls through", math.NaN(), domain.LabelStrongGain),
	)
})
