package features

import "github.com/BenjaNor/FinalProject/internal/domain"

// Label thresholds, in percent.
const (
	SevereDeclineBelow = -50.0
	StrongGainFrom     = 50.0
)

// Categorize buckets an annual percent price change into an ordinal label:
//   - change < -50        -> 0 (severe decline)
//   - -50 <= change < 0   -> 1 (decline)
//   - 0 <= change < 50    -> 2 (moderate gain)
//   - everything else     -> 3 (strong gain, including 50, +Inf and NaN)
func Categorize(pct float64) domain.Label {
	switch {
	case pct < SevereDeclineBelow:
		return domain.LabelSevereDecline
	case pct < 0:
		return domain.LabelDecline
	case pct < StrongGainFrom:
		return domain.LabelModerateGain
	default:
		return domain.LabelStrongGain
	}
}
