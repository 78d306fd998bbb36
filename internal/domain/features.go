package domain

// FeatureCount is the fixed width of a feature row.
const FeatureCount = 6

// FeatureRow is the numeric vector for one year-over-year transition:
// [Δrevenue, Δprofit_margin, Δroa, Δ(cash/assets), Δ(equity/assets), Δrevenue·Δprofit_margin].
type FeatureRow [FeatureCount]float64

// FeatureNames are the column names of a FeatureRow, in order.
var FeatureNames = [FeatureCount]string{
	"delta_revenue",
	"delta_profit_margin",
	"delta_roa",
	"delta_cash_to_assets",
	"delta_equity_to_assets",
	"revenue_margin_interaction",
}

// RowKey identifies the record a feature row was derived from.
type RowKey struct {
	Ticker string
	Year   int
}

// Label is the ordinal price-movement class of a feature row.
type Label int

const (
	LabelSevereDecline Label = 0 // change < -50%
	LabelDecline       Label = 1 // -50% <= change < 0%
	LabelModerateGain  Label = 2 // 0% <= change < 50%
	LabelStrongGain    Label = 3 // change >= 50%
)

// LabelCount is the number of label classes.
const LabelCount = 4

// String returns a short name for the label.
func (l Label) String() string {
	switch l {
	case LabelSevereDecline:
		return "severe_decline"
	case LabelDecline:
		return "decline"
	case LabelModerateGain:
		return "moderate_gain"
	case LabelStrongGain:
		return "strong_gain"
	}
	return "unknown"
}

// IsValid checks if the label is one of the four classes.
func (l Label) IsValid() bool {
	return l >= LabelSevereDecline && l <= LabelStrongGain
}
