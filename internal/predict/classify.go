package predict

// Tier buckets a predicted savings amount relative to income.
type Tier string

const (
	TierLow      Tier = "Low"
	TierModerate Tier = "Moderate"
	TierHigh     Tier = "High"
)

// ClassifySavings buckets predicted savings as a percentage of income.
// Lower bounds are inclusive: exactly 10% is Moderate and exactly 25% is
// High. Non-positive income classifies as Low since the ratio is taken
// as zero.
func ClassifySavings(predicted, income float64) Tier {
	var ratio float64
	if income > 0 {
		ratio = 100 * predicted / income
	}

	switch {
	case ratio < 10:
		return TierLow
	case ratio < 25:
		return TierModerate
	default:
		return TierHigh
	}
}
