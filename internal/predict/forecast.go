package predict

// DefaultForecastHorizon is how many months ahead the standard forecast
// projects.
const DefaultForecastHorizon = 6

// Forecast projects a base amount forward by a flat 2% of the base per
// month: point m is base*(1+0.02*m). The growth scales with the month
// index rather than compounding on the prior point.
func Forecast(base float64, horizon int) []float64 {
	if horizon <= 0 {
		horizon = DefaultForecastHorizon
	}

	out := make([]float64, horizon)
	for m := 1; m <= horizon; m++ {
		out[m-1] = base * (1 + 0.02*float64(m))
	}

	return out
}
