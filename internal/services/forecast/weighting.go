package forecast

import "math"

// z95 is the two-sided 95% normal quantile.
const z95 = 1.96

// RankedValue is one yearly sample with its recency rank; rank 0 is the oldest year.
type RankedValue struct {
	Value float64
	Rank  int
}

// WeightedAverage weights each value by e^(rank/n), so newer years count more.
// It returns 0 for an empty list.
func WeightedAverage(values []RankedValue) float64 {
	if len(values) == 0 {
		return 0
	}

	n := float64(len(values))
	var sum, total float64
	for _, v := range values {
		w := math.Exp(float64(v.Rank) / n)
		sum += v.Value * w
		total += w
	}

	return sum / total
}

// StdDev is the sample standard deviation of values around mean, which is
// the weighted mean rather than the plain one. It is 0 for fewer than two values.
func StdDev(values []RankedValue, mean float64) float64 {
	if len(values) <= 1 {
		return 0
	}

	var sq float64
	for _, v := range values {
		d := v.Value - mean
		sq += d * d
	}

	return math.Sqrt(sq / float64(len(values)-1))
}

// ConfidenceInterval returns mean ± 1.96·sd.
func ConfidenceInterval(mean, sd float64) (lower, upper float64) {
	return mean - z95*sd, mean + z95*sd
}
