package insights

import (
	"math"
	"strconv"
)

// Round1 rounds half away from zero to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// formatValue prints v in its shortest form, so 12 renders as "12" and 20.5 as "20.5".
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
