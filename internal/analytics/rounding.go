package analytics

import "math"

// Round1 rounds x to one decimal place, half-up (ties toward +Inf).
// Non-finite values are returned unchanged.
func Round1(x float64) float64 {
	return math.Floor(x*10+0.5) / 10
}

// RoundInt rounds x to the nearest integer, half-up. Non-finite values map to 0.
func RoundInt(x float64) int {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return int(math.Floor(x + 0.5))
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// percentOf returns count as a share of total, rounded to one decimal.
// An empty total yields 0.
func percentOf(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return Round1(float64(count) / float64(total) * 100)
}

// ratioPercent returns part/whole*100 rounded to one decimal, or 0 when whole is 0.
func ratioPercent(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return Round1(part / whole * 100)
}
