// Package stats holds the arithmetic behind the dashboard's derived
// numbers: population z-scores, least-squares trend lines with decaying
// confidence, and weighted composite scores.
//
// Every function is total. Degenerate inputs (empty populations, zero
// variance, a single regression point) produce 0 rather than NaN or Inf.
package stats

import "math"

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev returns the population (not sample) standard deviation.
func StdDev(values []float64) float64 {
	_, sd := MeanStdDev(values)
	return sd
}

// MeanStdDev returns the mean and population standard deviation.
func MeanStdDev(values []float64) (mean, stdDev float64) {
	if len(values) == 0 {
		return 0, 0
	}
	mean = Mean(values)
	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(values))
	return mean, math.Sqrt(variance)
}

// ZScore returns how many population standard deviations value lies from
// the population mean. Returns 0 when the standard deviation is 0.
func ZScore(value float64, population []float64) float64 {
	mean, sd := MeanStdDev(population)
	if sd == 0 {
		return 0
	}
	return (value - mean) / sd
}

// WeightedTerm is one value/weight pair of a composite score.
type WeightedTerm struct {
	Value  float64
	Weight float64
}

// CompositeScore returns the weighted sum of terms. The result is only
// meaningful relative to other scores built from the same terms.
func CompositeScore(terms []WeightedTerm) float64 {
	score := 0.0
	for _, t := range terms {
		score += t.Value * t.Weight
	}
	return score
}

// HealthcareScore ranks healthcare capacity from physicians and beds per
// 1000 people and per-capita healthcare spend in INR.
func HealthcareScore(physicians, beds, spend float64) float64 {
	return CompositeScore([]WeightedTerm{
		{Value: physicians, Weight: HealthPhysiciansWeight},
		{Value: beds, Weight: HealthBedsWeight},
		{Value: spend / HealthSpendScale, Weight: HealthSpendWeight},
	})
}

// EnvironmentScore ranks environmental performance from renewable energy
// share, CO2 tons per capita and forest cover share.
func EnvironmentScore(renewable, co2, forest float64) float64 {
	return CompositeScore([]WeightedTerm{
		{Value: renewable, Weight: EnvRenewableWeight},
		{Value: EnvCO2Ceiling - co2*EnvCO2Penalty, Weight: EnvCO2Weight},
		{Value: forest, Weight: EnvForestWeight},
	})
}

// Pearson returns the correlation coefficient of x and y in [-1, 1].
// Mismatched lengths, empty input or a constant series return 0.
func Pearson(x, y []float64) float64 {
	if len(x) != len(y) || len(x) == 0 {
		return 0
	}

	n := float64(len(x))
	var sumX, sumY, sumXY, sumX2, sumY2 float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumX2 += x[i] * x[i]
		sumY2 += y[i] * y[i]
	}

	numerator := n*sumXY - sumX*sumY
	denominator := math.Sqrt((n*sumX2 - sumX*sumX) * (n*sumY2 - sumY*sumY))
	if denominator == 0 || math.IsNaN(denominator) {
		return 0
	}
	return numerator / denominator
}
