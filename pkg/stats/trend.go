package stats

import "math"

// Point is an (x, y) observation, typically (year, value).
type Point struct {
	X float64
	Y float64
}

// Line is y = Slope·x + Intercept.
type Line struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// At evaluates the line at x.
func (l Line) At(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// LinearTrend fits an ordinary least-squares line through points using the
// closed-form slope/intercept formulas. Fewer than two points, or points
// that all share one x, return the zero Line.
func LinearTrend(points []Point) Line {
	if len(points) < 2 {
		return Line{}
	}

	n := float64(len(points))
	var sumX, sumY, sumXY, sumXX float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
		sumXY += p.X * p.Y
		sumXX += p.X * p.X
	}

	denominator := n*sumXX - sumX*sumX
	if denominator == 0 {
		return Line{}
	}

	slope := (n*sumXY - sumX*sumY) / denominator
	return Line{
		Slope:     slope,
		Intercept: (sumY - slope*sumX) / n,
	}
}

// Extrapolate evaluates the trend line at x.
func Extrapolate(l Line, x float64) float64 {
	return l.At(x)
}

// Confidence returns the confidence of a projection yearsAhead past the
// last observation: 1 − 0.2 per year, floored at 0.3. Observed years
// (yearsAhead <= 0) have confidence 1.
func Confidence(yearsAhead int) float64 {
	if yearsAhead <= 0 {
		return 1
	}
	return math.Max(ConfidenceFloor, 1-ConfidenceDecay*float64(yearsAhead))
}

// RSquared returns the coefficient of determination of line over points.
// A constant series has no variance to explain and returns 0.
func RSquared(points []Point, line Line) float64 {
	if len(points) == 0 {
		return 0
	}

	ys := make([]float64, len(points))
	for i, p := range points {
		ys[i] = p.Y
	}
	meanY := Mean(ys)

	var ssTotal, ssResidual float64
	for _, p := range points {
		ssTotal += (p.Y - meanY) * (p.Y - meanY)
		r := p.Y - line.At(p.X)
		ssResidual += r * r
	}
	if ssTotal == 0 {
		return 0
	}
	return 1 - ssResidual/ssTotal
}
