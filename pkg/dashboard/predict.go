package dashboard

import (
	"math"

	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/stats"
)

const (
	// DefaultHorizon is the number of future years Predict adds when the
	// caller passes a non-positive horizon.
	DefaultHorizon = 3
	// MinPredictionPoints is the shortest series Predict will fit.
	MinPredictionPoints = 3
	// TrendWindow is how many actual and predicted points are averaged
	// when classifying the trend direction.
	TrendWindow = 3
	// TrendThreshold is the percent change separating stable from moving.
	TrendThreshold = 5.0
)

// Trend is the direction a prediction is heading.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// PredictionPoint is one year of a prediction. Exactly one of Actual and
// Predicted is set.
type PredictionPoint struct {
	Year       int      `json:"year"`
	Actual     *float64 `json:"actual,omitempty"`
	Predicted  *float64 `json:"predicted,omitempty"`
	Confidence float64  `json:"confidence"`
}

// Prediction is a fitted trend for one city and metric.
type Prediction struct {
	CityID   string            `json:"city_id"`
	MetricID string            `json:"metric_id"`
	Line     stats.Line        `json:"line"`
	RSquared float64           `json:"r_squared"`
	Points   []PredictionPoint `json:"points"`
	Trend    Trend             `json:"trend"`
}

// Predict fits a least-squares line to the pair's series and extends it
// horizon years past the last observed year. Predicted values are floored
// at 0 and confidence decays with distance. A series shorter than
// MinPredictionPoints (including an unknown pair) yields ok == false.
func (s *Store) Predict(cityID, metricID string, horizon int) (Prediction, bool) {
	series := s.Series(cityID, metricID)
	if len(series) < MinPredictionPoints {
		return Prediction{}, false
	}
	if horizon <= 0 {
		horizon = DefaultHorizon
	}

	pts := make([]stats.Point, len(series))
	out := make([]PredictionPoint, 0, len(series)+horizon)
	for i, p := range series {
		pts[i] = stats.Point{X: float64(p.Year), Y: p.Value}
		actual := p.Value
		out = append(out, PredictionPoint{Year: p.Year, Actual: &actual, Confidence: 1})
	}

	line := stats.LinearTrend(pts)
	last := series[len(series)-1].Year
	for ahead := 1; ahead <= horizon; ahead++ {
		year := last + ahead
		predicted := math.Max(0, stats.Extrapolate(line, float64(year)))
		out = append(out, PredictionPoint{
			Year:       year,
			Predicted:  &predicted,
			Confidence: stats.Confidence(ahead),
		})
	}

	return Prediction{
		CityID:   cityID,
		MetricID: metricID,
		Line:     line,
		RSquared: stats.RSquared(pts, line),
		Points:   out,
		Trend:    TrendOf(out),
	}, true
}

// TrendOf compares the mean of the last TrendWindow actuals with the mean
// of the first TrendWindow predictions. A change beyond TrendThreshold
// percent either way is a trend; a zero actual mean is stable.
func TrendOf(points []PredictionPoint) Trend {
	var actual, predicted []float64
	for _, p := range points {
		if p.Actual != nil {
			actual = append(actual, *p.Actual)
		}
		if p.Predicted != nil {
			predicted = append(predicted, *p.Predicted)
		}
	}
	if len(actual) > TrendWindow {
		actual = actual[len(actual)-TrendWindow:]
	}
	if len(predicted) > TrendWindow {
		predicted = predicted[:TrendWindow]
	}
	if len(actual) == 0 || len(predicted) == 0 {
		return TrendStable
	}

	base := stats.Mean(actual)
	if base == 0 {
		return TrendStable
	}
	change := (stats.Mean(predicted) - base) / base * 100
	switch {
	case change > TrendThreshold:
		return TrendIncreasing
	case change < -TrendThreshold:
		return TrendDecreasing
	default:
		return TrendStable
	}
}
