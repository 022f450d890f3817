package anomaly

// Outlier detection constants.
const (
	MinSample          = 3   // non-zero observations needed before a metric is scanned
	OutlierZ           = 2.0 // |z| above this is an outlier
	MediumZ            = 2.5
	HighZ              = 3.0
	ExpectedRangeSigma = 2.0 // expected range is mean ± this many std-devs
)

// Comparison selects which side of a threshold is anomalous.
type Comparison int

const (
	Below Comparison = iota
	Above
)

// PerformanceRule flags a value on the wrong side of a domain threshold,
// regardless of how it compares to other cities.
type PerformanceRule struct {
	MetricID      string
	Compare       Comparison
	Threshold     float64
	Severity      Severity
	ExpectedRange [2]float64
	Description   string
}

// Breached reports whether v is on the anomalous side of the threshold.
func (r PerformanceRule) Breached(v float64) bool {
	if r.Compare == Below {
		return v < r.Threshold
	}
	return v > r.Threshold
}

// PerformanceRules is the fixed set of domain thresholds.
var PerformanceRules = []PerformanceRule{
	{
		MetricID:      "physicians",
		Compare:       Below,
		Threshold:     0.5,
		Severity:      SeverityHigh,
		ExpectedRange: [2]float64{0.5, 5},
		Description:   "Critical shortage of physicians",
	},
	{
		MetricID:      "co2_emissions",
		Compare:       Above,
		Threshold:     4,
		Severity:      SeverityHigh,
		ExpectedRange: [2]float64{0, 4},
		Description:   "Excessive CO2 emissions",
	},
	{
		MetricID:      "unemployment",
		Compare:       Above,
		Threshold:     10,
		Severity:      SeverityMedium,
		ExpectedRange: [2]float64{0, 10},
		Description:   "High unemployment rate",
	},
}

func rulesFor(metricID string) []PerformanceRule {
	var out []PerformanceRule
	for _, r := range PerformanceRules {
		if r.MetricID == metricID {
			out = append(out, r)
		}
	}
	return out
}
