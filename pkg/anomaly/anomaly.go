// Package anomaly flags city metric values that stand out from the other
// cities (z-score outliers) or breach a fixed domain threshold.
package anomaly

import (
	"fmt"
	"math"

	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/catalog"
	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/stats"
)

// Severity ranks how far out of line a value is.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Type says which check produced the anomaly.
type Type string

const (
	TypeOutlier     Type = "outlier"
	TypePerformance Type = "performance"
)

// Anomaly is one flagged (city, metric) value.
type Anomaly struct {
	CityID        string     `json:"city_id"`
	MetricID      string     `json:"metric_id"`
	Value         float64    `json:"value"`
	ExpectedRange [2]float64 `json:"expected_range"`
	Severity      Severity   `json:"severity"`
	Type          Type       `json:"type"`
	Description   string     `json:"description"`
}

// LookupFunc returns the current value of a metric for a city.
// Missing values are reported as 0.
type LookupFunc func(cityID, metricID string) float64

// Detect scans every metric across all cities. Metrics with fewer than
// MinSample non-zero values are skipped entirely, threshold rules included.
// Outlier and performance anomalies for the same pair are both emitted.
func Detect(cities []catalog.City, metrics []catalog.Metric, lookup LookupFunc) []Anomaly {
	var found []Anomaly

	for _, m := range metrics {
		population := make([]float64, 0, len(cities))
		for _, c := range cities {
			if v := lookup(c.ID, m.ID); v != 0 {
				population = append(population, v)
			}
		}
		if len(population) < MinSample {
			continue
		}

		mean, sd := stats.MeanStdDev(population)
		expected := [2]float64{mean - ExpectedRangeSigma*sd, mean + ExpectedRangeSigma*sd}
		rules := rulesFor(m.ID)

		for _, c := range cities {
			v := lookup(c.ID, m.ID)

			z := stats.ZScore(v, population)
			if math.Abs(z) > OutlierZ {
				found = append(found, Anomaly{
					CityID:        c.ID,
					MetricID:      m.ID,
					Value:         v,
					ExpectedRange: expected,
					Severity:      SeverityForZ(z),
					Type:          TypeOutlier,
					Description:   outlierDescription(z, m.Name),
				})
			}

			for _, r := range rules {
				if !r.Breached(v) {
					continue
				}
				found = append(found, Anomaly{
					CityID:        c.ID,
					MetricID:      m.ID,
					Value:         v,
					ExpectedRange: r.ExpectedRange,
					Severity:      r.Severity,
					Type:          TypePerformance,
					Description:   r.Description,
				})
			}
		}
	}

	return found
}

// SeverityForZ maps a z-score to a severity: high above 3, medium above
// 2.5, low otherwise.
func SeverityForZ(z float64) Severity {
	az := math.Abs(z)
	switch {
	case az > HighZ:
		return SeverityHigh
	case az > MediumZ:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

func outlierDescription(z float64, metricName string) string {
	direction := "Unusually low"
	if z > 0 {
		direction = "Unusually high"
	}
	return fmt.Sprintf("%s %s value", direction, metricName)
}

// Summary counts anomalies by severity.
type Summary struct {
	Total  int `json:"total"`
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// Summarize tallies a detection run.
func Summarize(anomalies []Anomaly) Summary {
	s := Summary{Total: len(anomalies)}
	for _, a := range anomalies {
		switch a.Severity {
		case SeverityHigh:
			s.High++
		case SeverityMedium:
			s.Medium++
		case SeverityLow:
			s.Low++
		}
	}
	return s
}
