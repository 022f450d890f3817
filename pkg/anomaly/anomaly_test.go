package anomaly

import (
	"fmt"
	"testing"

	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/catalog"
)

// fixture builds n cities where every city has value base for metricID
// except the last, which has outlier.
func fixture(n int, metricID string, base, outlier float64) ([]catalog.City, LookupFunc) {
	cities := make([]catalog.City, n)
	values := make(map[string]float64, n)
	for i := range cities {
		id := fmt.Sprintf("c%02d", i)
		cities[i] = catalog.City{ID: id, Name: id}
		values[id] = base
	}
	values[cities[n-1].ID] = outlier

	return cities, func(cityID, m string) float64 {
		if m != metricID {
			return 0
		}
		return values[cityID]
	}
}

func TestDetectOutlierSeverity(t *testing.T) {
	// With n-1 equal values and one outlier, the outlier's z-score is sqrt(n-1).
	tests := []struct {
		cities int
		want   Severity
	}{
		{6, SeverityLow},    // z ≈ 2.24
		{8, SeverityMedium}, // z ≈ 2.65
		{12, SeverityHigh},  // z ≈ 3.32
	}
	metric := catalog.Metric{ID: "literacy", Name: "Literacy Rate"}

	for _, tt := range tests {
		cities, lookup := fixture(tt.cities, "literacy", 70, 95)
		got := Detect(cities, []catalog.Metric{metric}, lookup)

		if len(got) != 1 {
			t.Fatalf("%d cities: anomalies = %d, want 1", tt.cities, len(got))
		}
		a := got[0]
		if a.CityID != cities[tt.cities-1].ID {
			t.Errorf("%d cities: flagged %s, want the outlier city", tt.cities, a.CityID)
		}
		if a.Type != TypeOutlier {
			t.Errorf("%d cities: type = %s, want outlier", tt.cities, a.Type)
		}
		if a.Severity != tt.want {
			t.Errorf("%d cities: severity = %s, want %s", tt.cities, a.Severity, tt.want)
		}
		if a.Description != "Unusually high Literacy Rate value" {
			t.Errorf("description = %q", a.Description)
		}
		if a.ExpectedRange[0] >= a.ExpectedRange[1] || a.Value <= a.ExpectedRange[1] {
			t.Errorf("expected range %v should sit below value %v", a.ExpectedRange, a.Value)
		}
	}
}

func TestDetectLowOutlier(t *testing.T) {
	cities, lookup := fixture(12, "literacy", 90, 40)
	got := Detect(cities, []catalog.Metric{{ID: "literacy", Name: "Literacy Rate"}}, lookup)
	if len(got) != 1 {
		t.Fatalf("anomalies = %d, want 1", len(got))
	}
	if got[0].Description != "Unusually low Literacy Rate value" {
		t.Errorf("description = %q", got[0].Description)
	}
}

func TestDetectInsufficientSample(t *testing.T) {
	// Two non-zero physician values, both below the shortage threshold.
	cities := []catalog.City{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}
	values := map[string]float64{"a": 0.2, "b": 0.1}
	lookup := func(cityID, _ string) float64 { return values[cityID] }

	got := Detect(cities, []catalog.Metric{{ID: "physicians", Name: "Physicians"}}, lookup)
	if len(got) != 0 {
		t.Errorf("anomalies = %+v, want none below the minimum sample", got)
	}
}

func TestDetectPerformanceRules(t *testing.T) {
	tests := []struct {
		metric   string
		value    float64
		severity Severity
		lo, hi   float64
	}{
		{"physicians", 0.3, SeverityHigh, 0.5, 5},
		{"co2_emissions", 4.5, SeverityHigh, 0, 4},
		{"unemployment", 11, SeverityMedium, 0, 10},
	}
	for _, tt := range tests {
		// Equal values: zero variance, so no outliers, only threshold hits.
		cities, lookup := fixture(3, tt.metric, tt.value, tt.value)
		got := Detect(cities, []catalog.Metric{{ID: tt.metric}}, lookup)

		if len(got) != 3 {
			t.Fatalf("%s: anomalies = %d, want 3", tt.metric, len(got))
		}
		for _, a := range got {
			if a.Type != TypePerformance {
				t.Errorf("%s: type = %s, want performance", tt.metric, a.Type)
			}
			if a.Severity != tt.severity {
				t.Errorf("%s: severity = %s, want %s", tt.metric, a.Severity, tt.severity)
			}
			if a.ExpectedRange != [2]float64{tt.lo, tt.hi} {
				t.Errorf("%s: expected range = %v", tt.metric, a.ExpectedRange)
			}
		}
	}
}

func TestDetectBothTypesForOnePair(t *testing.T) {
	cities, lookup := fixture(12, "co2_emissions", 2, 4.9)
	got := Detect(cities, []catalog.Metric{{ID: "co2_emissions", Name: "CO2"}}, lookup)

	var outliers, perf int
	for _, a := range got {
		if a.CityID != cities[11].ID {
			t.Errorf("unexpected anomaly for %s", a.CityID)
		}
		switch a.Type {
		case TypeOutlier:
			outliers++
		case TypePerformance:
			perf++
		}
	}
	if outliers != 1 || perf != 1 {
		t.Errorf("outliers = %d, performance = %d, want 1 and 1", outliers, perf)
	}
}

func TestDetectDefaultCatalogRespectsMinimumSample(t *testing.T) {
	c := catalog.Default()
	// Only one city has data.
	lookup := func(cityID, _ string) float64 {
		if cityID == "mumbai" {
			return 99
		}
		return 0
	}
	if got := Detect(c.Cities, c.Metrics, lookup); len(got) != 0 {
		t.Errorf("anomalies = %d, want 0", len(got))
	}
}

func TestSeverityForZ(t *testing.T) {
	tests := []struct {
		z    float64
		want Severity
	}{
		{2.1, SeverityLow},
		{-2.5, SeverityLow},
		{2.6, SeverityMedium},
		{-3.0, SeverityMedium},
		{3.01, SeverityHigh},
		{-4, SeverityHigh},
	}
	for _, tt := range tests {
		if got := SeverityForZ(tt.z); got != tt.want {
			t.Errorf("SeverityForZ(%v) = %s, want %s", tt.z, got, tt.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]Anomaly{
		{Severity: SeverityHigh},
		{Severity: SeverityHigh},
		{Severity: SeverityMedium},
		{Severity: SeverityLow},
	})
	if s != (Summary{Total: 4, High: 2, Medium: 1, Low: 1}) {
		t.Errorf("summary = %+v", s)
	}
}
