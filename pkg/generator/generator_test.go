package generator

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/catalog"
)

func TestCrossSectionalWithinRange(t *testing.T) {
	c := catalog.Default()
	g := NewSeeded(1)

	values := g.CrossSectional(c.Cities, c.Metrics)
	if len(values) != len(c.Cities)*len(c.Metrics) {
		t.Fatalf("values = %d, want %d", len(values), len(c.Cities)*len(c.Metrics))
	}

	seen := make(map[[2]string]bool)
	for _, v := range values {
		key := [2]string{v.CityID, v.MetricID}
		if seen[key] {
			t.Errorf("duplicate value for %v", key)
		}
		seen[key] = true

		r := RangeFor(v.MetricID)
		if v.Value < r.Min || v.Value > r.Max {
			t.Errorf("%s/%s = %v outside [%v,%v]", v.CityID, v.MetricID, v.Value, r.Min, r.Max)
		}
		if math.IsNaN(v.Value) || math.IsInf(v.Value, 0) {
			t.Errorf("%s/%s is not finite", v.CityID, v.MetricID)
		}
	}
}

func TestCrossSectionalUnknownMetricDefaults(t *testing.T) {
	g := NewSeeded(7)
	cities := []catalog.City{{ID: "x"}, {ID: "y"}, {ID: "z"}}
	metrics := []catalog.Metric{{ID: "made_up", Unit: "points"}}

	for _, v := range g.CrossSectional(cities, metrics) {
		if v.Value < 0 || v.Value > 100 {
			t.Errorf("unknown metric value %v outside default [0,100]", v.Value)
		}
	}
}

func TestSeededIsDeterministic(t *testing.T) {
	c := catalog.Default()

	a := NewSeeded(42)
	b := NewSeeded(42)

	if diff := cmp.Diff(a.CrossSectional(c.Cities, c.Metrics), b.CrossSectional(c.Cities, c.Metrics)); diff != "" {
		t.Errorf("cross-sectional differs for equal seeds (-a +b):\n%s", diff)
	}
	if diff := cmp.Diff(a.TimeSeries(c.Cities, c.Metrics, DefaultYears), b.TimeSeries(c.Cities, c.Metrics, DefaultYears)); diff != "" {
		t.Errorf("time series differs for equal seeds (-a +b):\n%s", diff)
	}
}

func TestTimeSeriesShape(t *testing.T) {
	c := catalog.Default()
	g := NewSeeded(3)

	points := g.TimeSeries(c.Cities, c.Metrics, DefaultYears)
	if len(points) != len(c.Cities)*len(c.Metrics)*5 {
		t.Fatalf("points = %d, want %d", len(points), len(c.Cities)*len(c.Metrics)*5)
	}

	for i := 0; i < len(points); i += 5 {
		series := points[i : i+5]
		m, _ := c.Metric(series[0].MetricID)
		bound := m.Bound()
		for j, p := range series {
			if p.CityID != series[0].CityID || p.MetricID != series[0].MetricID {
				t.Fatalf("series %d mixes pairs", i/5)
			}
			if p.Year != DefaultYears[j] {
				t.Errorf("%s/%s year[%d] = %d, want %d", p.CityID, p.MetricID, j, p.Year, DefaultYears[j])
			}
			if !bound.Contains(p.Value) {
				t.Errorf("%s/%s %d = %v outside unit bound", p.CityID, p.MetricID, p.Year, p.Value)
			}
			if p.Value != math.Round(p.Value*100)/100 {
				t.Errorf("%s/%s %d = %v not rounded to 2dp", p.CityID, p.MetricID, p.Year, p.Value)
			}
		}
	}
}

func TestTimeSeriesEnvelope(t *testing.T) {
	// gdp for mumbai: base 400000, city factor 1 + (109 % 10)/100 = 1.09.
	g := NewSeeded(11)
	cities := []catalog.City{{ID: "mumbai"}}
	metrics := []catalog.Metric{{ID: "gdp", Unit: "INR Crores"}}

	points := g.TimeSeries(cities, metrics, DefaultYears)
	for i, p := range points {
		expected := 400000 * 1.09 * YearFactor("gdp", p.Year, i)
		lo, hi := expected*NoiseMin-0.01, expected*NoiseMax+0.01
		if p.Value < lo || p.Value > hi {
			t.Errorf("gdp %d = %v, want within [%v,%v]", p.Year, p.Value, lo, hi)
		}
	}
}

func TestTimeSeriesUnknownMetricIsZero(t *testing.T) {
	g := NewSeeded(5)
	points := g.TimeSeries([]catalog.City{{ID: "pune"}}, []catalog.Metric{{ID: "nope"}}, DefaultYears)
	for _, p := range points {
		if p.Value != 0 {
			t.Errorf("unknown metric %d = %v, want 0", p.Year, p.Value)
		}
	}
}

func TestCityFactor(t *testing.T) {
	tests := []struct {
		id   string
		want float64
	}{
		{"mumbai", 1.09}, // 'm' = 109
		{"delhi", 1.00},  // 'd' = 100
		{"pune", 1.02},   // 'p' = 112
		{"", 1},
	}
	for _, tt := range tests {
		if got := CityFactor(tt.id); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("CityFactor(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestYearFactor(t *testing.T) {
	tests := []struct {
		metric string
		year   int
		index  int
		want   float64
	}{
		{"gdp", 2019, 0, 1},
		{"gdp", 2020, 1, 0.9},
		{"fdi", 2020, 1, 0.9},
		{"unemployment", 2020, 1, 1.3},
		{"healthcare_expenditure", 2020, 1, 1.2},
		{"literacy", 2020, 1, 1},
		{"gdp", 2021, 2, 1.1},
		{"gdp", 2023, 4, 1.2},
	}
	for _, tt := range tests {
		if got := YearFactor(tt.metric, tt.year, tt.index); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("YearFactor(%s, %d) = %v, want %v", tt.metric, tt.year, got, tt.want)
		}
	}
}

func TestYearsBetween(t *testing.T) {
	if diff := cmp.Diff(DefaultYears, YearsBetween(2019, 2023)); diff != "" {
		t.Errorf("YearsBetween mismatch (-want +got):\n%s", diff)
	}
	if got := YearsBetween(2024, 2023); got != nil {
		t.Errorf("inverted range = %v, want nil", got)
	}
}
