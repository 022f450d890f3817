// Package generator produces the synthetic city metric data the dashboard
// runs on: one cross-sectional value per (city, metric) pair and one
// yearly time series per pair.
package generator

import (
	"math"
	"math/rand"
	"time"

	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/catalog"
)

// Value is the current value of one metric for one city.
type Value struct {
	CityID   string  `json:"city_id"`
	MetricID string  `json:"metric_id"`
	Value    float64 `json:"value"`
}

// Point is one year of a city's metric time series.
type Point struct {
	CityID   string  `json:"city_id"`
	MetricID string  `json:"metric_id"`
	Year     int     `json:"year"`
	Value    float64 `json:"value"`
}

// Generator draws synthetic metric values from a random source.
// It is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// New creates a generator that draws from src.
func New(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// NewSeeded creates a generator whose output is fully determined by seed.
func NewSeeded(seed int64) *Generator {
	return New(rand.NewSource(seed))
}

// NewUnseeded creates a generator seeded from the clock, so every load
// produces different data.
func NewUnseeded() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// CrossSectional draws one value per (city, metric) pair, uniformly inside
// the metric's range. Output is ordered city-major in input order.
func (g *Generator) CrossSectional(cities []catalog.City, metrics []catalog.Metric) []Value {
	values := make([]Value, 0, len(cities)*len(metrics))
	for _, city := range cities {
		for _, m := range metrics {
			r := RangeFor(m.ID)
			v := r.Min + g.rng.Float64()*(r.Max-r.Min)
			values = append(values, Value{
				CityID:   city.ID,
				MetricID: m.ID,
				Value:    m.Bound().Clamp(v),
			})
		}
	}
	return values
}

// TimeSeries builds one series per (city, metric) pair over years.
// years must be ascending; the first year is the growth baseline.
func (g *Generator) TimeSeries(cities []catalog.City, metrics []catalog.Metric, years []int) []Point {
	points := make([]Point, 0, len(cities)*len(metrics)*len(years))
	for _, city := range cities {
		cf := CityFactor(city.ID)
		for _, m := range metrics {
			base := BaseFor(m.ID)
			bound := m.Bound()
			for i, year := range years {
				noise := NoiseMin + g.rng.Float64()*(NoiseMax-NoiseMin)
				v := base * cf * YearFactor(m.ID, year, i) * noise
				points = append(points, Point{
					CityID:   city.ID,
					MetricID: m.ID,
					Year:     year,
					Value:    round2(bound.Clamp(v)),
				})
			}
		}
	}
	return points
}

// CityFactor is the deterministic per-city multiplier:
// 1 + (first byte of the id mod 10) / 100. An empty id yields 1.
func CityFactor(cityID string) float64 {
	if cityID == "" {
		return 1
	}
	return 1 + float64(int(cityID[0])%CitySpread)*CityFactorStep
}

// YearFactor is the growth multiplier for the index-th year of a series.
// The shock year uses the metric's shock factor; later years resume linear
// growth, which puts them back at or above baseline.
func YearFactor(metricID string, year, index int) float64 {
	if year == ShockYear {
		if f, ok := ShockFactors[metricID]; ok {
			return f
		}
		return 1
	}
	return 1 + AnnualGrowth*float64(index)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
