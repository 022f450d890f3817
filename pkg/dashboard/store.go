// Package dashboard owns one load of generated city data and answers every
// query the views make against it.
//
// A Store is write-once-per-Load and read-many. It is not safe for
// concurrent Load calls; reads after Load returns may run concurrently.
package dashboard

import (
	"log/slog"
	"sort"

	"github.com/SumitKSinghDev/india-growth-dashboard/internal/logging"
	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/anomaly"
	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/catalog"
	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/export"
	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/generator"
	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/insights"
	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/query"
)

type key struct {
	city   string
	metric string
}

// Store holds the current values and yearly series for one catalog.
type Store struct {
	cat   *catalog.Catalog
	gen   *generator.Generator
	years []int
	log   *slog.Logger

	current map[key]float64
	series  map[key][]generator.Point
}

// Option configures a Store.
type Option func(*Store)

// WithYears sets the years covered by the time series.
func WithYears(years []int) Option {
	return func(s *Store) {
		s.years = append([]int(nil), years...)
	}
}

// WithLogger replaces the component logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// New returns an empty store. Call Load before querying.
func New(cat *catalog.Catalog, gen *generator.Generator, opts ...Option) *Store {
	s := &Store{
		cat:     cat,
		gen:     gen,
		years:   generator.DefaultYears,
		current: map[key]float64{},
		series:  map[key][]generator.Point{},
	}
	for _, o := range opts {
		o(s)
	}
	if s.log == nil {
		s.log = logging.New("dashboard")
	}
	return s
}

// Load regenerates every value and series, replacing the previous load.
func (s *Store) Load() {
	current := make(map[key]float64, len(s.cat.Cities)*len(s.cat.Metrics))
	for _, v := range s.gen.CrossSectional(s.cat.Cities, s.cat.Metrics) {
		current[key{v.CityID, v.MetricID}] = v.Value
	}

	points := s.gen.TimeSeries(s.cat.Cities, s.cat.Metrics, s.years)
	series := make(map[key][]generator.Point, len(current))
	for _, p := range points {
		k := key{p.CityID, p.MetricID}
		series[k] = append(series[k], p)
	}
	for _, pts := range series {
		sort.Slice(pts, func(i, j int) bool { return pts[i].Year < pts[j].Year })
	}

	s.current = current
	s.series = series
	s.log.Info("data loaded",
		slog.Int("cities", len(s.cat.Cities)),
		slog.Int("metrics", len(s.cat.Metrics)),
		slog.Int("values", len(current)),
		slog.Int("series_points", len(points)),
	)
}

// Catalog returns the catalog the store was built from.
func (s *Store) Catalog() *catalog.Catalog { return s.cat }

// Years returns the years covered by Series.
func (s *Store) Years() []int { return append([]int(nil), s.years...) }

// Cities returns the catalog cities in order.
func (s *Store) Cities() []catalog.City { return s.cat.Cities }

// Metrics returns the catalog metrics in order.
func (s *Store) Metrics() []catalog.Metric { return s.cat.Metrics }

// Value returns the current value, or 0 for an unknown city or metric.
func (s *Store) Value(cityID, metricID string) float64 {
	return s.current[key{cityID, metricID}]
}

// Lookup is Value with an explicit missing flag.
func (s *Store) Lookup(cityID, metricID string) (float64, bool) {
	v, ok := s.current[key{cityID, metricID}]
	return v, ok
}

// Series returns the yearly points for a pair in year order, or nil.
func (s *Store) Series(cityID, metricID string) []generator.Point {
	pts := s.series[key{cityID, metricID}]
	if len(pts) == 0 {
		return nil
	}
	return append([]generator.Point(nil), pts...)
}

// Rank orders every city by its current value for metricID. An unknown
// metric yields no rows.
func (s *Store) Rank(metricID string, order query.Order) []query.RankedRow {
	if _, ok := s.cat.Metric(metricID); !ok {
		return nil
	}
	return query.Rank(s.cat.Cities, func(cityID string) float64 {
		return s.Value(cityID, metricID)
	}, order)
}

// DetectAnomalies scans every metric across every city.
func (s *Store) DetectAnomalies() []anomaly.Anomaly {
	found := anomaly.Detect(s.cat.Cities, s.cat.Metrics, s.Value)
	sum := anomaly.Summarize(found)
	s.log.Debug("anomaly scan",
		slog.Int("total", sum.Total),
		slog.Int("high", sum.High),
		slog.Int("medium", sum.Medium),
		slog.Int("low", sum.Low),
	)
	return found
}

// ExportRows builds an export table. Empty id lists select everything;
// unknown ids are skipped.
func (s *Store) ExportRows(cityIDs, metricIDs []string) export.Table {
	return export.NewTable(s.selectCities(cityIDs, 0), s.selectMetrics(metricIDs, 0), s.Value)
}

// Insights builds the insights panel from the current values.
func (s *Store) Insights() insights.Panel {
	return insights.Build(s.cat, s.Lookup)
}

// ApplyScenario projects the named scenario onto current values.
func (s *Store) ApplyScenario(name string) ([]insights.Projection, bool) {
	sc, ok := s.cat.Scenario(name)
	if !ok {
		return nil, false
	}
	return insights.ApplyScenario(s.cat, sc, s.Value), true
}

// selectCities resolves ids in the given order. An empty list selects the
// first n catalog cities (all when n <= 0).
func (s *Store) selectCities(ids []string, n int) []catalog.City {
	if len(ids) == 0 {
		if n <= 0 || n > len(s.cat.Cities) {
			n = len(s.cat.Cities)
		}
		return s.cat.Cities[:n]
	}
	out := make([]catalog.City, 0, len(ids))
	for _, id := range ids {
		if c, ok := s.cat.City(id); ok {
			out = append(out, c)
		}
	}
	return out
}

func (s *Store) selectMetrics(ids []string, n int) []catalog.Metric {
	if len(ids) == 0 {
		if n <= 0 || n > len(s.cat.Metrics) {
			n = len(s.cat.Metrics)
		}
		return s.cat.Metrics[:n]
	}
	out := make([]catalog.Metric, 0, len(ids))
	for _, id := range ids {
		if m, ok := s.cat.Metric(id); ok {
			out = append(out, m)
		}
	}
	return out
}
