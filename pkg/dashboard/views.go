package dashboard

import (
	"math"

	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/catalog"
	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/stats"
)

// Heatmap defaults when no selection is given.
const (
	HeatmapDefaultCities  = 10
	HeatmapDefaultMetrics = 8
)

// Cell is one heatmap square.
type Cell struct {
	Value float64 `json:"value"`
	// Intensity is the value's min-max position among the shown cities
	// for the same metric, in [0, 1]. A metric with no spread is 0.
	Intensity float64 `json:"intensity"`
}

// Heatmap is a city × metric grid. Cells[i][j] is Cities[i], Metrics[j].
type Heatmap struct {
	Cities  []catalog.City   `json:"cities"`
	Metrics []catalog.Metric `json:"metrics"`
	Cells   [][]Cell         `json:"cells"`
}

// Heatmap builds the grid for the selection. Empty selections default to
// the first HeatmapDefaultCities cities and HeatmapDefaultMetrics metrics.
func (s *Store) Heatmap(cityIDs, metricIDs []string) Heatmap {
	cities := s.selectCities(cityIDs, HeatmapDefaultCities)
	metrics := s.selectMetrics(metricIDs, HeatmapDefaultMetrics)

	h := Heatmap{
		Cities:  cities,
		Metrics: metrics,
		Cells:   make([][]Cell, len(cities)),
	}
	for i := range h.Cells {
		h.Cells[i] = make([]Cell, len(metrics))
	}

	for j, m := range metrics {
		lo, hi := math.Inf(1), math.Inf(-1)
		for i, c := range cities {
			v := s.Value(c.ID, m.ID)
			h.Cells[i][j].Value = v
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		if hi <= lo {
			continue
		}
		for i := range cities {
			h.Cells[i][j].Intensity = (h.Cells[i][j].Value - lo) / (hi - lo)
		}
	}
	return h
}

// ScatterPoint is one city on a correlation plot.
type ScatterPoint struct {
	CityID string  `json:"city_id"`
	Label  string  `json:"label"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// Correlation pairs two metrics across cities.
type Correlation struct {
	XMetric string         `json:"x_metric"`
	YMetric string         `json:"y_metric"`
	Points  []ScatterPoint `json:"points"`
	// R is the Pearson coefficient, 0 when undefined.
	R float64 `json:"r"`
}

// Correlation plots metric mx against my for the selected cities (all when
// cityIDs is empty).
func (s *Store) Correlation(mx, my string, cityIDs []string) Correlation {
	cities := s.selectCities(cityIDs, 0)
	c := Correlation{
		XMetric: mx,
		YMetric: my,
		Points:  make([]ScatterPoint, len(cities)),
	}
	xs := make([]float64, len(cities))
	ys := make([]float64, len(cities))
	for i, city := range cities {
		xs[i] = s.Value(city.ID, mx)
		ys[i] = s.Value(city.ID, my)
		c.Points[i] = ScatterPoint{CityID: city.ID, Label: city.Label(), X: xs[i], Y: ys[i]}
	}
	c.R = stats.Pearson(xs, ys)
	return c
}
