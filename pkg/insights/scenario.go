package insights

import (
	"sort"

	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/catalog"
)

// Projection is a city's value for one metric before and after a scenario.
type Projection struct {
	CityID    string  `json:"city_id"`
	MetricID  string  `json:"metric_id"`
	Current   float64 `json:"current"`
	Projected float64 `json:"projected"`
	ChangePct float64 `json:"change_pct"`
}

// ApplyScenario projects every city's value for each metric the scenario
// touches as current × (1 + impact/100), clamped to the metric's unit
// bound. Impacts on metrics outside the catalog are ignored. Output is
// city-major in catalog order, metrics sorted by id within a city.
func ApplyScenario(cat *catalog.Catalog, s catalog.Scenario, lookup LookupFunc) []Projection {
	metricIDs := make([]string, 0, len(s.Impact))
	for id := range s.Impact {
		if _, ok := cat.Metric(id); ok {
			metricIDs = append(metricIDs, id)
		}
	}
	sort.Strings(metricIDs)

	out := make([]Projection, 0, len(cat.Cities)*len(metricIDs))
	for _, c := range cat.Cities {
		for _, id := range metricIDs {
			m, _ := cat.Metric(id)
			current := lookup(c.ID, id)
			projected := m.Bound().Clamp(current * (1 + s.Impact[id]/100))
			out = append(out, Projection{
				CityID:    c.ID,
				MetricID:  id,
				Current:   current,
				Projected: projected,
				ChangePct: s.Impact[id],
			})
		}
	}
	return out
}
