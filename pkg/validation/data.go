package validation

import (
	"fmt"
	"math"

	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/catalog"
)

// LookupFunc returns a value and whether it is present.
type LookupFunc func(cityID, metricID string) (float64, bool)

// ValidateValues checks that every catalog pair has a finite value inside
// its metric's unit bound.
func ValidateValues(c *catalog.Catalog, lookup LookupFunc) *Report {
	r := NewReport()
	for _, city := range c.Cities {
		for _, m := range c.Metrics {
			path := city.ID + "." + m.ID
			v, ok := lookup(city.ID, m.ID)
			switch {
			case !ok:
				r.AddError(Result{
					Level:   LevelData,
					Message: fmt.Sprintf("no value for %s / %s", city.Name, m.Name),
					Path:    path,
				})
			case math.IsNaN(v) || math.IsInf(v, 0):
				r.AddError(Result{
					Level:       LevelData,
					Message:     fmt.Sprintf("%s / %s is not a finite number", city.Name, m.Name),
					Path:        path,
					ActualValue: fmt.Sprint(v),
					Expected:    "finite",
				})
			case !m.Bound().Contains(v):
				b := m.Bound()
				r.AddError(Result{
					Level:       LevelData,
					Message:     fmt.Sprintf("%s / %s is outside its unit bound", city.Name, m.Name),
					Path:        path,
					ActualValue: v,
					Expected:    fmt.Sprintf("%g-%g", b.Min, b.Max),
				})
			}
		}
	}
	return r
}
