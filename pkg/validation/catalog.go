package validation

import (
	"fmt"
	"regexp"

	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/catalog"
	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/generator"
)

var slugPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

var priorities = map[string]bool{"high": true, "medium": true, "low": true}

// ValidateCatalog checks a catalog's structure and cross references.
func ValidateCatalog(c *catalog.Catalog) *Report {
	r := NewReport()

	if c.Version == "" {
		r.AddInfo(Result{
			Level:   LevelCatalog,
			Message: "catalog has no version",
			Path:    "version",
		})
	}

	validateCities(c, r)
	validateMetrics(c, r)
	validateClusters(c, r)
	validateStories(c, r)
	validateScenarios(c, r)

	return r
}

func validateCities(c *catalog.Catalog, r *Report) {
	if len(c.Cities) == 0 {
		r.AddError(Result{
			Level:    LevelCatalog,
			Message:  "cities must contain at least one city",
			Path:     "cities",
			Expected: "at least 1 city",
		})
		return
	}

	seen := map[string]int{}
	for i, city := range c.Cities {
		path := fmt.Sprintf("cities[%d]", i)
		checkID(r, "cities", i, city.ID, seen)
		if city.Name == "" {
			r.AddError(Result{
				Level:   LevelCatalog,
				Message: fmt.Sprintf("city %q has no name", city.ID),
				Path:    path + ".name",
			})
		}
		if city.State == "" {
			r.AddWarning(Result{
				Level:   LevelCatalog,
				Message: fmt.Sprintf("city %q has no state", city.ID),
				Path:    path + ".state",
			})
		}
	}
}

func validateMetrics(c *catalog.Catalog, r *Report) {
	if len(c.Metrics) == 0 {
		r.AddError(Result{
			Level:    LevelCatalog,
			Message:  "metrics must contain at least one metric",
			Path:     "metrics",
			Expected: "at least 1 metric",
		})
		return
	}

	seen := map[string]int{}
	for i, m := range c.Metrics {
		path := fmt.Sprintf("metrics[%d]", i)
		checkID(r, "metrics", i, m.ID, seen)
		if m.Name == "" {
			r.AddError(Result{
				Level:   LevelCatalog,
				Message: fmt.Sprintf("metric %q has no name", m.ID),
				Path:    path + ".name",
			})
		}
		if !m.Category.Valid() {
			r.AddError(Result{
				Level:       LevelCatalog,
				Message:     fmt.Sprintf("metric %q has unknown category %q", m.ID, m.Category),
				Path:        path + ".category",
				ActualValue: string(m.Category),
				Expected:    fmt.Sprint(catalog.Categories),
			})
		}
		if m.Unit == "" {
			r.AddWarning(Result{
				Level:   LevelCatalog,
				Message: fmt.Sprintf("metric %q has no unit; values will be unbounded", m.ID),
				Path:    path + ".unit",
			})
		}
		if _, ok := generator.Ranges[m.ID]; !ok {
			r.AddInfo(Result{
				Level:    LevelCatalog,
				Message:  fmt.Sprintf("metric %q has no generator range; using the default", m.ID),
				Path:     path + ".id",
				Expected: fmt.Sprintf("%.0f-%.0f", generator.DefaultRange.Min, generator.DefaultRange.Max),
			})
		}
		if _, ok := generator.BaseValues[m.ID]; !ok {
			r.AddInfo(Result{
				Level:   LevelCatalog,
				Message: fmt.Sprintf("metric %q has no base value; its time series will be zero", m.ID),
				Path:    path + ".id",
			})
		}
	}
}

func validateClusters(c *catalog.Catalog, r *Report) {
	for i, cl := range c.Clusters {
		if len(cl.Cities) == 0 {
			r.AddWarning(Result{
				Level:   LevelCatalog,
				Message: fmt.Sprintf("cluster %q lists no cities", cl.Name),
				Path:    fmt.Sprintf("clusters[%d].cities", i),
			})
		}
		for j, id := range cl.Cities {
			if _, ok := c.City(id); !ok {
				r.AddError(Result{
					Level:       LevelCatalog,
					Message:     fmt.Sprintf("cluster %q references unknown city %q", cl.Name, id),
					Path:        fmt.Sprintf("clusters[%d].cities[%d]", i, j),
					ActualValue: id,
				})
			}
		}
	}
}

func validateStories(c *catalog.Catalog, r *Report) {
	for i, s := range c.Stories {
		path := fmt.Sprintf("success_stories[%d]", i)
		if _, ok := c.City(s.CityID); !ok {
			r.AddError(Result{
				Level:       LevelCatalog,
				Message:     fmt.Sprintf("success story references unknown city %q", s.CityID),
				Path:        path + ".city_id",
				ActualValue: s.CityID,
			})
		}
		if !priorities[s.Priority] {
			r.AddWarning(Result{
				Level:       LevelCatalog,
				Message:     fmt.Sprintf("success story for %q has unknown priority %q", s.CityID, s.Priority),
				Path:        path + ".priority",
				ActualValue: s.Priority,
				Expected:    "high, medium or low",
			})
		}
	}
}

func validateScenarios(c *catalog.Catalog, r *Report) {
	names := map[string]int{}
	for i, s := range c.Scenarios {
		path := fmt.Sprintf("scenarios[%d]", i)
		if s.Name == "" {
			r.AddError(Result{
				Level:   LevelCatalog,
				Message: "scenario has no name",
				Path:    path + ".name",
			})
		} else if first, dup := names[s.Name]; dup {
			r.AddError(Result{
				Level:        LevelCatalog,
				Message:      fmt.Sprintf("duplicate scenario name %q", s.Name),
				Path:         path + ".name",
				ConflictWith: fmt.Sprintf("scenarios[%d]", first),
			})
		} else {
			names[s.Name] = i
		}

		for id, pct := range s.Impact {
			if _, ok := c.Metric(id); !ok {
				r.AddError(Result{
					Level:       LevelCatalog,
					Message:     fmt.Sprintf("scenario %q changes unknown metric %q", s.Name, id),
					Path:        fmt.Sprintf("%s.impact.%s", path, id),
					ActualValue: id,
				})
			}
			if pct < -100 {
				r.AddWarning(Result{
					Level:       LevelCatalog,
					Message:     fmt.Sprintf("scenario %q cuts %s by more than 100%%", s.Name, id),
					Path:        fmt.Sprintf("%s.impact.%s", path, id),
					ActualValue: pct,
					Expected:    ">= -100",
					Suggestions: []string{"Projected values below zero are clamped to the unit bound"},
				})
			}
		}
	}
}

func checkID(r *Report, list string, i int, id string, seen map[string]int) {
	path := fmt.Sprintf("%s[%d]", list, i)
	if !slugPattern.MatchString(id) {
		r.AddError(Result{
			Level:       LevelCatalog,
			Message:     fmt.Sprintf("id %q must be lowercase letters, digits and underscores", id),
			Path:        path + ".id",
			ActualValue: id,
			Expected:    slugPattern.String(),
		})
		return
	}
	if first, dup := seen[id]; dup {
		r.AddError(Result{
			Level:        LevelCatalog,
			Message:      fmt.Sprintf("duplicate id %q", id),
			Path:         path + ".id",
			ConflictWith: fmt.Sprintf("%s[%d]", list, first),
		})
		return
	}
	seen[id] = i
}
