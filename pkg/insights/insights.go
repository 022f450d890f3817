// Package insights derives leaderboards, policy recommendations and
// scenario projections from current city values.
package insights

import "github.com/SumitKSinghDev/india-growth-dashboard/pkg/catalog"

// Panel is everything the insights view shows.
type Panel struct {
	Leaderboards    Leaderboards       `json:"leaderboards"`
	Recommendations []Recommendation   `json:"recommendations"`
	Clusters        []catalog.Cluster  `json:"clusters"`
	Stories         []catalog.Story    `json:"success_stories"`
	Scenarios       []catalog.Scenario `json:"scenarios"`
}

// Build assembles the insights panel for every city in cat.
func Build(cat *catalog.Catalog, lookup PresenceFunc) Panel {
	value := func(cityID, metricID string) float64 {
		v, _ := lookup(cityID, metricID)
		return v
	}
	return Panel{
		Leaderboards:    BuildLeaderboards(cat.Cities, value),
		Recommendations: Recommend(cat.Cities, lookup),
		Clusters:        cat.Clusters,
		Stories:         cat.Stories,
		Scenarios:       cat.Scenarios,
	}
}
