package insights

import (
	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/catalog"
	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/query"
	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/stats"
)

// Leaderboard sizes.
const (
	TopHDICount         = 10
	InequalityCount     = 5
	HealthcareCount     = 5
	EnvironmentEndCount = 3
)

// Leaderboards are the ranked city lists on the insights panel.
type Leaderboards struct {
	TopHDI                []query.RankedRow `json:"top_hdi"`
	HighestInequality     []query.RankedRow `json:"highest_inequality"`
	BestHealthcare        []query.RankedRow `json:"best_healthcare"`
	EnvironmentalLeaders  []query.RankedRow `json:"environmental_leaders"`
	EnvironmentalLaggards []query.RankedRow `json:"environmental_laggards"`
}

// LookupFunc returns a city's current value for a metric, 0 when missing.
type LookupFunc func(cityID, metricID string) float64

// BuildLeaderboards ranks cities by HDI, Gini, and the healthcare and
// environment composite scores. Laggards are listed worst first.
func BuildLeaderboards(cities []catalog.City, lookup LookupFunc) Leaderboards {
	metric := func(id string) query.ValueFunc {
		return func(cityID string) float64 { return lookup(cityID, id) }
	}

	healthcare := func(cityID string) float64 {
		return stats.HealthcareScore(
			lookup(cityID, "physicians"),
			lookup(cityID, "hospital_beds"),
			lookup(cityID, "healthcare_expenditure"),
		)
	}
	environment := func(cityID string) float64 {
		return stats.EnvironmentScore(
			lookup(cityID, "renewable_energy"),
			lookup(cityID, "co2_emissions"),
			lookup(cityID, "forest_area"),
		)
	}

	env := query.Rank(cities, environment, query.Desc)

	return Leaderboards{
		TopHDI:                query.TopN(query.Rank(cities, metric("hdi"), query.Desc), TopHDICount),
		HighestInequality:     query.TopN(query.Rank(cities, metric("gini_coefficient"), query.Desc), InequalityCount),
		BestHealthcare:        query.TopN(query.Rank(cities, healthcare, query.Desc), HealthcareCount),
		EnvironmentalLeaders:  query.TopN(env, EnvironmentEndCount),
		EnvironmentalLaggards: query.BottomN(env, EnvironmentEndCount),
	}
}
