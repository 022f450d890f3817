package insights

import (
	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/catalog"
	"github.com/SumitKSinghDev/india-growth-dashboard/pkg/query"
)

// Priority orders policy recommendations.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Recommendation is a policy action suggested for one city.
type Recommendation struct {
	CityID         string   `json:"city_id"`
	Category       string   `json:"category"`
	Issue          string   `json:"issue"`
	Recommendation string   `json:"recommendation"`
	Priority       Priority `json:"priority"`
}

// PolicyRule fires when a city's metric is on the wrong side of Threshold.
type PolicyRule struct {
	MetricID       string
	Below          bool // fire when value < Threshold; otherwise value > Threshold
	Threshold      float64
	Category       string
	Issue          string
	Recommendation string
	Priority       Priority
}

// PolicyRules is evaluated in order for every city.
var PolicyRules = []PolicyRule{
	{
		MetricID: "physicians", Below: true, Threshold: 0.8,
		Category:       "Healthcare",
		Issue:          "Low physician density",
		Recommendation: "Implement medical education incentives and improve healthcare infrastructure",
		Priority:       PriorityHigh,
	},
	{
		MetricID: "hospital_beds", Below: true, Threshold: 2,
		Category:       "Healthcare",
		Issue:          "Insufficient hospital beds",
		Recommendation: "Expand hospital capacity and invest in healthcare facilities",
		Priority:       PriorityHigh,
	},
	{
		MetricID: "literacy", Below: true, Threshold: 85,
		Category:       "Education",
		Issue:          "Low literacy rate",
		Recommendation: "Launch adult literacy programs and improve school infrastructure",
		Priority:       PriorityMedium,
	},
	{
		MetricID: "unemployment", Threshold: 8,
		Category:       "Economic",
		Issue:          "High unemployment rate",
		Recommendation: "Create job training programs and attract new industries",
		Priority:       PriorityHigh,
	},
	{
		MetricID: "co2_emissions", Threshold: 3,
		Category:       "Environment",
		Issue:          "High CO2 emissions",
		Recommendation: "Implement green energy policies and public transportation improvements",
		Priority:       PriorityMedium,
	},
	{
		MetricID: "renewable_energy", Below: true, Threshold: 15,
		Category:       "Environment",
		Issue:          "Low renewable energy adoption",
		Recommendation: "Incentivize renewable energy projects and solar panel installations",
		Priority:       PriorityMedium,
	},
	{
		MetricID: "internet_penetration", Below: true, Threshold: 70,
		Category:       "Infrastructure",
		Issue:          "Low internet penetration",
		Recommendation: "Expand broadband infrastructure and digital literacy programs",
		Priority:       PriorityMedium,
	},
}

// PresenceFunc returns a city's value for a metric and whether it exists.
type PresenceFunc func(cityID, metricID string) (float64, bool)

// Recommend evaluates PolicyRules for every city in catalog order.
// A missing value never fires a rule.
func Recommend(cities []catalog.City, lookup PresenceFunc) []Recommendation {
	var out []Recommendation
	for _, c := range cities {
		for _, r := range PolicyRules {
			v, ok := lookup(c.ID, r.MetricID)
			if !ok {
				continue
			}
			fired := v > r.Threshold
			if r.Below {
				fired = v < r.Threshold
			}
			if !fired {
				continue
			}
			out = append(out, Recommendation{
				CityID:         c.ID,
				Category:       r.Category,
				Issue:          r.Issue,
				Recommendation: r.Recommendation,
				Priority:       r.Priority,
			})
		}
	}
	return out
}

// ByPriority keeps recommendations with priority p, capped at limit
// (limit <= 0 means no cap).
func ByPriority(recs []Recommendation, p Priority, limit int) []Recommendation {
	out := make([]Recommendation, 0, len(recs))
	for _, r := range recs {
		if r.Priority == p {
			out = append(out, r)
		}
	}
	if limit > 0 {
		out = query.TopN(out, limit)
	}
	return out
}
