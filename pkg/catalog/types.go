package catalog

// Category groups metrics into dashboard tabs.
type Category string

const (
	CategoryEconomic    Category = "Economic"
	CategorySocial      Category = "Social"
	CategoryHealth      Category = "Health"
	CategoryEnvironment Category = "Environment"
	CategoryGovernance  Category = "Governance"
	CategoryEquality    Category = "Equality"

	// CategoryAll is the filter sentinel that matches every category.
	CategoryAll Category = "All"
)

// Categories lists the metric categories in display order.
var Categories = []Category{
	CategoryEconomic,
	CategorySocial,
	CategoryHealth,
	CategoryEnvironment,
	CategoryGovernance,
	CategoryEquality,
}

// Valid reports whether c is one of the six metric categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Catalog is the static definition of cities, metrics and the canned
// insight content shown next to them.
type Catalog struct {
	Version   string     `yaml:"version" json:"version"`
	Cities    []City     `yaml:"cities" json:"cities"`
	Metrics   []Metric   `yaml:"metrics" json:"metrics"`
	Clusters  []Cluster  `yaml:"clusters" json:"clusters"`
	Stories   []Story    `yaml:"success_stories" json:"success_stories"`
	Scenarios []Scenario `yaml:"scenarios" json:"scenarios"`
}

// City is one of the compared cities.
type City struct {
	ID    string `yaml:"id" json:"city_id"`
	Name  string `yaml:"name" json:"name"`
	State string `yaml:"state" json:"state"`
}

// Label returns "Name, State".
func (c City) Label() string {
	if c.State == "" {
		return c.Name
	}
	return c.Name + ", " + c.State
}

// Metric is a socio-economic indicator tracked per city.
type Metric struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Category    Category `yaml:"category" json:"category"`
	Unit        string   `yaml:"unit" json:"unit"`
	Description string   `yaml:"description" json:"description"`
	Source      string   `yaml:"source" json:"source"`
	LastUpdated string   `yaml:"last_updated" json:"last_updated"`
}

// Bound returns the value range implied by the metric's unit.
func (m Metric) Bound() Bound {
	return BoundForUnit(m.Unit)
}

// Cluster is a named group of cities with a similar profile.
type Cluster struct {
	Name            string   `yaml:"name" json:"name"`
	Cities          []string `yaml:"cities" json:"cities"`
	Characteristics []string `yaml:"characteristics" json:"characteristics,omitempty"`
}

// Story is a canned policy success story for one city.
type Story struct {
	CityID         string `yaml:"city_id" json:"city_id"`
	Category       string `yaml:"category" json:"category"`
	Issue          string `yaml:"issue" json:"issue"`
	Recommendation string `yaml:"recommendation" json:"recommendation"`
	Priority       string `yaml:"priority" json:"priority"`
	Story          string `yaml:"story" json:"story"`
}

// Scenario is a what-if policy change expressed as percentage impacts per metric.
type Scenario struct {
	Name        string             `yaml:"name" json:"name"`
	Description string             `yaml:"description" json:"description"`
	Impact      map[string]float64 `yaml:"impact" json:"impact"`
}
