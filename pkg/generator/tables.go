package generator

// Range is the closed interval a cross-sectional draw falls in.
type Range struct {
	Min float64
	Max float64
}

// DefaultRange applies to metric ids missing from Ranges.
var DefaultRange = Range{Min: 0, Max: 100}

// Ranges holds the plausible cross-sectional range per metric id.
var Ranges = map[string]Range{
	// Economic
	"gdp":            {50000, 200000}, // INR Crores
	"gni":            {45000, 180000}, // INR Crores
	"gdp_per_capita": {80000, 300000}, // INR
	"unemployment":   {3, 12},         // %
	"inflation":      {2, 8},          // %
	"fdi":            {1000, 5000},    // INR Crores
	"trade_ratio":    {0.5, 1.5},
	"public_debt":    {20, 60}, // % of GDP

	// Social
	"hdi":               {0.6, 0.9},
	"life_expectancy":   {65, 80},
	"infant_mortality":  {10, 50}, // per 1000 births
	"literacy":          {70, 95},
	"education_index":   {0.5, 0.9},
	"gender_inequality": {0.2, 0.5},
	"population_growth": {1, 3},
	"urban_population":  {40, 90},

	// Health
	"healthcare_expenditure": {5000, 20000}, // INR per capita
	"physicians":             {0.5, 2},      // per 1000 people
	"hospital_beds":          {1, 5},        // per 1000 people
	"clean_water":            {70, 95},
	"vaccination":            {60, 95},

	// Environment
	"co2_emissions":             {1, 5}, // tons per capita
	"renewable_energy":          {5, 30},
	"forest_area":               {10, 40},
	"air_quality":               {50, 150},
	"environmental_performance": {30, 70},

	// Governance
	"corruption_index":       {30, 70},
	"internet_penetration":   {40, 90},
	"mobile_subscriptions":   {60, 120}, // per 100 people
	"infrastructure_quality": {3, 6},    // 1-7 scale
	"political_stability":    {-1, 1},   // -2.5 to 2.5 scale

	// Equality
	"gini_coefficient":  {0.3, 0.5},
	"poverty_rate":      {5, 25},
	"social_protection": {20, 80},
}

// BaseValues holds the 2019 baseline each time series starts from.
// Metric ids missing here start from 0.
var BaseValues = map[string]float64{
	"gdp":            400000,
	"gni":            350000,
	"gdp_per_capita": 150000,
	"unemployment":   7,
	"inflation":      5,
	"fdi":            75000,
	"trade_ratio":    1.0,
	"public_debt":    40,

	"hdi":               0.7,
	"life_expectancy":   70,
	"infant_mortality":  30,
	"literacy":          80,
	"education_index":   0.6,
	"gender_inequality": 0.4,
	"population_growth": 2,
	"urban_population":  60,

	"healthcare_expenditure": 8000,
	"physicians":             1.0,
	"hospital_beds":          2.0,
	"clean_water":            80,
	"vaccination":            75,

	"co2_emissions":             2.5,
	"renewable_energy":          15,
	"forest_area":               25,
	"air_quality":               100,
	"environmental_performance": 50,

	"corruption_index":       50,
	"internet_penetration":   60,
	"mobile_subscriptions":   90,
	"infrastructure_quality": 4.0,
	"political_stability":    0,

	"gini_coefficient":  0.4,
	"poverty_rate":      15,
	"social_protection": 50,
}

// ShockYear is the year the time series takes a one-off shock.
const ShockYear = 2020

// ShockFactors replaces the growth factor in ShockYear.
// Metrics not listed stay flat (factor 1) for that year.
var ShockFactors = map[string]float64{
	"gdp":                    0.9,
	"gni":                    0.9,
	"fdi":                    0.9,
	"unemployment":           1.3,
	"healthcare_expenditure": 1.2,
}

// Time series shape constants.
const (
	AnnualGrowth   = 0.05 // growth per year index
	CitySpread     = 10   // cityFactor buckets
	CityFactorStep = 0.01 // per bucket
	NoiseMin       = 0.95
	NoiseMax       = 1.05
)

// DefaultYears is the observed window.
var DefaultYears = []int{2019, 2020, 2021, 2022, 2023}

// RangeFor returns the cross-sectional range for a metric id,
// falling back to DefaultRange for unknown ids.
func RangeFor(metricID string) Range {
	if r, ok := Ranges[metricID]; ok {
		return r
	}
	return DefaultRange
}

// BaseFor returns the time series baseline for a metric id, 0 if unknown.
func BaseFor(metricID string) float64 {
	return BaseValues[metricID]
}

// YearsBetween returns the inclusive year range [start, end].
// An inverted range yields nil.
func YearsBetween(start, end int) []int {
	if end < start {
		return nil
	}
	years := make([]int, 0, end-start+1)
	for y := start; y <= end; y++ {
		years = append(years, y)
	}
	return years
}
