package stats

// Composite score weights.
// Healthcare = 0.4×physicians + 0.3×beds + 0.3×(spend/1000).
// Environment = 0.4×renewable% + 0.3×(100 − co2×20) + 0.3×forest%.
const (
	HealthPhysiciansWeight = 0.4
	HealthBedsWeight       = 0.3
	HealthSpendWeight      = 0.3
	HealthSpendScale       = 1000.0 // INR per capita per score point

	EnvRenewableWeight = 0.4
	EnvCO2Weight       = 0.3
	EnvForestWeight    = 0.3
	EnvCO2Ceiling      = 100.0 // score at zero emissions
	EnvCO2Penalty      = 20.0  // points lost per ton per capita
)

// Trend extrapolation constants.
const (
	ConfidenceDecay = 0.2 // lost per year beyond the last observation
	ConfidenceFloor = 0.3
)
