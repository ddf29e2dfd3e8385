package schema

// DriverPredicate selects the condition a driver rule tests.
type DriverPredicate string

// All driver rule predicates.
const (
	// CagrAbove fires when the account's ARR CAGR is strictly above Threshold.
	CagrAbove DriverPredicate = "cagr_above"

	// CagrBelow fires when the account's ARR CAGR is strictly below Threshold.
	CagrBelow DriverPredicate = "cagr_below"

	// HealthCagrBelow fires when the health CAGR exists and is strictly below Threshold.
	HealthCagrBelow DriverPredicate = "health_cagr_below"

	// HealthTrendUp fires when the health trend exists and points up.
	HealthTrendUp DriverPredicate = "health_trend_up"

	// AlwaysMatch fires unconditionally; used as the final fallback rule.
	AlwaysMatch DriverPredicate = "always"
)

// DriverRule is one entry of an ordered driver decision table.
// Rules are evaluated top to bottom; the first match wins.
type DriverRule struct {
	When      DriverPredicate
	Threshold float64
	Label     string
}

// GrowthDriverRules infers the likely growth driver for accounts trending up.
// Kept as data rather than branching logic so thresholds and labels can be
// tuned without touching the classifier.
var GrowthDriverRules = []DriverRule{
	{When: CagrAbove, Threshold: 50, Label: "Product expansion"},
	{When: CagrAbove, Threshold: 30, Label: "Seat growth"},
	{When: HealthTrendUp, Label: "Strong engagement"},
	{When: AlwaysMatch, Label: "Feature upsells"},
}

// DeclineDriverRules infers the likely decline driver for accounts trending down.
var DeclineDriverRules = []DriverRule{
	{When: HealthCagrBelow, Threshold: -20, Label: "Usage declining"},
	{When: CagrBelow, Threshold: -20, Label: "Champion left"},
	{When: AlwaysMatch, Label: "No executive engagement"},
}
