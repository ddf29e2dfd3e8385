package schema

// Custom string types for type safety.
type (
	// Direction represents the overall slope of a trend.
	Direction string

	// Strength represents how pronounced and consistent a trend is.
	Strength string

	// Segment represents the discrete growth trajectory of an account.
	Segment string

	// Significance grades how large an inflection shift is.
	Significance string

	// MetricName identifies a tracked portfolio metric.
	MetricName string

	// SeriesMetric identifies one of the raw per-account series.
	SeriesMetric string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for run persistence.
	DatabaseBackend string
)

// All trend directions.
const (
	DirectionUp     Direction = "up"
	DirectionDown   Direction = "down"
	DirectionStable Direction = "stable" // default
)

// All trend strengths.
const (
	StrengthStrong   Strength = "strong"
	StrengthModerate Strength = "moderate"
	StrengthWeak     Strength = "weak" // default
)

// All account segments, from best to worst trajectory.
const (
	HighGrowthSegment   Segment = "high_growth"
	SteadyGrowthSegment Segment = "steady_growth"
	StableSegment       Segment = "stable"
	DecliningSegment    Segment = "declining"
	AtRiskSegment       Segment = "at_risk"
)

// All inflection significance grades.
const (
	HighSignificance   Significance = "high"   // |change| >= 30%
	MediumSignificance Significance = "medium" // |change| >= 20%
	LowSignificance    Significance = "low"
)

// All tracked portfolio metrics.
const (
	TotalARRMetric      MetricName = "Total ARR"
	AvgHealthMetric     MetricName = "Avg Health Score"
	AvgNPSMetric        MetricName = "Avg NPS"
	CustomerCountMetric MetricName = "Customer Count"
)

// All per-account series metrics.
const (
	ARRSeries    SeriesMetric = "arr" // default
	HealthSeries SeriesMetric = "health"
	NPSSeries    SeriesMetric = "nps"
)

// All output modes supported.
const (
	CSVOut  OutputMode = "csv"
	TextOut OutputMode = "text" // default
	JSONOut OutputMode = "json"
)

// All run store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// AllSegments returns the fixed segment set in display order.
var AllSegments = []Segment{
	HighGrowthSegment,
	SteadyGrowthSegment,
	StableSegment,
	DecliningSegment,
	AtRiskSegment,
}

// ValidSeriesMetrics lists all valid per-account series metrics.
var ValidSeriesMetrics = map[SeriesMetric]struct{}{
	ARRSeries:    {},
	HealthSeries: {},
	NPSSeries:    {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:  {},
	TextOut: {},
	JSONOut: {},
}

// ValidDatabaseBackends lists all valid run store backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// segmentLabels maps each segment to its display label.
var segmentLabels = map[Segment]string{
	HighGrowthSegment:   "High Growth",
	SteadyGrowthSegment: "Steady Growth",
	StableSegment:       "Stable",
	DecliningSegment:    "Declining",
	AtRiskSegment:       "At Risk",
}

// segmentCharacteristics is the static descriptive list per segment.
// These are fixed business descriptions, not derived from account data.
var segmentCharacteristics = map[Segment][]string{
	HighGrowthSegment: {
		"ARR growing above 30% annually",
		"Strong expansion signals",
		"Candidates for case studies and references",
	},
	SteadyGrowthSegment: {
		"ARR growing 10-30% annually",
		"Healthy, predictable expansion",
		"Upsell opportunities worth exploring",
	},
	StableSegment: {
		"ARR roughly flat year over year",
		"Renewal-focused relationship",
		"Watch for early expansion or decline signals",
	},
	DecliningSegment: {
		"ARR shrinking more than 10% annually",
		"Contraction or partial churn underway",
		"Needs a save plan before renewal",
	},
	AtRiskSegment: {
		"Steep or accelerating ARR decline",
		"High churn probability",
		"Requires immediate executive attention",
	},
}

// SegmentLabel returns the display label for a segment.
func SegmentLabel(s Segment) string {
	if label, ok := segmentLabels[s]; ok {
		return label
	}
	return string(s)
}

// SegmentCharacteristics returns the static characteristics list for a segment.
func SegmentCharacteristics(s Segment) []string {
	return segmentCharacteristics[s]
}

// strengthLabels maps raw strength values to their human-readable form.
var strengthLabels = map[Strength]string{
	StrengthStrong:   "Strong",
	StrengthModerate: "Moderate",
	StrengthWeak:     "Weak",
}

// StrengthLabel returns the human-readable label for a strength value.
func StrengthLabel(s Strength) string {
	if label, ok := strengthLabels[s]; ok {
		return label
	}
	return string(s)
}
