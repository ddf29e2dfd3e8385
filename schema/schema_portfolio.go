package schema

import "time"

// PortfolioMetricTrend is the portfolio-wide trend line for one tracked metric.
// Only metrics whose monthly series has at least two points are emitted.
type PortfolioMetricTrend struct {
	MetricName    MetricName `json:"metric_name"`
	StartDate     time.Time  `json:"start_date"`
	StartValue    float64    `json:"start_value"` // 2 decimals
	EndDate       time.Time  `json:"end_date"`
	EndValue      float64    `json:"end_value"` // 2 decimals
	CAGR          float64    `json:"cagr"`
	Direction     Direction  `json:"direction"`
	StrengthLabel string     `json:"strength_label"` // Human-readable strength, e.g. "Strong"
}

// ReportBundle is the JSON-serializable result of a full analysis run,
// keyed by the batch identifier of the upload it was computed from.
type ReportBundle struct {
	BatchID     string                 `json:"batch_id"`
	GeneratedAt time.Time              `json:"generated_at"`
	Segments    []AccountTrendSegment  `json:"segments"`
	Summaries   []SegmentSummary       `json:"summaries"`
	Portfolio   []PortfolioMetricTrend `json:"portfolio"`
}
