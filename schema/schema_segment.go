package schema

// AccountTrendSegment assigns one account to a growth segment.
// Recomputed on every analysis run; there is no persisted lifecycle.
type AccountTrendSegment struct {
	AccountID     string   `json:"account_id"`
	AccountName   string   `json:"account_name"`
	Segment       Segment  `json:"segment"`
	ARRCagr       float64  `json:"arr_cagr"`
	HealthCagr    *float64 `json:"health_cagr,omitempty"` // Absent when the account has no health series
	GrowthDriver  string   `json:"growth_driver,omitempty"`
	DeclineDriver string   `json:"decline_driver,omitempty"`
}

// SegmentSummary holds roll-up statistics for one fixed segment.
type SegmentSummary struct {
	Segment         Segment  `json:"segment"`
	Label           string   `json:"label"`
	AccountCount    int      `json:"account_count"`
	TotalARR        float64  `json:"total_arr"`   // Sum of each member's latest ARR sample
	ARRPercent      float64  `json:"arr_percent"` // Share of total portfolio ARR
	AvgCagr         float64  `json:"avg_cagr"`
	Characteristics []string `json:"characteristics"` // Static descriptive list, not derived from data
}
