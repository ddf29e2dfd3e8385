// Package schema has the data model, enums and rule tables for all parts of trendscope.
package schema

import "time"

// TimePoint is a single dated sample of one account metric.
// Input order is not guaranteed; consumers sort a copy before use.
type TimePoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// TrendResult summarizes the growth behavior of one time series.
// It is derived on every call and never persisted with its own identity.
type TrendResult struct {
	Direction     Direction `json:"direction"`
	Strength      Strength  `json:"strength"`
	CAGR          float64   `json:"cagr"`           // Compound annual growth rate, percent, 1 decimal
	Velocity      float64   `json:"velocity"`       // Regression slope in value units per day
	Acceleration  float64   `json:"acceleration"`   // Second-half slope minus first-half slope
	RSquared      float64   `json:"r_squared"`      // Goodness of linear fit, clamped to [0,1]
	StartValue    float64   `json:"start_value"`    // First value after sorting by date
	EndValue      float64   `json:"end_value"`      // Last value after sorting by date
	Change        float64   `json:"change"`         // EndValue - StartValue
	ChangePercent float64   `json:"change_percent"` // Change relative to StartValue, percent
}

// AccountSeries carries the raw metric history for a single account.
// CurrentARR is the account's ARR snapshot supplied by the data source;
// it is used for summary totals and is not recomputed from the series.
type AccountSeries struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	CurrentARR float64     `json:"current_arr"`
	ARR        []TimePoint `json:"arr"`
	Health     []TimePoint `json:"health,omitempty"`
	NPS        []TimePoint `json:"nps,omitempty"`
}

// InflectionPoint marks a date where a metric showed a significant, sustained shift.
type InflectionPoint struct {
	Date          time.Time    `json:"date"`
	Metric        string       `json:"metric"`
	PreviousValue float64      `json:"previous_value"` // Window average before the shift
	NewValue      float64      `json:"new_value"`      // Window average after the shift
	ChangePercent float64      `json:"change_percent"` // Percent change between windows, 1 decimal
	Direction     Direction    `json:"direction"`
	Significance  Significance `json:"significance"`
	PossibleCause string       `json:"possible_cause,omitempty"`
}
