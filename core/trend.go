// Package core has the trend analysis, inflection detection, segmentation and
// portfolio aggregation logic.
package core

import (
	"math"
	"sort"

	"github.com/trendscope/trendscope/schema"
)

// Trend classification thresholds.
const (
	directionUpCagr   = 5.0   // CAGR above this is an upward trend
	directionDownCagr = -5.0  // CAGR below this is a downward trend
	totalLossCagr     = -100.0

	// minYears floors the analysis window at one month so a short series
	// cannot blow the annualized rate up to absurd magnitudes.
	minYears = 1.0 / 12.0

	msPerYear   = 365.25 * 24 * 60 * 60 * 1000
	hoursPerDay = 24.0
)

// AnalyzeTrend converts one time series into a trend result.
// Input may arrive unordered; a copy is sorted so the caller's slice is never
// mutated. Series with fewer than two points yield the neutral default result.
func AnalyzeTrend(series []schema.TimePoint) schema.TrendResult {
	if len(series) < 2 {
		return schema.TrendResult{
			Direction: schema.DirectionStable,
			Strength:  schema.StrengthWeak,
		}
	}

	sorted := sortedByDate(series)
	first, last := sorted[0], sorted[len(sorted)-1]

	startValue := first.Value
	endValue := last.Value
	change := endValue - startValue

	var changePercent float64
	if startValue != 0 {
		changePercent = change / startValue * 100
	}

	actualYears := float64(last.Date.Sub(first.Date).Milliseconds()) / msPerYear
	years := math.Max(actualYears, minYears)
	cagr := compoundAnnualGrowthRate(startValue, endValue, years)

	slope, _, rSquared := regress(sorted)
	acceleration := computeAcceleration(sorted)

	return schema.TrendResult{
		Direction:     classifyDirection(cagr),
		Strength:      classifyStrength(cagr, rSquared),
		CAGR:          cagr,
		Velocity:      slope,
		Acceleration:  acceleration,
		RSquared:      rSquared,
		StartValue:    startValue,
		EndValue:      endValue,
		Change:        change,
		ChangePercent: changePercent,
	}
}

// compoundAnnualGrowthRate computes the annualized growth rate in percent,
// rounded to one decimal. A non-positive ending value is a total loss and is
// pinned to exactly -100 regardless of other inputs.
func compoundAnnualGrowthRate(startValue, endValue, years float64) float64 {
	if startValue <= 0 || years <= 0 {
		return 0
	}
	if endValue <= 0 {
		return totalLossCagr
	}
	return round1((math.Pow(endValue/startValue, 1/years) - 1) * 100)
}

// regress fits a least-squares line over the series with x measured in days
// since the first point. Returns slope, intercept and the r-squared fit
// quality clamped to [0,1]. A flat series (zero total variance) scores 0.
func regress(sorted []schema.TimePoint) (slope, intercept, rSquared float64) {
	n := float64(len(sorted))
	if n < 2 {
		return 0, 0, 0
	}

	origin := sorted[0].Date
	var sumX, sumY, sumXY, sumXX float64
	for _, p := range sorted {
		x := p.Date.Sub(origin).Hours() / hoursPerDay
		sumX += x
		sumY += p.Value
		sumXY += x * p.Value
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, sumY / n, 0
	}
	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n

	meanY := sumY / n
	var ssRes, ssTot float64
	for _, p := range sorted {
		x := p.Date.Sub(origin).Hours() / hoursPerDay
		predicted := slope*x + intercept
		ssRes += (p.Value - predicted) * (p.Value - predicted)
		ssTot += (p.Value - meanY) * (p.Value - meanY)
	}
	if ssTot == 0 {
		return slope, intercept, 0
	}
	return slope, intercept, clamp01(1 - ssRes/ssTot)
}

// computeAcceleration compares the regression slope of the late half of the
// series against the early half (floor-midpoint index split). This is a
// deliberate approximation of a second derivative, not a fitted curvature;
// it keeps behavior stable on short, noisy series. Needs at least 4 points.
func computeAcceleration(sorted []schema.TimePoint) float64 {
	if len(sorted) < 4 {
		return 0
	}
	mid := len(sorted) / 2
	firstSlope, _, _ := regress(sorted[:mid])
	secondSlope, _, _ := regress(sorted[mid:])
	return secondSlope - firstSlope
}

// classifyDirection buckets a CAGR into up, down or stable.
func classifyDirection(cagr float64) schema.Direction {
	switch {
	case cagr > directionUpCagr:
		return schema.DirectionUp
	case cagr < directionDownCagr:
		return schema.DirectionDown
	default:
		return schema.DirectionStable
	}
}

// classifyStrength grades a trend by combining growth magnitude with fit
// consistency. Each dimension scores 1-3; the average maps to the label.
func classifyStrength(cagr, rSquared float64) schema.Strength {
	magnitude := 1.0
	switch abs := math.Abs(cagr); {
	case abs > 30:
		magnitude = 3
	case abs > 15:
		magnitude = 2
	}

	consistency := 1.0
	switch {
	case rSquared > 0.8:
		consistency = 3
	case rSquared > 0.5:
		consistency = 2
	}

	combined := (magnitude + consistency) / 2
	switch {
	case combined >= 2.5:
		return schema.StrengthStrong
	case combined >= 1.5:
		return schema.StrengthModerate
	default:
		return schema.StrengthWeak
	}
}

// sortedByDate returns a copy of the series sorted ascending by date.
func sortedByDate(series []schema.TimePoint) []schema.TimePoint {
	sorted := make([]schema.TimePoint, len(series))
	copy(sorted, series)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// clamp01 clamps a value into [0,1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
