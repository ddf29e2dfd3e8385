package core

import (
	"github.com/trendscope/trendscope/schema"
)

// Segment assignment thresholds over (CAGR, acceleration).
const (
	atRiskCagr        = -30.0 // Steep decline is at_risk outright
	atRiskDecelCagr   = -10.0 // Milder decline is at_risk only when accelerating downward
	atRiskDecelSlope  = -0.1
	decliningCagr     = -10.0
	highGrowthCagr    = 30.0
	steadyGrowthCagr  = 10.0
)

// SegmentAccounts assigns each account to one of the five growth segments and
// produces the per-segment roll-up. Assignment is a pure function of the
// account's ARR CAGR and acceleration; driver labels are display-only.
func SegmentAccounts(accounts []schema.AccountSeries) ([]schema.AccountTrendSegment, []schema.SegmentSummary) {
	segments := make([]schema.AccountTrendSegment, len(accounts))
	for i, acct := range accounts {
		segments[i] = classifyAccount(acct)
	}
	return segments, summarizeSegments(accounts, segments)
}

// classifyAccount computes one account's trend segment from its series.
func classifyAccount(acct schema.AccountSeries) schema.AccountTrendSegment {
	arrTrend := AnalyzeTrend(acct.ARR)

	var healthTrend *schema.TrendResult
	if len(acct.Health) > 0 {
		t := AnalyzeTrend(acct.Health)
		healthTrend = &t
	}

	seg := schema.AccountTrendSegment{
		AccountID:   acct.ID,
		AccountName: acct.Name,
		Segment:     classifySegment(arrTrend.CAGR, arrTrend.Acceleration),
		ARRCagr:     arrTrend.CAGR,
	}
	if healthTrend != nil {
		cagr := healthTrend.CAGR
		seg.HealthCagr = &cagr
	}

	switch arrTrend.Direction {
	case schema.DirectionUp:
		seg.GrowthDriver = evalDriverRules(schema.GrowthDriverRules, arrTrend, healthTrend)
	case schema.DirectionDown:
		seg.DeclineDriver = evalDriverRules(schema.DeclineDriverRules, arrTrend, healthTrend)
	}

	return seg
}

// classifySegment maps (cagr, acceleration) onto a segment.
// Rules are evaluated in priority order: at_risk first, so an accelerating
// decline never lands in the milder declining bucket.
func classifySegment(cagr, acceleration float64) schema.Segment {
	switch {
	case cagr < atRiskCagr:
		return schema.AtRiskSegment
	case cagr < atRiskDecelCagr && acceleration < atRiskDecelSlope:
		return schema.AtRiskSegment
	case cagr < decliningCagr:
		return schema.DecliningSegment
	case cagr > highGrowthCagr:
		return schema.HighGrowthSegment
	case cagr > steadyGrowthCagr:
		return schema.SteadyGrowthSegment
	default:
		return schema.StableSegment
	}
}

// evalDriverRules walks an ordered driver rule table and returns the label of
// the first rule whose predicate matches. Tables end with an AlwaysMatch rule,
// so the empty return only happens on a malformed table.
func evalDriverRules(rules []schema.DriverRule, arr schema.TrendResult, health *schema.TrendResult) string {
	for _, rule := range rules {
		switch rule.When {
		case schema.CagrAbove:
			if arr.CAGR > rule.Threshold {
				return rule.Label
			}
		case schema.CagrBelow:
			if arr.CAGR < rule.Threshold {
				return rule.Label
			}
		case schema.HealthCagrBelow:
			if health != nil && health.CAGR < rule.Threshold {
				return rule.Label
			}
		case schema.HealthTrendUp:
			if health != nil && health.Direction == schema.DirectionUp {
				return rule.Label
			}
		case schema.AlwaysMatch:
			return rule.Label
		}
	}
	return ""
}

// summarizeSegments rolls account segments up into one summary per fixed
// segment, in display order. ARR totals use each account's latest ARR sample,
// falling back to the supplied snapshot when the series is empty.
func summarizeSegments(accounts []schema.AccountSeries, segments []schema.AccountTrendSegment) []schema.SegmentSummary {
	type bucket struct {
		count    int
		totalARR float64
		cagrSum  float64
	}
	buckets := make(map[schema.Segment]*bucket, len(schema.AllSegments))
	for _, s := range schema.AllSegments {
		buckets[s] = &bucket{}
	}

	var portfolioARR float64
	for i, seg := range segments {
		b := buckets[seg.Segment]
		arr := latestARR(accounts[i])
		b.count++
		b.totalARR += arr
		b.cagrSum += seg.ARRCagr
		portfolioARR += arr
	}

	summaries := make([]schema.SegmentSummary, 0, len(schema.AllSegments))
	for _, s := range schema.AllSegments {
		b := buckets[s]
		summary := schema.SegmentSummary{
			Segment:         s,
			Label:           schema.SegmentLabel(s),
			AccountCount:    b.count,
			TotalARR:        b.totalARR,
			Characteristics: schema.SegmentCharacteristics(s),
		}
		if portfolioARR != 0 {
			summary.ARRPercent = round1(b.totalARR / portfolioARR * 100)
		}
		if b.count > 0 {
			summary.AvgCagr = round1(b.cagrSum / float64(b.count))
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

// latestARR returns the most recent ARR sample for an account, or the
// account's ARR snapshot when no samples exist.
func latestARR(acct schema.AccountSeries) float64 {
	if len(acct.ARR) == 0 {
		return acct.CurrentARR
	}
	sorted := sortedByDate(acct.ARR)
	return sorted[len(sorted)-1].Value
}
