package core

import (
	"sort"
	"time"

	"github.com/trendscope/trendscope/schema"
)

// aggregationKind selects how pooled samples collapse into one monthly value.
type aggregationKind int

const (
	aggregateSum aggregationKind = iota
	aggregateAvg
	aggregateCount
)

// metricSpec describes one tracked portfolio metric: which per-account series
// feeds it and how the pooled samples collapse per month.
type metricSpec struct {
	Name    schema.MetricName
	Kind    aggregationKind
	Extract func(acct schema.AccountSeries) []schema.TimePoint
}

// portfolioMetrics is the fixed set of tracked metrics, in display order.
var portfolioMetrics = []metricSpec{
	{
		Name:    schema.TotalARRMetric,
		Kind:    aggregateSum,
		Extract: func(acct schema.AccountSeries) []schema.TimePoint { return acct.ARR },
	},
	{
		Name:    schema.AvgHealthMetric,
		Kind:    aggregateAvg,
		Extract: func(acct schema.AccountSeries) []schema.TimePoint { return acct.Health },
	},
	{
		Name:    schema.AvgNPSMetric,
		Kind:    aggregateAvg,
		Extract: func(acct schema.AccountSeries) []schema.TimePoint { return acct.NPS },
	},
	{
		Name:    schema.CustomerCountMetric,
		Kind:    aggregateCount,
		Extract: func(acct schema.AccountSeries) []schema.TimePoint { return acct.ARR },
	},
}

// AggregatePortfolio pools every account's samples per tracked metric, buckets
// them by calendar month and computes one trend line per metric. Metrics with
// no samples, or fewer than two monthly points, are omitted rather than
// reported as flat.
func AggregatePortfolio(accounts []schema.AccountSeries) []schema.PortfolioMetricTrend {
	trends := make([]schema.PortfolioMetricTrend, 0, len(portfolioMetrics))
	for _, spec := range portfolioMetrics {
		if trend, ok := aggregateMetric(accounts, spec); ok {
			trends = append(trends, trend)
		}
	}
	return trends
}

// aggregateMetric computes the trend line for one metric spec. The second
// return is false when the metric has too little data to report.
func aggregateMetric(accounts []schema.AccountSeries, spec metricSpec) (schema.PortfolioMetricTrend, bool) {
	var pool []schema.TimePoint
	for _, acct := range accounts {
		pool = append(pool, spec.Extract(acct)...)
	}
	if len(pool) == 0 {
		return schema.PortfolioMetricTrend{}, false
	}

	monthly := bucketMonthly(pool, spec.Kind)
	if len(monthly) < 2 {
		return schema.PortfolioMetricTrend{}, false
	}

	result := AnalyzeTrend(monthly)
	first, last := monthly[0], monthly[len(monthly)-1]
	return schema.PortfolioMetricTrend{
		MetricName:    spec.Name,
		StartDate:     first.Date,
		StartValue:    round2(first.Value),
		EndDate:       last.Date,
		EndValue:      round2(last.Value),
		CAGR:          result.CAGR,
		Direction:     result.Direction,
		StrengthLabel: schema.StrengthLabel(result.Strength),
	}, true
}

// bucketMonthly groups pooled samples by UTC calendar month and collapses each
// bucket per the aggregation kind. Each monthly point is dated the first of
// its month and the result is sorted ascending.
func bucketMonthly(pool []schema.TimePoint, kind aggregationKind) []schema.TimePoint {
	type bucket struct {
		sum   float64
		count int
	}
	buckets := make(map[time.Time]*bucket)
	for _, p := range pool {
		utc := p.Date.UTC()
		key := time.Date(utc.Year(), utc.Month(), 1, 0, 0, 0, 0, time.UTC)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		b.sum += p.Value
		b.count++
	}

	monthly := make([]schema.TimePoint, 0, len(buckets))
	for key, b := range buckets {
		var value float64
		switch kind {
		case aggregateSum:
			value = b.sum
		case aggregateAvg:
			value = b.sum / float64(b.count)
		case aggregateCount:
			value = float64(b.count)
		}
		monthly = append(monthly, schema.TimePoint{Date: key, Value: value})
	}

	sort.Slice(monthly, func(i, j int) bool {
		return monthly[i].Date.Before(monthly[j].Date)
	})
	return monthly
}
