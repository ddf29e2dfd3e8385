package core

import (
	"math"
	"sort"

	"github.com/trendscope/trendscope/schema"
)

// Inflection detection constraints.
const (
	maxInflectionWindow = 3  // Window never grows beyond 3 points per side
	dedupeWindowDays    = 30 // Detections closer than this collapse into one
)

// DetectInflections scans one series for dates where the average level after
// the date shifted from the average level before it by at least
// thresholdPercent. Closely spaced detections are deduplicated, keeping the
// larger shift. Returns nil when the series is too short to window.
func DetectInflections(series []schema.TimePoint, metric string, thresholdPercent float64) []schema.InflectionPoint {
	if len(series) < 3 {
		return nil
	}

	sorted := sortedByDate(series)
	n := len(sorted)

	windowSize := n / 4
	if windowSize > maxInflectionWindow {
		windowSize = maxInflectionWindow
	}
	if windowSize < 1 {
		// Too few points to form before/after windows.
		return nil
	}

	var detected []schema.InflectionPoint
	for i := windowSize; i < n-windowSize; i++ {
		avgBefore := windowAverage(sorted[i-windowSize : i])
		avgAfter := windowAverage(sorted[i+1 : i+1+windowSize])

		var changePercent float64
		if avgBefore != 0 {
			changePercent = (avgAfter - avgBefore) / avgBefore * 100
		}
		if math.Abs(changePercent) < thresholdPercent {
			continue
		}

		direction := schema.DirectionUp
		if changePercent < 0 {
			direction = schema.DirectionDown
		}

		detected = append(detected, schema.InflectionPoint{
			Date:          sorted[i].Date,
			Metric:        metric,
			PreviousValue: avgBefore,
			NewValue:      avgAfter,
			ChangePercent: round1(changePercent),
			Direction:     direction,
			Significance:  classifySignificance(changePercent),
		})
	}

	return dedupeInflections(detected)
}

// classifySignificance grades the magnitude of a shift.
func classifySignificance(changePercent float64) schema.Significance {
	switch abs := math.Abs(changePercent); {
	case abs >= 30:
		return schema.HighSignificance
	case abs >= 20:
		return schema.MediumSignificance
	default:
		return schema.LowSignificance
	}
}

// dedupeInflections collapses detections that land within dedupeWindowDays of
// the previously kept point, preferring whichever shift is larger. A sliding
// window naturally fires on several consecutive indices around one real
// event; only the strongest of the cluster is meaningful.
func dedupeInflections(points []schema.InflectionPoint) []schema.InflectionPoint {
	if len(points) == 0 {
		return nil
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	kept := []schema.InflectionPoint{points[0]}
	for _, p := range points[1:] {
		last := &kept[len(kept)-1]
		daysApart := p.Date.Sub(last.Date).Hours() / hoursPerDay
		if daysApart >= dedupeWindowDays {
			kept = append(kept, p)
			continue
		}
		if math.Abs(p.ChangePercent) > math.Abs(last.ChangePercent) {
			*last = p
		}
	}
	return kept
}

// windowAverage returns the mean value of the window.
func windowAverage(window []schema.TimePoint) float64 {
	if len(window) == 0 {
		return 0
	}
	var sum float64
	for _, p := range window {
		sum += p.Value
	}
	return sum / float64(len(window))
}
