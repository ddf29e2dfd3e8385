package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trendscope/trendscope/schema"
)

func TestWriteJSONResultsForSegments(t *testing.T) {
	healthCagr := -12.5
	segments := []schema.AccountTrendSegment{
		{
			AccountID:     "acme",
			AccountName:   "Acme Corp",
			Segment:       schema.HighGrowthSegment,
			ARRCagr:       45.2,
			HealthCagr:    &healthCagr,
			GrowthDriver:  "Seat growth",
		},
	}
	summaries := []schema.SegmentSummary{
		{
			Segment:      schema.HighGrowthSegment,
			Label:        "High Growth",
			AccountCount: 1,
			TotalARR:     200000,
			ARRPercent:   100,
			AvgCagr:      45.2,
		},
	}

	var buf bytes.Buffer
	err := writeJSONResultsForSegments(&buf, segments, summaries)
	require.NoError(t, err)

	// Parse the JSON to verify structure
	var result map[string]interface{}
	err = json.Unmarshal(buf.Bytes(), &result)
	require.NoError(t, err)

	accounts, ok := result["accounts"].([]interface{})
	require.True(t, ok)
	require.Len(t, accounts, 1)
	first := accounts[0].(map[string]interface{})
	assert.Equal(t, "acme", first["account_id"])
	assert.Equal(t, "high_growth", first["segment"])
	assert.Equal(t, 45.2, first["arr_cagr"])
	assert.Equal(t, -12.5, first["health_cagr"])

	sums, ok := result["summaries"].([]interface{})
	require.True(t, ok)
	require.Len(t, sums, 1)
}

func TestWriteCSVResultsForSegments(t *testing.T) {
	fmtFloat, _ := createFormatters(1)
	segments := []schema.AccountTrendSegment{
		{
			AccountID:     "fading",
			AccountName:   "Fading Inc",
			Segment:       schema.AtRiskSegment,
			ARRCagr:       -42.7,
			DeclineDriver: "Usage declining",
		},
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	err := writeCSVResultsForSegments(w, segments, fmtFloat)
	require.NoError(t, err)
	w.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2) // header + 1 row

	// Check header
	assert.Contains(t, lines[0], "rank")
	assert.Contains(t, lines[0], "account_id")
	assert.Contains(t, lines[0], "segment")

	// Check data row
	assert.Contains(t, lines[1], "1")
	assert.Contains(t, lines[1], "fading")
	assert.Contains(t, lines[1], "at_risk")
	assert.Contains(t, lines[1], "-42.7")
	assert.Contains(t, lines[1], "Usage declining")
}

func TestWriteCSVResultsForSegments_NilHealthCagr(t *testing.T) {
	fmtFloat, _ := createFormatters(1)
	segments := []schema.AccountTrendSegment{
		{AccountID: "bare", Segment: schema.StableSegment, ARRCagr: 0},
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	require.NoError(t, writeCSVResultsForSegments(w, segments, fmtFloat))
	w.Flush()

	r := csv.NewReader(strings.NewReader(buf.String()))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "", records[1][5]) // health_cagr column stays empty
}

func TestWriteCSVResultsForPortfolio(t *testing.T) {
	fmtFloat, fmtMoney := createFormatters(1)
	trends := []schema.PortfolioMetricTrend{
		{
			MetricName:    schema.TotalARRMetric,
			StartDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			StartValue:    300000,
			EndDate:       time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			EndValue:      330000,
			CAGR:          25.4,
			Direction:     schema.DirectionUp,
			StrengthLabel: "Strong",
		},
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	err := writeCSVResultsForPortfolio(w, trends, fmtFloat, fmtMoney)
	require.NoError(t, err)
	w.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	assert.Contains(t, lines[0], "metric")
	assert.Contains(t, lines[0], "cagr")
	assert.Contains(t, lines[1], "Total ARR")
	assert.Contains(t, lines[1], "2024-01-01")
	assert.Contains(t, lines[1], "300000.00")
	assert.Contains(t, lines[1], "25.4")
	assert.Contains(t, lines[1], "up")
	assert.Contains(t, lines[1], "Strong")
}

func TestWriteJSONResultsForTrend(t *testing.T) {
	acct := schema.AccountSeries{ID: "acme", Name: "Acme Corp"}
	result := schema.TrendResult{
		Direction: schema.DirectionUp,
		Strength:  schema.StrengthStrong,
		CAGR:      99.8,
	}
	inflections := []schema.InflectionPoint{
		{
			Date:          time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			Metric:        "arr",
			ChangePercent: 35.0,
			Direction:     schema.DirectionUp,
			Significance:  schema.HighSignificance,
		},
	}

	var buf bytes.Buffer
	err := writeJSONResultsForTrend(&buf, acct, schema.ARRSeries, result, inflections)
	require.NoError(t, err)

	var parsed map[string]interface{}
	err = json.Unmarshal(buf.Bytes(), &parsed)
	require.NoError(t, err)

	assert.Equal(t, "acme", parsed["account_id"])
	assert.Equal(t, "arr", parsed["metric"])
	trend, ok := parsed["trend"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 99.8, trend["cagr"])
	points, ok := parsed["inflections"].([]interface{})
	require.True(t, ok)
	assert.Len(t, points, 1)
}

func TestWriteCSVResultsForTrend(t *testing.T) {
	fmtFloat, _ := createFormatters(1)
	acct := schema.AccountSeries{ID: "acme", Name: "Acme Corp"}
	result := schema.TrendResult{
		Direction:     schema.DirectionDown,
		Strength:      schema.StrengthModerate,
		CAGR:          -15.3,
		StartValue:    100,
		EndValue:      85,
		Change:        -15,
		ChangePercent: -15,
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	err := writeCSVResultsForTrend(w, acct, schema.ARRSeries, result, fmtFloat)
	require.NoError(t, err)
	w.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	assert.Contains(t, lines[0], "direction")
	assert.Contains(t, lines[1], "acme")
	assert.Contains(t, lines[1], "down")
	assert.Contains(t, lines[1], "moderate")
	assert.Contains(t, lines[1], "-15.3")
}
