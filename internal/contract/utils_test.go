package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trendscope/trendscope/schema"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date pins to UTC midnight", func(t *testing.T) {
		parsed, err := ParseDate("2024-03-15")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), parsed)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		parsed, err := ParseDate("  2024-03-15 ")
		require.NoError(t, err)
		assert.Equal(t, 15, parsed.Day())
	})

	t.Run("rejects other formats", func(t *testing.T) {
		invalid := []string{"15/03/2024", "2024-3-15", "March 15 2024", "", "2024-13-01"}
		for _, s := range invalid {
			_, err := ParseDate(s)
			assert.Error(t, err, "expected error for %q", s)
		}
	})
}

func TestFormatDate(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	// 2024-03-15 05:00 +10:00 is still March 14th in UTC.
	assert.Equal(t, "2024-03-14", FormatDate(time.Date(2024, 3, 15, 5, 0, 0, 0, loc)))
	assert.Equal(t, "2024-03-15", FormatDate(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)))
}

func TestTruncateName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		expected string
	}{
		{name: "short name untouched", input: "Acme", maxWidth: 10, expected: "Acme"},
		{name: "exact width untouched", input: "AcmeCorpXY", maxWidth: 10, expected: "AcmeCorpXY"},
		{name: "long name truncated", input: "Acme Corporation Holdings", maxWidth: 10, expected: "Acme Co..."},
		{name: "tiny width untouched", input: "Acme Corporation", maxWidth: 3, expected: "Acme Corporation"},
		{name: "multibyte name", input: "日本エンタープライズ株式会社", maxWidth: 10, expected: "日本エンタープ..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateName(tt.input, tt.maxWidth))
		})
	}
}

func TestParseBoolString(t *testing.T) {
	trueValues := []string{"yes", "YES", "true", "True", "1"}
	for _, s := range trueValues {
		v, err := ParseBoolString(s)
		require.NoError(t, err, s)
		assert.True(t, v, s)
	}

	falseValues := []string{"no", "NO", "false", "False", "0"}
	for _, s := range falseValues {
		v, err := ParseBoolString(s)
		require.NoError(t, err, s)
		assert.False(t, v, s)
	}

	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}

func TestGetDirectionLabel(t *testing.T) {
	// Plain labels when color is off
	assert.Equal(t, "up", GetDirectionLabel(schema.DirectionUp, false))
	assert.Equal(t, "down", GetDirectionLabel(schema.DirectionDown, false))
	assert.Equal(t, "stable", GetDirectionLabel(schema.DirectionStable, false))

	// Colored labels still contain the raw value
	assert.Contains(t, GetDirectionLabel(schema.DirectionUp, true), "up")
}

func TestGetSegmentLabel(t *testing.T) {
	assert.Equal(t, "High Growth", GetSegmentLabel(schema.HighGrowthSegment, false))
	assert.Equal(t, "At Risk", GetSegmentLabel(schema.AtRiskSegment, false))
	assert.Contains(t, GetSegmentLabel(schema.AtRiskSegment, true), "At Risk")
}

func TestGetRunDBFilePath(t *testing.T) {
	path := GetRunDBFilePath()
	assert.Contains(t, path, ".trendscope_runs.db")
}

func TestSelectOutputFile(t *testing.T) {
	t.Run("empty path returns stdout", func(t *testing.T) {
		f, err := SelectOutputFile("")
		require.NoError(t, err)
		assert.Equal(t, "/dev/stdout", f.Name())
	})
}
