package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/trendscope/trendscope/schema"
)

// Color variables for console output.
var (
	UpColor         = color.New(color.FgGreen)             // upColor marks growth.
	DownColor       = color.New(color.FgRed)               // downColor marks decline.
	StableColor     = color.New(color.FgYellow)            // stableColor marks flat trends.
	HighGrowthColor = color.New(color.FgGreen, color.Bold) // highGrowthColor marks the best segment.
	AtRiskColor     = color.New(color.FgRed, color.Bold)   // atRiskColor marks the worst segment.
)

// GetDirectionLabel returns the direction as display text, colored for console
// output when requested. CSV and JSON writers always use the plain value.
func GetDirectionLabel(d schema.Direction, useColor bool) string {
	if !useColor {
		return string(d)
	}
	switch d {
	case schema.DirectionUp:
		return UpColor.Sprint(string(d))
	case schema.DirectionDown:
		return DownColor.Sprint(string(d))
	default:
		return StableColor.Sprint(string(d))
	}
}

// GetSegmentLabel returns the segment display label, colored for console
// output when requested.
func GetSegmentLabel(s schema.Segment, useColor bool) string {
	text := schema.SegmentLabel(s)
	if !useColor {
		return text
	}
	switch s {
	case schema.HighGrowthSegment:
		return HighGrowthColor.Sprint(text)
	case schema.SteadyGrowthSegment:
		return UpColor.Sprint(text)
	case schema.DecliningSegment:
		return StableColor.Sprint(text)
	case schema.AtRiskSegment:
		return AtRiskColor.Sprint(text)
	default:
		return text
	}
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// SelectOutputFile returns a file handle for writing output.
// If filePath is empty, it returns os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// GetRunDBFilePath returns the path to the SQLite DB file for run storage.
func GetRunDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".trendscope_runs.db"
	}
	return filepath.Join(homeDir, ".trendscope_runs.db")
}

// ParseDate parses an ISO-8601 calendar date ("2006-01-02") as midnight UTC.
// Dataset dates are calendar dates with no time component; pinning them to UTC
// keeps month bucketing independent of the host timezone.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// FormatDate renders a time as an ISO-8601 calendar date in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateFormat)
}

// TruncateName truncates an account name to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so there is room for both content and the "..." marker.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
