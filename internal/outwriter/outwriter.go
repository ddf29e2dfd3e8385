// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"github.com/trendscope/trendscope/internal/contract"
	"golang.org/x/term"
)

// GetMaxTableNameWidth calculates the maximum width for account names in table
// output based on terminal width and the fixed columns around them.
func GetMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed columns with table formatting:
	// Rank + Account ID + Segment + ARR CAGR + Health CAGR + Driver,
	// plus borders, separators and padding.
	baseWidth := 60

	available := termWidth - baseWidth
	if available < 12 {
		// Minimum reasonable name width
		return 12
	}
	if available > 40 {
		// Maximum name width to prevent overly wide tables
		return 40
	}
	return available
}
