package outwriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trendscope/trendscope/internal/contract"
)

func TestGetMaxTableNameWidth(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		expected int
	}{
		{name: "narrow override clamps to minimum", width: 40, expected: 12},
		{name: "moderate override", width: 90, expected: 30},
		{name: "wide override clamps to maximum", width: 200, expected: 40},
		{name: "exactly at base width", width: 60, expected: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &contract.Config{Width: tt.width}
			assert.Equal(t, tt.expected, GetMaxTableNameWidth(cfg))
		})
	}
}
