package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPrice(t *testing.T) {
	tests := []struct {
		name      string
		nights    int
		roomPrice float64
		want      float64
	}{
		{"three nights at 500k", 3, 500000, 1650011},
		{"one night at 500k", 1, 500000, 550011},
		{"one night at 1M", 1, 1000000, 1100011},
		{"two nights at 750k", 2, 750000, 1650011},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TotalPrice(tt.nights, tt.roomPrice)
			// The arithmetic is exact for whole-unit rates, no epsilon.
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTotalPriceBreakdown(t *testing.T) {
	// room total 1_500_000, fee 10, tax 10% of 1_500_010 = 150_001
	got := TotalPrice(3, 500000)
	assert.Equal(t, 1500000.0+ServiceFee+150001.0, got)
}
