package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlap(t *testing.T) {
	tests := []struct {
		name string
		aIn  int
		aOut int
		bIn  int
		bOut int
		want bool
	}{
		{"identical ranges", 10, 12, 10, 12, true},
		{"partial overlap at end", 10, 13, 12, 15, true},
		{"partial overlap at start", 12, 15, 10, 13, true},
		{"contained range", 10, 20, 12, 15, true},
		{"containing range", 12, 15, 10, 20, true},
		{"one night shared", 10, 12, 11, 13, true},
		{"back to back, a first", 10, 12, 12, 15, false},
		{"back to back, b first", 12, 15, 10, 12, false},
		{"disjoint", 10, 12, 20, 25, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlap(day(tt.aIn), day(tt.aOut), day(tt.bIn), day(tt.bOut))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOverlapIsSymmetric(t *testing.T) {
	assert.Equal(t,
		Overlap(day(10), day(13), day(12), day(15)),
		Overlap(day(12), day(15), day(10), day(13)),
	)
}

func TestNights(t *testing.T) {
	assert.Equal(t, 1, Nights(day(10), day(11)))
	assert.Equal(t, 3, Nights(day(10), day(13)))
	assert.Equal(t, 7, Nights(day(10), day(17)))
}
