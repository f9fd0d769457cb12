package promotion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/grandora/hotel-manager/internal/httperr"
	"github.com/grandora/hotel-manager/internal/models"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func percent(v float64) *float64 { return &v }

func TestEvaluate(t *testing.T) {
	today := date(2026, 6, 15)

	tests := []struct {
		name     string
		promo    *models.Promotion
		amount   float64
		want     float64
		wantCode string
	}{
		{
			name:     "nil promotion",
			promo:    nil,
			amount:   100000,
			wantCode: "promo_not_found",
		},
		{
			name: "20 percent of 137000 rounds to 27000",
			promo: &models.Promotion{
				Code:            "SAVE20",
				DiscountPercent: percent(20),
			},
			amount: 137000,
			want:   27000,
		},
		{
			name: "10 percent of 1650011 rounds to 165000",
			promo: &models.Promotion{
				Code:            "SAVE10",
				DiscountPercent: percent(10),
			},
			amount: 1650011,
			want:   165000,
		},
		{
			name: "rounding down a full discount",
			promo: &models.Promotion{
				Code:            "ALL",
				DiscountPercent: percent(100),
			},
			amount: 1200,
			want:   1000,
		},
		{
			name: "rounded discount is clamped to the amount",
			promo: &models.Promotion{
				Code:            "ALL",
				DiscountPercent: percent(100),
			},
			amount: 600,
			want:   600,
		},
		{
			name: "window includes both ends",
			promo: &models.Promotion{
				Code:            "JUNE",
				DiscountPercent: percent(10),
				StartDate:       timePtr(date(2026, 6, 15)),
				EndDate:         timePtr(date(2026, 6, 15)),
			},
			amount: 200000,
			want:   20000,
		},
		{
			name: "not yet active",
			promo: &models.Promotion{
				Code:            "JULY",
				DiscountPercent: percent(10),
				StartDate:       timePtr(date(2026, 7, 1)),
			},
			amount:   200000,
			wantCode: "promo_not_yet_active",
		},
		{
			name: "expired",
			promo: &models.Promotion{
				Code:            "MAY",
				DiscountPercent: percent(10),
				EndDate:         timePtr(date(2026, 5, 31)),
			},
			amount:   200000,
			wantCode: "promo_expired",
		},
		{
			name: "missing percent",
			promo: &models.Promotion{
				Code: "BROKEN",
			},
			amount:   200000,
			wantCode: "promo_invalid",
		},
		{
			name: "non-positive percent",
			promo: &models.Promotion{
				Code:            "ZERO",
				DiscountPercent: percent(0),
			},
			amount:   200000,
			wantCode: "promo_invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.promo, tt.amount, today)

			if tt.wantCode != "" {
				assert.True(t, httperr.IsBusiness(err, tt.wantCode),
					"want %s, got %v", tt.wantCode, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func timePtr(t time.Time) *time.Time { return &t }
