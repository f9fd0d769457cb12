package promotion

import (
	"math"
	"time"

	"github.com/grandora/hotel-manager/internal/httperr"
	"github.com/grandora/hotel-manager/internal/models"
)

// ===============================
// Promotion Evaluation
// ===============================

// Evaluate validates the promotion window against today and returns the
// discount for the given amount. The window is inclusive on both ends.
// Discounts are percent-based, rounded to the nearest thousand and never
// exceed the amount itself.
func Evaluate(p *models.Promotion, amount float64, today time.Time) (float64, error) {
	if p == nil {
		return 0, httperr.ErrBusiness("promo_not_found")
	}

	if p.StartDate != nil && today.Before(*p.StartDate) {
		return 0, httperr.ErrBusiness("promo_not_yet_active")
	}
	if p.EndDate != nil && today.After(*p.EndDate) {
		return 0, httperr.ErrBusiness("promo_expired")
	}

	if p.DiscountPercent == nil || *p.DiscountPercent <= 0 {
		return 0, httperr.ErrBusiness("promo_invalid")
	}

	discount := amount * *p.DiscountPercent / 100
	discount = math.Round(discount/1000) * 1000

	if discount > amount {
		discount = amount
	}

	return discount, nil
}
