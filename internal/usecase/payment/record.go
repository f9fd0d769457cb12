package payment

import (
	"context"
	"fmt"

	"github.com/grandora/hotel-manager/internal/audit"
	domain "github.com/grandora/hotel-manager/internal/domain/payment"
	promoDomain "github.com/grandora/hotel-manager/internal/domain/promotion"
	"github.com/grandora/hotel-manager/internal/httperr"
	"github.com/grandora/hotel-manager/internal/models"
	"github.com/grandora/hotel-manager/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type RecordPaymentInput struct {
	BookingID uint

	Amount          float64
	PaymentMethod   string
	TransactionCode string
	Notes           string

	PromotionCode string

	ActorID uint
}

// ======================================================
// USE CASE
// ======================================================

type RecordPayment struct {
	repo      domain.Repository
	promoRepo promoDomain.Repository
	audit     *audit.Dispatcher
}

func NewRecordPayment(
	repo domain.Repository,
	promoRepo promoDomain.Repository,
	audit *audit.Dispatcher,
) *RecordPayment {
	return &RecordPayment{
		repo:      repo,
		promoRepo: promoRepo,
		audit:     audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RecordPayment) Execute(
	ctx context.Context,
	in RecordPaymentInput,
) (*models.Payment, error) {

	if in.Amount <= 0 {
		return nil, httperr.ErrBusiness("invalid_amount")
	}

	if _, err := uc.repo.GetBooking(ctx, in.BookingID); err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	// Fast-path duplicate check; Record re-checks under the row lock.
	if has, err := uc.repo.HasPayment(ctx, in.BookingID); err != nil {
		return nil, err
	} else if has {
		return nil, httperr.ErrBusiness("already_paid")
	}

	now := timezone.Now()

	p := &models.Payment{
		BookingID:       in.BookingID,
		Amount:          in.Amount,
		PaymentMethod:   in.PaymentMethod,
		TransactionCode: in.TransactionCode,
		PaidAt:          now,
		Notes:           in.Notes,
	}

	if p.TransactionCode == "" {
		p.TransactionCode = fmt.Sprintf("TXN%s", now.Format("20060102150405"))
	}

	if in.PromotionCode != "" {
		promo, err := uc.promoRepo.GetByCode(ctx, in.PromotionCode)
		if err != nil {
			return nil, httperr.ErrBusiness("promo_not_found")
		}

		discount, err := promoDomain.Evaluate(promo, in.Amount, timezone.Today())
		if err != nil {
			return nil, err
		}

		p.PromotionID = &promo.ID
		p.PromotionCode = promo.Code
		p.DiscountAmount = discount
	}

	if err := uc.repo.Record(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "payment_recorded",
		Entity:   "payment",
		EntityID: &p.ID,
	})

	return p, nil
}
