package payment

import (
	"context"

	"github.com/grandora/hotel-manager/internal/models"
)

type Repository interface {
	GetBooking(
		ctx context.Context,
		bookingID uint,
	) (*models.Booking, error)

	HasPayment(
		ctx context.Context,
		bookingID uint,
	) (bool, error)

	// Record inserts the payment and flips its booking to Confirmed inside
	// one transaction, so a payment row can never exist against a booking
	// left Pending by a partial failure. Re-checks the one-payment-per-
	// booking rule under the transaction and returns already_paid on a
	// lost race.
	Record(
		ctx context.Context,
		p *models.Payment,
	) error
}
