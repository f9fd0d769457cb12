package booking

import (
	"context"

	"github.com/grandora/hotel-manager/internal/audit"
	domain "github.com/grandora/hotel-manager/internal/domain/booking"
	"github.com/grandora/hotel-manager/internal/httperr"
	"github.com/grandora/hotel-manager/internal/models"
)

type CheckOutBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCheckOutBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CheckOutBooking {
	return &CheckOutBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CheckOutBooking) Execute(
	ctx context.Context,
	bookingID uint,
	staffID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.CanCheckOut(domain.Status(b.Status)); err != nil {
		return nil, err
	}

	b.Status = string(domain.StatusCheckedOut)

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	// Turnover: the room needs housekeeping before the next guest.
	if err := uc.repo.SetRoomStatus(ctx, b.RoomID, models.RoomStatusCleaning); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &staffID,
		Action:   "booking_checked_out",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
