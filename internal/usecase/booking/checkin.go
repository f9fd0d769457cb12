package booking

import (
	"context"

	"github.com/grandora/hotel-manager/internal/audit"
	domain "github.com/grandora/hotel-manager/internal/domain/booking"
	"github.com/grandora/hotel-manager/internal/httperr"
	"github.com/grandora/hotel-manager/internal/models"
)

type CheckInBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCheckInBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CheckInBooking {
	return &CheckInBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CheckInBooking) Execute(
	ctx context.Context,
	bookingID uint,
	staffID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.CanCheckIn(domain.Status(b.Status)); err != nil {
		return nil, err
	}

	b.Status = string(domain.StatusCheckedIn)

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	// Far-future reservations leave the room Available at creation time;
	// arrival is when it becomes Booked for real.
	if err := uc.repo.SetRoomStatus(ctx, b.RoomID, models.RoomStatusBooked); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &staffID,
		Action:   "booking_checked_in",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
