package booking

import (
	"context"

	"github.com/grandora/hotel-manager/internal/audit"
	domain "github.com/grandora/hotel-manager/internal/domain/booking"
	"github.com/grandora/hotel-manager/internal/httperr"
	"github.com/grandora/hotel-manager/internal/models"
	"github.com/grandora/hotel-manager/internal/timezone"
)

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute cancels on behalf of the booking's owner. ownerID zero means an
// admin actor and skips the ownership filter.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	bookingID uint,
	ownerID uint,
	actorID uint,
) (*models.Booking, error) {

	var b *models.Booking
	var err error

	if ownerID != 0 {
		b, err = uc.repo.GetBookingForUser(ctx, bookingID, ownerID)
	} else {
		b, err = uc.repo.GetBookingByID(ctx, bookingID)
	}
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.CanCancel(domain.Status(b.Status)); err != nil {
		return nil, err
	}

	now := timezone.Now()
	b.Status = string(domain.StatusCancelled)
	b.CancelledAt = &now

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	if err := releaseRoomIfFree(ctx, uc.repo, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

// releaseRoomIfFree flips a Booked room back to Available unless another
// active booking still occupies it today. Rooms in Maintenance or Cleaning
// keep their state.
func releaseRoomIfFree(
	ctx context.Context,
	repo domain.Repository,
	b *models.Booking,
) error {

	room, err := repo.GetRoomByID(ctx, b.RoomID)
	if err != nil {
		return err
	}
	if room.Status != models.RoomStatusBooked {
		return nil
	}

	held, err := repo.RoomHeldToday(ctx, b.RoomID, b.ID, timezone.Today())
	if err != nil {
		return err
	}
	if held {
		return nil
	}

	return repo.SetRoomStatus(ctx, b.RoomID, models.RoomStatusAvailable)
}
