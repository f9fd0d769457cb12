package booking

import (
	"context"

	"github.com/grandora/hotel-manager/internal/audit"
	domain "github.com/grandora/hotel-manager/internal/domain/booking"
	"github.com/grandora/hotel-manager/internal/httperr"
)

// Hard delete is an admin-only correction tool; normal lifecycle goes
// through Cancel.

type DeleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteBooking) Execute(
	ctx context.Context,
	bookingID uint,
	adminID uint,
) error {

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return httperr.ErrBusiness("booking_not_found")
	}

	if err := uc.repo.DeleteBooking(ctx, b); err != nil {
		return err
	}

	if err := releaseRoomIfFree(ctx, uc.repo, b); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return nil
}
