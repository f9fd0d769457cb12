package booking

import (
	"context"
	"time"

	"github.com/grandora/hotel-manager/internal/audit"
	domain "github.com/grandora/hotel-manager/internal/domain/booking"
	"github.com/grandora/hotel-manager/internal/httperr"
	"github.com/grandora/hotel-manager/internal/models"
	"github.com/grandora/hotel-manager/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID uint
	RoomID uint

	CheckIn  string // YYYY-MM-DD
	CheckOut string // YYYY-MM-DD

	ServicesUsed string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	today := timezone.Today()

	// Date validation problems are collected, not returned one by one.
	checkIn, checkOut, verr := parseStayDates(in.CheckIn, in.CheckOut, today)
	if verr.HasErrors() {
		return nil, verr
	}

	room, err := uc.repo.GetRoomByID(ctx, in.RoomID)
	if err != nil {
		return nil, httperr.ErrBusiness("room_not_found")
	}

	if room.Status == models.RoomStatusMaintenance {
		return nil, httperr.ErrBusiness("room_unavailable")
	}

	if has, err := uc.repo.HasOverlap(ctx, room.ID, checkIn, checkOut); err != nil {
		return nil, err
	} else if has {
		return nil, httperr.ErrBusiness("booking_overlap")
	}

	nights := domain.Nights(checkIn, checkOut)
	total := domain.TotalPrice(nights, room.Price)

	b := &models.Booking{
		UserID:       in.UserID,
		RoomID:       room.ID,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		TotalPrice:   total,
		Status:       string(domain.InitialStatus()),
		ServicesUsed: in.ServicesUsed,
	}

	// Rooms are only marked Booked once the stay has begun; a far-future
	// reservation must not make the room look unavailable today.
	flipRoom := !checkIn.After(today)

	if err := uc.repo.CreateGuarded(ctx, b, flipRoom); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

// ======================================================
// DATE VALIDATION (shared with the walk-in variant)
// ======================================================

func parseStayDates(
	checkInStr string,
	checkOutStr string,
	today time.Time,
) (time.Time, time.Time, httperr.ValidationErrors) {

	var errs httperr.ValidationErrors
	loc := today.Location()

	checkIn, err := time.ParseInLocation("2006-01-02", checkInStr, loc)
	if err != nil {
		errs.Add("check_in", "invalid_date")
	}

	checkOut, err := time.ParseInLocation("2006-01-02", checkOutStr, loc)
	if err != nil {
		errs.Add("check_out", "invalid_date")
	}

	if errs.HasErrors() {
		return time.Time{}, time.Time{}, errs
	}

	if checkIn.Before(today) {
		errs.Add("check_in", "checkin_in_past")
	}
	if !checkOut.After(checkIn) {
		errs.Add("check_out", "checkout_not_after_checkin")
	}

	return checkIn, checkOut, errs
}
