package booking

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/grandora/hotel-manager/internal/audit"
	domain "github.com/grandora/hotel-manager/internal/domain/booking"
	"github.com/grandora/hotel-manager/internal/httperr"
	"github.com/grandora/hotel-manager/internal/models"
	"github.com/grandora/hotel-manager/internal/timezone"
)

// Placeholder credential for accounts synthesized at the front desk.
// Guests claim the account later through the password-reset flow.
const walkInPasswordMarker = "walkin-placeholder-no-login"

// ======================================================
// INPUT
// ======================================================

type CreateWalkInBookingInput struct {
	StaffID uint

	GuestName  string
	GuestPhone string
	GuestEmail string

	RoomID uint

	CheckIn  string // YYYY-MM-DD
	CheckOut string // YYYY-MM-DD

	ServicesUsed string
}

// ======================================================
// USE CASE
// ======================================================

type CreateWalkInBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateWalkInBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateWalkInBooking {
	return &CreateWalkInBooking{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateWalkInBooking) Execute(
	ctx context.Context,
	in CreateWalkInBookingInput,
) (*models.Booking, error) {

	today := timezone.Today()

	checkIn, checkOut, verr := parseStayDates(in.CheckIn, in.CheckOut, today)
	if in.GuestPhone == "" {
		verr.Add("guest_phone", "required")
	}
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

	// Resolve the guest by phone first, then by email; otherwise create a
	// placeholder account they can claim later.
	hashed, err := bcrypt.GenerateFromPassword(
		[]byte(walkInPasswordMarker),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return nil, err
	}

	guest, err := uc.repo.GetOrCreateCustomer(
		ctx,
		in.GuestName,
		in.GuestPhone,
		in.GuestEmail,
		string(hashed),
	)
	if err != nil {
		return nil, err
	}

	if has, err := uc.repo.HasOverlap(ctx, room.ID, checkIn, checkOut); err != nil {
		return nil, err
	} else if has {
		return nil, httperr.ErrBusiness("booking_overlap")
	}

	nights := domain.Nights(checkIn, checkOut)
	total := domain.TotalPrice(nights, room.Price)

	b := &models.Booking{
		UserID:       guest.ID,
		RoomID:       room.ID,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		TotalPrice:   total,
		Status:       string(domain.InitialStatus()),
		ServicesUsed: in.ServicesUsed,
	}

	flipRoom := !checkIn.After(today)

	if err := uc.repo.CreateGuarded(ctx, b, flipRoom); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.StaffID,
		Action:   "booking_walkin_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
