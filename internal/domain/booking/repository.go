package booking

import (
	"context"
	"time"

	"github.com/grandora/hotel-manager/internal/models"
)

type Repository interface {
	// -------- Room --------
	GetRoomByID(
		ctx context.Context,
		id uint,
	) (*models.Room, error)

	SetRoomStatus(
		ctx context.Context,
		roomID uint,
		status string,
	) error

	// -------- Overlap --------
	HasOverlap(
		ctx context.Context,
		roomID uint,
		checkIn time.Time,
		checkOut time.Time,
	) (bool, error)

	// CreateGuarded re-runs the overlap check under a row lock and inserts
	// the booking in the same transaction; flipRoom additionally marks the
	// room Booked. Returns booking_overlap when the range is taken.
	CreateGuarded(
		ctx context.Context,
		b *models.Booking,
		flipRoom bool,
	) error

	// -------- Booking --------
	GetBookingByID(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	GetBookingForUser(
		ctx context.Context,
		bookingID uint,
		userID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	DeleteBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// RoomHeldToday reports whether any other active booking occupies the
	// room on the given day. Used before releasing a room to Available.
	RoomHeldToday(
		ctx context.Context,
		roomID uint,
		excludeBookingID uint,
		today time.Time,
	) (bool, error)

	ListBookingsForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Booking, error)

	ListBookings(
		ctx context.Context,
	) ([]models.Booking, error)

	// -------- Walk-in customer --------
	GetOrCreateCustomer(
		ctx context.Context,
		fullName string,
		phone string,
		email string,
		passwordHash string,
	) (*models.User, error)
}
