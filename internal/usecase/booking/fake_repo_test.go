package booking

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/grandora/hotel-manager/internal/domain/booking"
	"github.com/grandora/hotel-manager/internal/httperr"
	"github.com/grandora/hotel-manager/internal/models"
)

// fakeRepo is an in-memory stand-in for the GORM repository. It applies
// the same overlap rule so the use-cases see realistic answers.
type fakeRepo struct {
	rooms    map[uint]*models.Room
	bookings map[uint]*models.Booking
	users    map[uint]*models.User
	nextID   uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		rooms:    make(map[uint]*models.Room),
		bookings: make(map[uint]*models.Booking),
		users:    make(map[uint]*models.User),
	}
}

func (f *fakeRepo) addRoom(r models.Room) *models.Room {
	f.nextID++
	r.ID = f.nextID
	f.rooms[r.ID] = &r
	return &r
}

func (f *fakeRepo) addBooking(b models.Booking) *models.Booking {
	f.nextID++
	b.ID = f.nextID
	f.bookings[b.ID] = &b
	return &b
}

// -------- Room --------

func (f *fakeRepo) GetRoomByID(_ context.Context, id uint) (*models.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *r
	return &out, nil
}

func (f *fakeRepo) SetRoomStatus(_ context.Context, roomID uint, status string) error {
	r, ok := f.rooms[roomID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	r.Status = status
	return nil
}

// -------- Overlap --------

func (f *fakeRepo) HasOverlap(_ context.Context, roomID uint, checkIn, checkOut time.Time) (bool, error) {
	return f.overlaps(roomID, checkIn, checkOut, 0), nil
}

func (f *fakeRepo) overlaps(roomID uint, checkIn, checkOut time.Time, exclude uint) bool {
	for _, b := range f.bookings {
		if b.RoomID != roomID || b.ID == exclude {
			continue
		}
		if b.Status == string(domain.StatusCancelled) {
			continue
		}
		if domain.Overlap(b.CheckIn, b.CheckOut, checkIn, checkOut) {
			return true
		}
	}
	return false
}

func (f *fakeRepo) CreateGuarded(_ context.Context, b *models.Booking, flipRoom bool) error {
	if f.overlaps(b.RoomID, b.CheckIn, b.CheckOut, 0) {
		return httperr.ErrBusiness("booking_overlap")
	}

	f.nextID++
	b.ID = f.nextID
	stored := *b
	f.bookings[b.ID] = &stored

	if flipRoom {
		f.rooms[b.RoomID].Status = models.RoomStatusBooked
	}
	return nil
}

// -------- Booking --------

func (f *fakeRepo) GetBookingByID(_ context.Context, id uint) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *b
	return &out, nil
}

func (f *fakeRepo) GetBookingForUser(_ context.Context, bookingID, userID uint) (*models.Booking, error) {
	b, ok := f.bookings[bookingID]
	if !ok || b.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	out := *b
	return &out, nil
}

func (f *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	if _, ok := f.bookings[b.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *b
	f.bookings[b.ID] = &stored
	return nil
}

func (f *fakeRepo) DeleteBooking(_ context.Context, b *models.Booking) error {
	if _, ok := f.bookings[b.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.bookings, b.ID)
	return nil
}

func (f *fakeRepo) RoomHeldToday(_ context.Context, roomID, excludeBookingID uint, today time.Time) (bool, error) {
	tomorrow := today.AddDate(0, 0, 1)
	return f.overlaps(roomID, today, tomorrow, excludeBookingID), nil
}

func (f *fakeRepo) ListBookingsForUser(_ context.Context, userID uint) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListBookings(_ context.Context) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		out = append(out, *b)
	}
	return out, nil
}

// -------- Walk-in customer --------

func (f *fakeRepo) GetOrCreateCustomer(_ context.Context, fullName, phone, email, passwordHash string) (*models.User, error) {
	for _, u := range f.users {
		if u.Phone == phone && u.Role == models.RoleCustomer {
			out := *u
			return &out, nil
		}
	}

	f.nextID++
	u := &models.User{
		ID:           f.nextID,
		FullName:     fullName,
		Username:     "walkin_" + phone,
		Email:        email,
		Phone:        phone,
		PasswordHash: passwordHash,
		Role:         models.RoleCustomer,
	}
	f.users[u.ID] = u

	out := *u
	return &out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
