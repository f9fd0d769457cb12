package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/grandora/hotel-manager/internal/domain/booking"
	"github.com/grandora/hotel-manager/internal/httperr"
	"github.com/grandora/hotel-manager/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Room
// --------------------------------------------------

func (r *BookingGormRepository) GetRoomByID(
	ctx context.Context,
	id uint,
) (*models.Room, error) {

	var room models.Room
	if err := r.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *BookingGormRepository) SetRoomStatus(
	ctx context.Context,
	roomID uint,
	status string,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Room{}).
		Where("id = ?", roomID).
		Update("status", status).Error
}

// --------------------------------------------------
// Overlap
// --------------------------------------------------

// Half-open interval predicate: [check_in, check_out) ranges intersect
// iff check_in < newOut AND check_out > newIn. Cancelled bookings never
// block a room.
const overlapCond = "room_id = ? AND status <> 'Cancelled' AND check_in < ? AND check_out > ?"

func (r *BookingGormRepository) HasOverlap(
	ctx context.Context,
	roomID uint,
	checkIn time.Time,
	checkOut time.Time,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(overlapCond, roomID, checkOut, checkIn).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *BookingGormRepository) CreateGuarded(
	ctx context.Context,
	b *models.Booking,
	flipRoom bool,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// Serialize concurrent bookings of the same room: take the room
		// row lock before re-checking the range.
		var room models.Room
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, b.RoomID).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.
			Model(&models.Booking{}).
			Where(overlapCond, b.RoomID, b.CheckOut, b.CheckIn).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrBusiness("booking_overlap")
		}

		if err := tx.Create(b).Error; err != nil {
			return err
		}

		if flipRoom {
			if err := tx.
				Model(&models.Room{}).
				Where("id = ?", b.RoomID).
				Update("status", models.RoomStatusBooked).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingByID(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Room").
		First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) GetBookingForUser(
	ctx context.Context,
	bookingID uint,
	userID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Room").
		Where("id = ? AND user_id = ?", bookingID, userID).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).Save(b).Error
	if err == nil {
		return nil
	}

	// Concurrent update of the same row: re-check existence before
	// reporting. A vanished row reads as not found, anything else
	// propagates.
	var count int64
	if lookErr := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", b.ID).
		Count(&count).Error; lookErr == nil && count == 0 {
		return gorm.ErrRecordNotFound
	}

	return err
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Delete(b).Error
}

func (r *BookingGormRepository) RoomHeldToday(
	ctx context.Context,
	roomID uint,
	excludeBookingID uint,
	today time.Time,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"room_id = ? AND id <> ? AND status IN ? AND check_in <= ? AND check_out > ?",
			roomID,
			excludeBookingID,
			[]string{
				string(domain.StatusPending),
				string(domain.StatusConfirmed),
				string(domain.StatusCheckedIn),
			},
			today,
			today,
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *BookingGormRepository) ListBookingsForUser(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Room").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Room").
		Preload("User").
		Preload("Payments").
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// --------------------------------------------------
// Walk-in customer
// --------------------------------------------------

func (r *BookingGormRepository) GetOrCreateCustomer(
	ctx context.Context,
	fullName string,
	phone string,
	email string,
	passwordHash string,
) (*models.User, error) {

	var user models.User

	err := r.db.WithContext(ctx).
		Where("phone = ? AND role = ?", phone, models.RoleCustomer).
		First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// Phone unknown; an existing account with the same email belongs to
	// the same guest.
	if email != "" {
		err = r.db.WithContext(ctx).
			Where("email = ?", email).
			First(&user).Error
		if err == nil {
			return &user, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if email == "" {
		email = "walkin_" + phone + "@guest.local"
	}

	user = models.User{
		FullName:     fullName,
		Username:     "walkin_" + phone,
		Email:        email,
		PasswordHash: passwordHash,
		Phone:        phone,
		Role:         models.RoleCustomer,
	}

	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
