package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	bookingDomain "github.com/grandora/hotel-manager/internal/domain/booking"
	domain "github.com/grandora/hotel-manager/internal/domain/payment"
	"github.com/grandora/hotel-manager/internal/httperr"
	"github.com/grandora/hotel-manager/internal/models"
)

type PaymentGormRepository struct {
	db *gorm.DB
}

func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{db: db}
}

func (r *PaymentGormRepository) GetBooking(
	ctx context.Context,
	bookingID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Room").
		First(&b, bookingID).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *PaymentGormRepository) HasPayment(
	ctx context.Context,
	bookingID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Where("booking_id = ?", bookingID).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *PaymentGormRepository) Record(
	ctx context.Context,
	p *models.Payment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var b models.Booking
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&b, p.BookingID).Error; err != nil {
			return err
		}

		// One payment per booking, re-checked under the booking lock.
		var count int64
		if err := tx.
			Model(&models.Payment{}).
			Where("booking_id = ?", p.BookingID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrBusiness("already_paid")
		}

		if err := tx.Create(p).Error; err != nil {
			return err
		}

		if b.Status == string(bookingDomain.StatusPending) {
			if err := tx.
				Model(&models.Booking{}).
				Where("id = ?", b.ID).
				Update("status", string(bookingDomain.StatusConfirmed)).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Compile-time check
var _ domain.Repository = (*PaymentGormRepository)(nil)
