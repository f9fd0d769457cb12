package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	RoomID uint `gorm:"index" json:"room_id"`
	Room   Room `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"room"`

	// Day-granular, midnight in the hotel timezone. The stay is the
	// half-open range [check_in, check_out).
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`

	TotalPrice   float64 `json:"total_price"`
	Status       string  `gorm:"size:20;default:'Pending'" json:"status"`
	ServicesUsed string  `gorm:"size:255" json:"services_used"`

	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Payments []Payment `gorm:"foreignKey:BookingID" json:"payments,omitempty"`
}
