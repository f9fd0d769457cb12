package models

import "time"

type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID uint `gorm:"index" json:"booking_id"`

	Amount          float64   `json:"amount"`
	PaymentMethod   string    `gorm:"size:50" json:"payment_method"`
	TransactionCode string    `gorm:"size:100" json:"transaction_code"`
	PaidAt          time.Time `json:"paid_at"`
	Notes           string    `gorm:"size:255" json:"notes"`

	PromotionID    *uint      `json:"promotion_id"`
	Promotion      *Promotion `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"promotion,omitempty"`
	PromotionCode  string     `gorm:"size:50" json:"promotion_code"`
	DiscountAmount float64    `json:"discount_amount"`

	CreatedAt time.Time `json:"created_at"`
}
