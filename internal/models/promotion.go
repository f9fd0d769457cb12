package models

import "time"

type Promotion struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Code        string `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Description string `gorm:"size:255" json:"description"`

	DiscountPercent *float64 `json:"discount_percent"`

	// Redemption window, inclusive on both ends.
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
