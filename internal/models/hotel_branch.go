package models

import "time"

type HotelBranch struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Address string `gorm:"size:255" json:"address"`
	City    string `gorm:"size:100" json:"city"`
	Country string `gorm:"size:100" json:"country"`
	Phone   string `gorm:"size:20" json:"phone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
