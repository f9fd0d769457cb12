package models

import "time"

const (
	RoomStatusAvailable   = "Available"
	RoomStatusBooked      = "Booked"
	RoomStatusMaintenance = "Maintenance"
	RoomStatusCleaning    = "Cleaning"
)

type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BranchID uint        `json:"branch_id"`
	Branch   HotelBranch `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"branch"`

	RoomNumber string  `gorm:"size:50;not null" json:"room_number"`
	RoomType   string  `gorm:"size:100" json:"room_type"`
	Capacity   int     `json:"capacity"`
	Price      float64 `json:"price"`
	Amenities  string  `gorm:"size:300" json:"amenities"`
	ImageURL   string  `gorm:"size:200" json:"image_url"`

	Status string `gorm:"size:20;default:'Available'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
