package models

import "time"

const (
	MaintenanceScheduled = "Scheduled"
	MaintenanceDone      = "Done"
)

type RoomMaintenance struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RoomID uint `gorm:"index" json:"room_id"`
	Room   Room `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"room"`

	StaffID *uint `json:"staff_id"`

	Description     string    `gorm:"size:255" json:"description"`
	MaintenanceDate time.Time `json:"maintenance_date"`
	Status          string    `gorm:"size:20;default:'Scheduled'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
