package models

import "time"

const (
	RoleAdmin    = "Admin"
	RoleManager  = "Manager"
	RoleStaff    = "Staff"
	RoleCustomer = "Customer"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName     string `gorm:"size:100" json:"full_name"`
	Username     string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20;index" json:"phone"`
	Role         string `gorm:"size:20;default:'Customer'" json:"role"`
	Address      string `gorm:"size:255" json:"address"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
