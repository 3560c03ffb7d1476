package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// Customer is identified by email. Guest bookings create customers on demand
// with no password; registered customers carry a bcrypt hash and may hold the
// ADMIN role.
type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email       string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	FirstName   string `gorm:"column:first_name;size:100" json:"firstName"`
	LastName    string `gorm:"column:last_name;size:100" json:"lastName"`
	PhoneNumber string `gorm:"column:phone_number;size:20" json:"phoneNumber"`
	Password    string `gorm:"size:255" json:"-"`

	// JSON array of role names, e.g. ["USER"] or ["USER","ADMIN"].
	Roles datatypes.JSON `json:"roles,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
