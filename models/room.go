package models

import (
	"strings"
	"time"
)

// Canonical room statuses. Room status is a cached projection of "is there an
// active stay or confirmed reservation covering today"; the booking service is
// the only writer, so it is stored explicitly instead of recomputed on read.
const (
	RoomStatusAvailable   = "AVAILABLE"
	RoomStatusBooked      = "BOOKED"
	RoomStatusOccupied    = "OCCUPIED"
	RoomStatusMaintenance = "MAINTENANCE"
)

type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RoomTypeID uint `gorm:"column:room_type_id;index;not null" json:"roomTypeId"`

	RoomNumber string `gorm:"column:room_number;size:20;uniqueIndex;not null" json:"roomNumber"`
	Status     string `gorm:"size:20;not null;default:AVAILABLE" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	RoomType RoomType `gorm:"foreignKey:RoomTypeID" json:"roomType,omitempty"`
}

// NormalizeRoomStatus maps free-form input onto the canonical vocabulary.
// Returns "" when the input is not a known status.
func NormalizeRoomStatus(s string) string {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case RoomStatusAvailable:
		return RoomStatusAvailable
	case RoomStatusBooked:
		return RoomStatusBooked
	case RoomStatusOccupied:
		return RoomStatusOccupied
	case RoomStatusMaintenance:
		return RoomStatusMaintenance
	}
	return ""
}
