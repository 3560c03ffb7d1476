package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Booking statuses. CONFIRMED and CHECKED_IN are the active states that make a
// booking count against room availability; CHECKED_OUT and CANCELLED are
// terminal and never conflict.
const (
	BookingStatusConfirmed  = "CONFIRMED"
	BookingStatusCheckedIn  = "CHECKED_IN"
	BookingStatusCheckedOut = "CHECKED_OUT"
	BookingStatusCancelled  = "CANCELLED"
)

// ActiveBookingStatuses are the states considered by the overlap predicate.
var ActiveBookingStatuses = []string{BookingStatusConfirmed, BookingStatusCheckedIn}

// Booking holds a half-open date range [CheckInDate, CheckOutDate). It is never
// deleted; cancellation is a status transition.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint `gorm:"column:customer_id;index;not null" json:"customerId"`
	RoomID     uint `gorm:"column:room_id;index;not null" json:"roomId"`

	ReferenceCode string `gorm:"column:reference_code;size:32;uniqueIndex" json:"referenceCode"`

	CheckInDate  time.Time `gorm:"column:check_in_date;not null" json:"checkInDate"`
	CheckOutDate time.Time `gorm:"column:check_out_date;not null" json:"checkOutDate"`

	NumberOfGuests int             `gorm:"column:number_of_guests;not null" json:"numberOfGuests"`
	TotalPrice     decimal.Decimal `gorm:"column:total_price;type:decimal(10,2);not null" json:"totalPrice"`
	Status         string          `gorm:"size:20;not null;index" json:"status"`

	CreatedAt time.Time `gorm:"<-:create" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Customer Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Room     Room     `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

// Nights returns the number of nights in the half-open range, always > 0 for a
// valid booking.
func (b *Booking) Nights() int {
	return NightsBetween(b.CheckInDate, b.CheckOutDate)
}

// NightsBetween counts whole days between two dates, ignoring any time-of-day
// component.
func NightsBetween(checkIn, checkOut time.Time) int {
	in := DateOnly(checkIn)
	out := DateOnly(checkOut)
	return int(out.Sub(in).Hours() / 24)
}

// DateOnly drops the time-of-day component, keeping the calendar date in UTC.
// Booking ranges are day-granular.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NormalizeBookingStatus maps free-form input onto the canonical vocabulary.
// Returns "" when the input is not a known status.
func NormalizeBookingStatus(s string) string {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case BookingStatusConfirmed:
		return BookingStatusConfirmed
	case BookingStatusCheckedIn:
		return BookingStatusCheckedIn
	case BookingStatusCheckedOut:
		return BookingStatusCheckedOut
	case BookingStatusCancelled:
		return BookingStatusCancelled
	}
	return ""
}
