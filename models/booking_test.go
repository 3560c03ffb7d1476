package models

import (
	"testing"
	"time"
)

func TestNightsBetween(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{
			name:     "five nights",
			checkIn:  time.Date(2025, time.November, 20, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2025, time.November, 25, 0, 0, 0, 0, time.UTC),
			want:     5,
		},
		{
			name:     "one night",
			checkIn:  time.Date(2025, time.November, 20, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2025, time.November, 21, 0, 0, 0, 0, time.UTC),
			want:     1,
		},
		{
			name:     "same day",
			checkIn:  time.Date(2025, time.November, 20, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2025, time.November, 20, 0, 0, 0, 0, time.UTC),
			want:     0,
		},
		{
			name:     "time of day is ignored",
			checkIn:  time.Date(2025, time.November, 20, 23, 59, 0, 0, time.UTC),
			checkOut: time.Date(2025, time.November, 21, 0, 1, 0, 0, time.UTC),
			want:     1,
		},
		{
			name:     "reversed range is negative",
			checkIn:  time.Date(2025, time.November, 25, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2025, time.November, 20, 0, 0, 0, 0, time.UTC),
			want:     -5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NightsBetween(tt.checkIn, tt.checkOut); got != tt.want {
				t.Fatalf("NightsBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNormalizeBookingStatus(t *testing.T) {
	for input, want := range map[string]string{
		"CONFIRMED":    BookingStatusConfirmed,
		"confirmed":    BookingStatusConfirmed,
		" checked_in ": BookingStatusCheckedIn,
		"Checked_Out":  BookingStatusCheckedOut,
		"CANCELLED":    BookingStatusCancelled,
		"PENDING":      "",
		"":             "",
	} {
		if got := NormalizeBookingStatus(input); got != want {
			t.Errorf("NormalizeBookingStatus(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalizeRoomStatus(t *testing.T) {
	for input, want := range map[string]string{
		"available":   RoomStatusAvailable,
		"BOOKED":      RoomStatusBooked,
		" occupied ":  RoomStatusOccupied,
		"Maintenance": RoomStatusMaintenance,
		"broken":      "",
	} {
		if got := NormalizeRoomStatus(input); got != want {
			t.Errorf("NormalizeRoomStatus(%q) = %q, want %q", input, got, want)
		}
	}
}
