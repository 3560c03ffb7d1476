package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hotel-reservation/metrics"
	"hotel-reservation/models"
)

// AvailabilityResult is one eligible room, denormalized for display.
type AvailabilityResult struct {
	RoomID        uint            `json:"roomId"`
	RoomNumber    string          `json:"roomNumber"`
	RoomStatus    string          `json:"roomStatus"`
	HotelName     string          `json:"hotelName"`
	City          string          `json:"city"`
	RoomTypeName  string          `json:"roomTypeName"`
	ImageURL      string          `json:"imageUrl"`
	PricePerNight decimal.Decimal `json:"pricePerNight"`
	Capacity      int             `json:"capacity"`
}

type AvailabilityService struct {
	DB     *gorm.DB
	Logger zerolog.Logger
}

func NewAvailabilityService(db *gorm.DB, logger zerolog.Logger) *AvailabilityService {
	return &AvailabilityService{DB: db, Logger: logger}
}

// SearchAvailable returns every room in the city whose room type sleeps at
// least minCapacity guests and that has no active booking overlapping the
// requested half-open range [checkIn, checkOut).
//
// The overlap predicate uses strict inequalities on both ends, so a stay
// checking out on the requested check-in day does not conflict. Rooms under
// maintenance are excluded regardless of bookings; for every other room the
// booking overlap check, not the cached room status, decides eligibility.
func (s *AvailabilityService) SearchAvailable(city string, checkIn, checkOut time.Time, minCapacity int) ([]AvailabilityResult, error) {
	city = strings.TrimSpace(city)
	if !checkOut.After(checkIn) {
		return nil, ErrInvalidDateRange
	}
	if minCapacity < 1 {
		return nil, ErrInvalidCapacity
	}

	results := []AvailabilityResult{}
	err := s.DB.Table("rooms").
		Select(`rooms.id AS room_id,
			rooms.room_number,
			rooms.status AS room_status,
			hotels.name AS hotel_name,
			hotels.city,
			room_types.name AS room_type_name,
			room_types.image_url,
			room_types.price_per_night,
			room_types.capacity`).
		Joins("JOIN room_types ON room_types.id = rooms.room_type_id").
		Joins("JOIN hotels ON hotels.id = room_types.hotel_id").
		Where("LOWER(hotels.city) = LOWER(?)", city).
		Where("room_types.capacity >= ?", minCapacity).
		Where("rooms.status <> ?", models.RoomStatusMaintenance).
		Where(`NOT EXISTS (
			SELECT 1 FROM bookings
			WHERE bookings.room_id = rooms.id
			  AND bookings.status IN ?
			  AND bookings.check_in_date < ?
			  AND bookings.check_out_date > ?)`,
			models.ActiveBookingStatuses, checkOut, checkIn).
		Order("hotels.name, rooms.room_number").
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("availability search failed: %w", err)
	}

	metrics.IncAvailabilitySearch()
	s.Logger.Debug().
		Str("city", city).
		Time("check_in", checkIn).
		Time("check_out", checkOut).
		Int("min_capacity", minCapacity).
		Int("results", len(results)).
		Msg("availability search")

	return results, nil
}
