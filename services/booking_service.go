package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotel-reservation/metrics"
	"hotel-reservation/models"
	"hotel-reservation/utils"
)

// BookingService owns the booking lifecycle: creation, status transitions and
// the room-status projection they drive. Nothing else writes bookings or flips
// room statuses.
type BookingService struct {
	DB     *gorm.DB
	Logger zerolog.Logger
}

func NewBookingService(db *gorm.DB, logger zerolog.Logger) *BookingService {
	return &BookingService{DB: db, Logger: logger}
}

// CreateBookingInput carries the guest contact details and the requested stay.
type CreateBookingInput struct {
	Email       string
	FirstName   string
	LastName    string
	PhoneNumber string

	RoomID         uint
	CheckIn        time.Time
	CheckOut       time.Time
	NumberOfGuests int
}

// CreateBooking books the room for the half-open range [CheckIn, CheckOut),
// resolving or creating the guest's customer record on the way.
//
// The whole operation runs in one transaction with the room row locked, and the
// overlap predicate is re-checked immediately before insert. Two concurrent
// requests for overlapping dates on the same room therefore serialize: the
// first commits CONFIRMED, the second fails with ErrRoomUnavailable.
func (s *BookingService) CreateBooking(input CreateBookingInput) (*models.Booking, error) {
	checkIn := models.DateOnly(input.CheckIn)
	checkOut := models.DateOnly(input.CheckOut)

	nights := models.NightsBetween(checkIn, checkOut)
	if nights <= 0 {
		return nil, ErrInvalidDateRange
	}
	if input.NumberOfGuests < 1 {
		return nil, ErrInvalidCapacity
	}

	var booking models.Booking
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := lockForUpdate(tx).First(&room, input.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("failed to load room %d: %w", input.RoomID, err)
		}

		var roomType models.RoomType
		if err := tx.First(&roomType, room.RoomTypeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomTypeNotFound
			}
			return fmt.Errorf("failed to load room type %d: %w", room.RoomTypeID, err)
		}

		if input.NumberOfGuests > roomType.Capacity {
			return ErrGuestCountExceedsCapacity
		}
		if room.Status == models.RoomStatusMaintenance {
			return ErrRoomUnavailable
		}

		customer, err := resolveOrCreateCustomer(tx, input.Email, input.FirstName, input.LastName, input.PhoneNumber)
		if err != nil {
			return err
		}

		// Re-validate the overlap predicate under the room lock. A booking
		// committed by a concurrent transaction since the availability search
		// shows up here.
		var conflicts int64
		err = tx.Model(&models.Booking{}).
			Where("room_id = ? AND status IN ? AND check_in_date < ? AND check_out_date > ?",
				room.ID, models.ActiveBookingStatuses, checkOut, checkIn).
			Count(&conflicts).Error
		if err != nil {
			return fmt.Errorf("failed to check booking conflicts: %w", err)
		}
		if conflicts > 0 {
			return ErrRoomUnavailable
		}

		totalPrice := roomType.PricePerNight.Mul(decimal.NewFromInt(int64(nights)))

		booking = models.Booking{
			CustomerID:     customer.ID,
			RoomID:         room.ID,
			ReferenceCode:  newReferenceCode(),
			CheckInDate:    checkIn,
			CheckOutDate:   checkOut,
			NumberOfGuests: input.NumberOfGuests,
			TotalPrice:     totalPrice,
			Status:         models.BookingStatusConfirmed,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		if room.Status == models.RoomStatusAvailable {
			if err := tx.Model(&room).Update("status", models.RoomStatusBooked).Error; err != nil {
				return fmt.Errorf("failed to update room status: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrRoomUnavailable) {
			metrics.IncBookingConflict()
		}
		return nil, err
	}

	metrics.IncBookingCreated()
	s.Logger.Info().
		Uint("booking_id", booking.ID).
		Str("reference_code", booking.ReferenceCode).
		Uint("room_id", booking.RoomID).
		Int("nights", nights).
		Str("total_price", booking.TotalPrice.String()).
		Msg("booking created")

	return s.GetByID(booking.ID)
}

// UpdateStatus drives the booking state machine and the room side-effect in
// one atomic unit:
//
//	CONFIRMED  -> CHECKED_IN   room -> OCCUPIED
//	CHECKED_IN -> CHECKED_OUT  room -> AVAILABLE
//	CONFIRMED | CHECKED_IN -> CANCELLED  room -> AVAILABLE
//
// Terminal bookings (CHECKED_OUT, CANCELLED) reject every transition.
func (s *BookingService) UpdateStatus(bookingID uint, newStatus string) (*models.Booking, error) {
	target := models.NormalizeBookingStatus(newStatus)
	if target == "" {
		return nil, ErrInvalidStatus
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := lockForUpdate(tx).First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("failed to load booking %d: %w", bookingID, err)
		}

		roomStatus, err := roomStatusAfterTransition(booking.Status, target)
		if err != nil {
			return err
		}

		var room models.Room
		if err := lockForUpdate(tx).First(&room, booking.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("failed to load room %d: %w", booking.RoomID, err)
		}

		if err := tx.Model(&booking).Update("status", target).Error; err != nil {
			return fmt.Errorf("failed to update booking status: %w", err)
		}
		if err := tx.Model(&room).Update("status", roomStatus).Error; err != nil {
			return fmt.Errorf("failed to update room status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.IncStatusTransition(target)
	s.Logger.Info().Uint("booking_id", bookingID).Str("status", target).Msg("booking status updated")

	return s.GetByID(bookingID)
}

// roomStatusAfterTransition validates the transition and returns the room
// status it implies.
func roomStatusAfterTransition(current, target string) (string, error) {
	switch {
	case current == models.BookingStatusConfirmed && target == models.BookingStatusCheckedIn:
		return models.RoomStatusOccupied, nil
	case current == models.BookingStatusCheckedIn && target == models.BookingStatusCheckedOut:
		return models.RoomStatusAvailable, nil
	case (current == models.BookingStatusConfirmed || current == models.BookingStatusCheckedIn) &&
		target == models.BookingStatusCancelled:
		return models.RoomStatusAvailable, nil
	}
	return "", ErrInvalidTransition
}

// GetByID returns one booking with its customer, room and room type.
func (s *BookingService) GetByID(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.DB.
		Preload("Customer").
		Preload("Room").
		Preload("Room.RoomType").
		First(&booking, bookingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking %d: %w", bookingID, err)
	}
	return &booking, nil
}

// List returns one page of bookings in insertion order, optionally filtered by
// a case-insensitive substring match on status.
func (s *BookingService) List(statusFilter string, page, pageSize int) (utils.Page[models.Booking], error) {
	filter := func(db *gorm.DB) *gorm.DB {
		q := db.Model(&models.Booking{})
		if f := strings.TrimSpace(statusFilter); f != "" {
			q = q.Where("LOWER(status) LIKE ?", "%"+strings.ToLower(f)+"%")
		}
		return q
	}

	var total int64
	if err := filter(s.DB).Count(&total).Error; err != nil {
		return utils.Page[models.Booking]{}, fmt.Errorf("failed to count bookings: %w", err)
	}

	page, pageSize = utils.ClampPage(page, pageSize)

	var bookings []models.Booking
	err := filter(s.DB).
		Preload("Customer").
		Preload("Room").
		Preload("Room.RoomType").
		Order("id ASC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&bookings).Error
	if err != nil {
		return utils.Page[models.Booking]{}, fmt.Errorf("failed to list bookings: %w", err)
	}

	return utils.NewPage(bookings, page, pageSize, total), nil
}

// ListForCustomer returns every booking owned by the customer with the email,
// newest last, with room and room type eagerly loaded.
func (s *BookingService) ListForCustomer(email string) ([]models.Booking, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, ErrEmailRequired
	}

	var customer models.Customer
	if err := s.DB.Where("email = ?", email).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to look up customer: %w", err)
	}

	bookings := []models.Booking{}
	err := s.DB.
		Preload("Room").
		Preload("Room.RoomType").
		Where("customer_id = ?", customer.ID).
		Order("id ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for customer: %w", err)
	}
	return bookings, nil
}

// lockForUpdate adds SELECT ... FOR UPDATE on dialects that support it.
// SQLite rejects the syntax and serializes writers on its own.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func newReferenceCode() string {
	return "BK-" + strings.ToUpper(uuid.NewString()[:8])
}
