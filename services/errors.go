package services

import "errors"

// Sentinel errors returned by the service layer. Controllers map these onto
// HTTP status codes; anything else is treated as an internal error.
var (
	ErrHotelNotFound    = errors.New("hotel not found")
	ErrRoomTypeNotFound = errors.New("room type not found")
	ErrRoomNotFound     = errors.New("room not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrCustomerNotFound = errors.New("customer not found")

	ErrInvalidDateRange          = errors.New("check-out date must be after check-in date")
	ErrInvalidCapacity           = errors.New("guest count must be at least 1")
	ErrGuestCountExceedsCapacity = errors.New("guest count exceeds room type capacity")
	ErrInvalidStatus             = errors.New("unknown booking status")
	ErrInvalidTransition         = errors.New("status transition not permitted")
	ErrInvalidPrice              = errors.New("price per night must be greater than zero")

	// ErrRoomUnavailable means a concurrent booking won the race for the room
	// and dates. Retryable: the caller should re-search availability.
	ErrRoomUnavailable = errors.New("room is not available for the requested dates")

	ErrEmailExists   = errors.New("email already registered")
	ErrEmailRequired = errors.New("email is required")
)
