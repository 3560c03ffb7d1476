package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-reservation/models"
)

func TestSearchAvailable_MatchesCityAndCapacity(t *testing.T) {
	db := newTestDB(t)
	f := seedVaasa(t, db)
	svc := NewAvailabilityService(db, testLogger())

	results, err := svc.SearchAvailable("Vaasa", date(2025, time.November, 20), date(2025, time.November, 25), 2)
	require.NoError(t, err)
	require.Len(t, results, 3)

	first := results[0]
	assert.Equal(t, f.room101.ID, first.RoomID)
	assert.Equal(t, "101", first.RoomNumber)
	assert.Equal(t, "Hotel Bothnia", first.HotelName)
	assert.Equal(t, "Vaasa", first.City)
	assert.Equal(t, "Standard Double", first.RoomTypeName)
	assert.Equal(t, "https://example.com/img/std-double.jpg", first.ImageURL)
	assert.Equal(t, 2, first.Capacity)
	assert.True(t, first.PricePerNight.Equal(decimal.RequireFromString("100.00")),
		"price per night should be 100.00, got %s", first.PricePerNight)

	// Capacity filter leaves only the suite.
	results, err = svc.SearchAvailable("Vaasa", date(2025, time.November, 20), date(2025, time.November, 25), 3)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, f.room201.ID, results[0].RoomID)
}

func TestSearchAvailable_CityIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	seedVaasa(t, db)
	svc := NewAvailabilityService(db, testLogger())

	results, err := svc.SearchAvailable("vAaSa", date(2025, time.November, 20), date(2025, time.November, 25), 1)
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestSearchAvailable_UnknownCityReturnsEmpty(t *testing.T) {
	db := newTestDB(t)
	seedVaasa(t, db)
	svc := NewAvailabilityService(db, testLogger())

	results, err := svc.SearchAvailable("Helsinki", date(2025, time.November, 20), date(2025, time.November, 25), 1)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchAvailable_ExcludesOverlappingActiveBooking(t *testing.T) {
	db := newTestDB(t)
	f := seedVaasa(t, db)
	svc := NewAvailabilityService(db, testLogger())

	bookings := NewBookingService(db, testLogger())
	_, err := bookings.CreateBooking(CreateBookingInput{
		Email:          "guest@example.com",
		FirstName:      "Gina",
		LastName:       "Guest",
		RoomID:         f.room101.ID,
		CheckIn:        date(2025, time.November, 20),
		CheckOut:       date(2025, time.November, 25),
		NumberOfGuests: 2,
	})
	require.NoError(t, err)

	// [2025-11-24, 2025-11-27) overlaps [2025-11-20, 2025-11-25): room 101 out.
	results, err := svc.SearchAvailable("Vaasa", date(2025, time.November, 24), date(2025, time.November, 27), 2)
	require.NoError(t, err)
	roomIDs := resultRoomIDs(results)
	assert.NotContains(t, roomIDs, f.room101.ID)
	assert.Contains(t, roomIDs, f.room102.ID)

	// Back-to-back: [2025-11-25, 2025-11-28) does not conflict with a stay
	// checking out on the 25th.
	results, err = svc.SearchAvailable("Vaasa", date(2025, time.November, 25), date(2025, time.November, 28), 2)
	require.NoError(t, err)
	assert.Contains(t, resultRoomIDs(results), f.room101.ID)
}

func TestSearchAvailable_CancelledBookingDoesNotConflict(t *testing.T) {
	db := newTestDB(t)
	f := seedVaasa(t, db)
	svc := NewAvailabilityService(db, testLogger())

	bookings := NewBookingService(db, testLogger())
	created, err := bookings.CreateBooking(CreateBookingInput{
		Email:          "guest@example.com",
		FirstName:      "Gina",
		LastName:       "Guest",
		RoomID:         f.room101.ID,
		CheckIn:        date(2025, time.November, 20),
		CheckOut:       date(2025, time.November, 25),
		NumberOfGuests: 2,
	})
	require.NoError(t, err)

	_, err = bookings.UpdateStatus(created.ID, models.BookingStatusCancelled)
	require.NoError(t, err)

	results, err := svc.SearchAvailable("Vaasa", date(2025, time.November, 20), date(2025, time.November, 25), 2)
	require.NoError(t, err)
	assert.Contains(t, resultRoomIDs(results), f.room101.ID)
}

func TestSearchAvailable_MaintenanceRoomExcluded(t *testing.T) {
	db := newTestDB(t)
	f := seedVaasa(t, db)
	svc := NewAvailabilityService(db, testLogger())

	require.NoError(t, db.Model(&models.Room{}).
		Where("id = ?", f.room101.ID).
		Update("status", models.RoomStatusMaintenance).Error)

	results, err := svc.SearchAvailable("Vaasa", date(2025, time.November, 20), date(2025, time.November, 25), 2)
	require.NoError(t, err)
	assert.NotContains(t, resultRoomIDs(results), f.room101.ID)
}

func TestSearchAvailable_RejectsInvalidInput(t *testing.T) {
	db := newTestDB(t)
	seedVaasa(t, db)
	svc := NewAvailabilityService(db, testLogger())

	_, err := svc.SearchAvailable("Vaasa", date(2025, time.November, 25), date(2025, time.November, 25), 2)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = svc.SearchAvailable("Vaasa", date(2025, time.November, 25), date(2025, time.November, 20), 2)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = svc.SearchAvailable("Vaasa", date(2025, time.November, 20), date(2025, time.November, 25), 0)
	assert.ErrorIs(t, err, ErrInvalidCapacity)
}

func resultRoomIDs(results []AvailabilityResult) []uint {
	ids := make([]uint, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.RoomID)
	}
	return ids
}
