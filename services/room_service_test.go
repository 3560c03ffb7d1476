package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-reservation/models"
)

func TestRoomCreate_ValidatesInput(t *testing.T) {
	db := newTestDB(t)
	f := seedVaasa(t, db)
	svc := NewRoomService(db, testLogger())

	room := models.Room{RoomTypeID: f.double.ID, RoomNumber: "105"}
	require.NoError(t, svc.Create(&room))
	assert.Equal(t, models.RoomStatusAvailable, room.Status, "status defaults to AVAILABLE")

	err := svc.Create(&models.Room{RoomTypeID: f.double.ID, RoomNumber: "  "})
	assert.Error(t, err)

	err = svc.Create(&models.Room{RoomTypeID: 9999, RoomNumber: "106"})
	assert.ErrorIs(t, err, ErrRoomTypeNotFound)

	err = svc.Create(&models.Room{RoomTypeID: f.double.ID, RoomNumber: "107", Status: "SPARKLING"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	lower := models.Room{RoomTypeID: f.double.ID, RoomNumber: "108", Status: "maintenance"}
	require.NoError(t, svc.Create(&lower))
	assert.Equal(t, models.RoomStatusMaintenance, lower.Status, "status input normalizes to uppercase")
}

func TestRoomUpdateStatus_AdministrativeOverride(t *testing.T) {
	db := newTestDB(t)
	f := seedVaasa(t, db)
	svc := NewRoomService(db, testLogger())

	room, err := svc.UpdateStatus(f.room101.ID, "maintenance")
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusMaintenance, room.Status)

	_, err = svc.UpdateStatus(f.room101.ID, "BROKEN")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateStatus(9999, models.RoomStatusAvailable)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestRoomTypeCreate_ValidatesPriceAndCapacity(t *testing.T) {
	db := newTestDB(t)
	f := seedVaasa(t, db)
	svc := NewRoomTypeService(db, testLogger())

	err := svc.Create(&models.RoomType{
		HotelID:       f.hotel.ID,
		Name:          "Penthouse",
		PricePerNight: decimal.Zero,
		Capacity:      2,
	})
	assert.ErrorIs(t, err, ErrInvalidPrice)

	err = svc.Create(&models.RoomType{
		HotelID:       f.hotel.ID,
		Name:          "Penthouse",
		PricePerNight: decimal.RequireFromString("350.00"),
		Capacity:      0,
	})
	assert.ErrorIs(t, err, ErrInvalidCapacity)

	err = svc.Create(&models.RoomType{
		HotelID:       9999,
		Name:          "Penthouse",
		PricePerNight: decimal.RequireFromString("350.00"),
		Capacity:      2,
	})
	assert.ErrorIs(t, err, ErrHotelNotFound)

	rt := models.RoomType{
		HotelID:       f.hotel.ID,
		Name:          "Penthouse",
		PricePerNight: decimal.RequireFromString("350.00"),
		Capacity:      2,
	}
	require.NoError(t, svc.Create(&rt))
	assert.NotZero(t, rt.ID)
}

func TestRoomTypeListByHotel(t *testing.T) {
	db := newTestDB(t)
	f := seedVaasa(t, db)
	svc := NewRoomTypeService(db, testLogger())

	roomTypes, err := svc.ListByHotel(f.hotel.ID)
	require.NoError(t, err)
	assert.Len(t, roomTypes, 2)

	_, err = svc.ListByHotel(9999)
	assert.ErrorIs(t, err, ErrHotelNotFound)
}
