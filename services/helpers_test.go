package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"hotel-reservation/models"
)

// newTestDB opens a per-test in-memory SQLite database and migrates the full
// schema. The named shared-cache DSN keeps every pooled connection on the same
// database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Hotel{},
		&models.RoomType{},
		&models.Room{},
		&models.Customer{},
		&models.Booking{},
	))
	return db
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

type fixture struct {
	hotel   models.Hotel
	double  models.RoomType // sleeps 2, 100.00 per night
	suite   models.RoomType // sleeps 4, 180.00 per night
	room101 models.Room     // double
	room102 models.Room     // double
	room201 models.Room     // suite
}

// seedVaasa inserts one Vaasa hotel with two room types and three rooms.
func seedVaasa(t *testing.T, db *gorm.DB) fixture {
	t.Helper()

	f := fixture{
		hotel: models.Hotel{
			Name: "Hotel Bothnia",
			City: "Vaasa",
		},
	}
	require.NoError(t, db.Create(&f.hotel).Error)

	f.double = models.RoomType{
		HotelID:       f.hotel.ID,
		Name:          "Standard Double",
		ImageURL:      "https://example.com/img/std-double.jpg",
		PricePerNight: decimal.RequireFromString("100.00"),
		Capacity:      2,
	}
	require.NoError(t, db.Create(&f.double).Error)

	f.suite = models.RoomType{
		HotelID:       f.hotel.ID,
		Name:          "Family Suite",
		PricePerNight: decimal.RequireFromString("180.00"),
		Capacity:      4,
	}
	require.NoError(t, db.Create(&f.suite).Error)

	f.room101 = models.Room{RoomTypeID: f.double.ID, RoomNumber: "101", Status: models.RoomStatusAvailable}
	require.NoError(t, db.Create(&f.room101).Error)
	f.room102 = models.Room{RoomTypeID: f.double.ID, RoomNumber: "102", Status: models.RoomStatusAvailable}
	require.NoError(t, db.Create(&f.room102).Error)
	f.room201 = models.Room{RoomTypeID: f.suite.ID, RoomNumber: "201", Status: models.RoomStatusAvailable}
	require.NoError(t, db.Create(&f.room201).Error)

	return f
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func roomStatus(t *testing.T, db *gorm.DB, roomID uint) string {
	t.Helper()
	var room models.Room
	require.NoError(t, db.First(&room, roomID).Error)
	return room.Status
}
