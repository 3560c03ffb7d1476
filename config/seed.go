package config

import (
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-reservation/models"
)

// SeedDatabase inserts demo hotels, room types and rooms on an empty database,
// plus a default admin customer. Idempotent: existing data is left alone.
func SeedDatabase(db *gorm.DB) {
	seedAdmin(db)
	seedHotels(db)
}

func seedAdmin(db *gorm.DB) {
	var count int64
	db.Model(&models.Customer{}).Where("email = ?", "admin@hotel.local").Count(&count)
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(envOrDefault("ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("warning: failed to hash default admin password: %v", err)
		return
	}
	admin := models.Customer{
		Email:     "admin@hotel.local",
		FirstName: "Admin",
		LastName:  "User",
		Password:  string(hash),
		Roles:     datatypes.JSON([]byte(`["USER","ADMIN"]`)),
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("warning: failed to create default admin: %v", err)
		return
	}
	log.Println("Default admin customer seeded")
}

func seedHotels(db *gorm.DB) {
	var count int64
	db.Model(&models.Hotel{}).Count(&count)
	if count > 0 {
		return
	}

	rating := func(s string) *decimal.Decimal {
		d := decimal.RequireFromString(s)
		return &d
	}
	price := decimal.RequireFromString

	hotels := []struct {
		hotel     models.Hotel
		roomTypes []struct {
			roomType models.RoomType
			rooms    []string
		}
	}{
		{
			hotel: models.Hotel{
				Name:        "Hotel Bothnia",
				Address:     "Rantakatu 5",
				City:        "Vaasa",
				PhoneNumber: "+358 6 123 4567",
				Description: "Seafront hotel near the old town.",
				ImageURL:    "https://example.com/img/bothnia.jpg",
				Rating:      rating("4.5"),
			},
			roomTypes: []struct {
				roomType models.RoomType
				rooms    []string
			}{
				{
					roomType: models.RoomType{
						Name:          "Standard Double",
						Description:   "Double bed, city view",
						PricePerNight: price("100.00"),
						Capacity:      2,
						ImageURL:      "https://example.com/img/std-double.jpg",
					},
					rooms: []string{"101", "102", "103"},
				},
				{
					roomType: models.RoomType{
						Name:          "Family Suite",
						Description:   "Two rooms, sleeps four",
						PricePerNight: price("180.00"),
						Capacity:      4,
						ImageURL:      "https://example.com/img/family.jpg",
					},
					rooms: []string{"201", "202"},
				},
			},
		},
		{
			hotel: models.Hotel{
				Name:        "Hotel Kamppi",
				Address:     "Urho Kekkosen katu 1",
				City:        "Helsinki",
				PhoneNumber: "+358 9 765 4321",
				Description: "Business hotel in the city centre.",
				ImageURL:    "https://example.com/img/kamppi.jpg",
				Rating:      rating("4.1"),
			},
			roomTypes: []struct {
				roomType models.RoomType
				rooms    []string
			}{
				{
					roomType: models.RoomType{
						Name:          "Single",
						Description:   "Compact single room",
						PricePerNight: price("85.50"),
						Capacity:      1,
						ImageURL:      "https://example.com/img/single.jpg",
					},
					rooms: []string{"K101", "K102"},
				},
			},
		},
	}

	for i := range hotels {
		h := hotels[i]
		if err := db.Create(&h.hotel).Error; err != nil {
			log.Printf("warning: failed to seed hotel %s: %v", h.hotel.Name, err)
			continue
		}
		for j := range h.roomTypes {
			rt := h.roomTypes[j]
			rt.roomType.HotelID = h.hotel.ID
			if err := db.Create(&rt.roomType).Error; err != nil {
				log.Printf("warning: failed to seed room type %s: %v", rt.roomType.Name, err)
				continue
			}
			for _, number := range rt.rooms {
				room := models.Room{
					RoomTypeID: rt.roomType.ID,
					RoomNumber: number,
					Status:     models.RoomStatusAvailable,
				}
				if err := db.Create(&room).Error; err != nil {
					log.Printf("warning: failed to seed room %s: %v", number, err)
				}
			}
		}
	}
	log.Println("Demo hotels seeded")
}
