package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoomType is a category of rooms within one hotel sharing price, capacity and
// description. Individual rooms are physical instances of a room type.
type RoomType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	HotelID uint `gorm:"column:hotel_id;index;not null" json:"hotelId"`

	Name        string `gorm:"size:100;not null" json:"name"`
	ImageURL    string `gorm:"column:image_url" json:"imageUrl"`
	Description string `gorm:"type:text" json:"description"`

	PricePerNight decimal.Decimal `gorm:"column:price_per_night;type:decimal(10,2);not null" json:"pricePerNight"`
	Capacity      int             `gorm:"not null" json:"capacity"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
