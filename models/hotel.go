package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Hotel struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:255;not null" json:"name"`
	Address     string `gorm:"size:255" json:"address"`
	City        string `gorm:"size:100;index" json:"city"`
	PhoneNumber string `gorm:"column:phone_number;size:20" json:"phoneNumber"`
	Description string `gorm:"type:text" json:"description"`
	ImageURL    string `gorm:"column:image_url" json:"imageUrl"`

	// One fractional digit, e.g. 4.5. Nullable so unrated hotels stay out of
	// the top-rated listing.
	Rating *decimal.Decimal `gorm:"type:decimal(3,1)" json:"rating,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
