package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"hotel-reservation/models"
)

type HotelService struct {
	DB     *gorm.DB
	Logger zerolog.Logger
}

func NewHotelService(db *gorm.DB, logger zerolog.Logger) *HotelService {
	return &HotelService{DB: db, Logger: logger}
}

// GetAll lists every hotel. A malformed row (no name) is logged and skipped
// rather than failing the whole listing.
func (s *HotelService) GetAll() ([]models.Hotel, error) {
	var hotels []models.Hotel
	if err := s.DB.Order("name").Find(&hotels).Error; err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}

	out := make([]models.Hotel, 0, len(hotels))
	for _, h := range hotels {
		if strings.TrimSpace(h.Name) == "" {
			s.Logger.Warn().Uint("hotel_id", h.ID).Msg("skipping hotel with empty name")
			continue
		}
		out = append(out, h)
	}
	return out, nil
}

// GetTopRated returns the three best-rated hotels; unrated hotels never appear.
func (s *HotelService) GetTopRated() ([]models.Hotel, error) {
	var hotels []models.Hotel
	err := s.DB.
		Where("rating IS NOT NULL").
		Order("rating DESC").
		Limit(3).
		Find(&hotels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list top rated hotels: %w", err)
	}
	return hotels, nil
}

func (s *HotelService) GetByID(id uint) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := s.DB.First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, fmt.Errorf("failed to load hotel %d: %w", id, err)
	}
	return &hotel, nil
}

func (s *HotelService) Create(hotel *models.Hotel) error {
	if strings.TrimSpace(hotel.Name) == "" {
		return fmt.Errorf("%w: hotel name is required", gorm.ErrInvalidData)
	}
	if err := s.DB.Create(hotel).Error; err != nil {
		return fmt.Errorf("failed to create hotel: %w", err)
	}
	return nil
}

func (s *HotelService) Update(id uint, hotel models.Hotel) (*models.Hotel, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{
		"name":         hotel.Name,
		"address":      hotel.Address,
		"city":         hotel.City,
		"phone_number": hotel.PhoneNumber,
		"description":  hotel.Description,
		"image_url":    hotel.ImageURL,
		"rating":       hotel.Rating,
	}
	if err := s.DB.Model(existing).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update hotel %d: %w", id, err)
	}
	return existing, nil
}

func (s *HotelService) Delete(id uint) error {
	res := s.DB.Delete(&models.Hotel{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete hotel %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrHotelNotFound
	}
	return nil
}
