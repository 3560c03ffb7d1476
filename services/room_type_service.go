package services

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"hotel-reservation/models"
)

type RoomTypeService struct {
	DB     *gorm.DB
	Logger zerolog.Logger
}

func NewRoomTypeService(db *gorm.DB, logger zerolog.Logger) *RoomTypeService {
	return &RoomTypeService{DB: db, Logger: logger}
}

func (s *RoomTypeService) ListByHotel(hotelID uint) ([]models.RoomType, error) {
	var count int64
	if err := s.DB.Model(&models.Hotel{}).Where("id = ?", hotelID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check hotel %d: %w", hotelID, err)
	}
	if count == 0 {
		return nil, ErrHotelNotFound
	}

	roomTypes := []models.RoomType{}
	if err := s.DB.Where("hotel_id = ?", hotelID).Order("id").Find(&roomTypes).Error; err != nil {
		return nil, fmt.Errorf("failed to list room types: %w", err)
	}
	return roomTypes, nil
}

func (s *RoomTypeService) GetByID(id uint) (*models.RoomType, error) {
	var rt models.RoomType
	if err := s.DB.First(&rt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, fmt.Errorf("failed to load room type %d: %w", id, err)
	}
	return &rt, nil
}

func (s *RoomTypeService) Create(rt *models.RoomType) error {
	if !rt.PricePerNight.IsPositive() {
		return ErrInvalidPrice
	}
	if rt.Capacity < 1 {
		return ErrInvalidCapacity
	}
	var count int64
	if err := s.DB.Model(&models.Hotel{}).Where("id = ?", rt.HotelID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check hotel %d: %w", rt.HotelID, err)
	}
	if count == 0 {
		return ErrHotelNotFound
	}
	if err := s.DB.Create(rt).Error; err != nil {
		return fmt.Errorf("failed to create room type: %w", err)
	}
	return nil
}

func (s *RoomTypeService) Update(id uint, rt models.RoomType) (*models.RoomType, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !rt.PricePerNight.IsPositive() {
		return nil, ErrInvalidPrice
	}
	if rt.Capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	updates := map[string]interface{}{
		"name":            rt.Name,
		"image_url":       rt.ImageURL,
		"description":     rt.Description,
		"price_per_night": rt.PricePerNight,
		"capacity":        rt.Capacity,
	}
	if err := s.DB.Model(existing).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update room type %d: %w", id, err)
	}
	return existing, nil
}

func (s *RoomTypeService) Delete(id uint) error {
	res := s.DB.Delete(&models.RoomType{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete room type %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRoomTypeNotFound
	}
	return nil
}
