package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"hotel-reservation/models"
)

type RoomService struct {
	DB     *gorm.DB
	Logger zerolog.Logger
}

func NewRoomService(db *gorm.DB, logger zerolog.Logger) *RoomService {
	return &RoomService{DB: db, Logger: logger}
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	rooms := []models.Room{}
	if err := s.DB.Preload("RoomType").Order("room_number").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.Preload("RoomType").First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to load room %d: %w", id, err)
	}
	return &room, nil
}

func (s *RoomService) Create(room *models.Room) error {
	if strings.TrimSpace(room.RoomNumber) == "" {
		return fmt.Errorf("%w: room number is required", gorm.ErrInvalidData)
	}
	var count int64
	if err := s.DB.Model(&models.RoomType{}).Where("id = ?", room.RoomTypeID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check room type %d: %w", room.RoomTypeID, err)
	}
	if count == 0 {
		return ErrRoomTypeNotFound
	}
	if room.Status == "" {
		room.Status = models.RoomStatusAvailable
	} else {
		normalized := models.NormalizeRoomStatus(room.Status)
		if normalized == "" {
			return ErrInvalidStatus
		}
		room.Status = normalized
	}
	if err := s.DB.Create(room).Error; err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

// UpdateStatus is the administrative override, e.g. taking a room into or out
// of maintenance. Booking-driven status changes go through BookingService.
func (s *RoomService) UpdateStatus(id uint, status string) (*models.Room, error) {
	normalized := models.NormalizeRoomStatus(status)
	if normalized == "" {
		return nil, ErrInvalidStatus
	}
	room, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(room).Update("status", normalized).Error; err != nil {
		return nil, fmt.Errorf("failed to update room %d status: %w", id, err)
	}
	s.Logger.Info().Uint("room_id", id).Str("status", normalized).Msg("room status overridden")
	return room, nil
}

func (s *RoomService) Delete(id uint) error {
	res := s.DB.Delete(&models.Room{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete room %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}
