package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"bookerino-backend/models"

	"gorm.io/gorm"
)

// RoomService owns the room inventory.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// List returns every room ordered by room number.
func (s *RoomService) List() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Order("room_number ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return rooms, nil
}

// Create validates and persists a room. The status defaults to available.
func (s *RoomService) Create(room models.Room) (models.Room, error) {
	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.RoomNumber == "" {
		return models.Room{}, fmt.Errorf("%w: room number is required", ErrValidation)
	}
	if room.Capacity <= 0 {
		return models.Room{}, fmt.Errorf("%w: capacity must be positive", ErrValidation)
	}
	if room.Price < 0 {
		return models.Room{}, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if room.Status == "" {
		room.Status = models.RoomStatusAvailable
	}
	if room.Status != models.RoomStatusAvailable && room.Status != models.RoomStatusOccupied {
		return models.Room{}, fmt.Errorf("%w: unknown room status %q", ErrValidation, room.Status)
	}

	if err := s.DB.Create(&room).Error; err != nil {
		if isDuplicateKey(err) {
			return models.Room{}, fmt.Errorf("%w: room number %q", ErrDuplicate, room.RoomNumber)
		}
		return models.Room{}, fmt.Errorf("create room: %w", err)
	}
	return room, nil
}

// GetByNumber looks a room up by its room number.
func (s *RoomService) GetByNumber(number string) (models.Room, error) {
	var room models.Room
	err := s.DB.Where("room_number = ?", strings.TrimSpace(number)).First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Room{}, fmt.Errorf("%w: room %q", ErrNotFound, number)
	}
	if err != nil {
		return models.Room{}, fmt.Errorf("find room: %w", err)
	}
	return room, nil
}

// UpdateStatus flips a room between available and occupied. ref may be a
// room number or a numeric room ID.
func (s *RoomService) UpdateStatus(ref, status string) (models.Room, error) {
	if status != models.RoomStatusAvailable && status != models.RoomStatusOccupied {
		return models.Room{}, fmt.Errorf("%w: unknown room status %q", ErrValidation, status)
	}
	room, err := resolveRoom(s.DB, ref)
	if err != nil {
		return models.Room{}, err
	}
	if err := s.DB.Model(&room).Update("status", status).Error; err != nil {
		return models.Room{}, fmt.Errorf("update room status: %w", err)
	}
	room.Status = status
	return room, nil
}

// resolveRoom accepts a room number first, then a numeric room ID. It runs
// against the given handle so booking/review creation can call it inside
// their insert transaction.
func resolveRoom(tx *gorm.DB, ref string) (models.Room, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return models.Room{}, fmt.Errorf("%w: room reference is required", ErrValidation)
	}

	var room models.Room
	err := tx.Where("room_number = ?", ref).First(&room).Error
	if err == nil {
		return room, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Room{}, fmt.Errorf("resolve room: %w", err)
	}

	if id, convErr := strconv.ParseUint(ref, 10, 32); convErr == nil {
		err = tx.First(&room, uint(id)).Error
		if err == nil {
			return room, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Room{}, fmt.Errorf("resolve room: %w", err)
		}
	}

	return models.Room{}, fmt.Errorf("%w: room %q", ErrNotFound, ref)
}

// isDuplicateKey covers both the translated gorm error and the raw driver
// messages (MySQL in production, SQLite in tests).
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}
