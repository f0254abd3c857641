package services

import (
	"fmt"
	"strings"
	"time"

	"bookerino-backend/models"

	"gorm.io/gorm"
)

// BookingService owns the booking ledger.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// BookingInput carries everything needed to create a booking. RoomRef may be
// a room number or a numeric room ID.
type BookingInput struct {
	GuestName  string
	GuestEmail string
	GuestPhone string
	RoomRef    string
	CheckIn    time.Time
	CheckOut   time.Time
	TotalPrice float64
	Status     string
}

// List returns bookings newest check-in first, with the room preloaded.
// limit <= 0 means no limit.
func (s *BookingService) List(limit int) ([]models.Booking, error) {
	q := s.DB.Preload("Room").Order("check_in DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var bookings []models.Booking
	if err := q.Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

// Create validates the input, resolves the room and inserts the booking.
// Room resolution and the insert share one transaction so the row can never
// reference a room deleted in between.
func (s *BookingService) Create(in BookingInput) (models.Booking, error) {
	in.GuestName = strings.TrimSpace(in.GuestName)
	in.GuestEmail = strings.TrimSpace(in.GuestEmail)
	if in.GuestName == "" {
		return models.Booking{}, fmt.Errorf("%w: guest name is required", ErrValidation)
	}
	if in.GuestEmail == "" {
		return models.Booking{}, fmt.Errorf("%w: guest email is required", ErrValidation)
	}
	if !in.CheckOut.After(in.CheckIn) {
		return models.Booking{}, fmt.Errorf("%w: check-out must be after check-in", ErrValidation)
	}
	if in.TotalPrice < 0 {
		return models.Booking{}, fmt.Errorf("%w: total price must not be negative", ErrValidation)
	}
	if in.Status == "" {
		in.Status = models.BookingStatusConfirmed
	}
	switch in.Status {
	case models.BookingStatusPending, models.BookingStatusConfirmed, models.BookingStatusCancelled:
	default:
		return models.Booking{}, fmt.Errorf("%w: unknown booking status %q", ErrValidation, in.Status)
	}

	var booking models.Booking
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		room, err := resolveRoom(tx, in.RoomRef)
		if err != nil {
			return err
		}
		booking = models.Booking{
			RoomID:     room.ID,
			GuestName:  in.GuestName,
			GuestEmail: in.GuestEmail,
			GuestPhone: strings.TrimSpace(in.GuestPhone),
			CheckIn:    in.CheckIn,
			CheckOut:   in.CheckOut,
			Status:     in.Status,
			TotalPrice: in.TotalPrice,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("create booking: %w", err)
		}
		booking.Room = room
		return nil
	})
	if err != nil {
		return models.Booking{}, err
	}
	return booking, nil
}
