package services

import (
	"errors"
	"fmt"
	"strings"

	"bookerino-backend/models"

	"gorm.io/gorm"
)

// ReviewService owns the guest review ledger.
type ReviewService struct {
	DB *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db}
}

type ReviewInput struct {
	RoomRef   string
	GuestName string
	Rating    int
	Comment   string
}

// List returns reviews newest first with the room preloaded. limit <= 0
// means no limit. The stored comment is returned untruncated; display
// truncation is the console's business.
func (s *ReviewService) List(limit int) ([]models.Review, error) {
	q := s.DB.Preload("Room").Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var reviews []models.Review
	if err := q.Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

// Create validates the rating, resolves the room and inserts the review in
// one transaction.
func (s *ReviewService) Create(in ReviewInput) (models.Review, error) {
	in.GuestName = strings.TrimSpace(in.GuestName)
	if in.GuestName == "" {
		return models.Review{}, fmt.Errorf("%w: guest name is required", ErrValidation)
	}
	if in.Rating < 1 || in.Rating > 5 {
		return models.Review{}, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}

	var review models.Review
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		room, err := resolveRoom(tx, in.RoomRef)
		if err != nil {
			return err
		}
		review = models.Review{
			RoomID:    room.ID,
			GuestName: in.GuestName,
			Rating:    in.Rating,
			Comment:   in.Comment,
		}
		if err := tx.Create(&review).Error; err != nil {
			return fmt.Errorf("create review: %w", err)
		}
		review.Room = room
		return nil
	})
	if err != nil {
		return models.Review{}, err
	}
	return review, nil
}

// Respond attaches the hotel's reply to an existing review.
func (s *ReviewService) Respond(id uint, response string) (models.Review, error) {
	response = strings.TrimSpace(response)
	if response == "" {
		return models.Review{}, fmt.Errorf("%w: response is required", ErrValidation)
	}

	var review models.Review
	err := s.DB.First(&review, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Review{}, fmt.Errorf("%w: review %d", ErrNotFound, id)
	}
	if err != nil {
		return models.Review{}, fmt.Errorf("find review: %w", err)
	}

	if err := s.DB.Model(&review).Update("response", response).Error; err != nil {
		return models.Review{}, fmt.Errorf("update review response: %w", err)
	}
	review.Response = response
	return review, nil
}
