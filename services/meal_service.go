package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"bookerino-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MealService owns the meal catalog.
type MealService struct {
	DB *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{DB: db}
}

type MealInput struct {
	Name          string
	Category      string
	Price         float64
	Description   string
	AvailableDays []int
	IsActive      *bool
	ValidFrom     *time.Time
	ValidTo       *time.Time
}

// List returns the catalog grouped by category, then name.
func (s *MealService) List() ([]models.Meal, error) {
	var meals []models.Meal
	if err := s.DB.Order("category ASC, name ASC").Find(&meals).Error; err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	return meals, nil
}

// Create validates and persists a meal. Available days are stored as a JSON
// array of weekday numbers.
func (s *MealService) Create(in MealInput) (models.Meal, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return models.Meal{}, fmt.Errorf("%w: meal name is required", ErrValidation)
	}
	if in.Price < 0 {
		return models.Meal{}, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	for _, day := range in.AvailableDays {
		if day < 0 || day > 6 {
			return models.Meal{}, fmt.Errorf("%w: weekday %d out of range", ErrValidation, day)
		}
	}
	if in.ValidFrom != nil && in.ValidTo != nil && in.ValidTo.Before(*in.ValidFrom) {
		return models.Meal{}, fmt.Errorf("%w: valid-to must not precede valid-from", ErrValidation)
	}

	meal := models.Meal{
		Name:        in.Name,
		Category:    strings.TrimSpace(in.Category),
		Price:       in.Price,
		Description: in.Description,
		IsActive:    true,
		ValidFrom:   in.ValidFrom,
		ValidTo:     in.ValidTo,
	}
	if in.IsActive != nil {
		meal.IsActive = *in.IsActive
	}
	if len(in.AvailableDays) > 0 {
		raw, err := json.Marshal(in.AvailableDays)
		if err != nil {
			return models.Meal{}, fmt.Errorf("encode available days: %w", err)
		}
		meal.AvailableDays = datatypes.JSON(raw)
	}

	if err := s.DB.Create(&meal).Error; err != nil {
		return models.Meal{}, fmt.Errorf("create meal: %w", err)
	}
	return meal, nil
}

// Consume bumps the consumption counter atomically and returns the updated
// meal.
func (s *MealService) Consume(id uint) (models.Meal, error) {
	var meal models.Meal
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&meal, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: meal %d", ErrNotFound, id)
			}
			return fmt.Errorf("find meal: %w", err)
		}
		err := tx.Model(&meal).
			UpdateColumn("consumption_count", gorm.Expr("consumption_count + 1")).Error
		if err != nil {
			return fmt.Errorf("update consumption count: %w", err)
		}
		return tx.First(&meal, id).Error
	})
	if err != nil {
		return models.Meal{}, err
	}
	return meal, nil
}
