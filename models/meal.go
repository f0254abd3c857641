package models

import (
	"time"

	"gorm.io/datatypes"
)

type Meal struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"type:varchar(255)" json:"name"`
	Category    string  `gorm:"type:varchar(100)" json:"category"`
	Price       float64 `json:"price"`
	Description string  `gorm:"type:text" json:"description,omitempty"`

	// AvailableDays is a JSON array of weekday numbers (0=Sunday .. 6=Saturday).
	// Empty means available every day.
	AvailableDays datatypes.JSON `gorm:"column:available_days" json:"availableDays,omitempty"`

	// No column default on purpose: gorm would silently replace an explicit
	// false with the default on insert. The service sets the value.
	IsActive  bool       `gorm:"column:is_active" json:"isActive"`
	ValidFrom *time.Time `gorm:"column:valid_from" json:"validFrom,omitempty"`
	ValidTo   *time.Time `gorm:"column:valid_to" json:"validTo,omitempty"`

	ConsumptionCount int `gorm:"column:consumption_count;default:0" json:"consumptionCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
