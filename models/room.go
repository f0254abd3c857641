package models

import "time"

// Room statuses. Transitions come from the status endpoint or the console,
// never automatically from booking creation.
const (
	RoomStatusAvailable = "available"
	RoomStatusOccupied  = "occupied"
)

type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RoomNumber  string  `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`
	Type        string  `json:"type" gorm:"type:varchar(100)"`
	Capacity    int     `json:"capacity"`
	Price       float64 `json:"price"`
	Status      string  `json:"status" gorm:"type:varchar(50);default:available"`
	ImageURL    string  `json:"imageUrl,omitempty" gorm:"column:image_url;type:text"`
	Description string  `json:"description,omitempty" gorm:"type:text"`

	CreatedAt time.Time `json:"createdAt"`
}
