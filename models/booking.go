package models

import "time"

// Booking statuses. Only confirmed bookings count toward revenue.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

type Booking struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	RoomID uint `gorm:"column:room_id;index" json:"roomId"`

	GuestName  string `gorm:"column:guest_name;type:varchar(255)" json:"guestName"`
	GuestEmail string `gorm:"column:guest_email;type:varchar(255)" json:"guestEmail"`
	GuestPhone string `gorm:"column:guest_phone;type:varchar(50)" json:"guestPhone,omitempty"`

	CheckIn    time.Time `gorm:"column:check_in" json:"checkIn"`
	CheckOut   time.Time `gorm:"column:check_out" json:"checkOut"`
	Status     string    `gorm:"type:varchar(50)" json:"status"`
	TotalPrice float64   `gorm:"column:total_price" json:"totalPrice"`

	CreatedAt time.Time `json:"createdAt"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}
