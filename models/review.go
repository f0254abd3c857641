package models

import "time"

type Review struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	RoomID uint `gorm:"column:room_id;index" json:"roomId"`

	GuestName string `gorm:"column:guest_name;type:varchar(255)" json:"guestName"`
	Rating    int    `json:"rating"`
	Comment   string `gorm:"type:text" json:"comment"`

	// Response holds the hotel's reply, empty until a manager answers.
	Response string `gorm:"type:text" json:"response,omitempty"`

	CreatedAt time.Time `json:"createdAt"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}
