package models

import (
	"time"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PlaceID uint `gorm:"index;column:place_id" json:"place_id"`
	UserID  uint `gorm:"index;column:user_id" json:"user_id"`

	NumberOfGuests int       `gorm:"column:number_of_guests" json:"numberOfGuests"`
	CheckIn        time.Time `gorm:"column:check_in" json:"checkIn"`
	CheckOut       time.Time `gorm:"column:check_out" json:"checkOut"`

	Name   string  `gorm:"size:255" json:"name"`
	Mobile string  `gorm:"size:50" json:"mobile"`
	Price  float64 `json:"price"` // snapshot of the place price at booking time

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Place Place `gorm:"foreignKey:PlaceID;references:ID" json:"place,omitempty"`
}
