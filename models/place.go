package models

import (
	"time"

	"gorm.io/datatypes"
)

type Place struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerID uint `gorm:"index;column:owner_id" json:"owner_id"`

	Title   string `gorm:"size:255" json:"title"`
	Address string `gorm:"size:512" json:"address"`

	// ordered photo filenames and amenity tags, stored as JSON arrays
	Photos datatypes.JSON `gorm:"column:photos" json:"photos,omitempty"`
	Perks  datatypes.JSON `gorm:"column:perks" json:"perks,omitempty"`

	Description    string `gorm:"type:text" json:"description"`
	LocalLandmarks string `gorm:"type:text" json:"localLandmarks"`
	ExtraInfo      string `gorm:"type:text" json:"extraInfo"`

	// clock strings like "14:00", as entered by the owner
	CheckIn  string `gorm:"size:20" json:"checkIn"`
	CheckOut string `gorm:"size:20" json:"checkOut"`

	MaxGuests int     `json:"maxGuests"`
	Price     float64 `json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Owner User `gorm:"foreignKey:OwnerID;references:ID" json:"owner,omitempty"`
}
