package models

import (
	"time"
)

// Liked marks a place as a favorite of a user. The composite unique index
// keeps at most one row per (user, place) pair even when duplicate requests race.
type Liked struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID  uint `gorm:"uniqueIndex:idx_liked_user_place;column:user_id" json:"user_id"`
	PlaceID uint `gorm:"uniqueIndex:idx_liked_user_place;column:place_id" json:"place_id"`

	CreatedAt time.Time `json:"created_at"`

	Place Place `gorm:"foreignKey:PlaceID;references:ID" json:"place,omitempty"`
}
