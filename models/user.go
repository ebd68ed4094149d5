package models

import (
	"time"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:255" json:"name"`
	Username string `gorm:"size:150" json:"username"`
	Phone    string `gorm:"size:50" json:"phone"`
	Email    string `gorm:"uniqueIndex;size:255" json:"email"`
	Password string `gorm:"size:255" json:"-"` // bcrypt hash, never serialized

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
