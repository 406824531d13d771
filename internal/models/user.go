package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Phone        string `gorm:"size:11;uniqueIndex;not null" json:"phone"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Name         string `gorm:"size:50" json:"name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
