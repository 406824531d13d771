package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Name        string `gorm:"size:50;not null" json:"name"`
	Phone       string `gorm:"size:11;not null" json:"phone"`
	Company     string `gorm:"size:100;not null" json:"company"`
	NeedType    string `gorm:"size:50;not null" json:"need_type"`
	Description string `gorm:"type:text;not null" json:"description"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
