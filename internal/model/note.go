package model

import "time"

// Note - текстовая заметка, прикреплённая к продукту.
type Note struct {
	ID         string    `gorm:"primaryKey;type:uuid" json:"id"`
	FoodID     string    `gorm:"type:uuid;not null;index" json:"foodId"`
	Text       string    `gorm:"not null" json:"text"`
	PostedBy   string    `gorm:"not null" json:"postedBy"`
	PostedDate time.Time `gorm:"not null;index" json:"postedDate"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
