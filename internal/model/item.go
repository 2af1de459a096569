package model

import "time"

// StatusActive - единственный статус, который сервер обрабатывает особо.
const StatusActive = "active"

// Таблицы продуктов: общая доска и личный список пользователя.
const (
	SharedFoodTable  = "food"
	PrivateFoodTable = "addfood"
)

// FoodItem - продукт со сроком годности. Одна форма для обеих таблиц.
type FoodItem struct {
	ID         string    `gorm:"primaryKey;type:uuid" json:"id"`
	Name       string    `gorm:"not null;index" json:"name"`
	ExpiryDate time.Time `gorm:"not null;index" json:"expiryDate"`
	UserID     string    `gorm:"not null;index" json:"userId"`
	Status     string    `gorm:"not null" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SharedFood привязывает FoodItem к таблице food (для миграций и имён индексов).
type SharedFood struct {
	FoodItem
}

func (SharedFood) TableName() string { return SharedFoodTable }

// PrivateFood привязывает FoodItem к таблице addfood.
type PrivateFood struct {
	FoodItem
}

func (PrivateFood) TableName() string { return PrivateFoodTable }
