package model

import (
	"time"

	"gorm.io/datatypes"
)

// User - зарегистрированный пользователь. Email и UID уникальны.
type User struct {
	ID    string `gorm:"primaryKey;type:uuid" json:"id"`
	Email string `gorm:"not null;uniqueIndex" json:"email"`
	UID   string `gorm:"column:uid;not null;uniqueIndex" json:"uid"`
	// Password хранит bcrypt-хеш и никогда не сериализуется
	Password string `json:"-"`

	// Profile - произвольные поля профиля из запроса регистрации
	Profile datatypes.JSONMap `json:"profile,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
