package service

import "FoodTracker/internal/model"

// Ошибки, которые сервисы возвращают клиенту как есть.
var (
	ErrUserExists     = model.NewError(model.ErrConflict, "User already exists")
	ErrUserNotFound   = model.NewError(model.ErrNotFound, "User not found")
	ErrFoodNotFound   = model.NewError(model.ErrNotFound, "Food item not found")
	ErrNoteNotFound   = model.NewError(model.ErrNotFound, "Note not found")
	ErrInvalidToken   = model.NewError(model.ErrUnauthorized, "Unauthorized - Invalid token")
	ErrBadCredentials = model.NewError(model.ErrUnauthorized, "Unauthorized - Invalid credentials")
	ErrInvalidExpiry  = model.NewError(model.ErrValidation, "Invalid expiry date")
)

func validationError(msg string) error {
	return model.NewError(model.ErrValidation, msg)
}
