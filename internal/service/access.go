package service

import "FoodTracker/internal/model"

// authorizeOwnership сравнивает владельца записи с идентичностью из токена.
// Вызывается только после того, как запись найдена.
func authorizeOwnership(ownerID, authID, action string) error {
	if ownerID != authID {
		return model.NewError(model.ErrForbidden, "Forbidden - You can only "+action+" your own food items")
	}
	return nil
}
