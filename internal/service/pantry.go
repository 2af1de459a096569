package service

import (
	"FoodTracker/internal/model"
	"FoodTracker/internal/repo"
	"context"
	"fmt"
	"strings"
	"time"
)

// CreatePantryRequest - тело POST /addfood. Владелец берётся из токена.
type CreatePantryRequest struct {
	Name       string `json:"name" validate:"required"`
	ExpiryDate string `json:"expiryDate" validate:"required"`
}

// PantryService - личный список продуктов (таблица addfood).
// Каждая операция работает от имени authID из токена.
type PantryService struct {
	repo repo.FoodRepository
	now  func() time.Time
}

func NewPantryService(r repo.FoodRepository) *PantryService {
	return &PantryService{repo: r, now: time.Now}
}

func (s *PantryService) Create(ctx context.Context, req CreatePantryRequest, authID string) (*model.FoodItem, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validate.Struct(req); err != nil {
		return nil, validationError("Name and Expiry Date are required")
	}
	expiry, err := parseExpiry(req.ExpiryDate)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	it := &model.FoodItem{
		ID:         newID(),
		Name:       req.Name,
		ExpiryDate: expiry,
		UserID:     authID,
		Status:     model.StatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Create(ctx, it); err != nil {
		return nil, fmt.Errorf("create pantry item: %w", err)
	}
	return it, nil
}

// ListMine возвращает продукты владельца токена. Пустой status означает active.
func (s *PantryService) ListMine(ctx context.Context, authID, status string) ([]model.FoodItem, error) {
	if status == "" {
		status = model.StatusActive
	}
	return s.repo.List(ctx, repo.FoodFilter{UserID: authID, Status: status})
}

// ListForUser отдаёт список, только если pathUserID совпадает с владельцем токена.
func (s *PantryService) ListForUser(ctx context.Context, pathUserID, authID string) ([]model.FoodItem, error) {
	if err := authorizeOwnership(pathUserID, authID, "access"); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, repo.FoodFilter{UserID: authID})
}

// Update: проверить запрос (400) → найти (404) → проверить владельца (403) → записать.
// Запись идёт с условием user_id, так что смена владельца между шагами не даст чужой записи.
func (s *PantryService) Update(ctx context.Context, id string, patch FoodPatch, authID string) (*model.FoodItem, error) {
	if !isID(id) {
		return nil, validationError("Valid Food ID is required")
	}
	updates, err := patch.updates(s.now(), false)
	if err != nil {
		return nil, err
	}
	it, err := getFood(ctx, s.repo, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwnership(it.UserID, authID, "update"); err != nil {
		return nil, err
	}

	rows, err := s.repo.UpdateOwned(ctx, id, authID, updates)
	if err != nil {
		return nil, fmt.Errorf("update pantry item: %w", err)
	}
	if rows == 0 {
		return nil, ErrFoodNotFound
	}
	return getFood(ctx, s.repo, id)
}

func (s *PantryService) Delete(ctx context.Context, id, authID string) error {
	if !isID(id) {
		return validationError("Valid Food ID is required")
	}
	it, err := getFood(ctx, s.repo, id)
	if err != nil {
		return err
	}
	if err := authorizeOwnership(it.UserID, authID, "delete"); err != nil {
		return err
	}
	rows, err := s.repo.DeleteOwned(ctx, id, authID)
	if err != nil {
		return fmt.Errorf("delete pantry item: %w", err)
	}
	if rows == 0 {
		return ErrFoodNotFound
	}
	return nil
}
