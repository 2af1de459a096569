package service

import (
	"FoodTracker/internal/model"
	"FoodTracker/internal/repo"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// ExpiryWindow - горизонт выборки «скоро испортится».
const ExpiryWindow = 7 * 24 * time.Hour

// CreateFoodRequest - тело POST /food.
type CreateFoodRequest struct {
	Name       string `json:"name" validate:"required"`
	ExpiryDate string `json:"expiryDate" validate:"required"`
	UserID     string `json:"userId" validate:"required"`
}

// FoodPatch - частичное обновление. nil означает «не менять».
// UserID учитывается только общей таблицей.
type FoodPatch struct {
	Name       *string `json:"name"`
	ExpiryDate *string `json:"expiryDate"`
	Status     *string `json:"status"`
	UserID     *string `json:"userId"`
}

// updates превращает патч в набор колонок. allowOwner разрешает менять user_id.
func (p FoodPatch) updates(now time.Time, allowOwner bool) (map[string]any, error) {
	u := map[string]any{}
	if p.Name != nil {
		if strings.TrimSpace(*p.Name) == "" {
			return nil, validationError("Name cannot be empty")
		}
		u["name"] = *p.Name
	}
	if p.ExpiryDate != nil {
		t, err := parseExpiry(*p.ExpiryDate)
		if err != nil {
			return nil, err
		}
		u["expiry_date"] = t
	}
	if p.Status != nil {
		if strings.TrimSpace(*p.Status) == "" {
			return nil, validationError("Status cannot be empty")
		}
		u["status"] = *p.Status
	}
	if allowOwner && p.UserID != nil {
		if strings.TrimSpace(*p.UserID) == "" {
			return nil, validationError("User ID cannot be empty")
		}
		u["user_id"] = *p.UserID
	}
	u["updated_at"] = now.UTC()
	return u, nil
}

// FoodService - общая доска продуктов. Проверок владельца здесь нет:
// читать и менять запись может любой, кто знает её id.
type FoodService struct {
	repo repo.FoodRepository
	now  func() time.Time
}

func NewFoodService(r repo.FoodRepository) *FoodService {
	return &FoodService{repo: r, now: time.Now}
}

func (s *FoodService) Create(ctx context.Context, req CreateFoodRequest) (*model.FoodItem, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.UserID = strings.TrimSpace(req.UserID)
	if err := validate.Struct(req); err != nil {
		return nil, validationError("Name, Expiry Date, and User ID are required")
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
		UserID:     req.UserID,
		Status:     model.StatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Create(ctx, it); err != nil {
		return nil, fmt.Errorf("create food: %w", err)
	}
	return it, nil
}

// ListAll обслуживает и /food, и /foodexpiry.
func (s *FoodService) ListAll(ctx context.Context) ([]model.FoodItem, error) {
	return s.repo.List(ctx, repo.FoodFilter{})
}

func (s *FoodService) ListByOwner(ctx context.Context, userID string) ([]model.FoodItem, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, validationError("User ID is required")
	}
	return s.repo.List(ctx, repo.FoodFilter{UserID: userID})
}

func (s *FoodService) Get(ctx context.Context, id string) (*model.FoodItem, error) {
	if !isID(id) {
		return nil, validationError("Invalid food ID")
	}
	return getFood(ctx, s.repo, id)
}

// ExpiringSoon возвращает активные продукты пользователя со сроком в [now, now+7d].
func (s *FoodService) ExpiringSoon(ctx context.Context, userID string) ([]model.FoodItem, error) {
	now := s.now()
	return s.repo.ListExpiring(ctx, userID, now, now.Add(ExpiryWindow))
}

func (s *FoodService) Update(ctx context.Context, id string, patch FoodPatch) (*model.FoodItem, error) {
	if !isID(id) {
		return nil, validationError("Valid Food ID is required")
	}
	updates, err := patch.updates(s.now(), true)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return nil, fmt.Errorf("update food: %w", err)
	}
	if rows == 0 {
		return nil, ErrFoodNotFound
	}
	return getFood(ctx, s.repo, id)
}

func (s *FoodService) Delete(ctx context.Context, id string) error {
	if !isID(id) {
		return validationError("Valid Food ID is required")
	}
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete food: %w", err)
	}
	if rows == 0 {
		return ErrFoodNotFound
	}
	return nil
}

func getFood(ctx context.Context, r repo.FoodRepository, id string) (*model.FoodItem, error) {
	it, err := r.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFoodNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get food: %w", err)
	}
	return it, nil
}
