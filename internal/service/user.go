package service

import (
	"FoodTracker/internal/model"
	"FoodTracker/internal/repo"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RegisterRequest - данные регистрации. Profile хранит все прочие поля как есть.
type RegisterRequest struct {
	Email    string `validate:"required"`
	UID      string `validate:"required"`
	Password string
	Profile  map[string]any
}

// UserService реализует бизнес-логику пользователей.
type UserService struct {
	repo  repo.UserRepository
	cache *cache.Cache
	now   func() time.Time
}

// NewUserService создаёт сервис. Пользователи после регистрации не меняются,
// поэтому GetByID кэширует результат.
func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{
		repo:  r,
		cache: cache.New(5*time.Minute, 10*time.Minute),
		now:   time.Now,
	}
}

// Register создаёт пользователя. Email и uid проверяются одним запросом,
// поэтому занятый email и занятый uid дают одну и ту же ошибку.
func (s *UserService) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	req.Email = strings.TrimSpace(req.Email)
	req.UID = strings.TrimSpace(req.UID)
	if err := validate.Struct(req); err != nil {
		return nil, validationError("Email and UID are required")
	}

	existing, err := s.repo.FindByEmailOrUID(ctx, req.Email, req.UID)
	if err == nil && existing != nil {
		return nil, ErrUserExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find user: %w", err)
	}

	now := s.now().UTC()
	u := &model.User{
		ID:        newID(),
		Email:     req.Email,
		UID:       req.UID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if len(req.Profile) > 0 {
		u.Profile = datatypes.JSONMap(req.Profile)
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		u.Password = string(hash)
	}

	created, err := s.repo.CreateUser(ctx, u)
	if err != nil {
		// гонка двух регистраций: уникальный индекс срабатывает позже проверки
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return sanitize(created), nil
}

// GetByID возвращает пользователя без пароля.
func (s *UserService) GetByID(ctx context.Context, id string) (*model.User, error) {
	if !isID(id) {
		return nil, validationError("Invalid user ID")
	}
	if v, ok := s.cache.Get(id); ok {
		return sanitize(v.(*model.User)), nil
	}

	u, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	u = sanitize(u)
	s.cache.SetDefault(id, u)
	return sanitize(u), nil
}

// sanitize возвращает копию без хеша пароля.
func sanitize(u *model.User) *model.User {
	c := *u
	c.Password = ""
	return &c
}
