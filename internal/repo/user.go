package repo

import (
	"FoodTracker/internal/model"
	"context"

	"gorm.io/gorm"
)

// UserRepository - контракт доступа к пользователям.
// Методы поиска возвращают gorm.ErrRecordNotFound, если запись не найдена.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// FindByEmailOrUID ищет пользователя, у которого совпадает email ИЛИ uid.
	FindByEmailOrUID(ctx context.Context, email, uid string) (*model.User, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository создаёт реализацию репозитория пользователей.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) FindByEmailOrUID(ctx context.Context, email, uid string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("email = ? OR uid = ?", email, uid).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
