package service

import (
	"FoodTracker/internal/model"
	"FoodTracker/internal/repo"
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// мок для repo.UserRepository
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if fn, ok := args.Get(0).(func(context.Context, *model.User) *model.User); ok {
		return fn(ctx, user), args.Error(1)
	}
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) FindByEmailOrUID(ctx context.Context, email, uid string) (*model.User, error) {
	args := m.Called(ctx, email, uid)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

// мок для repo.FoodRepository
type mockFoodRepo struct{ mock.Mock }

func (m *mockFoodRepo) Create(ctx context.Context, item *model.FoodItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockFoodRepo) GetByID(ctx context.Context, id string) (*model.FoodItem, error) {
	args := m.Called(ctx, id)
	if it, ok := args.Get(0).(*model.FoodItem); ok {
		return it, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFoodRepo) List(ctx context.Context, filter repo.FoodFilter) ([]model.FoodItem, error) {
	args := m.Called(ctx, filter)
	items, _ := args.Get(0).([]model.FoodItem)
	return items, args.Error(1)
}

func (m *mockFoodRepo) ListExpiring(ctx context.Context, userID string, from, to time.Time) ([]model.FoodItem, error) {
	args := m.Called(ctx, userID, from, to)
	items, _ := args.Get(0).([]model.FoodItem)
	return items, args.Error(1)
}

func (m *mockFoodRepo) Update(ctx context.Context, id string, updates map[string]any) (int64, error) {
	args := m.Called(ctx, id, updates)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockFoodRepo) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockFoodRepo) UpdateOwned(ctx context.Context, id, userID string, updates map[string]any) (int64, error) {
	args := m.Called(ctx, id, userID, updates)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockFoodRepo) DeleteOwned(ctx context.Context, id, userID string) (int64, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.FoodRepository = (*mockFoodRepo)(nil)

// мок для repo.NoteRepository
type mockNoteRepo struct{ mock.Mock }

func (m *mockNoteRepo) Create(ctx context.Context, note *model.Note) error {
	return m.Called(ctx, note).Error(0)
}

func (m *mockNoteRepo) GetByID(ctx context.Context, id string) (*model.Note, error) {
	args := m.Called(ctx, id)
	if n, ok := args.Get(0).(*model.Note); ok {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNoteRepo) ListByFood(ctx context.Context, foodID string) ([]model.Note, error) {
	args := m.Called(ctx, foodID)
	notes, _ := args.Get(0).([]model.Note)
	return notes, args.Error(1)
}

func (m *mockNoteRepo) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.NoteRepository = (*mockNoteRepo)(nil)

// fixedClock подменяет time.Now в сервисах
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
