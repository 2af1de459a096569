package repo

import (
	"FoodTracker/internal/model"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func mkUser(email, uid string) *model.User {
	now := time.Now().UTC()
	return &model.User{ID: uuid.NewString(), Email: email, UID: uid, CreatedAt: now, UpdatedAt: now}
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepository(db)
	ctx := context.Background()

	u := mkUser("john@example.com", "u1")
	u.Profile = datatypes.JSONMap{"name": "John"}
	created, err := r.CreateUser(ctx, u)
	assert.NoError(t, err)
	assert.Equal(t, u.ID, created.ID)

	got, err := r.GetByID(ctx, u.ID)
	assert.NoError(t, err)
	assert.Equal(t, "john@example.com", got.Email)
	assert.Equal(t, "John", got.Profile["name"])

	got, err = r.GetByEmail(ctx, "john@example.com")
	assert.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	// уникальность email на уровне индекса
	_, err = r.CreateUser(ctx, mkUser("john@example.com", "u2"))
	assert.Error(t, err)
	// уникальность uid на уровне индекса
	_, err = r.CreateUser(ctx, mkUser("other@example.com", "u1"))
	assert.Error(t, err)

	got, err = r.GetByID(ctx, uuid.NewString())
	assert.Nil(t, got)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_FindByEmailOrUID(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepository(db)
	ctx := context.Background()

	u := mkUser("a@b.com", "uid-a")
	_, err := r.CreateUser(ctx, u)
	assert.NoError(t, err)

	byEmail, err := r.FindByEmailOrUID(ctx, "a@b.com", "nope")
	assert.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	byUID, err := r.FindByEmailOrUID(ctx, "nope@b.com", "uid-a")
	assert.NoError(t, err)
	assert.Equal(t, u.ID, byUID.ID)

	none, err := r.FindByEmailOrUID(ctx, "x@y.com", "uid-x")
	assert.Nil(t, none)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
