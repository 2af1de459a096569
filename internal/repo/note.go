package repo

import (
	"FoodTracker/internal/model"
	"context"

	"gorm.io/gorm"
)

// NoteRepository - контракт доступа к заметкам.
type NoteRepository interface {
	Create(ctx context.Context, note *model.Note) error
	GetByID(ctx context.Context, id string) (*model.Note, error)
	// ListByFood возвращает заметки продукта, новые первыми.
	ListByFood(ctx context.Context, foodID string) ([]model.Note, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type noteRepo struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepo{db: db}
}

func (r *noteRepo) Create(ctx context.Context, note *model.Note) error {
	note.PostedDate = note.PostedDate.UTC()
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *noteRepo) GetByID(ctx context.Context, id string) (*model.Note, error) {
	var n model.Note
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *noteRepo) ListByFood(ctx context.Context, foodID string) ([]model.Note, error) {
	notes := []model.Note{}
	// id - UUIDv7, поэтому при равных posted_date сохраняется порядок вставки
	err := r.db.WithContext(ctx).
		Where("food_id = ?", foodID).
		Order("posted_date desc").
		Order("id asc").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *noteRepo) Delete(ctx context.Context, id string) (int64, error) {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Note{})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}
