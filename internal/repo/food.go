package repo

import (
	"FoodTracker/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

// FoodFilter - условия выборки. Пустое поле не фильтрует.
type FoodFilter struct {
	UserID string
	Status string
}

// FoodRepository - контракт доступа к одной таблице продуктов (food или addfood).
type FoodRepository interface {
	Create(ctx context.Context, item *model.FoodItem) error
	// GetByID возвращает gorm.ErrRecordNotFound, если записи нет.
	GetByID(ctx context.Context, id string) (*model.FoodItem, error)
	List(ctx context.Context, filter FoodFilter) ([]model.FoodItem, error)
	// ListExpiring возвращает активные продукты пользователя с expiry_date в [from, to].
	ListExpiring(ctx context.Context, userID string, from, to time.Time) ([]model.FoodItem, error)
	// Update применяет updates и возвращает число затронутых строк.
	Update(ctx context.Context, id string, updates map[string]any) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	// UpdateOwned и DeleteOwned меняют запись, только если она принадлежит userID.
	UpdateOwned(ctx context.Context, id, userID string, updates map[string]any) (int64, error)
	DeleteOwned(ctx context.Context, id, userID string) (int64, error)
}

type foodRepo struct {
	db    *gorm.DB
	table string
}

// NewFoodRepository создаёт репозиторий поверх указанной таблицы
// (model.SharedFoodTable или model.PrivateFoodTable).
func NewFoodRepository(db *gorm.DB, table string) FoodRepository {
	return &foodRepo{db: db, table: table}
}

func (r *foodRepo) tx(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table(r.table)
}

func (r *foodRepo) Create(ctx context.Context, item *model.FoodItem) error {
	item.ExpiryDate = item.ExpiryDate.UTC()
	return r.tx(ctx).Create(item).Error
}

func (r *foodRepo) GetByID(ctx context.Context, id string) (*model.FoodItem, error) {
	var it model.FoodItem
	if err := r.tx(ctx).Where("id = ?", id).First(&it).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *foodRepo) List(ctx context.Context, filter FoodFilter) ([]model.FoodItem, error) {
	q := r.tx(ctx)
	if filter.UserID != "" {
		q = q.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	items := []model.FoodItem{}
	if err := q.Order("created_at asc").Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *foodRepo) ListExpiring(ctx context.Context, userID string, from, to time.Time) ([]model.FoodItem, error) {
	items := []model.FoodItem{}
	err := r.tx(ctx).
		Where("user_id = ? AND status = ? AND expiry_date BETWEEN ? AND ?",
			userID, model.StatusActive, from.UTC(), to.UTC()).
		Order("expiry_date asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *foodRepo) Update(ctx context.Context, id string, updates map[string]any) (int64, error) {
	return r.update(r.tx(ctx).Where("id = ?", id), updates)
}

func (r *foodRepo) UpdateOwned(ctx context.Context, id, userID string, updates map[string]any) (int64, error) {
	return r.update(r.tx(ctx).Where("id = ? AND user_id = ?", id, userID), updates)
}

func (r *foodRepo) update(q *gorm.DB, updates map[string]any) (int64, error) {
	if t, ok := updates["expiry_date"].(time.Time); ok {
		updates["expiry_date"] = t.UTC()
	}
	tx := q.Updates(updates)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

func (r *foodRepo) Delete(ctx context.Context, id string) (int64, error) {
	return r.delete(r.tx(ctx).Where("id = ?", id))
}

func (r *foodRepo) DeleteOwned(ctx context.Context, id, userID string) (int64, error) {
	return r.delete(r.tx(ctx).Where("id = ? AND user_id = ?", id, userID))
}

func (r *foodRepo) delete(q *gorm.DB) (int64, error) {
	tx := q.Delete(&model.FoodItem{})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}
