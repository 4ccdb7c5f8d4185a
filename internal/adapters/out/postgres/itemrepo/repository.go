package itemrepo

import (
	"context"

	"gorm.io/gorm"

	"oms/internal/core/domain/model/item"
)

// GormItemRepository implements ports.ItemRepository using GORM.
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GORM item repository.
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// Count returns the number of catalog rows currently persisted.
func (r *GormItemRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ItemDTO{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// RemoveAll wipes the catalog.
func (r *GormItemRepository) RemoveAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&ItemDTO{}).Error
}

// AddBatch persists a batch of catalog items.
func (r *GormItemRepository) AddBatch(ctx context.Context, items []*item.Item) error {
	if len(items) == 0 {
		return nil
	}

	dtos := make([]ItemDTO, 0, len(items))
	for _, i := range items {
		if err := i.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(i))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}
