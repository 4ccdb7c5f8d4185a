// Package itemrepo provides persistence for the item catalog reference data.
package itemrepo

import (
	"time"

	"oms/internal/core/domain/model/item"
)

// ItemDTO represents the database structure for catalog items.
type ItemDTO struct {
	ItemID    int    `gorm:"primaryKey"`
	Name      string `gorm:"size:255"`
	Detail    string `gorm:"size:1024"`
	CreatedAt time.Time
}

// TableName specifies the database table name for catalog items.
func (ItemDTO) TableName() string {
	return "items"
}

func fromDomain(i *item.Item) ItemDTO {
	return ItemDTO{
		ItemID: i.ID(),
		Name:   i.Name(),
		Detail: i.Detail(),
	}
}
