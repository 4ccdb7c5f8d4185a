// Package item provides the immutable item catalog reference data orders may
// point at. Exactly CatalogSize items must exist before any order references
// an item id; seeding is idempotent.
package item

import (
	"fmt"

	"oms/internal/pkg/errs"
	"oms/internal/pkg/guard"
)

// CatalogSize is the exact number of catalog rows that must exist before
// orders can reference items.
const CatalogSize = 100

// ErrItemIsNotConstructed indicates that an Item was not created through NewItem.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError("Item must be created via NewItem")

// Item is an immutable catalog entry identified by an integer id in
// [1, CatalogSize].
type Item struct {
	id     int
	name   string
	detail string

	guard guard.ConstructorGuard
}

// NewItem creates a validated catalog item.
func NewItem(id int, name, detail string) (*Item, error) {
	if id < 1 || id > CatalogSize {
		return nil, errs.NewValueIsOutOfRangeError("itemId", id, 1, CatalogSize)
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Item{
		id:     id,
		name:   name,
		detail: detail,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Item was created through NewItem.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the catalog identifier in [1, CatalogSize].
func (i *Item) ID() int { return i.id }

// Name returns the item display name.
func (i *Item) Name() string { return i.name }

// Detail returns the free-text item description.
func (i *Item) Detail() string { return i.detail }

// DefaultCatalog generates the full generic catalog of CatalogSize items used
// when no curated item data is available.
func DefaultCatalog() []*Item {
	catalog := make([]*Item, 0, CatalogSize)
	for id := 1; id <= CatalogSize; id++ {
		entry, _ := NewItem(id,
			fmt.Sprintf("General Item %d", id),
			fmt.Sprintf("Generic description for item %d", id))
		catalog = append(catalog, entry)
	}
	return catalog
}
