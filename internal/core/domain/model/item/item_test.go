package item_test

import (
	"testing"

	"oms/internal/core/domain/model/item"
	"oms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("should create valid item", func(t *testing.T) {
		i, err := item.NewItem(7, "Espresso Machine", "Countertop model")

		require.NoError(t, err)
		require.NoError(t, i.Validate())
		assert.Equal(t, 7, i.ID())
		assert.Equal(t, "Espresso Machine", i.Name())
		assert.Equal(t, "Countertop model", i.Detail())
	})

	t.Run("should reject id outside catalog range", func(t *testing.T) {
		for _, id := range []int{0, -1, 101, 1000} {
			_, err := item.NewItem(id, "name", "")
			require.Error(t, err, "id %d should be rejected", id)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := item.NewItem(1, "", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestItem_Validate(t *testing.T) {
	t.Run("should reject zero value", func(t *testing.T) {
		var i item.Item

		require.Error(t, i.Validate())
	})

	t.Run("should reject nil item", func(t *testing.T) {
		var i *item.Item

		require.Error(t, i.Validate())
	})
}

func TestDefaultCatalog(t *testing.T) {
	catalog := item.DefaultCatalog()

	require.Len(t, catalog, item.CatalogSize)
	for idx, entry := range catalog {
		require.NoError(t, entry.Validate())
		assert.Equal(t, idx+1, entry.ID())
		assert.NotEmpty(t, entry.Name())
	}
}
