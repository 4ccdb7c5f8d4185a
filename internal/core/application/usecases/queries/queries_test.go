package queries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oms/internal/core/domain/model/kernel"
)

func Test_NewGetOrdersQuery(t *testing.T) {
	t.Run("should create query with valid paging", func(t *testing.T) {
		query, err := NewGetOrdersQuery(100, 50)

		require.NoError(t, err)
		assert.NoError(t, query.Validate())
		assert.Equal(t, 100, query.Limit())
		assert.Equal(t, 50, query.Offset())
	})

	t.Run("should return error when limit is not positive", func(t *testing.T) {
		_, err := NewGetOrdersQuery(0, 0)
		require.Error(t, err)

		_, err = NewGetOrdersQuery(-1, 0)
		require.Error(t, err)
	})

	t.Run("should return error when offset is negative", func(t *testing.T) {
		_, err := NewGetOrdersQuery(10, -1)
		require.Error(t, err)
	})

	t.Run("should not validate zero value query", func(t *testing.T) {
		var query GetOrdersQuery

		assert.ErrorIs(t, query.Validate(), ErrGetOrdersQueryIsNotConstructed)
	})
}

func Test_NewGetOrderByIDQuery(t *testing.T) {
	t.Run("should create query with valid order ID", func(t *testing.T) {
		orderID := kernel.NewOrderID()

		query, err := NewGetOrderByIDQuery(orderID)

		require.NoError(t, err)
		assert.NoError(t, query.Validate())
		assert.True(t, query.OrderID().IsEqual(orderID))
	})

	t.Run("should return error for zero value order ID", func(t *testing.T) {
		_, err := NewGetOrderByIDQuery(kernel.OrderID{})

		require.Error(t, err)
	})

	t.Run("should not validate zero value query", func(t *testing.T) {
		var query GetOrderByIDQuery

		assert.ErrorIs(t, query.Validate(), ErrGetOrderByIDQueryIsNotConstructed)
	})
}

func Test_NewGetRecentOrdersQuery(t *testing.T) {
	t.Run("should keep in-range values unchanged", func(t *testing.T) {
		query, err := NewGetRecentOrdersQuery(30, 200)

		require.NoError(t, err)
		assert.NoError(t, query.Validate())
		assert.Equal(t, 30, query.WindowMinutes())
		assert.Equal(t, 200, query.Limit())
	})

	t.Run("should apply defaults for zero values", func(t *testing.T) {
		query, err := NewGetRecentOrdersQuery(0, 0)

		require.NoError(t, err)
		assert.Equal(t, 60, query.WindowMinutes())
		assert.Equal(t, 1000, query.Limit())
	})

	t.Run("should clamp values above the upper bounds", func(t *testing.T) {
		query, err := NewGetRecentOrdersQuery(100000, 100000)

		require.NoError(t, err)
		assert.Equal(t, 1440, query.WindowMinutes())
		assert.Equal(t, 5000, query.Limit())
	})

	t.Run("should clamp negative values to the lower bounds", func(t *testing.T) {
		query, err := NewGetRecentOrdersQuery(-5, -5)

		require.NoError(t, err)
		assert.Equal(t, 1, query.WindowMinutes())
		assert.Equal(t, 1, query.Limit())
	})

	t.Run("should not validate zero value query", func(t *testing.T) {
		var query GetRecentOrdersQuery

		assert.ErrorIs(t, query.Validate(), ErrGetRecentOrdersQueryIsNotConstructed)
	})
}
