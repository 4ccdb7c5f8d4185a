package kernel_test

import (
	"testing"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money with explicit currency", func(t *testing.T) {
		m, err := kernel.NewMoney(199.99, "EUR")

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.InDelta(t, 199.99, m.Amount(), 0.0001)
		assert.Equal(t, "EUR", m.Currency())
	})

	t.Run("should default empty currency to USD", func(t *testing.T) {
		m, err := kernel.NewMoney(10, "")

		require.NoError(t, err)
		assert.Equal(t, kernel.DefaultCurrency, m.Currency())
	})

	t.Run("should accept zero amount", func(t *testing.T) {
		m, err := kernel.NewMoney(0, "USD")

		require.NoError(t, err)
		assert.Zero(t, m.Amount())
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(-1, "USD")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject non three-letter currency", func(t *testing.T) {
		for _, currency := range []string{"US", "DOLLAR", "$"} {
			_, err := kernel.NewMoney(1, currency)
			require.Error(t, err, "currency %q should be rejected", currency)
		}
	})
}

func TestMoney_Validate(t *testing.T) {
	t.Run("should reject zero value", func(t *testing.T) {
		var m kernel.Money

		err := m.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, err)
	})
}

func TestMoney_IsEqual(t *testing.T) {
	a, _ := kernel.NewMoney(5, "USD")
	b, _ := kernel.NewMoney(5, "USD")
	c, _ := kernel.NewMoney(5, "EUR")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
