package services_test

import (
	"testing"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"
	"oms/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	customer, err := order.NewCustomer("CUST-1", "Jamie Doe", "jamie@example.com", "")
	require.NoError(t, err)
	total, err := kernel.NewMoney(250, "USD")
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewOrderID(), customer, total, order.Online, nil, "", "", "")
	require.NoError(t, err)
	return o
}

func TestValidationPipeline_Process_AllChecksPass(t *testing.T) {
	oracle := &scriptedOracle{inventory: true, pricing: true, eligible: true}
	pipeline := services.NewValidationPipeline(oracle)

	result := pipeline.Process(newTestOrder(t))

	assert.True(t, result.Success)
	assert.True(t, result.CanFulfill)
	assert.True(t, result.InventoryAvailable)
	assert.True(t, result.PricingValid)
	assert.True(t, result.CustomerEligible)
	assert.Empty(t, result.ErrorMessage)
	assert.Equal(t, []string{"inventory", "pricing", "eligibility"}, oracle.calls)
}

func TestValidationPipeline_Process_ShortCircuits(t *testing.T) {
	t.Run("inventory failure stops before pricing and eligibility", func(t *testing.T) {
		oracle := &scriptedOracle{inventory: false, pricing: true, eligible: true}
		pipeline := services.NewValidationPipeline(oracle)

		result := pipeline.Process(newTestOrder(t))

		assert.False(t, result.Success)
		assert.False(t, result.CanFulfill)
		assert.False(t, result.InventoryAvailable)
		assert.Equal(t, services.ReasonInsufficientInventory, result.ErrorMessage)
		assert.Equal(t, []string{"inventory"}, oracle.calls,
			"pricing and eligibility must not be evaluated")
	})

	t.Run("pricing failure stops before eligibility", func(t *testing.T) {
		oracle := &scriptedOracle{inventory: true, pricing: false, eligible: true}
		pipeline := services.NewValidationPipeline(oracle)

		result := pipeline.Process(newTestOrder(t))

		assert.False(t, result.Success)
		assert.True(t, result.InventoryAvailable)
		assert.False(t, result.PricingValid)
		assert.Equal(t, services.ReasonPricingInvalid, result.ErrorMessage)
		assert.Equal(t, []string{"inventory", "pricing"}, oracle.calls)
	})

	t.Run("eligibility failure reports customer reason", func(t *testing.T) {
		oracle := &scriptedOracle{inventory: true, pricing: true, eligible: false}
		pipeline := services.NewValidationPipeline(oracle)

		result := pipeline.Process(newTestOrder(t))

		assert.False(t, result.Success)
		assert.True(t, result.InventoryAvailable)
		assert.True(t, result.PricingValid)
		assert.False(t, result.CustomerEligible)
		assert.Equal(t, services.ReasonCustomerNotEligible, result.ErrorMessage)
	})
}

func TestRandomOracle_Probabilities(t *testing.T) {
	o := newTestOrder(t)

	t.Run("probability one always succeeds", func(t *testing.T) {
		oracle := services.NewRandomOracleWithProbabilities(1, services.Probabilities{
			Inventory:   1,
			Pricing:     1,
			Eligibility: 1,
			Exception:   1,
		})

		for range 50 {
			assert.True(t, oracle.InventoryAvailable(o))
			assert.True(t, oracle.PricingValid(o))
			assert.True(t, oracle.CustomerEligible(o))

			state, drawn := oracle.ExceptionOutcome()
			require.True(t, drawn)
			assert.Contains(t, order.ExceptionStates(), state)
		}
	})

	t.Run("probability zero never succeeds", func(t *testing.T) {
		oracle := services.NewRandomOracleWithProbabilities(1, services.Probabilities{})

		for range 50 {
			assert.False(t, oracle.InventoryAvailable(o))
			assert.False(t, oracle.PricingValid(o))
			assert.False(t, oracle.CustomerEligible(o))

			_, drawn := oracle.ExceptionOutcome()
			assert.False(t, drawn)
		}
	})

	t.Run("default probabilities match the reference simulation", func(t *testing.T) {
		probs := services.DefaultProbabilities()

		assert.InDelta(t, 0.90, probs.Inventory, 0.0001)
		assert.InDelta(t, 0.95, probs.Pricing, 0.0001)
		assert.InDelta(t, 0.98, probs.Eligibility, 0.0001)
		assert.InDelta(t, 0.03, probs.Exception, 0.0001)
	})
}
