package services_test

import (
	"fmt"
	"testing"

	"oms/internal/core/domain/model/order"
	"oms/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedOracle returns fixed outcomes and records which checks were consulted.
type scriptedOracle struct {
	inventory bool
	pricing   bool
	eligible  bool

	exceptionState order.Status
	exceptionDrawn bool

	calls []string
}

func (s *scriptedOracle) InventoryAvailable(_ *order.Order) bool {
	s.calls = append(s.calls, "inventory")
	return s.inventory
}

func (s *scriptedOracle) PricingValid(_ *order.Order) bool {
	s.calls = append(s.calls, "pricing")
	return s.pricing
}

func (s *scriptedOracle) CustomerEligible(_ *order.Order) bool {
	s.calls = append(s.calls, "eligibility")
	return s.eligible
}

func (s *scriptedOracle) ExceptionOutcome() (order.Status, bool) {
	s.calls = append(s.calls, "exception")
	return s.exceptionState, s.exceptionDrawn
}

func TestLifecycleEngine_Next_TerminalStates(t *testing.T) {
	engine := services.NewLifecycleEngine(&scriptedOracle{})

	for _, status := range []order.Status{order.Complete, order.Closed, order.Canceled, order.Fraud} {
		t.Run(fmt.Sprintf("should not move %s", status), func(t *testing.T) {
			_, ok := engine.Next(status)
			assert.False(t, ok)
		})
	}
}

func TestLifecycleEngine_Next_LinearProgression(t *testing.T) {
	t.Run("should advance one step with audit note", func(t *testing.T) {
		engine := services.NewLifecycleEngine(&scriptedOracle{})

		transition, ok := engine.Next(order.Pending)

		require.True(t, ok)
		assert.Equal(t, order.PendingPayment, transition.Next)
		assert.Equal(t, services.NoteAutoAdvanced, transition.Note)
	})

	t.Run("should reach CLOSED from PENDING in exactly len(progression)-1 steps", func(t *testing.T) {
		engine := services.NewLifecycleEngine(&scriptedOracle{})

		current := order.Pending
		steps := 0
		for {
			transition, ok := engine.Next(current)
			if !ok {
				break
			}
			current = transition.Next
			steps++
			require.LessOrEqual(t, steps, len(order.Progression()), "progression must terminate")
		}

		assert.Equal(t, order.Closed, current)
		assert.Equal(t, len(order.Progression())-1, steps)
	})

	t.Run("should freeze states outside the progression", func(t *testing.T) {
		engine := services.NewLifecycleEngine(&scriptedOracle{})

		_, ok := engine.Next(order.Holded)

		assert.False(t, ok)
	})
}

func TestLifecycleEngine_Next_ExceptionBranch(t *testing.T) {
	t.Run("should route to the drawn exception state", func(t *testing.T) {
		for _, exception := range order.ExceptionStates() {
			oracle := &scriptedOracle{exceptionState: exception, exceptionDrawn: true}
			engine := services.NewLifecycleEngine(oracle)

			transition, ok := engine.Next(order.Pending)

			require.True(t, ok)
			assert.Equal(t, exception, transition.Next)
			assert.Equal(t, services.NoteAutoException, transition.Note)
			assert.True(t, transition.Next.IsTerminal(),
				"exception branch must land on a terminal state")
		}
	})

	t.Run("should override the linear path on the final progression step", func(t *testing.T) {
		oracle := &scriptedOracle{exceptionState: order.Canceled, exceptionDrawn: true}
		engine := services.NewLifecycleEngine(oracle)

		transition, ok := engine.Next(order.Complete)
		assert.False(t, ok, "terminal check still wins over the exception draw")

		transition, ok = engine.Next(order.Shipping)
		require.True(t, ok)
		assert.Equal(t, order.Canceled, transition.Next)
	})

	t.Run("should override even for states outside the progression", func(t *testing.T) {
		oracle := &scriptedOracle{exceptionState: order.Fraud, exceptionDrawn: true}
		engine := services.NewLifecycleEngine(oracle)

		transition, ok := engine.Next(order.Holded)

		require.True(t, ok)
		assert.Equal(t, order.Fraud, transition.Next)
	})
}
