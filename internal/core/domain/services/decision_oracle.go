package services

import (
	"math/rand"
	"sync"

	"oms/internal/core/domain/model/order"
)

// DecisionOracle is the pluggable source of business decisions the lifecycle
// engine and validation pipeline consult. The reference implementation draws
// fixed-probability outcomes for simulation; production deployments substitute
// real inventory, pricing, and risk systems without touching the callers'
// control flow.
type DecisionOracle interface {
	// InventoryAvailable reports whether stock can cover the order.
	InventoryAvailable(o *order.Order) bool

	// PricingValid reports whether the order total passes pricing rules.
	PricingValid(o *order.Order) bool

	// CustomerEligible reports whether the customer may place the order.
	CustomerEligible(o *order.Order) bool

	// ExceptionOutcome draws the exception branch of the lifecycle engine.
	// When triggered it returns the absorbing exception state to move to
	// (Canceled or Fraud) and true; otherwise the second result is false.
	ExceptionOutcome() (order.Status, bool)
}

// Probabilities holds the success/trigger probabilities of the
// fixed-probability oracle. All values lie in [0, 1].
type Probabilities struct {
	// Inventory is the probability an inventory check succeeds.
	Inventory float64

	// Pricing is the probability a pricing check succeeds.
	Pricing float64

	// Eligibility is the probability a customer eligibility check succeeds.
	Eligibility float64

	// Exception is the probability a lifecycle tick branches to an
	// exception state instead of following the linear progression.
	Exception float64
}

// DefaultProbabilities returns the reference simulation probabilities:
// 90% inventory, 95% pricing, 98% eligibility, 3% exception.
func DefaultProbabilities() Probabilities {
	return Probabilities{
		Inventory:   0.90,
		Pricing:     0.95,
		Eligibility: 0.98,
		Exception:   0.03,
	}
}

// RandomOracle is the fixed-probability DecisionOracle used for simulation and
// testing. Draws are independent Bernoulli trials; the exception branch lands
// on Canceled or Fraud with equal probability.
//
// RandomOracle is safe for concurrent use.
type RandomOracle struct {
	mu    sync.Mutex
	rng   *rand.Rand
	probs Probabilities
}

// NewRandomOracle creates an oracle with the default probabilities and the
// given seed. Use a fixed seed for reproducible simulations.
func NewRandomOracle(seed int64) *RandomOracle {
	return NewRandomOracleWithProbabilities(seed, DefaultProbabilities())
}

// NewRandomOracleWithProbabilities creates an oracle with explicit
// probabilities, e.g. to force deterministic outcomes in tests.
func NewRandomOracleWithProbabilities(seed int64, probs Probabilities) *RandomOracle {
	return &RandomOracle{
		rng:   rand.New(rand.NewSource(seed)),
		probs: probs,
	}
}

// InventoryAvailable draws the inventory check outcome.
func (r *RandomOracle) InventoryAvailable(_ *order.Order) bool {
	return r.draw() < r.probs.Inventory
}

// PricingValid draws the pricing check outcome.
func (r *RandomOracle) PricingValid(_ *order.Order) bool {
	return r.draw() < r.probs.Pricing
}

// CustomerEligible draws the customer eligibility check outcome.
func (r *RandomOracle) CustomerEligible(_ *order.Order) bool {
	return r.draw() < r.probs.Eligibility
}

// ExceptionOutcome draws the lifecycle exception branch. When triggered the
// target state is Canceled or Fraud with equal probability.
func (r *RandomOracle) ExceptionOutcome() (order.Status, bool) {
	if r.draw() >= r.probs.Exception {
		return order.Unknown, false
	}
	if r.draw() < 0.5 {
		return order.Canceled, true
	}
	return order.Fraud, true
}

func (r *RandomOracle) draw() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}
