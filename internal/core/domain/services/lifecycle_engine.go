package services

import "oms/internal/core/domain/model/order"

const (
	// NoteAutoAdvanced is the audit note attached when the engine moves an
	// order one step along the linear progression.
	NoteAutoAdvanced = "auto-advanced"

	// NoteAutoException is the audit note attached when the engine routes an
	// order to an exception state.
	NoteAutoException = "auto-exception"
)

// Transition is the outcome of a lifecycle engine decision: the state to move
// to and the audit note recording why.
type Transition struct {
	Next order.Status
	Note string
}

// LifecycleEngine decides the next state for an order given its current state
// and a stochastic branch outcome from the Decision Oracle. The engine is a
// stateless function over order snapshots; it never touches storage.
//
// Decision order:
//  1. terminal states are absorbing: no transition
//  2. the oracle's exception draw, when triggered, routes to Canceled or
//     Fraud unconditionally, even on the final progression step
//  3. states outside the linear progression (Holded) are frozen
//  4. otherwise advance one progression index, clamped at the sequence end;
//     a transition is only produced when the computed state differs
type LifecycleEngine struct {
	oracle DecisionOracle
}

// NewLifecycleEngine creates an engine drawing exception branches from the
// given oracle.
func NewLifecycleEngine(oracle DecisionOracle) LifecycleEngine {
	return LifecycleEngine{oracle: oracle}
}

// Next computes the transition for an order in the given state. The second
// result is false when the order must stay where it is.
func (e LifecycleEngine) Next(current order.Status) (Transition, bool) {
	if current.IsTerminal() {
		return Transition{}, false
	}

	if exception, drawn := e.oracle.ExceptionOutcome(); drawn {
		return Transition{Next: exception, Note: NoteAutoException}, true
	}

	idx := current.ProgressionIndex()
	if idx < 0 {
		return Transition{}, false
	}

	progression := order.Progression()
	next := progression[min(idx+1, len(progression)-1)]
	if next == current {
		// clamp safety net: the terminal check above already excludes the
		// final listed state, but keep the engine total over all inputs
		return Transition{}, false
	}

	return Transition{Next: next, Note: NoteAutoAdvanced}, true
}
