package order

import (
	"fmt"

	"oms/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// Orders move forward along a fixed linear progression:
//
//	PENDING -> PENDING_PAYMENT -> PAYMENT_REVIEW -> PROCESSING -> SHIPPING -> COMPLETE -> CLOSED
//
// plus two absorbing exception states (CANCELED, FRAUD) reachable from any
// non-terminal state, and a hold state (HOLDED) set only by the commerce
// validation pipeline. HOLDED is not part of the linear progression: the
// automatic advancer never moves a held order, only an explicit status update
// can.
//
// Terminal states (COMPLETE, CLOSED, CANCELED, FRAUD) admit no further
// automatic transitions.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every created order.
	Pending

	// PendingPayment indicates the order awaits payment capture.
	PendingPayment

	// PaymentReview indicates the captured payment is under review.
	PaymentReview

	// Processing indicates the order has been validated and is being fulfilled.
	Processing

	// Shipping indicates the order has left the warehouse.
	Shipping

	// Complete indicates the order was delivered. Terminal.
	Complete

	// Closed indicates the order is archived. Terminal.
	Closed

	// Canceled indicates the order was canceled. Terminal.
	Canceled

	// Fraud indicates the order was flagged as fraudulent. Terminal.
	Fraud

	// Holded indicates the commerce validation pipeline rejected the order.
	// Not terminal, but frozen with respect to the automatic advancer.
	Holded
)

// getStatusNames returns the wire names of all statuses, including Unknown.
func getStatusNames() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Pending:        "PENDING",
		PendingPayment: "PENDING_PAYMENT",
		PaymentReview:  "PAYMENT_REVIEW",
		Processing:     "PROCESSING",
		Shipping:       "SHIPPING",
		Complete:       "COMPLETE",
		Closed:         "CLOSED",
		Canceled:       "CANCELED",
		Fraud:          "FRAUD",
		Holded:         "HOLDED",
	}
}

// getValidStatusNames returns only the statuses acceptable in persisted orders
// and external status updates.
func getValidStatusNames() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "PENDING",
		PendingPayment: "PENDING_PAYMENT",
		PaymentReview:  "PAYMENT_REVIEW",
		Processing:     "PROCESSING",
		Shipping:       "SHIPPING",
		Complete:       "COMPLETE",
		Closed:         "CLOSED",
		Canceled:       "CANCELED",
		Fraud:          "FRAUD",
		Holded:         "HOLDED",
	}
}

// Progression returns the fixed linear sequence of lifecycle states, in order.
// Exception states and Holded are deliberately absent.
func Progression() []Status {
	return []Status{Pending, PendingPayment, PaymentReview, Processing, Shipping, Complete, Closed}
}

// ExceptionStates returns the absorbing exception states an order may branch
// into instead of following the linear progression.
func ExceptionStates() []Status {
	return []Status{Canceled, Fraud}
}

// StatusFromName parses a wire name (e.g. "PENDING_PAYMENT") into a Status.
// Returns a typed validation error for unrecognized names.
func StatusFromName(name string) (Status, error) {
	for status, statusName := range getValidStatusNames() {
		if statusName == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", name))
}

// Validate checks that the Status is a member of the fixed status set.
func (s Status) Validate() error {
	if _, ok := getValidStatusNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "UNKNOWN" for invalid values.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if name, ok := getStatusNames()[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status admits no further automatic
// transition. Terminal orders are never resurrected.
func (s Status) IsTerminal() bool {
	switch s {
	case Complete, Closed, Canceled, Fraud:
		return true
	default:
		return false
	}
}

// ProgressionIndex returns the position of the status in the linear
// progression, or -1 when the status is outside it (exception states, Holded).
func (s Status) ProgressionIndex() int {
	for i, status := range Progression() {
		if status == s {
			return i
		}
	}
	return -1
}
