package kernel

import (
	"fmt"
	"strings"
	"time"

	"oms/internal/pkg/errs"
	"oms/internal/pkg/guard"

	"github.com/google/uuid"
)

// orderIDPrefix is the wire prefix of every generated order identifier.
const orderIDPrefix = "ORD-"

// ErrOrderIDIsNotConstructed indicates that an OrderID was not created through
// NewOrderID or OrderIDFromString.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID or OrderIDFromString",
)

// OrderID is a value object identifying an order. Identifiers are opaque
// strings of the form "ORD-<millis>-<8 hex chars>", generated once and never
// reused. The zero value is invalid; construct through NewOrderID or restore
// through OrderIDFromString.
//
// OrderID is immutable and safe for concurrent use.
type OrderID struct {
	value string

	guard guard.ConstructorGuard
}

// NewOrderID generates a fresh unique order identifier. The creation timestamp
// part keeps identifiers roughly sortable; the uuid suffix guarantees
// uniqueness within a millisecond.
func NewOrderID() OrderID {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return OrderID{
		value: fmt.Sprintf("%s%d-%s", orderIDPrefix, time.Now().UnixMilli(), suffix),
		guard: guard.NewConstructorGuard(),
	}
}

// OrderIDFromString restores an OrderID from its string representation, e.g.
// when reading from persistence or an HTTP path parameter.
func OrderIDFromString(value string) (OrderID, error) {
	if value == "" {
		return OrderID{}, errs.NewValueIsRequiredError("orderId")
	}

	if !strings.HasPrefix(value, orderIDPrefix) {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%q does not start with %q", value, orderIDPrefix))
	}

	return OrderID{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the OrderID was created through a constructor.
func (id OrderID) Validate() error {
	return id.guard.Validate(ErrOrderIDIsNotConstructed)
}

// String returns the wire representation of the identifier.
func (id OrderID) String() string {
	return id.value
}

// IsEqual compares two order identifiers by value.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}
