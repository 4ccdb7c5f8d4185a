package order

import (
	"errors"
	"fmt"
	"time"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/pkg/errs"
	"oms/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the aggregate root tracking a customer purchase through its
// lifecycle of statuses.
//
// Order maintains these invariants:
//   - the identifier, customer reference, total, and channel are always valid
//   - status is always a member of the fixed status set
//   - an optional item reference lies in the seeded catalog range [1, 100]
//   - a terminal order is never moved to a different status
//   - the creation timestamp is immutable; the update timestamp moves on
//     every status change
//
// All fields are private; orders are created through NewOrder, restored from
// persistence through RestoreOrder, and mutated only through ChangeStatus.
type Order struct {
	id       kernel.OrderID
	customer Customer
	total    kernel.Money
	channel  Channel
	status   Status

	// itemID references the item catalog (nil when the order carries no item)
	itemID *int

	paymentMethod   string
	shippingAddress string
	trackingNumber  string

	// notes is the latest audit note explaining who moved the order and why
	notes string

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a new order in Pending status with fresh timestamps.
//
// The optional itemID must lie in [1, 100] when provided. Payment method,
// shipping address, and notes may be empty.
func NewOrder(
	id kernel.OrderID,
	customer Customer,
	total kernel.Money,
	channel Channel,
	itemID *int,
	paymentMethod string,
	shippingAddress string,
	notes string,
) (*Order, error) {
	now := time.Now()
	o := &Order{
		status:          Pending,
		paymentMethod:   paymentMethod,
		shippingAddress: shippingAddress,
		notes:           notes,
		createdAt:       now,
		updatedAt:       now,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setTotal(total),
		o.setChannel(channel),
		o.setItemID(itemID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its current
// status, tracking number, and timestamps. All invariants are re-validated so
// corrupt rows are rejected on read.
func RestoreOrder(
	id kernel.OrderID,
	customer Customer,
	total kernel.Money,
	channel Channel,
	status Status,
	itemID *int,
	paymentMethod string,
	shippingAddress string,
	trackingNumber string,
	notes string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		paymentMethod:   paymentMethod,
		shippingAddress: shippingAddress,
		trackingNumber:  trackingNumber,
		notes:           notes,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setTotal(total),
		o.setChannel(channel),
		o.setItemID(itemID),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID { return o.id }

// Customer returns the customer reference attached to the order.
func (o *Order) Customer() Customer { return o.customer }

// Total returns the monetary total of the order.
func (o *Order) Total() kernel.Money { return o.total }

// Channel returns the sales channel the order was placed through.
func (o *Order) Channel() Channel { return o.channel }

// Status returns the current lifecycle status of the order.
func (o *Order) Status() Status { return o.status }

// ItemID returns the referenced catalog item id, or nil when the order
// carries no item.
func (o *Order) ItemID() *int { return o.itemID }

// PaymentMethod returns the payment method, empty when not provided.
func (o *Order) PaymentMethod() string { return o.paymentMethod }

// ShippingAddress returns the shipping address, empty when not provided.
func (o *Order) ShippingAddress() string { return o.shippingAddress }

// TrackingNumber returns the shipment tracking number, empty until assigned.
func (o *Order) TrackingNumber() string { return o.trackingNumber }

// Notes returns the latest audit note attached to the order.
func (o *Order) Notes() string { return o.notes }

// CreatedAt returns the immutable creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the timestamp of the last mutation.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// ChangeStatus moves the order to newStatus and refreshes the update
// timestamp. A non-empty note replaces the stored audit note; an empty note
// keeps the existing one.
//
// Rules enforced here:
//   - newStatus must be a member of the fixed status set
//   - a terminal order never moves to a different status; re-applying the
//     same status is allowed and only touches the update timestamp
//
// The linear progression itself is not enforced by the aggregate: the
// automatic advancer follows it, while explicit updates (operator action,
// commerce hold/release) may move the order sideways, e.g. HOLDED back to
// PENDING.
func (o *Order) ChangeStatus(newStatus Status, note string) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	if o.status.IsTerminal() && newStatus != o.status {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is terminal and cannot move to %s", o.status, newStatus))
	}

	o.status = newStatus
	if note != "" {
		o.notes = note
	}
	o.updatedAt = time.Now()
	return nil
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setTotal(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}
	o.total = total
	return nil
}

func (o *Order) setChannel(channel Channel) error {
	if err := channel.Validate(); err != nil {
		return err
	}
	o.channel = channel
	return nil
}

func (o *Order) setItemID(itemID *int) error {
	if itemID == nil {
		return nil
	}
	if *itemID < 1 || *itemID > 100 {
		return errs.NewValueIsOutOfRangeError("itemId", *itemID, 1, 100)
	}
	o.itemID = itemID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
