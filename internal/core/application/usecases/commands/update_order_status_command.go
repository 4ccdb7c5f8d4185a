package commands

import (
	"errors"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"
	"oms/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// UpdateOrderStatusCommand represents an explicit request to move an order to
// a target status, optionally replacing its audit note. This is the manual
// override path used by operators and the commerce engine; the target status
// must be a member of the fixed status set but is otherwise unconstrained by
// the linear progression.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	status  order.Status
	note    string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a validated status update command.
// An empty note keeps the order's existing note.
func NewUpdateOrderStatusCommand(orderID kernel.OrderID, status order.Status, note string) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderStatusCommand) OrderID() kernel.OrderID { return c.orderID }

// Status returns the target status.
func (c UpdateOrderStatusCommand) Status() order.Status { return c.status }

// Note returns the audit note, empty when the existing note should be kept.
func (c UpdateOrderStatusCommand) Note() string { return c.note }

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
