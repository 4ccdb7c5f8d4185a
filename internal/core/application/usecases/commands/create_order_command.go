package commands

import (
	"errors"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"
	"oms/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to register a new order. It carries
// the order draft: customer identity, monetary total, sales channel, and the
// optional item reference, payment method, shipping address, and notes.
//
// Example:
//
//	customer, _ := order.NewCustomer("CUST-1", "Jamie Doe", "jamie@example.com", "")
//	total, _ := kernel.NewMoney(99.90, "USD")
//	cmd, err := NewCreateOrderCommand(customer, total, order.Online, nil, "CREDIT_CARD", "1 Main St", "")
//	if err != nil {
//	    return fmt.Errorf("invalid order draft: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customer        order.Customer
	total           kernel.Money
	channel         order.Channel
	itemID          *int
	paymentMethod   string
	shippingAddress string
	notes           string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates the customer reference, total, and channel; the remaining fields
// are optional and validated by the aggregate on creation.
func NewCreateOrderCommand(
	customer order.Customer,
	total kernel.Money,
	channel order.Channel,
	itemID *int,
	paymentMethod string,
	shippingAddress string,
	notes string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		itemID:          itemID,
		paymentMethod:   paymentMethod,
		shippingAddress: shippingAddress,
		notes:           notes,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomer(customer),
		cmd.setTotal(total),
		cmd.setChannel(channel),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Customer returns the customer reference of the draft.
func (c CreateOrderCommand) Customer() order.Customer { return c.customer }

// Total returns the monetary total of the draft.
func (c CreateOrderCommand) Total() kernel.Money { return c.total }

// Channel returns the sales channel of the draft.
func (c CreateOrderCommand) Channel() order.Channel { return c.channel }

// ItemID returns the optional catalog item reference.
func (c CreateOrderCommand) ItemID() *int { return c.itemID }

// PaymentMethod returns the optional payment method.
func (c CreateOrderCommand) PaymentMethod() string { return c.paymentMethod }

// ShippingAddress returns the optional shipping address.
func (c CreateOrderCommand) ShippingAddress() string { return c.shippingAddress }

// Notes returns the optional free-text notes.
func (c CreateOrderCommand) Notes() string { return c.notes }

func (c *CreateOrderCommand) setCustomer(customer order.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setTotal(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}
	c.total = total
	return nil
}

func (c *CreateOrderCommand) setChannel(channel order.Channel) error {
	if err := channel.Validate(); err != nil {
		return err
	}
	c.channel = channel
	return nil
}
