package order

import (
	"oms/internal/pkg/errs"
	"oms/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed indicates that a Customer was not created through NewCustomer.
var ErrCustomerIsNotConstructed = errs.NewValueIsRequiredError("Customer must be created via NewCustomer")

// Customer is a value object holding the customer reference attached to an
// order. Id, name, and email are required; phone is optional.
type Customer struct {
	id    string
	name  string
	email string
	phone string

	guard guard.ConstructorGuard
}

// NewCustomer creates a validated customer reference.
func NewCustomer(id, name, email, phone string) (Customer, error) {
	if id == "" {
		return Customer{}, errs.NewValueIsRequiredError("customerId")
	}
	if name == "" {
		return Customer{}, errs.NewValueIsRequiredError("customerName")
	}
	if email == "" {
		return Customer{}, errs.NewValueIsRequiredError("customerEmail")
	}

	return Customer{
		id:    id,
		name:  name,
		email: email,
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Customer was created through NewCustomer.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the customer identifier.
func (c Customer) ID() string { return c.id }

// Name returns the customer display name.
func (c Customer) Name() string { return c.name }

// Email returns the customer contact email.
func (c Customer) Email() string { return c.email }

// Phone returns the customer phone number, empty when not provided.
func (c Customer) Phone() string { return c.phone }
