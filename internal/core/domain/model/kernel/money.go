package kernel

import (
	"fmt"

	"oms/internal/pkg/errs"
	"oms/internal/pkg/guard"
)

// DefaultCurrency is used when an order draft carries no currency code.
const DefaultCurrency = "USD"

// ErrMoneyIsNotConstructed indicates that a Money value was not created through NewMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney")

// Money is a value object holding a non-negative monetary total together with
// its ISO 4217 currency code. An empty currency defaults to DefaultCurrency.
//
// Money is immutable; the zero value is invalid and must be constructed
// through NewMoney.
type Money struct {
	amount   float64
	currency string

	guard guard.ConstructorGuard
}

// NewMoney creates a Money value. The amount must be non-negative and the
// currency, when provided, must be a three-letter code.
func NewMoney(amount float64, currency string) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%f is negative", amount))
	}

	if currency == "" {
		currency = DefaultCurrency
	}
	if len(currency) != 3 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("%q is not a three-letter currency code", currency))
	}

	return Money{
		amount:   amount,
		currency: currency,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Money value was created through NewMoney.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the monetary total.
func (m Money) Amount() float64 {
	return m.amount
}

// Currency returns the three-letter currency code.
func (m Money) Currency() string {
	return m.currency
}

// IsEqual compares two Money values by amount and currency.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount && m.currency == other.currency
}
