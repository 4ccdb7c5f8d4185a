// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases; they never
// mutate state and are always safe to call concurrently with any writer.
package queries

import (
	"errors"
	"fmt"
	"time"

	"oms/internal/pkg/errs"
	"oms/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves a page of orders ordered by creation time
// descending, joined with their item reference data for display.
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a paged order listing query.
func NewGetOrdersQuery(limit, offset int) (GetOrdersQuery, error) {
	if limit <= 0 {
		return GetOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("limit",
			fmt.Errorf("%d is not greater than 0", limit))
	}
	if offset < 0 {
		return GetOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("offset",
			fmt.Errorf("%d is negative", offset))
	}

	return GetOrdersQuery{
		limit:  limit,
		offset: offset,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Limit returns the page size.
func (q GetOrdersQuery) Limit() int { return q.limit }

// Offset returns the page offset.
func (q GetOrdersQuery) Offset() int { return q.offset }

// OrderRow is the read model of one order joined with its item reference.
// Item fields are nil when the order carries no item.
type OrderRow struct {
	OrderID         string
	CustomerID      string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	TotalAmount     float64
	Currency        string
	OrderType       string
	Status          string
	PaymentMethod   string
	ShippingAddress string
	TrackingNumber  string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ItemName        *string
	ItemDetail      *string
}
