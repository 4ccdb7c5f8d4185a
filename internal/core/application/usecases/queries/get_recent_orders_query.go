package queries

import (
	"errors"
	"time"

	"oms/internal/pkg/guard"
)

var ErrGetRecentOrdersQueryIsNotConstructed = errors.New(
	"GetRecentOrdersQuery must be created via NewGetRecentOrdersQuery constructor",
)

const (
	defaultWindowMinutes = 60
	minWindowMinutes     = 1
	maxWindowMinutes     = 1440

	defaultRecentLimit = 1000
	minRecentLimit     = 1
	maxRecentLimit     = 5000
)

// GetRecentOrdersQuery retrieves orders updated within a recent time window
// together with per-status counts over that window. Out-of-range parameters
// are clamped rather than rejected so monitoring callers always get data.
type GetRecentOrdersQuery struct { //nolint:recvcheck //using for validation
	windowMinutes int
	limit         int

	guard guard.ConstructorGuard
}

// NewGetRecentOrdersQuery creates a monitoring window query. Zero values
// select the defaults (60 minute window, 1000 row limit); values outside
// [1, 1440] minutes or [1, 5000] rows are clamped to the nearest bound.
func NewGetRecentOrdersQuery(windowMinutes, limit int) (GetRecentOrdersQuery, error) {
	if windowMinutes == 0 {
		windowMinutes = defaultWindowMinutes
	}
	if limit == 0 {
		limit = defaultRecentLimit
	}

	return GetRecentOrdersQuery{
		windowMinutes: clamp(windowMinutes, minWindowMinutes, maxWindowMinutes),
		limit:         clamp(limit, minRecentLimit, maxRecentLimit),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRecentOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRecentOrdersQueryIsNotConstructed)
}

// WindowMinutes returns the clamped lookback window in minutes.
func (q GetRecentOrdersQuery) WindowMinutes() int { return q.windowMinutes }

// Limit returns the clamped maximum number of rows.
func (q GetRecentOrdersQuery) Limit() int { return q.limit }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// RecentOrderRow is the read model of one recently updated order.
type RecentOrderRow struct {
	OrderID      string
	CustomerID   string
	CustomerName string
	Status       string
	OrderType    string
	TotalAmount  float64
	Currency     string
	UpdatedAt    time.Time
	ItemName     *string
	ItemDetail   *string
}

// GetRecentOrdersQueryResponse carries the window rows plus aggregate
// counts. Total is the number of orders updated inside the window, which
// may exceed len(Rows) when the limit truncates the listing. StatusCounts
// always sums to Total.
type GetRecentOrdersQueryResponse struct {
	Rows          []RecentOrderRow
	Total         int
	StatusCounts  map[string]int
	WindowMinutes int
}
