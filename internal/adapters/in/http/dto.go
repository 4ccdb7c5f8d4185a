package http

import (
	"time"

	"oms/internal/core/application/usecases/queries"
	"oms/internal/core/domain/model/order"
)

// Envelope is the uniform JSON response wrapper. Success responses carry
// Data; failures carry a machine-readable Code and a human-readable Error.
type Envelope struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func ok(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func fail(code, message string) Envelope {
	return Envelope{Success: false, Code: code, Error: message}
}

// Failure codes surfaced to API clients.
const (
	CodeUnauthorized = "UNAUTHORIZED"
	CodeBadRequest   = "BAD_REQUEST"
	CodeNotFound     = "NOT_FOUND"
	CodeInternal     = "INTERNAL_ERROR"
)

// CreateOrderRequest is the request body for POST /orders.
type CreateOrderRequest struct {
	CustomerID      string  `json:"customerId"`
	CustomerName    string  `json:"customerName"`
	CustomerEmail   string  `json:"customerEmail"`
	CustomerPhone   string  `json:"customerPhone"`
	TotalAmount     float64 `json:"totalAmount"`
	Currency        string  `json:"currency"`
	OrderType       string  `json:"orderType"`
	ItemID          *int    `json:"itemId"`
	PaymentMethod   string  `json:"paymentMethod"`
	ShippingAddress string  `json:"shippingAddress"`
	Notes           string  `json:"notes"`
}

// UpdateOrderStatusRequest is the request body for PUT /orders/:orderId/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

// OrderResponse is the JSON shape of one order.
type OrderResponse struct {
	OrderID         string    `json:"orderId"`
	CustomerID      string    `json:"customerId"`
	CustomerName    string    `json:"customerName"`
	CustomerEmail   string    `json:"customerEmail"`
	CustomerPhone   string    `json:"customerPhone,omitempty"`
	TotalAmount     float64   `json:"totalAmount"`
	Currency        string    `json:"currency"`
	OrderType       string    `json:"orderType"`
	Status          string    `json:"status"`
	ItemID          *int      `json:"itemId,omitempty"`
	ItemName        *string   `json:"itemName,omitempty"`
	ItemDetail      *string   `json:"itemDetail,omitempty"`
	PaymentMethod   string    `json:"paymentMethod,omitempty"`
	ShippingAddress string    `json:"shippingAddress,omitempty"`
	TrackingNumber  string    `json:"trackingNumber,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// RecentOrdersResponse is the JSON shape of the monitoring window summary.
type RecentOrdersResponse struct {
	Orders        []RecentOrderResponse `json:"orders"`
	Total         int                   `json:"total"`
	StatusCounts  map[string]int        `json:"statusCounts"`
	WindowMinutes int                   `json:"windowMinutes"`
}

// RecentOrderResponse is one row of the monitoring window sample.
type RecentOrderResponse struct {
	OrderID      string    `json:"orderId"`
	CustomerID   string    `json:"customerId"`
	CustomerName string    `json:"customerName"`
	Status       string    `json:"status"`
	OrderType    string    `json:"orderType"`
	TotalAmount  float64   `json:"totalAmount"`
	Currency     string    `json:"currency"`
	UpdatedAt    time.Time `json:"updatedAt"`
	ItemName     *string   `json:"itemName,omitempty"`
	ItemDetail   *string   `json:"itemDetail,omitempty"`
}

func orderResponseFromAggregate(o *order.Order) OrderResponse {
	return OrderResponse{
		OrderID:         o.ID().String(),
		CustomerID:      o.Customer().ID(),
		CustomerName:    o.Customer().Name(),
		CustomerEmail:   o.Customer().Email(),
		CustomerPhone:   o.Customer().Phone(),
		TotalAmount:     o.Total().Amount(),
		Currency:        o.Total().Currency(),
		OrderType:       o.Channel().String(),
		Status:          o.Status().String(),
		ItemID:          o.ItemID(),
		PaymentMethod:   o.PaymentMethod(),
		ShippingAddress: o.ShippingAddress(),
		TrackingNumber:  o.TrackingNumber(),
		Notes:           o.Notes(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}

func orderResponseFromRow(row queries.OrderRow) OrderResponse {
	return OrderResponse{
		OrderID:         row.OrderID,
		CustomerID:      row.CustomerID,
		CustomerName:    row.CustomerName,
		CustomerEmail:   row.CustomerEmail,
		CustomerPhone:   row.CustomerPhone,
		TotalAmount:     row.TotalAmount,
		Currency:        row.Currency,
		OrderType:       row.OrderType,
		Status:          row.Status,
		ItemName:        row.ItemName,
		ItemDetail:      row.ItemDetail,
		PaymentMethod:   row.PaymentMethod,
		ShippingAddress: row.ShippingAddress,
		TrackingNumber:  row.TrackingNumber,
		Notes:           row.Notes,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

func recentOrdersResponse(resp queries.GetRecentOrdersQueryResponse) RecentOrdersResponse {
	rows := make([]RecentOrderResponse, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		rows = append(rows, RecentOrderResponse{
			OrderID:      row.OrderID,
			CustomerID:   row.CustomerID,
			CustomerName: row.CustomerName,
			Status:       row.Status,
			OrderType:    row.OrderType,
			TotalAmount:  row.TotalAmount,
			Currency:     row.Currency,
			UpdatedAt:    row.UpdatedAt,
			ItemName:     row.ItemName,
			ItemDetail:   row.ItemDetail,
		})
	}

	return RecentOrdersResponse{
		Orders:        rows,
		Total:         resp.Total,
		StatusCounts:  resp.StatusCounts,
		WindowMinutes: resp.WindowMinutes,
	}
}
