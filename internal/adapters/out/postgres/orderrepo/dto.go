// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status and order type are stored as their wire names rather than numeric
// values so the rows stay readable in ad-hoc SQL and in the monitoring views.
type OrderDTO struct {
	OrderID         string `gorm:"primaryKey;size:64"`
	CustomerID      string `gorm:"size:64;index"`
	CustomerName    string `gorm:"size:255"`
	CustomerEmail   string `gorm:"size:255"`
	CustomerPhone   string `gorm:"size:32"`
	TotalAmount     float64
	Currency        string `gorm:"size:3"`
	OrderType       string `gorm:"size:32"`
	Status          string `gorm:"size:32;index"`
	ItemID          *int   `gorm:"index"`
	PaymentMethod   string `gorm:"size:64"`
	ShippingAddress string `gorm:"size:512"`
	TrackingNumber  string `gorm:"size:64"`
	Notes           string `gorm:"size:1024"`
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time `gorm:"index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	customer := aggregate.Customer()

	return OrderDTO{
		OrderID:         aggregate.ID().String(),
		CustomerID:      customer.ID(),
		CustomerName:    customer.Name(),
		CustomerEmail:   customer.Email(),
		CustomerPhone:   customer.Phone(),
		TotalAmount:     aggregate.Total().Amount(),
		Currency:        aggregate.Total().Currency(),
		OrderType:       aggregate.Channel().String(),
		Status:          aggregate.Status().String(),
		ItemID:          aggregate.ItemID(),
		PaymentMethod:   aggregate.PaymentMethod(),
		ShippingAddress: aggregate.ShippingAddress(),
		TrackingNumber:  aggregate.TrackingNumber(),
		Notes:           aggregate.Notes(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder so all invariants
// are re-checked on the way out of storage.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(dto.OrderID)
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(dto.CustomerID, dto.CustomerName, dto.CustomerEmail, dto.CustomerPhone)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.TotalAmount, dto.Currency)
	if err != nil {
		return nil, err
	}

	channel, err := order.ChannelFromName(dto.OrderType)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromName(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customer,
		total,
		channel,
		status,
		dto.ItemID,
		dto.PaymentMethod,
		dto.ShippingAddress,
		dto.TrackingNumber,
		dto.Notes,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
