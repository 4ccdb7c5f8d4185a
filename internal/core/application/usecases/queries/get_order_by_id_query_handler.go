package queries

import (
	"context"

	"gorm.io/gorm"

	"oms/internal/pkg/errs"
)

// GetOrderByIDQueryHandler handles GetOrderByIDQuery.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single order lookups.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle returns the order with the given identifier or an
// ObjectNotFoundError when no such order exists.
func (h GetOrderByIDQueryHandler) Handle(ctx context.Context, query GetOrderByIDQuery) (OrderRow, error) {
	if err := query.Validate(); err != nil {
		return OrderRow{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT o.order_id, o.customer_id, o.customer_name, o.customer_email, o.customer_phone,
		       o.total_amount, o.currency, o.order_type, o.status,
		       o.payment_method, o.shipping_address, o.tracking_number, o.notes,
		       o.created_at, o.updated_at,
		       i.name AS item_name, i.detail AS item_detail
		FROM orders o
		LEFT JOIN items i ON i.item_id = o.item_id
		WHERE o.order_id = ?`, query.OrderID().String()).Rows()
	if err != nil {
		return OrderRow{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderRow{}, err
		}

		return OrderRow{}, errs.NewObjectNotFoundError("orderID", query.OrderID().String())
	}

	var row OrderRow
	err = rows.Scan(
		&row.OrderID, &row.CustomerID, &row.CustomerName, &row.CustomerEmail, &row.CustomerPhone,
		&row.TotalAmount, &row.Currency, &row.OrderType, &row.Status,
		&row.PaymentMethod, &row.ShippingAddress, &row.TrackingNumber, &row.Notes,
		&row.CreatedAt, &row.UpdatedAt,
		&row.ItemName, &row.ItemDetail,
	)
	if err != nil {
		return OrderRow{}, err
	}

	return row, nil
}
