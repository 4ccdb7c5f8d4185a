package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler handles GetOrdersQuery.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for paged order listings.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle returns a page of orders ordered by creation time descending.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT o.order_id, o.customer_id, o.customer_name, o.customer_email, o.customer_phone,
		       o.total_amount, o.currency, o.order_type, o.status,
		       o.payment_method, o.shipping_address, o.tracking_number, o.notes,
		       o.created_at, o.updated_at,
		       i.name AS item_name, i.detail AS item_detail
		FROM orders o
		LEFT JOIN items i ON i.item_id = o.item_id
		ORDER BY o.created_at DESC
		LIMIT ? OFFSET ?`, query.Limit(), query.Offset()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]OrderRow, 0, query.Limit())
	for rows.Next() {
		var row OrderRow
		err = rows.Scan(
			&row.OrderID, &row.CustomerID, &row.CustomerName, &row.CustomerEmail, &row.CustomerPhone,
			&row.TotalAmount, &row.Currency, &row.OrderType, &row.Status,
			&row.PaymentMethod, &row.ShippingAddress, &row.TrackingNumber, &row.Notes,
			&row.CreatedAt, &row.UpdatedAt,
			&row.ItemName, &row.ItemDetail,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
