package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetRecentOrdersQueryHandler handles GetRecentOrdersQuery.
type GetRecentOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetRecentOrdersQueryHandler creates a handler for the monitoring window query.
func NewGetRecentOrdersQueryHandler(db *gorm.DB) GetRecentOrdersQueryHandler {
	return GetRecentOrdersQueryHandler{db: db}
}

// Handle returns orders updated within the query window, newest first,
// along with per-status counts over the whole window.
func (h GetRecentOrdersQueryHandler) Handle(
	ctx context.Context, query GetRecentOrdersQuery,
) (GetRecentOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRecentOrdersQueryResponse{}, err
	}

	response := GetRecentOrdersQueryResponse{
		StatusCounts:  make(map[string]int),
		WindowMinutes: query.WindowMinutes(),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT o.order_id, o.customer_id, o.customer_name, o.status, o.order_type,
		       o.total_amount, o.currency, o.updated_at,
		       i.name AS item_name, i.detail AS item_detail
		FROM orders o
		LEFT JOIN items i ON i.item_id = o.item_id
		WHERE o.updated_at >= NOW() - ? * INTERVAL '1 minute'
		ORDER BY o.updated_at DESC
		LIMIT ?`, query.WindowMinutes(), query.Limit()).Rows()
	if err != nil {
		return GetRecentOrdersQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var row RecentOrderRow
		err = rows.Scan(
			&row.OrderID, &row.CustomerID, &row.CustomerName, &row.Status, &row.OrderType,
			&row.TotalAmount, &row.Currency, &row.UpdatedAt,
			&row.ItemName, &row.ItemDetail,
		)
		if err != nil {
			return GetRecentOrdersQueryResponse{}, err
		}
		response.Rows = append(response.Rows, row)
	}
	if err = rows.Err(); err != nil {
		return GetRecentOrdersQueryResponse{}, err
	}

	countRows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) AS cnt
		FROM orders
		WHERE updated_at >= NOW() - ? * INTERVAL '1 minute'
		GROUP BY status`, query.WindowMinutes()).Rows()
	if err != nil {
		return GetRecentOrdersQueryResponse{}, err
	}
	defer countRows.Close()

	for countRows.Next() {
		var status string
		var cnt int
		if err = countRows.Scan(&status, &cnt); err != nil {
			return GetRecentOrdersQueryResponse{}, err
		}
		response.StatusCounts[status] = cnt
		response.Total += cnt
	}
	if err = countRows.Err(); err != nil {
		return GetRecentOrdersQueryResponse{}, err
	}

	return response, nil
}
