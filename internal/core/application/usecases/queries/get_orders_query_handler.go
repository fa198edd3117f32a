package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves orders with their lines from the database,
// newest first.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query, applying the optional status and type filters.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT` + orderSelectColumns + `
		FROM orders
		WHERE 1 = 1`
	args := make([]any, 0, 2)
	if query.Status() != nil {
		stmt += ` AND status = ?`
		args = append(args, query.Status().String())
	}
	if query.OrderType() != nil {
		stmt += ` AND order_type = ?`
		args = append(args, query.OrderType().String())
	}
	stmt += ` ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, GetOrdersQueryResponse{OrderResponse: resp})
		ids = append(ids, resp.ID.Bytes())
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	lines, err := loadOrderLines(ctx, h.db, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = lines[orders[i].ID]
	}

	return orders, nil
}
