package queries

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetChefQueryHandler retrieves a single chef and the orders they hold.
type GetChefQueryHandler struct {
	db *gorm.DB
}

// NewGetChefQueryHandler creates a handler for single-chef queries.
func NewGetChefQueryHandler(db *gorm.DB) GetChefQueryHandler {
	return GetChefQueryHandler{db: db}
}

// Handle executes the query. A missing chef yields errs.ObjectNotFoundError.
func (h GetChefQueryHandler) Handle(ctx context.Context, query GetChefQuery) (GetChefQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetChefQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			active_orders
		FROM chefs
		WHERE id = ?
	`, query.ChefID().Bytes()).Rows()
	if err != nil {
		return GetChefQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetChefQueryResponse{}, err
		}
		return GetChefQueryResponse{}, errs.NewObjectNotFoundError("chefID", query.ChefID())
	}

	var resp GetChefQueryResponse
	var id uuid.UUID

	err = rows.Scan(
		&id,
		&resp.Name,
		&resp.ActiveOrders,
	)
	if err != nil {
		return GetChefQueryResponse{}, err
	}

	chefID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetChefQueryResponse{}, err
	}
	resp.ID = chefID

	orderRows, err := h.db.WithContext(ctx).Raw(`
		SELECT order_id
		FROM chef_orders
		WHERE chef_id = ?
		ORDER BY order_id
	`, query.ChefID().Bytes()).Rows()
	if err != nil {
		return GetChefQueryResponse{}, err
	}
	defer orderRows.Close()

	resp.AssignedOrders = make([]kernel.UUID, 0)
	for orderRows.Next() {
		var orderID uuid.UUID
		if err = orderRows.Scan(&orderID); err != nil {
			return GetChefQueryResponse{}, err
		}

		oid, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return GetChefQueryResponse{}, idErr
		}
		resp.AssignedOrders = append(resp.AssignedOrders, oid)
	}

	if err = orderRows.Err(); err != nil {
		return GetChefQueryResponse{}, err
	}

	return resp, nil
}
