// Package queries contains the read side: handlers that bypass the
// aggregates and read directly from the database with raw SQL, returning
// flat read models shaped for the HTTP layer.
package queries

import (
	"context"
	"database/sql"
	"time"

	"kitchen/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderLineResponse is one line of an order read model.
type OrderLineResponse struct {
	MenuItemID      kernel.UUID
	Name            string
	UnitPrice       float64
	PreparationTime int
	Quantity        int
	Subtotal        float64
}

// OrderResponse is the full order read model shared by the list and
// single-order queries.
type OrderResponse struct {
	ID                   kernel.UUID
	Reference            string
	OrderType            string
	Status               string
	TotalPrice           float64
	TotalPreparationTime int
	TableNumber          *int
	CustomerName         string
	PhoneNumber          string
	Address              string
	PartySize            int
	CookingInstructions  string
	ChefID               *kernel.UUID
	ProcessingStartedAt  *time.Time
	CreatedAt            time.Time
}

const orderSelectColumns = `
	id,
	reference,
	order_type,
	status,
	total_price,
	total_preparation_time,
	table_number,
	customer_name,
	customer_phone,
	customer_address,
	party_size,
	cooking_instructions,
	chef_id,
	processing_started_at,
	created_at`

// scanOrderRow reads one row produced by orderSelectColumns.
func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var resp OrderResponse
	var id uuid.UUID
	var chefID *uuid.UUID

	err := rows.Scan(
		&id,
		&resp.Reference,
		&resp.OrderType,
		&resp.Status,
		&resp.TotalPrice,
		&resp.TotalPreparationTime,
		&resp.TableNumber,
		&resp.CustomerName,
		&resp.PhoneNumber,
		&resp.Address,
		&resp.PartySize,
		&resp.CookingInstructions,
		&chefID,
		&resp.ProcessingStartedAt,
		&resp.CreatedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.ID = orderID

	if chefID != nil {
		cid, err := kernel.UUIDFromBytes(chefID[:])
		if err != nil {
			return OrderResponse{}, err
		}
		resp.ChefID = &cid
	}

	return resp, nil
}

// loadOrderLines fetches the line items for a set of orders, keyed by the
// order's identifier.
func loadOrderLines(ctx context.Context, db *gorm.DB, orderIDs []uuid.UUID) (map[kernel.UUID][]OrderLineResponse, error) {
	lines := make(map[kernel.UUID][]OrderLineResponse)
	if len(orderIDs) == 0 {
		return lines, nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			menu_item_id,
			name,
			unit_price,
			preparation_time,
			quantity
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, name
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID, menuItemID uuid.UUID
		var line OrderLineResponse

		err = rows.Scan(
			&orderID,
			&menuItemID,
			&line.Name,
			&line.UnitPrice,
			&line.PreparationTime,
			&line.Quantity,
		)
		if err != nil {
			return nil, err
		}

		oid, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		mid, idErr := kernel.UUIDFromBytes(menuItemID[:])
		if idErr != nil {
			return nil, idErr
		}

		line.MenuItemID = mid
		line.Subtotal = line.UnitPrice * float64(line.Quantity)
		lines[oid] = append(lines[oid], line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
