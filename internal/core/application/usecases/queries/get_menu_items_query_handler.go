package queries

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMenuItemsQueryHandler retrieves the menu from the database.
type GetMenuItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuItemsQueryHandler creates a handler for menu queries.
func NewGetMenuItemsQueryHandler(db *gorm.DB) GetMenuItemsQueryHandler {
	return GetMenuItemsQueryHandler{db: db}
}

// Handle executes the query grouped by category, then name.
func (h GetMenuItemsQueryHandler) Handle(ctx context.Context, query GetMenuItemsQuery) ([]GetMenuItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price,
			preparation_time,
			category,
			stock
		FROM menu_items
		ORDER BY category, name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]GetMenuItemsQueryResponse, 0)
	for rows.Next() {
		var resp GetMenuItemsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Description,
			&resp.Price,
			&resp.PreparationTime,
			&resp.Category,
			&resp.Stock,
		)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = itemID
		items = append(items, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
