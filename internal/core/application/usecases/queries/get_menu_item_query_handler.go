package queries

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMenuItemQueryHandler retrieves a single dish from the database.
type GetMenuItemQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuItemQueryHandler creates a handler for single-dish queries.
func NewGetMenuItemQueryHandler(db *gorm.DB) GetMenuItemQueryHandler {
	return GetMenuItemQueryHandler{db: db}
}

// Handle executes the query. A missing dish yields errs.ObjectNotFoundError.
func (h GetMenuItemQueryHandler) Handle(ctx context.Context, query GetMenuItemQuery) (GetMenuItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMenuItemsQueryResponse{}, err
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
		WHERE id = ?
	`, query.MenuItemID().Bytes()).Rows()
	if err != nil {
		return GetMenuItemsQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetMenuItemsQueryResponse{}, err
		}
		return GetMenuItemsQueryResponse{}, errs.NewObjectNotFoundError("menuItemID", query.MenuItemID())
	}

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
		return GetMenuItemsQueryResponse{}, err
	}

	itemID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetMenuItemsQueryResponse{}, err
	}
	resp.ID = itemID

	return resp, nil
}
