package queries

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllChefsQueryHandler retrieves the chef roster from the database.
type GetAllChefsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllChefsQueryHandler creates a handler for roster queries.
func NewGetAllChefsQueryHandler(db *gorm.DB) GetAllChefsQueryHandler {
	return GetAllChefsQueryHandler{db: db}
}

// Handle executes the query, sorted by name for stable output.
func (h GetAllChefsQueryHandler) Handle(ctx context.Context, query GetAllChefsQuery) ([]GetAllChefsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			active_orders
		FROM chefs
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	chefs := make([]GetAllChefsQueryResponse, 0)
	for rows.Next() {
		var resp GetAllChefsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.ActiveOrders,
		)
		if err != nil {
			return nil, err
		}

		chefID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = chefID
		chefs = append(chefs, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return chefs, nil
}
