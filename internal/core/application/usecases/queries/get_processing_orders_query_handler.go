package queries

import (
	"context"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProcessingOrdersQueryHandler computes the live timing view of the
// kitchen. Orders restored without a recorded start time are omitted: their
// elapsed time is unknowable.
type GetProcessingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetProcessingOrdersQueryHandler creates a handler for the processing
// view.
func NewGetProcessingOrdersQueryHandler(db *gorm.DB) GetProcessingOrdersQueryHandler {
	return GetProcessingOrdersQueryHandler{db: db}
}

// Handle executes the query, oldest cooking order first.
func (h GetProcessingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetProcessingOrdersQuery,
) ([]GetProcessingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			reference,
			chef_id,
			total_preparation_time,
			processing_started_at
		FROM orders
		WHERE status = ? AND processing_started_at IS NOT NULL
		ORDER BY processing_started_at
	`, order.Processing.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]GetProcessingOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetProcessingOrdersQueryResponse
		var id uuid.UUID
		var chefID *uuid.UUID
		var startedAt time.Time

		err = rows.Scan(
			&id,
			&resp.Reference,
			&chefID,
			&resp.TotalPreparationTime,
			&startedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		if chefID != nil {
			cid, idErr := kernel.UUIDFromBytes(chefID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.ChefID = &cid
		}

		resp.ElapsedMinutes = int(query.Now().Sub(startedAt).Minutes())
		resp.RemainingMinutes = resp.TotalPreparationTime - resp.ElapsedMinutes
		if resp.RemainingMinutes < 0 {
			resp.RemainingMinutes = 0
		}
		resp.IsOverdue = resp.ElapsedMinutes >= query.OverdueThreshold()

		result = append(result, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
