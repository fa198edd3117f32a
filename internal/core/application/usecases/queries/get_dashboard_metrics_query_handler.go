package queries

import (
	"context"

	"kitchen/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetDashboardMetricsQueryHandler aggregates the dashboard figures in a
// single round trip.
type GetDashboardMetricsQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardMetricsQueryHandler creates a handler for the dashboard
// query.
func NewGetDashboardMetricsQueryHandler(db *gorm.DB) GetDashboardMetricsQueryHandler {
	return GetDashboardMetricsQueryHandler{db: db}
}

// Handle executes the aggregation.
func (h GetDashboardMetricsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardMetricsQuery,
) (GetDashboardMetricsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardMetricsQueryResponse{}, err
	}

	var resp GetDashboardMetricsQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM chefs),
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(DISTINCT customer_phone) FROM orders),
			(SELECT COALESCE(SUM(total_price), 0) FROM orders WHERE status IN (?, ?))
	`, order.Done.String(), order.Served.String()).Row()

	err := row.Scan(
		&resp.TotalChefs,
		&resp.TotalOrders,
		&resp.TotalCustomers,
		&resp.TotalRevenue,
	)
	if err != nil {
		return GetDashboardMetricsQueryResponse{}, err
	}

	return resp, nil
}
