package queries

import (
	"errors"

	"kitchen/internal/pkg/guard"
)

var ErrGetDashboardMetricsQueryIsNotConstructed = errors.New(
	"GetDashboardMetricsQuery must be created via NewGetDashboardMetricsQuery constructor",
)

// GetDashboardMetricsQuery retrieves the headline restaurant figures.
type GetDashboardMetricsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardMetricsQuery creates a parameterless dashboard query.
func NewGetDashboardMetricsQuery() GetDashboardMetricsQuery {
	return GetDashboardMetricsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardMetricsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardMetricsQueryIsNotConstructed)
}

// GetDashboardMetricsQueryResponse carries the dashboard figures. Revenue
// counts only orders whose cooking finished (done or served); distinct
// customers are counted by phone number.
type GetDashboardMetricsQueryResponse struct {
	TotalChefs     int
	TotalOrders    int
	TotalCustomers int
	TotalRevenue   float64
}
