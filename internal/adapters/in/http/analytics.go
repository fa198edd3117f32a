package http

import (
	"net/http"

	"kitchen/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetDashboard handles GET /api/analytics/dashboard - headline numbers for
// the kitchen: roster size, order and customer counts, and revenue from
// finished orders.
func (s *Server) GetDashboard(ctx echo.Context) error {
	query := queries.NewGetDashboardMetricsQuery()

	metrics, err := s.getDashboardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DashboardResponse{
		Chefs:          metrics.TotalChefs,
		TotalOrders:    metrics.TotalOrders,
		TotalCustomers: metrics.TotalCustomers,
		TotalRevenue:   metrics.TotalRevenue,
	})
}
