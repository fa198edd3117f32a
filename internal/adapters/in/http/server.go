// Package http is the inbound REST adapter: it binds requests to commands
// and queries and maps their errors to HTTP statuses.
package http

import (
	"net/http"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler
	assignChefHandler        commands.AssignChefCommandHandler
	createChefHandler        commands.CreateChefCommandHandler
	removeChefHandler        commands.RemoveChefCommandHandler
	createTableHandler       commands.CreateTableCommandHandler
	removeTableHandler       commands.RemoveTableCommandHandler
	reserveTableHandler      commands.ReserveTableCommandHandler
	releaseTableHandler      commands.ReleaseTableCommandHandler
	createMenuItemHandler    commands.CreateMenuItemCommandHandler
	updateMenuItemHandler    commands.UpdateMenuItemCommandHandler
	removeMenuItemHandler    commands.RemoveMenuItemCommandHandler

	// Query handlers
	getOrdersHandler           queries.GetOrdersQueryHandler
	getOrderHandler            queries.GetOrderQueryHandler
	getProcessingOrdersHandler queries.GetProcessingOrdersQueryHandler
	getAllChefsHandler         queries.GetAllChefsQueryHandler
	getChefHandler             queries.GetChefQueryHandler
	getTablesHandler           queries.GetTablesQueryHandler
	getMenuItemsHandler        queries.GetMenuItemsQueryHandler
	getMenuItemHandler         queries.GetMenuItemQueryHandler
	getDashboardHandler        queries.GetDashboardMetricsQueryHandler

	overdueThresholdMinutes int
}

// Handlers groups everything the server exposes, so NewServer stays
// readable at the call site.
type Handlers struct {
	CreateOrder       commands.CreateOrderCommandHandler
	ChangeOrderStatus commands.ChangeOrderStatusCommandHandler
	DeleteOrder       commands.DeleteOrderCommandHandler
	AssignChef        commands.AssignChefCommandHandler
	CreateChef        commands.CreateChefCommandHandler
	RemoveChef        commands.RemoveChefCommandHandler
	CreateTable       commands.CreateTableCommandHandler
	RemoveTable       commands.RemoveTableCommandHandler
	ReserveTable      commands.ReserveTableCommandHandler
	ReleaseTable      commands.ReleaseTableCommandHandler
	CreateMenuItem    commands.CreateMenuItemCommandHandler
	UpdateMenuItem    commands.UpdateMenuItemCommandHandler
	RemoveMenuItem    commands.RemoveMenuItemCommandHandler

	GetOrders           queries.GetOrdersQueryHandler
	GetOrder            queries.GetOrderQueryHandler
	GetProcessingOrders queries.GetProcessingOrdersQueryHandler
	GetAllChefs         queries.GetAllChefsQueryHandler
	GetChef             queries.GetChefQueryHandler
	GetTables           queries.GetTablesQueryHandler
	GetMenuItems        queries.GetMenuItemsQueryHandler
	GetMenuItem         queries.GetMenuItemQueryHandler
	GetDashboard        queries.GetDashboardMetricsQueryHandler
}

// NewServer creates an HTTP server over the given use case handlers.
func NewServer(handlers Handlers, overdueThresholdMinutes int) *Server {
	return &Server{
		createOrderHandler:       handlers.CreateOrder,
		changeOrderStatusHandler: handlers.ChangeOrderStatus,
		deleteOrderHandler:       handlers.DeleteOrder,
		assignChefHandler:        handlers.AssignChef,
		createChefHandler:        handlers.CreateChef,
		removeChefHandler:        handlers.RemoveChef,
		createTableHandler:       handlers.CreateTable,
		removeTableHandler:       handlers.RemoveTable,
		reserveTableHandler:      handlers.ReserveTable,
		releaseTableHandler:      handlers.ReleaseTable,
		createMenuItemHandler:    handlers.CreateMenuItem,
		updateMenuItemHandler:    handlers.UpdateMenuItem,
		removeMenuItemHandler:    handlers.RemoveMenuItem,

		getOrdersHandler:           handlers.GetOrders,
		getOrderHandler:            handlers.GetOrder,
		getProcessingOrdersHandler: handlers.GetProcessingOrders,
		getAllChefsHandler:         handlers.GetAllChefs,
		getChefHandler:             handlers.GetChef,
		getTablesHandler:           handlers.GetTables,
		getMenuItemsHandler:        handlers.GetMenuItems,
		getMenuItemHandler:         handlers.GetMenuItem,
		getDashboardHandler:        handlers.GetDashboard,

		overdueThresholdMinutes: overdueThresholdMinutes,
	}
}

// RegisterRoutes wires every endpoint onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/processing", s.GetProcessingOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.PUT("/orders/:id/status", s.ChangeOrderStatus)

	api.GET("/chefs", s.GetChefs)
	api.POST("/chefs", s.CreateChef)
	api.POST("/chefs/assign-order", s.AssignChef)
	api.GET("/chefs/:id", s.GetChef)
	api.DELETE("/chefs/:id", s.RemoveChef)

	api.GET("/tables", s.GetTables)
	api.POST("/tables", s.CreateTable)
	api.GET("/tables/available/:capacity", s.GetAvailableTables)
	api.DELETE("/tables/:number", s.RemoveTable)
	api.PUT("/tables/:number/reserve", s.ReserveTable)
	api.PUT("/tables/:number/unreserve", s.ReleaseTable)

	api.GET("/menu", s.GetMenuItems)
	api.POST("/menu", s.CreateMenuItem)
	api.GET("/menu/:id", s.GetMenuItem)
	api.PUT("/menu/:id", s.UpdateMenuItem)
	api.DELETE("/menu/:id", s.RemoveMenuItem)

	api.GET("/analytics/dashboard", s.GetDashboard)
}
