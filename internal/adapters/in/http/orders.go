package http

import (
	"net/http"
	"time"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderType, err := order.ParseType(request.OrderType)
	if err != nil {
		return writeError(ctx, err)
	}

	lines := make([]commands.OrderLine, 0, len(request.Items))
	for _, item := range request.Items {
		menuItemID, idErr := kernel.UUIDFromString(item.MenuItemID)
		if idErr != nil {
			return badRequest(ctx, "Invalid menu item id: "+item.MenuItemID)
		}

		line, lineErr := commands.NewOrderLine(menuItemID, item.Quantity)
		if lineErr != nil {
			return writeError(ctx, lineErr)
		}
		lines = append(lines, line)
	}

	customer, err := order.NewCustomerInfo(
		request.CustomerInfo.Name,
		request.CustomerInfo.PhoneNumber,
		request.CustomerInfo.Address,
		request.CustomerInfo.PartySize,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		lines,
		orderType,
		customer,
		request.TableNumber,
		request.CookingInstructions,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseFromDomain(created))
}

// GetOrders handles GET /api/orders - lists orders, optionally filtered by
// the status and type query parameters.
func (s *Server) GetOrders(ctx echo.Context) error {
	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.ParseStatus(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		statusFilter = &status
	}

	var typeFilter *order.Type
	if raw := ctx.QueryParam("type"); raw != "" {
		orderType, err := order.ParseType(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		typeFilter = &orderType
	}

	query, err := queries.NewGetOrdersQuery(statusFilter, typeFilter)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderResponseFromReadModel(o.OrderResponse, o.Items))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/orders/:id - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromReadModel(found.OrderResponse, found.Items))
}

// GetProcessingOrders handles GET /api/orders/processing - the live view of
// orders currently being cooked, with elapsed and remaining minutes.
func (s *Server) GetProcessingOrders(ctx echo.Context) error {
	query, err := queries.NewGetProcessingOrdersQuery(time.Now(), s.overdueThresholdMinutes)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getProcessingOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ProcessingOrderResponse, 0, len(orders))
	for _, o := range orders {
		var chefID *string
		if o.ChefID != nil {
			id := o.ChefID.String()
			chefID = &id
		}

		response = append(response, ProcessingOrderResponse{
			ID:                   o.ID.String(),
			Reference:            o.Reference,
			ChefID:               chefID,
			TotalPreparationTime: o.TotalPreparationTime,
			ElapsedMinutes:       o.ElapsedMinutes,
			RemainingMinutes:     o.RemainingMinutes,
			IsOverdue:            o.IsOverdue,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// ChangeOrderStatus handles PUT /api/orders/:id/status - moves an order
// along its lifecycle.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request ChangeOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.ParseStatus(request.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromDomain(updated))
}

// DeleteOrder handles DELETE /api/orders/:id - cancels an order, winds back
// its stock, table and chef allocations, and returns the deleted order so
// the caller can see what was reversed.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	deleted, err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromDomain(deleted))
}
