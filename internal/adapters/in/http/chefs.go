package http

import (
	"net/http"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetChefs handles GET /api/chefs - lists the chef roster.
func (s *Server) GetChefs(ctx echo.Context) error {
	query := queries.NewGetAllChefsQuery()

	chefs, err := s.getAllChefsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ChefResponse, 0, len(chefs))
	for _, c := range chefs {
		response = append(response, ChefResponse{
			ID:           c.ID.String(),
			Name:         c.Name,
			ActiveOrders: c.ActiveOrders,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetChef handles GET /api/chefs/:id - retrieves a chef with the orders
// they currently hold.
func (s *Server) GetChef(ctx echo.Context) error {
	chefID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid chef id")
	}

	query, err := queries.NewGetChefQuery(chefID)
	if err != nil {
		return writeError(ctx, err)
	}

	found, err := s.getChefHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	assigned := make([]string, 0, len(found.AssignedOrders))
	for _, orderID := range found.AssignedOrders {
		assigned = append(assigned, orderID.String())
	}

	return ctx.JSON(http.StatusOK, ChefResponse{
		ID:             found.ID.String(),
		Name:           found.Name,
		ActiveOrders:   found.ActiveOrders,
		AssignedOrders: assigned,
	})
}

// CreateChef handles POST /api/chefs - adds a chef to the roster.
func (s *Server) CreateChef(ctx echo.Context) error {
	var request CreateChefRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateChefCommand(request.Name)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createChefHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ChefResponse{
		ID:           created.ID().String(),
		Name:         created.Name(),
		ActiveOrders: created.ActiveOrders(),
	})
}

// AssignChef handles POST /api/chefs/assign-order - reassigns an order to
// a specific chef.
func (s *Server) AssignChef(ctx echo.Context) error {
	var request AssignChefRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(request.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	chefID, err := kernel.UUIDFromString(request.ChefID)
	if err != nil {
		return badRequest(ctx, "Invalid chef id")
	}

	cmd, err := commands.NewAssignChefCommand(orderID, chefID)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.assignChefHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromDomain(updated))
}

// RemoveChef handles DELETE /api/chefs/:id - removes a chef, redistributing
// their active orders across the remaining roster.
func (s *Server) RemoveChef(ctx echo.Context) error {
	chefID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid chef id")
	}

	cmd, err := commands.NewRemoveChefCommand(chefID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.removeChefHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
