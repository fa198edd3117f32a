package http

import (
	"net/http"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/menu"

	"github.com/labstack/echo/v4"
)

// GetMenuItems handles GET /api/menu - lists the menu grouped by category.
func (s *Server) GetMenuItems(ctx echo.Context) error {
	query := queries.NewGetMenuItemsQuery()

	items, err := s.getMenuItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]MenuItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, menuItemResponseFromReadModel(item))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMenuItem handles GET /api/menu/:id - retrieves a single dish.
func (s *Server) GetMenuItem(ctx echo.Context) error {
	menuItemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid menu item id")
	}

	query, err := queries.NewGetMenuItemQuery(menuItemID)
	if err != nil {
		return writeError(ctx, err)
	}

	found, err := s.getMenuItemHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, menuItemResponseFromReadModel(found))
}

// CreateMenuItem handles POST /api/menu - adds a dish to the menu.
func (s *Server) CreateMenuItem(ctx echo.Context) error {
	var request MenuItemRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateMenuItemCommand(
		request.Name,
		request.Description,
		request.Price,
		request.PreparationTime,
		request.Category,
		request.Stock,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createMenuItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, menuItemResponseFromDomain(created))
}

// UpdateMenuItem handles PUT /api/menu/:id - updates a dish's attributes.
// Stock is left alone; it moves only through order creation and deletion.
func (s *Server) UpdateMenuItem(ctx echo.Context) error {
	menuItemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid menu item id")
	}

	var request MenuItemRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateMenuItemCommand(
		menuItemID,
		request.Name,
		request.Description,
		request.Price,
		request.PreparationTime,
		request.Category,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateMenuItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, menuItemResponseFromDomain(updated))
}

// RemoveMenuItem handles DELETE /api/menu/:id - takes a dish off the menu.
func (s *Server) RemoveMenuItem(ctx echo.Context) error {
	menuItemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid menu item id")
	}

	cmd, err := commands.NewRemoveMenuItemCommand(menuItemID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.removeMenuItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func menuItemResponseFromReadModel(item queries.GetMenuItemsQueryResponse) MenuItemResponse {
	return MenuItemResponse{
		ID:              item.ID.String(),
		Name:            item.Name,
		Description:     item.Description,
		Price:           item.Price,
		PreparationTime: item.PreparationTime,
		Category:        item.Category,
		Stock:           item.Stock,
	}
}

func menuItemResponseFromDomain(aggregate *menu.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:              aggregate.ID().String(),
		Name:            aggregate.Name(),
		Description:     aggregate.Description(),
		Price:           aggregate.Price(),
		PreparationTime: aggregate.PreparationTime(),
		Category:        aggregate.Category(),
		Stock:           aggregate.Stock(),
	}
}
