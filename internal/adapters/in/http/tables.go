package http

import (
	"net/http"
	"strconv"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/table"

	"github.com/labstack/echo/v4"
)

// GetTables handles GET /api/tables - lists every table with its
// reservation state.
func (s *Server) GetTables(ctx echo.Context) error {
	query := queries.NewGetTablesQuery()

	tables, err := s.getTablesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, tableResponses(tables))
}

// GetAvailableTables handles GET /api/tables/available/:capacity - lists
// unreserved tables seating at least the given party.
func (s *Server) GetAvailableTables(ctx echo.Context) error {
	capacity, err := strconv.Atoi(ctx.Param("capacity"))
	if err != nil {
		return badRequest(ctx, "Invalid capacity")
	}

	query, err := queries.NewGetAvailableTablesQuery(capacity)
	if err != nil {
		return writeError(ctx, err)
	}

	tables, err := s.getTablesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, tableResponses(tables))
}

// CreateTable handles POST /api/tables - adds a table, numbered after the
// current highest.
func (s *Server) CreateTable(ctx echo.Context) error {
	var request CreateTableRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateTableCommand(request.Capacity, request.Name)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createTableHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, tableResponseFromDomain(created))
}

// RemoveTable handles DELETE /api/tables/:number - removes an unreserved
// table and closes the numbering gap.
func (s *Server) RemoveTable(ctx echo.Context) error {
	number, err := strconv.Atoi(ctx.Param("number"))
	if err != nil {
		return badRequest(ctx, "Invalid table number")
	}

	cmd, err := commands.NewRemoveTableCommand(number)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.removeTableHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReserveTable handles PUT /api/tables/:number/reserve - reserves a table
// for a party.
func (s *Server) ReserveTable(ctx echo.Context) error {
	number, err := strconv.Atoi(ctx.Param("number"))
	if err != nil {
		return badRequest(ctx, "Invalid table number")
	}

	var request ReserveTableRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewReserveTableCommand(number, table.Party{
		CustomerName: request.CustomerName,
		PhoneNumber:  request.PhoneNumber,
		PartySize:    request.PartySize,
	})
	if err != nil {
		return writeError(ctx, err)
	}

	reserved, err := s.reserveTableHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, tableResponseFromDomain(reserved))
}

// ReleaseTable handles PUT /api/tables/:number/unreserve - frees a table.
func (s *Server) ReleaseTable(ctx echo.Context) error {
	number, err := strconv.Atoi(ctx.Param("number"))
	if err != nil {
		return badRequest(ctx, "Invalid table number")
	}

	cmd, err := commands.NewReleaseTableCommand(number)
	if err != nil {
		return writeError(ctx, err)
	}

	released, err := s.releaseTableHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, tableResponseFromDomain(released))
}

func tableResponses(tables []queries.GetTablesQueryResponse) []TableResponse {
	response := make([]TableResponse, 0, len(tables))
	for _, t := range tables {
		response = append(response, TableResponse{
			Number:       t.Number,
			Capacity:     t.Capacity,
			Name:         t.Name,
			IsReserved:   t.IsReserved,
			CustomerName: t.CustomerName,
			PhoneNumber:  t.PhoneNumber,
			PartySize:    t.PartySize,
		})
	}
	return response
}

func tableResponseFromDomain(aggregate *table.Table) TableResponse {
	response := TableResponse{
		Number:     aggregate.Number(),
		Capacity:   aggregate.Capacity(),
		Name:       aggregate.Name(),
		IsReserved: aggregate.IsReserved(),
	}

	if party := aggregate.ReservedBy(); party != nil {
		response.CustomerName = party.CustomerName
		response.PhoneNumber = party.PhoneNumber
		response.PartySize = party.PartySize
	}

	return response
}
