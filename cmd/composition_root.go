package cmd

import (
	"log/slog"

	"kitchen/internal/adapters/out/postgres"
	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/services"
	"kitchen/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	dispatcher services.ChefDispatcher
	notifier   ports.Notifier
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, notifier ports.Notifier, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		dispatcher: services.NewChefDispatcher(),
		notifier:   notifier,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uowAdapter(), c.dispatcher, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.uowAdapter())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.uowAdapter())
}

func (c *CompositionRoot) CreateAssignChefCommandHandler() commands.AssignChefCommandHandler {
	return commands.NewAssignChefCommandHandler(c.uowAdapter())
}

func (c *CompositionRoot) CreateCompleteDueOrdersCommandHandler() commands.CompleteDueOrdersCommandHandler {
	return commands.NewCompleteDueOrdersCommandHandler(c.uowAdapter(), c.logger)
}

func (c *CompositionRoot) CreateNotifyOverdueOrdersCommandHandler() commands.NotifyOverdueOrdersCommandHandler {
	return commands.NewNotifyOverdueOrdersCommandHandler(c.uowAdapter(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCreateChefCommandHandler() commands.CreateChefCommandHandler {
	var f commands.ChefUoWFactory = FuncChefUoWFactory(func() commands.ChefUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateChefCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveChefCommandHandler() commands.RemoveChefCommandHandler {
	return commands.NewRemoveChefCommandHandler(c.uowAdapter(), c.dispatcher)
}

func (c *CompositionRoot) CreateCreateTableCommandHandler() commands.CreateTableCommandHandler {
	return commands.NewCreateTableCommandHandler(c.tableUoWAdapter())
}

func (c *CompositionRoot) CreateRemoveTableCommandHandler() commands.RemoveTableCommandHandler {
	return commands.NewRemoveTableCommandHandler(c.tableUoWAdapter())
}

func (c *CompositionRoot) CreateReserveTableCommandHandler() commands.ReserveTableCommandHandler {
	return commands.NewReserveTableCommandHandler(c.tableUoWAdapter())
}

func (c *CompositionRoot) CreateReleaseTableCommandHandler() commands.ReleaseTableCommandHandler {
	return commands.NewReleaseTableCommandHandler(c.tableUoWAdapter())
}

func (c *CompositionRoot) CreateCreateMenuItemCommandHandler() commands.CreateMenuItemCommandHandler {
	return commands.NewCreateMenuItemCommandHandler(c.menuUoWAdapter())
}

func (c *CompositionRoot) CreateUpdateMenuItemCommandHandler() commands.UpdateMenuItemCommandHandler {
	return commands.NewUpdateMenuItemCommandHandler(c.menuUoWAdapter())
}

func (c *CompositionRoot) CreateRemoveMenuItemCommandHandler() commands.RemoveMenuItemCommandHandler {
	return commands.NewRemoveMenuItemCommandHandler(c.menuUoWAdapter())
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProcessingOrdersQueryHandler() queries.GetProcessingOrdersQueryHandler {
	return queries.NewGetProcessingOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllChefsQueryHandler() queries.GetAllChefsQueryHandler {
	return queries.NewGetAllChefsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetChefQueryHandler() queries.GetChefQueryHandler {
	return queries.NewGetChefQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTablesQueryHandler() queries.GetTablesQueryHandler {
	return queries.NewGetTablesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenuItemsQueryHandler() queries.GetMenuItemsQueryHandler {
	return queries.NewGetMenuItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenuItemQueryHandler() queries.GetMenuItemQueryHandler {
	return queries.NewGetMenuItemQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardMetricsQueryHandler() queries.GetDashboardMetricsQueryHandler {
	return queries.NewGetDashboardMetricsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) uowAdapter() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) tableUoWAdapter() commands.TableUoWFactory {
	return FuncTableUoWFactory(func() commands.TableUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) menuUoWAdapter() commands.MenuUoWFactory {
	return FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
}

type FuncChefUoWFactory func() commands.ChefUoW

func (f FuncChefUoWFactory) Create() commands.ChefUoW {
	return f()
}

type FuncTableUoWFactory func() commands.TableUoW

func (f FuncTableUoWFactory) Create() commands.TableUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
