// Package commands contains the business operations that modify system
// state: the order lifecycle (create, status change, delete), chef
// assignment and removal, the completion sweep, and the thin CRUD paths for
// chefs, tables and menu items. Every command follows the same pattern:
// constructor validation, transaction management through a unit of work,
// and persistence through the ports.
package commands

import (
	"context"

	"kitchen/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Narrow interfaces cover single-aggregate commands; UoW spans all
// four repositories for the allocation paths that touch stock, tables, chefs
// and orders in one transaction.
type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ChefRepoFactory provides the chef repository within a transaction.
	ChefRepoFactory interface {
		ChefRepository() ports.ChefRepository
	}

	// TableRepoFactory provides the table repository within a transaction.
	TableRepoFactory interface {
		TableRepository() ports.TableRepository
	}

	// MenuRepoFactory provides the menu repository within a transaction.
	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	// ChefUoW manages transactions for chef-only operations.
	ChefUoW interface {
		TxManager
		ChefRepoFactory
	}

	// ChefUoWFactory creates chef unit of work instances.
	ChefUoWFactory interface {
		Create() ChefUoW
	}

	// TableUoW manages transactions for table-only operations.
	TableUoW interface {
		TxManager
		TableRepoFactory
	}

	// TableUoWFactory creates table unit of work instances.
	TableUoWFactory interface {
		Create() TableUoW
	}

	// MenuUoW manages transactions for menu-only operations.
	MenuUoW interface {
		TxManager
		MenuRepoFactory
	}

	// MenuUoWFactory creates menu unit of work instances.
	MenuUoWFactory interface {
		Create() MenuUoW
	}

	// UoW manages transactions across every aggregate, used by the
	// lifecycle commands whose compensations span stock, tables and
	// chefs.
	UoW interface {
		TxManager
		OrderRepoFactory
		ChefRepoFactory
		TableRepoFactory
		MenuRepoFactory
	}

	// UoWFactory creates cross-aggregate unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)
