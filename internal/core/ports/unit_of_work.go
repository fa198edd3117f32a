package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per request or sweep tick,
// keeping concurrent operations isolated from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary spanning the order, chef,
// table and menu repositories. Multi-step allocations (reserve stock,
// reserve table, bind chef, persist order) run inside one unit of work so a
// failure part-way unwinds every prior hold before the error propagates.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns an error if no transaction is active or the rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an order repository bound to the current
	// transaction.
	OrderRepository() OrderRepository

	// ChefRepository returns a chef repository bound to the current
	// transaction.
	ChefRepository() ChefRepository

	// TableRepository returns a table repository bound to the current
	// transaction.
	TableRepository() TableRepository

	// MenuRepository returns a menu repository bound to the current
	// transaction.
	MenuRepository() MenuRepository
}
