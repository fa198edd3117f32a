// Package menu contains the MenuItem aggregate: a dish with a price, an
// average preparation time and a non-negative stock counter that is
// decremented when orders reserve it and restored when orders are deleted.
package menu

import (
	"errors"
	"fmt"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var (
	// ErrMenuItemIsNotConstructed is returned when a MenuItem was not
	// created through NewMenuItem or RestoreMenuItem.
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

	// ErrInsufficientStock is returned when a reservation asks for more
	// units than are available.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Snapshot carries the values an order copies from a menu item at
// reservation time. Orders keep these even if the menu item changes later.
type Snapshot struct {
	Name            string
	UnitPrice       float64
	PreparationTime int
}

// MenuItem is an aggregate root for one dish on the menu.
type MenuItem struct {
	id              kernel.UUID
	name            string
	description     string
	price           float64
	preparationTime int
	category        string
	stock           int

	guard guard.ConstructorGuard
}

// NewMenuItem creates a menu item. Price and stock must not be negative;
// preparation time must be at least one minute.
func NewMenuItem(id kernel.UUID, name, description string, price float64, preparationTime int, category string, stock int) (*MenuItem, error) {
	item := &MenuItem{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setDescription(description),
		item.setPrice(price),
		item.setPreparationTime(preparationTime),
		item.setCategory(category),
		item.setStock(stock),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreMenuItem reconstructs a menu item from persistence.
func RestoreMenuItem(id kernel.UUID, name, description string, price float64, preparationTime int, category string, stock int) (*MenuItem, error) {
	return NewMenuItem(id, name, description, price, preparationTime, category, stock)
}

// Validate ensures the item was created through a constructor.
func (m *MenuItem) Validate() error {
	if m == nil {
		return ErrMenuItemIsNotConstructed
	}
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

// ID returns the menu item's identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// Name returns the dish name.
func (m *MenuItem) Name() string {
	return m.name
}

// Description returns the dish description.
func (m *MenuItem) Description() string {
	return m.description
}

// Price returns the current unit price.
func (m *MenuItem) Price() float64 {
	return m.price
}

// PreparationTime returns the average preparation time in minutes.
func (m *MenuItem) PreparationTime() int {
	return m.preparationTime
}

// Category returns the menu category.
func (m *MenuItem) Category() string {
	return m.category
}

// Stock returns the available quantity.
func (m *MenuItem) Stock() int {
	return m.stock
}

// Reserve decrements stock by quantity and returns the snapshot an order
// copies into its line item. Stock never goes negative: a reservation beyond
// the available quantity fails with ErrInsufficientStock.
func (m *MenuItem) Reserve(quantity int) (Snapshot, error) {
	if quantity < 1 {
		return Snapshot{}, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if m.stock < quantity {
		return Snapshot{}, fmt.Errorf("%w for %s: available %d, requested %d", ErrInsufficientStock, m.name, m.stock, quantity)
	}

	m.stock -= quantity
	return Snapshot{
		Name:            m.name,
		UnitPrice:       m.price,
		PreparationTime: m.preparationTime,
	}, nil
}

// Restore increments stock by quantity; used when an order is deleted.
// The ledger does not track which order reserved what, so idempotency is the
// caller's responsibility.
func (m *MenuItem) Restore(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	m.stock += quantity
	return nil
}

// Update replaces the editable attributes of the item. Stock is adjusted
// through Reserve/Restore, not here.
func (m *MenuItem) Update(name, description string, price float64, preparationTime int, category string) error {
	return errors.Join(
		m.setName(name),
		m.setDescription(description),
		m.setPrice(price),
		m.setPreparationTime(preparationTime),
		m.setCategory(category),
	)
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *MenuItem) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	m.description = description
	return nil
}

func (m *MenuItem) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%f is negative", price))
	}
	m.price = price
	return nil
}

func (m *MenuItem) setPreparationTime(preparationTime int) error {
	if preparationTime < 1 {
		return errs.NewValueIsInvalidErrorWithCause("preparationTime", fmt.Errorf("%d is not greater than 0", preparationTime))
	}
	m.preparationTime = preparationTime
	return nil
}

func (m *MenuItem) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	m.category = category
	return nil
}

func (m *MenuItem) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock", fmt.Errorf("%d is negative", stock))
	}
	m.stock = stock
	return nil
}
