package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderLineIsNotConstructed = errors.New(
		"OrderLine must be created via NewOrderLine constructor",
	)
)

// OrderLine is one requested menu position: which item and how many units.
// Price and preparation time are not part of the request; they are
// snapshotted from the stock reservation.
type OrderLine struct {
	menuItemID kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

// NewOrderLine creates a requested line. Quantity must be at least 1.
func NewOrderLine(menuItemID kernel.UUID, quantity int) (OrderLine, error) {
	if err := menuItemID.Validate(); err != nil {
		return OrderLine{}, err
	}
	if quantity < 1 {
		return OrderLine{}, errs.NewValueIsInvalidError("quantity")
	}

	return OrderLine{
		menuItemID: menuItemID,
		quantity:   quantity,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the line was created through the constructor.
func (l OrderLine) Validate() error {
	return l.guard.Validate(ErrOrderLineIsNotConstructed)
}

// MenuItemID returns the requested menu item's identifier.
func (l OrderLine) MenuItemID() kernel.UUID {
	return l.menuItemID
}

// Quantity returns the requested quantity.
func (l OrderLine) Quantity() int {
	return l.quantity
}

// CreateOrderCommand represents a request to place a new order.
// It carries the requested lines, the order type, customer details and, for
// dine-in orders, the table number to reserve.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	lines               []OrderLine
	orderType           order.Type
	customer            order.CustomerInfo
	tableNumber         *int
	cookingInstructions string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order.
// It validates that at least one line is present, the type is valid, dine-in
// requests carry a table number and takeaway requests carry an address.
func NewCreateOrderCommand(
	lines []OrderLine,
	orderType order.Type,
	customer order.CustomerInfo,
	tableNumber *int,
	cookingInstructions string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLines(lines),
		cmd.setOrderType(orderType),
		cmd.setCustomer(customer),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	switch orderType {
	case order.TypeDineIn:
		if tableNumber == nil {
			return CreateOrderCommand{}, order.ErrTableNumberRequired
		}
		n := *tableNumber
		cmd.tableNumber = &n
	case order.TypeTakeaway:
		if customer.Address() == "" {
			return CreateOrderCommand{}, order.ErrAddressRequired
		}
	}

	cmd.cookingInstructions = cookingInstructions
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Lines returns the requested order lines.
func (c CreateOrderCommand) Lines() []OrderLine {
	return append([]OrderLine(nil), c.lines...)
}

// OrderType returns the requested order type.
func (c CreateOrderCommand) OrderType() order.Type {
	return c.orderType
}

// Customer returns the customer details.
func (c CreateOrderCommand) Customer() order.CustomerInfo {
	return c.customer
}

// TableNumber returns the requested table number, or nil for takeaway.
func (c CreateOrderCommand) TableNumber() *int {
	if c.tableNumber == nil {
		return nil
	}
	n := *c.tableNumber
	return &n
}

// CookingInstructions returns the optional free-form instructions.
func (c CreateOrderCommand) CookingInstructions() string {
	return c.cookingInstructions
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	c.lines = append([]OrderLine(nil), lines...)
	return nil
}

func (c *CreateOrderCommand) setOrderType(orderType order.Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	c.orderType = orderType
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer order.CustomerInfo) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	c.customer = customer
	return nil
}
