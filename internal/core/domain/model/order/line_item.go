package order

import (
	"errors"
	"fmt"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through NewLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one ordered menu position with the menu item's name, unit price
// and preparation time snapshotted at order time. Later menu edits never
// change an existing order.
type LineItem struct {
	menuItemID      kernel.UUID
	name            string
	unitPrice       float64
	preparationTime int
	quantity        int

	isConstructed bool
}

// NewLineItem creates a line item from a stock reservation snapshot.
// Quantity must be at least 1; price and preparation time must not be
// negative.
func NewLineItem(menuItemID kernel.UUID, name string, unitPrice float64, preparationTime, quantity int) (LineItem, error) {
	if err := menuItemID.Validate(); err != nil {
		return LineItem{}, err
	}
	if name == "" {
		return LineItem{}, errs.NewValueIsRequiredError("name")
	}
	if unitPrice < 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%f is negative", unitPrice))
	}
	if preparationTime < 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("preparationTime", fmt.Errorf("%d is negative", preparationTime))
	}
	if quantity < 1 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	return LineItem{
		menuItemID:      menuItemID,
		name:            name,
		unitPrice:       unitPrice,
		preparationTime: preparationTime,
		quantity:        quantity,
		isConstructed:   true,
	}, nil
}

// Validate ensures the line item was created via NewLineItem.
func (li LineItem) Validate() error {
	if !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// MenuItemID returns the referenced menu item's identifier.
func (li LineItem) MenuItemID() kernel.UUID {
	return li.menuItemID
}

// Name returns the menu item name as it was at order time.
func (li LineItem) Name() string {
	return li.name
}

// UnitPrice returns the snapshotted price per unit.
func (li LineItem) UnitPrice() float64 {
	return li.unitPrice
}

// PreparationTime returns the snapshotted preparation time in minutes.
func (li LineItem) PreparationTime() int {
	return li.preparationTime
}

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}

// Subtotal returns unit price times quantity.
func (li LineItem) Subtotal() float64 {
	return li.unitPrice * float64(li.quantity)
}
