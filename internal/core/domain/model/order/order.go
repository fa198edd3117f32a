package order

import (
	"errors"
	"fmt"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrTableNumberRequired is returned when a dine-in order is created
	// without a table number.
	ErrTableNumberRequired = errs.NewValueIsRequiredError("table number")

	// ErrAddressRequired is returned when a takeaway order is created
	// without a delivery address.
	ErrAddressRequired = errs.NewValueIsRequiredError("delivery address")

	// ErrOrderNotActive is returned when assigning a chef to an order
	// whose cooking work is already finished.
	ErrOrderNotActive = errors.New("order is not active")
)

// Order is the aggregate root of the lifecycle engine. It owns the status
// state machine and records which resources the order currently holds: the
// assigned chef, the reserved table (dine-in) and the stock decremented for
// its line items.
//
// Invariants:
//   - at least one line item; totals computed once at creation
//   - totalPrice = sum of line subtotals, immutable afterwards
//   - totalPreparationTime = maximum line preparation time, immutable
//   - table number present iff the order is dine-in
//   - processingStartedAt is set exactly once, on entering Processing
type Order struct {
	id                   kernel.UUID
	reference            kernel.OrderReference
	orderType            Type
	items                []LineItem
	totalPrice           float64
	totalPreparationTime int
	status               Status
	tableNumber          *int
	customer             CustomerInfo
	cookingInstructions  string
	chefID               *kernel.UUID
	processingStartedAt  *time.Time
	createdAt            time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an order in Pending status with its totals computed from
// the line item snapshots. Dine-in orders must carry a table number; takeaway
// orders must carry a customer address and never a table number.
func NewOrder(
	id kernel.UUID,
	reference kernel.OrderReference,
	orderType Type,
	items []LineItem,
	customer CustomerInfo,
	tableNumber *int,
	cookingInstructions string,
	now time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		reference.Validate(),
		orderType.Validate(),
		customer.Validate(),
	); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	totalPrice := 0.0
	totalPreparationTime := 0
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		totalPrice += item.Subtotal()
		// The kitchen works on an order's items in parallel, so the
		// order takes as long as its slowest item.
		if item.PreparationTime() > totalPreparationTime {
			totalPreparationTime = item.PreparationTime()
		}
	}

	switch orderType {
	case TypeDineIn:
		if tableNumber == nil {
			return nil, ErrTableNumberRequired
		}
	case TypeTakeaway:
		if customer.Address() == "" {
			return nil, ErrAddressRequired
		}
		tableNumber = nil
	}

	var tn *int
	if tableNumber != nil {
		n := *tableNumber
		if n < 1 {
			return nil, errs.NewValueIsInvalidErrorWithCause("table number", fmt.Errorf("%d is not greater than 0", n))
		}
		tn = &n
	}

	return &Order{
		id:                   id,
		reference:            reference,
		orderType:            orderType,
		items:                append([]LineItem(nil), items...),
		totalPrice:           totalPrice,
		totalPreparationTime: totalPreparationTime,
		status:               Pending,
		tableNumber:          tn,
		customer:             customer,
		cookingInstructions:  cookingInstructions,
		createdAt:            now,
		guard:                guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder reconstructs an order from persistence without recomputing its
// totals: totalPrice and totalPreparationTime stay exactly as persisted at
// creation time.
func RestoreOrder(
	id kernel.UUID,
	reference kernel.OrderReference,
	orderType Type,
	items []LineItem,
	totalPrice float64,
	totalPreparationTime int,
	status Status,
	tableNumber *int,
	customer CustomerInfo,
	cookingInstructions string,
	chefID *kernel.UUID,
	processingStartedAt *time.Time,
	createdAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		reference.Validate(),
		orderType.Validate(),
		status.Validate(),
		customer.Validate(),
	); err != nil {
		return nil, err
	}

	if chefID != nil {
		if err := chefID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:                   id,
		reference:            reference,
		orderType:            orderType,
		items:                append([]LineItem(nil), items...),
		totalPrice:           totalPrice,
		totalPreparationTime: totalPreparationTime,
		status:               status,
		tableNumber:          tableNumber,
		customer:             customer,
		cookingInstructions:  cookingInstructions,
		chefID:               chefID,
		processingStartedAt:  processingStartedAt,
		createdAt:            createdAt,
		guard:                guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the storage identifier of the order.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Reference returns the human-referenceable order number.
func (o *Order) Reference() kernel.OrderReference {
	return o.reference
}

// Type returns whether the order is dine-in or takeaway.
func (o *Order) Type() Type {
	return o.orderType
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []LineItem {
	return append([]LineItem(nil), o.items...)
}

// TotalPrice returns the price computed at creation.
func (o *Order) TotalPrice() float64 {
	return o.totalPrice
}

// TotalPreparationTime returns the preparation time in minutes computed at
// creation (maximum across items, not the sum).
func (o *Order) TotalPreparationTime() int {
	return o.totalPreparationTime
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// TableNumber returns the reserved table's business key, or nil for takeaway.
func (o *Order) TableNumber() *int {
	if o.tableNumber == nil {
		return nil
	}
	n := *o.tableNumber
	return &n
}

// Customer returns the customer details.
func (o *Order) Customer() CustomerInfo {
	return o.customer
}

// CookingInstructions returns the optional free-form instructions.
func (o *Order) CookingInstructions() string {
	return o.cookingInstructions
}

// Chef returns the assigned chef's identifier, or nil when unassigned.
func (o *Order) Chef() *kernel.UUID {
	if o.chefID == nil {
		return nil
	}
	id := *o.chefID
	return &id
}

// ProcessingStartedAt returns when cooking started, or nil before that.
func (o *Order) ProcessingStartedAt() *time.Time {
	if o.processingStartedAt == nil {
		return nil
	}
	t := *o.processingStartedAt
	return &t
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsActive reports whether the order still counts against chef load.
func (o *Order) IsActive() bool {
	return o.status.IsActive()
}

// AssignChef binds the order to a chef. Only active orders can be assigned;
// reassignment while active is allowed.
func (o *Order) AssignChef(chefID kernel.UUID) error {
	if err := chefID.Validate(); err != nil {
		return err
	}
	if !o.status.IsActive() {
		return fmt.Errorf("%w: %s", ErrOrderNotActive, o.status)
	}

	o.chefID = &chefID
	return nil
}

// UnassignChef clears the chef binding; a no-op when already unassigned.
func (o *Order) UnassignChef() {
	o.chefID = nil
}

// StartProcessing moves the order into Processing and records the start time.
// The start time is written exactly once: a restore into Processing keeps the
// original timestamp.
func (o *Order) StartProcessing(now time.Time) error {
	newStatus, err := o.status.StartProcessing()
	if err != nil {
		return err
	}

	o.status = newStatus
	if o.processingStartedAt == nil {
		o.processingStartedAt = &now
	}
	return nil
}

// Complete moves the order into Done. The caller releases the assigned
// chef's capacity as the compensating action of this transition.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Serve moves the order into Served. For dine-in orders the caller releases
// the table reservation as the compensating action of this transition.
func (o *Order) Serve() error {
	newStatus, err := o.status.Serve()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ElapsedMinutes returns whole minutes since cooking started.
// The second return value is false when the order is not processing or the
// start time was never recorded.
func (o *Order) ElapsedMinutes(now time.Time) (int, bool) {
	if o.status != Processing || o.processingStartedAt == nil {
		return 0, false
	}
	return int(now.Sub(*o.processingStartedAt).Minutes()), true
}

// RemainingMinutes returns how many minutes of preparation remain, floored
// at zero. The second return value is false when elapsed time cannot be
// computed.
func (o *Order) RemainingMinutes(now time.Time) (int, bool) {
	elapsed, ok := o.ElapsedMinutes(now)
	if !ok {
		return 0, false
	}
	remaining := o.totalPreparationTime - elapsed
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}

// DueForCompletion reports whether the elapsed processing time has reached
// the order's total preparation time. Orders without a recorded start time
// are never due; the sweep skips them.
func (o *Order) DueForCompletion(now time.Time) bool {
	elapsed, ok := o.ElapsedMinutes(now)
	return ok && elapsed >= o.totalPreparationTime
}
