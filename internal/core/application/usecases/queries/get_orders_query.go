package queries

import (
	"errors"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves orders, optionally narrowed to one lifecycle
// state and/or one order type.
//
// Example:
//
//	status := order.Processing
//	query, _ := NewGetOrdersQuery(&status, nil)
//	handler := NewGetOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get orders: %w", err)
//	}
type GetOrdersQuery struct {
	status    *order.Status
	orderType *order.Type

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for orders. Both filters are optional;
// nil means no filtering on that dimension.
func NewGetOrdersQuery(status *order.Status, orderType *order.Type) (GetOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}
	if orderType != nil {
		if err := orderType.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return GetOrdersQuery{
		status:    status,
		orderType: orderType,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the lifecycle filter, or nil for all states.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

// OrderType returns the type filter, or nil for both types.
func (q GetOrdersQuery) OrderType() *order.Type {
	return q.orderType
}

// GetOrdersQueryResponse is one order in the list, with its lines.
type GetOrdersQueryResponse struct {
	OrderResponse
	Items []OrderLineResponse
}
