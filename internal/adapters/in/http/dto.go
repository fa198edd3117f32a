package http

import (
	"time"

	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/order"
)

// ErrorResponse is the error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CustomerInfoRequest carries the customer details of an order request.
type CustomerInfoRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	PartySize   int    `json:"partySize"`
}

// OrderItemRequest is one requested menu position.
type OrderItemRequest struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

// CreateOrderRequest is the body of POST /api/orders.
type CreateOrderRequest struct {
	Items               []OrderItemRequest  `json:"items"`
	OrderType           string              `json:"orderType"`
	TableNumber         *int                `json:"tableNumber"`
	CustomerInfo        CustomerInfoRequest `json:"customerInfo"`
	CookingInstructions string              `json:"cookingInstructions"`
}

// ChangeOrderStatusRequest is the body of PUT /api/orders/:id/status.
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

// AssignChefRequest is the body of POST /api/chefs/assign-order.
type AssignChefRequest struct {
	OrderID string `json:"orderId"`
	ChefID  string `json:"chefId"`
}

// CreateChefRequest is the body of POST /api/chefs.
type CreateChefRequest struct {
	Name string `json:"name"`
}

// CreateTableRequest is the body of POST /api/tables.
type CreateTableRequest struct {
	Capacity int    `json:"capacity"`
	Name     string `json:"name"`
}

// ReserveTableRequest is the body of PUT /api/tables/:number/reserve.
type ReserveTableRequest struct {
	CustomerName string `json:"customerName"`
	PhoneNumber  string `json:"phoneNumber"`
	PartySize    int    `json:"partySize"`
}

// MenuItemRequest is the body of POST /api/menu and PUT /api/menu/:id.
// Stock is honored on creation only.
type MenuItemRequest struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	PreparationTime int     `json:"preparationTime"`
	Category        string  `json:"category"`
	Stock           int     `json:"stock"`
}

// OrderItemResponse is one order line in a response body.
type OrderItemResponse struct {
	MenuItemID      string  `json:"menuItemId"`
	Name            string  `json:"name"`
	UnitPrice       float64 `json:"unitPrice"`
	PreparationTime int     `json:"preparationTime"`
	Quantity        int     `json:"quantity"`
	Subtotal        float64 `json:"subtotal"`
}

// OrderResponse is the order representation returned by the order
// endpoints.
type OrderResponse struct {
	ID                   string              `json:"id"`
	Reference            string              `json:"reference"`
	OrderType            string              `json:"orderType"`
	Status               string              `json:"status"`
	Items                []OrderItemResponse `json:"items"`
	TotalPrice           float64             `json:"totalPrice"`
	TotalPreparationTime int                 `json:"totalPreparationTime"`
	TableNumber          *int                `json:"tableNumber,omitempty"`
	CustomerInfo         CustomerInfoRequest `json:"customerInfo"`
	CookingInstructions  string              `json:"cookingInstructions,omitempty"`
	ChefID               *string             `json:"chefId,omitempty"`
	ProcessingStartedAt  *time.Time          `json:"processingStartedAt,omitempty"`
	CreatedAt            time.Time           `json:"createdAt"`
}

// ProcessingOrderResponse is one entry of the live processing view.
type ProcessingOrderResponse struct {
	ID                   string  `json:"id"`
	Reference            string  `json:"reference"`
	ChefID               *string `json:"chefId,omitempty"`
	TotalPreparationTime int     `json:"totalPreparationTime"`
	ElapsedMinutes       int     `json:"elapsedMinutes"`
	RemainingMinutes     int     `json:"remainingMinutes"`
	IsOverdue            bool    `json:"isOverdue"`
}

// ChefResponse is the chef representation returned by the chef endpoints.
type ChefResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	ActiveOrders   int      `json:"activeOrders"`
	AssignedOrders []string `json:"assignedOrders,omitempty"`
}

// TableResponse is the table representation returned by the table
// endpoints.
type TableResponse struct {
	Number       int    `json:"number"`
	Capacity     int    `json:"capacity"`
	Name         string `json:"name,omitempty"`
	IsReserved   bool   `json:"isReserved"`
	CustomerName string `json:"customerName,omitempty"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
	PartySize    int    `json:"partySize,omitempty"`
}

// MenuItemResponse is the dish representation returned by the menu
// endpoints.
type MenuItemResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	Price           float64 `json:"price"`
	PreparationTime int     `json:"preparationTime"`
	Category        string  `json:"category,omitempty"`
	Stock           int     `json:"stock"`
}

// DashboardResponse is the body of GET /api/analytics/dashboard.
type DashboardResponse struct {
	Chefs          int     `json:"chefs"`
	TotalOrders    int     `json:"totalOrders"`
	TotalCustomers int     `json:"totalCustomers"`
	TotalRevenue   float64 `json:"totalRevenue"`
}

func orderResponseFromDomain(aggregate *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemResponse{
			MenuItemID:      item.MenuItemID().String(),
			Name:            item.Name(),
			UnitPrice:       item.UnitPrice(),
			PreparationTime: item.PreparationTime(),
			Quantity:        item.Quantity(),
			Subtotal:        item.Subtotal(),
		})
	}

	var chefID *string
	if id := aggregate.Chef(); id != nil {
		s := id.String()
		chefID = &s
	}

	customer := aggregate.Customer()
	return OrderResponse{
		ID:                   aggregate.ID().String(),
		Reference:            aggregate.Reference().String(),
		OrderType:            aggregate.Type().String(),
		Status:               aggregate.Status().String(),
		Items:                items,
		TotalPrice:           aggregate.TotalPrice(),
		TotalPreparationTime: aggregate.TotalPreparationTime(),
		TableNumber:          aggregate.TableNumber(),
		CustomerInfo: CustomerInfoRequest{
			Name:        customer.Name(),
			PhoneNumber: customer.PhoneNumber(),
			Address:     customer.Address(),
			PartySize:   customer.PartySize(),
		},
		CookingInstructions: aggregate.CookingInstructions(),
		ChefID:              chefID,
		ProcessingStartedAt: aggregate.ProcessingStartedAt(),
		CreatedAt:           aggregate.CreatedAt(),
	}
}

func orderResponseFromReadModel(rm queries.OrderResponse, items []queries.OrderLineResponse) OrderResponse {
	lines := make([]OrderItemResponse, 0, len(items))
	for _, line := range items {
		lines = append(lines, OrderItemResponse{
			MenuItemID:      line.MenuItemID.String(),
			Name:            line.Name,
			UnitPrice:       line.UnitPrice,
			PreparationTime: line.PreparationTime,
			Quantity:        line.Quantity,
			Subtotal:        line.Subtotal,
		})
	}

	var chefID *string
	if rm.ChefID != nil {
		s := rm.ChefID.String()
		chefID = &s
	}

	return OrderResponse{
		ID:                   rm.ID.String(),
		Reference:            rm.Reference,
		OrderType:            rm.OrderType,
		Status:               rm.Status,
		Items:                lines,
		TotalPrice:           rm.TotalPrice,
		TotalPreparationTime: rm.TotalPreparationTime,
		TableNumber:          rm.TableNumber,
		CustomerInfo: CustomerInfoRequest{
			Name:        rm.CustomerName,
			PhoneNumber: rm.PhoneNumber,
			Address:     rm.Address,
			PartySize:   rm.PartySize,
		},
		CookingInstructions: rm.CookingInstructions,
		ChefID:              chefID,
		ProcessingStartedAt: rm.ProcessingStartedAt,
		CreatedAt:           rm.CreatedAt,
	}
}
