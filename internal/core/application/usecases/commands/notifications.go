package commands

// UnassignedOrderNotification is the payload published when an order was
// created with no chef available to take it.
type UnassignedOrderNotification struct {
	OrderID   string `json:"orderId"`
	Reference string `json:"reference"`
}

// OverdueOrderNotification is the payload published when an order has been
// processing past the overdue threshold.
type OverdueOrderNotification struct {
	OrderID        string `json:"orderId"`
	Reference      string `json:"reference"`
	ElapsedMinutes int    `json:"elapsedMinutes"`
}
