package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderServed    OrderStatus = "served"
	OrderCancelled OrderStatus = "cancelled"
)

// PaymentStatus is either Paid or Unpaid. The capitalised values come from
// the wire contract and are preserved as-is.
type PaymentStatus string

const (
	PaymentPaid   PaymentStatus = "Paid"
	PaymentUnpaid PaymentStatus = "Unpaid"
)

// validTransitions defines the allowed state machine transitions.
// served and cancelled are terminal; cancellation is not reachable once served.
var validTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderPreparing, OrderReady, OrderServed, OrderCancelled},
	OrderPreparing: {OrderReady, OrderServed, OrderCancelled},
	OrderReady:     {OrderServed, OrderCancelled},
}

var ErrOrderNotFound = errors.New("order not found")
var ErrEmptyOrder = errors.New("at least one item is required")
var ErrInvalidOrderItem = errors.New("invalid order item")
var ErrOrderNotDeletable = errors.New("order cannot be deleted")
var ErrAlreadyPaid = errors.New("order is already marked as paid")
var ErrInvalidTransition = errors.New("invalid status transition")

// CanTransitionTo reports whether a transition from s to next is valid.
// A no-op transition (same status) is always allowed.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidOrderStatus reports whether s is a known lifecycle state.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderPreparing, OrderReady, OrderServed, OrderCancelled:
		return true
	}
	return false
}

// OrderItem is a single line on an order. Name, Price and Category are
// populated from the menu collection on reads and never written back.
type OrderItem struct {
	MenuItemID string  `json:"menu_item_id"`
	Quantity   int     `json:"quantity"`
	Notes      string  `json:"notes,omitempty"`
	Name       string  `json:"name,omitempty"`
	Price      float64 `json:"price,omitempty"`
	Category   string  `json:"category,omitempty"`
}

// Order is the aggregate tracked through the kitchen and billing flow.
type Order struct {
	ID            string        `json:"id"`
	CustomerName  string        `json:"customer_name"`
	TableNumber   int           `json:"table_number"`
	Items         []OrderItem   `json:"items"`
	Total         float64       `json:"total"`
	Status        OrderStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// Deletable reports whether the order may be removed. Paid orders are kept
// for accounting; served orders are kept even when unpaid.
func (o *Order) Deletable() bool {
	return o.PaymentStatus != PaymentPaid && o.Status != OrderServed
}
