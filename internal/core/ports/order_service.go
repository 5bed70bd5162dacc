package ports

import (
	"context"

	"github.com/dinehub/restaurant-system/internal/core/domain"
)

// OrderItemInput is one requested line item.
type OrderItemInput struct {
	MenuItemID string
	Quantity   int
	Notes      string
}

// CreateOrderInput carries everything needed to open an order.
type CreateOrderInput struct {
	CustomerName  string
	TableNumber   int
	Items         []OrderItemInput
	Total         float64
	Status        domain.OrderStatus
	PaymentStatus domain.PaymentStatus
}

// UpdateOrderInput is a partial order update. Nil/empty fields are ignored.
type UpdateOrderInput struct {
	CustomerName  *string
	TableNumber   *int
	Items         []OrderItemInput
	Total         *float64
	Status        *domain.OrderStatus
	PaymentStatus *domain.PaymentStatus
}

// DeletedOrder summarises an order that was just removed, so callers can
// report what disappeared.
type DeletedOrder struct {
	ID           string  `json:"id"`
	CustomerName string  `json:"customer_name"`
	TableNumber  int     `json:"table_number"`
	Total        float64 `json:"total"`
	Status       string  `json:"status"`
}

// OrderService implements the order lifecycle.
type OrderService interface {
	List(ctx context.Context) ([]*domain.Order, error)
	Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	// Update applies a partial update. Setting PaymentStatus to Paid forces
	// Status to served in the same write, whatever status was supplied.
	Update(ctx context.Context, id string, in UpdateOrderInput) (*domain.Order, error)
	// Pay marks the order paid and served. Paying twice is a conflict.
	Pay(ctx context.Context, id string) (*domain.Order, error)
	// Delete refuses paid or served orders with domain.ErrOrderNotDeletable.
	Delete(ctx context.Context, id string) (*DeletedOrder, error)
	Stats(ctx context.Context) (*OrderStats, error)
}
