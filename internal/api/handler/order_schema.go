package handler

import (
	"time"

	"github.com/dinehub/restaurant-system/internal/core/domain"
)

// --- Request / Response types ---

type orderItemRequest struct {
	MenuItemID string `json:"menu_item_id" validate:"required"`
	Quantity   int    `json:"quantity"     validate:"required,gt=0"`
	Notes      string `json:"notes,omitempty"`
}

type createOrderRequest struct {
	CustomerName  string             `json:"customer_name" validate:"required"`
	TableNumber   int                `json:"table_number"  validate:"gt=0"`
	Items         []orderItemRequest `json:"items"         validate:"required,min=1,dive"`
	Total         float64            `json:"total"         validate:"gt=0"`
	Status        string             `json:"status,omitempty"`
	PaymentStatus string             `json:"payment_status,omitempty"`
}

// updateOrderRequest is a partial update; absent fields are left untouched,
// supplied ones must satisfy the same constraints as on create.
type updateOrderRequest struct {
	CustomerName  *string            `json:"customer_name,omitempty"  validate:"omitempty,min=1"`
	TableNumber   *int               `json:"table_number,omitempty"   validate:"omitempty,gt=0"`
	Items         []orderItemRequest `json:"items,omitempty"          validate:"omitempty,min=1,dive"`
	Total         *float64           `json:"total,omitempty"          validate:"omitempty,gt=0"`
	Status        *string            `json:"status,omitempty"`
	PaymentStatus *string            `json:"payment_status,omitempty"`
}

type orderItemResponse struct {
	MenuItemID string  `json:"menu_item_id"`
	Quantity   int     `json:"quantity"`
	Notes      string  `json:"notes,omitempty"`
	Name       string  `json:"name,omitempty"`
	Price      float64 `json:"price,omitempty"`
	Category   string  `json:"category,omitempty"`
}

type orderResponse struct {
	ID            string              `json:"id"`
	CustomerName  string              `json:"customer_name"`
	TableNumber   int                 `json:"table_number"`
	Items         []orderItemResponse `json:"items"`
	Total         float64             `json:"total"`
	Status        string              `json:"status"`
	PaymentStatus string              `json:"payment_status"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

type listOrdersResponse struct {
	Data  []orderResponse `json:"data"`
	Count int             `json:"count"`
}

type deleteOrderResponse struct {
	Message string `json:"message"`
	Order   struct {
		ID           string  `json:"id"`
		CustomerName string  `json:"customer_name"`
		TableNumber  int     `json:"table_number"`
		Total        float64 `json:"total"`
		Status       string  `json:"status"`
	} `json:"order"`
}

func statusPtr(s *string) *domain.OrderStatus {
	if s == nil {
		return nil
	}
	v := domain.OrderStatus(*s)
	return &v
}

func paymentPtr(s *string) *domain.PaymentStatus {
	if s == nil {
		return nil
	}
	v := domain.PaymentStatus(*s)
	return &v
}
