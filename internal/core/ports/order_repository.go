package ports

import (
	"context"
	"time"

	"github.com/dinehub/restaurant-system/internal/core/domain"
)

// OrderUpdate carries the mutable order fields. Nil pointers are left untouched.
type OrderUpdate struct {
	CustomerName  *string
	TableNumber   *int
	Items         []domain.OrderItem
	Total         *float64
	Status        *domain.OrderStatus
	PaymentStatus *domain.PaymentStatus
}

// DayBucket is one day of aggregated sales.
type DayBucket struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Orders  int64   `json:"orders"`
}

// ItemSales aggregates sold quantity per menu item.
type ItemSales struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	Quantity   int64  `json:"quantity"`
}

// OrderCounts is the dashboard summary aggregate.
type OrderCounts struct {
	TodaysOrders  int64
	TodaysRevenue float64
	ReadyOrders   int64
	PendingBills  int64
}

// OrderStats groups the statistics returned by the stats endpoint.
type OrderStats struct {
	TodayOrders    int64                          `json:"today_orders"`
	TodayRevenue   float64                        `json:"today_revenue"`
	AvgOrderValue  float64                        `json:"avg_order_value"`
	StatusCounts   map[domain.OrderStatus]int64   `json:"status_counts"`
	PaymentCounts  map[domain.PaymentStatus]int64 `json:"payment_counts"`
	PaymentAmounts map[domain.PaymentStatus]float64 `json:"payment_amounts"`
}

// OrderRepository defines persistence and aggregation for orders.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	Update(ctx context.Context, id string, update OrderUpdate) (*domain.Order, error)
	Delete(ctx context.Context, id string) error

	Counts(ctx context.Context, dayStart, dayEnd time.Time) (*OrderCounts, error)
	SalesByDay(ctx context.Context, since time.Time) ([]DayBucket, error)
	TopSelling(ctx context.Context, limit int) ([]ItemSales, error)
	Recent(ctx context.Context, limit int) ([]*domain.Order, error)
	Stats(ctx context.Context, dayStart, dayEnd time.Time) (*OrderStats, error)
}
