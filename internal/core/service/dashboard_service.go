package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/dinehub/restaurant-system/internal/core/ports"
)

// DashboardService aggregates read-only analytics over orders and users.
// All heavy lifting happens in Mongo aggregation pipelines; this layer only
// shapes the results.
type DashboardService struct {
	orders ports.OrderRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewDashboardService(orders ports.OrderRepository, users ports.UserRepository, logger zerolog.Logger) *DashboardService {
	return &DashboardService{orders: orders, users: users, logger: logger}
}

// Summary returns today's headline figures.
func (s *DashboardService) Summary(ctx context.Context) (*ports.DashboardSummary, error) {
	start, end := dayBounds(time.Now().UTC())
	counts, err := s.orders.Counts(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return &ports.DashboardSummary{
		TodaysOrders:       counts.TodaysOrders,
		TodaysRevenue:      counts.TodaysRevenue,
		ActiveReservations: counts.ReadyOrders,
		PendingBills:       counts.PendingBills,
		Trends: map[string]ports.Trend{
			"orders":  {Direction: "up", Percentage: "0"},
			"revenue": {Direction: "up", Percentage: "0"},
		},
	}, nil
}

// SalesTrends returns the last seven days of served-order revenue per day.
func (s *DashboardService) SalesTrends(ctx context.Context) ([]ports.DayBucket, error) {
	since := time.Now().UTC().AddDate(0, 0, -7)
	return s.orders.SalesByDay(ctx, since)
}

// TopSelling returns the five best-selling menu items across served orders.
func (s *DashboardService) TopSelling(ctx context.Context) ([]ports.ItemSales, error) {
	return s.orders.TopSelling(ctx, 5)
}

// UserRoles returns the user count per role.
func (s *DashboardService) UserRoles(ctx context.Context) ([]ports.RoleCount, error) {
	perRole, err := s.users.CountPerRole(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ports.RoleCount, 0, len(perRole))
	for role, n := range perRole {
		out = append(out, ports.RoleCount{Role: role, Count: n})
	}
	return out, nil
}

// RecentActivities returns the ten most recent orders as an activity feed.
func (s *DashboardService) RecentActivities(ctx context.Context) ([]ports.Activity, error) {
	orders, err := s.orders.Recent(ctx, 10)
	if err != nil {
		return nil, err
	}

	activities := make([]ports.Activity, 0, len(orders))
	for i, o := range orders {
		activities = append(activities, ports.Activity{
			ID:          o.ID,
			Type:        "order",
			Title:       fmt.Sprintf("Order #%d", i+1),
			Description: fmt.Sprintf("%s - %.2f", o.Status, o.Total),
			User:        fmt.Sprintf("Table %d", o.TableNumber),
			Timestamp:   o.CreatedAt.UTC().Format(time.RFC3339),
			Icon:        "order",
		})
	}
	return activities, nil
}
