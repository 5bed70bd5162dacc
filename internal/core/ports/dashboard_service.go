package ports

import "context"

// Trend describes the direction of a dashboard figure. The original system
// reports flat placeholder trends; the shape is kept for the client.
type Trend struct {
	Direction  string `json:"direction"`
	Percentage string `json:"percentage"`
}

// DashboardSummary is the headline figure block.
type DashboardSummary struct {
	TodaysOrders       int64            `json:"todays_orders"`
	TodaysRevenue      float64          `json:"todays_revenue"`
	ActiveReservations int64            `json:"active_reservations"`
	PendingBills       int64            `json:"pending_bills"`
	Trends             map[string]Trend `json:"trends"`
}

// RoleCount is one slice of the user role distribution.
type RoleCount struct {
	Role  string `json:"role"`
	Count int64  `json:"count"`
}

// Activity is one entry of the recent activity feed.
type Activity struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	User        string `json:"user"`
	Timestamp   string `json:"timestamp"`
	Icon        string `json:"icon"`
}

// DashboardService aggregates read-only analytics.
type DashboardService interface {
	Summary(ctx context.Context) (*DashboardSummary, error)
	SalesTrends(ctx context.Context) ([]DayBucket, error)
	TopSelling(ctx context.Context) ([]ItemSales, error)
	UserRoles(ctx context.Context) ([]RoleCount, error)
	RecentActivities(ctx context.Context) ([]Activity, error)
}
