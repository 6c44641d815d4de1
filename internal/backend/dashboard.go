package backend

import (
	"context"

	"guestadmin/internal/domain"
)

// DashboardStats is the aggregate snapshot the backend precomputes for
// the landing page.
type DashboardStats struct {
	TotalOrders    int           `json:"total_orders"`
	PendingOrders  int           `json:"pending_orders"`
	TotalRevenue   domain.Amount `json:"total_revenue"`
	TotalCustomers int           `json:"total_customers"`
	TotalProducts  int           `json:"total_products"`
	TotalRooms     int           `json:"total_rooms"`
	ReservedRooms  int           `json:"reserved_rooms"`
}

func (c *Client) DashboardStats(ctx context.Context) (DashboardStats, error) {
	var out DashboardStats
	if err := c.get(ctx, "/dashboard/stats/", nil, &out); err != nil {
		return DashboardStats{}, err
	}
	return out, nil
}
