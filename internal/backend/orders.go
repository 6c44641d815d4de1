package backend

import (
	"context"
	"fmt"
	"net/http"

	"guestadmin/internal/domain"
)

// ListOrders fetches the admin-wide order list.
func (c *Client) ListOrders(ctx context.Context, params ListParams) ([]domain.Order, error) {
	var out Collection[domain.Order]
	if err := c.get(ctx, "/admin/orders/", params.Values(), &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c *Client) GetOrder(ctx context.Context, id int64) (domain.Order, error) {
	var out domain.Order
	if err := c.get(ctx, fmt.Sprintf("/orders/%d/", id), nil, &out); err != nil {
		return domain.Order{}, err
	}
	return out, nil
}

// UpdateOrderStatus moves an order to a new lifecycle state and returns
// the refreshed order.
func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) (domain.Order, error) {
	payload := map[string]string{"status": string(status)}
	var out domain.Order
	if err := c.sendJSON(ctx, http.MethodPatch, fmt.Sprintf("/orders/%d/status/", id), payload, &out); err != nil {
		return domain.Order{}, err
	}
	return out, nil
}
