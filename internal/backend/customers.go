package backend

import (
	"context"
	"fmt"
	"net/http"

	"guestadmin/internal/domain"
)

// CustomerInput is the create/update payload for a guest account.
type CustomerInput struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Gender    string `json:"gender"`
	Location  string `json:"location"`
	Status    string `json:"status"`
}

func (c *Client) ListCustomers(ctx context.Context, params ListParams) ([]domain.Customer, error) {
	var out Collection[domain.Customer]
	if err := c.get(ctx, "/customers/", params.Values(), &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c *Client) CreateCustomer(ctx context.Context, input CustomerInput) (domain.Customer, error) {
	var out domain.Customer
	if err := c.sendJSON(ctx, http.MethodPost, "/customers/", input, &out); err != nil {
		return domain.Customer{}, err
	}
	return out, nil
}

func (c *Client) UpdateCustomer(ctx context.Context, id int64, input CustomerInput) (domain.Customer, error) {
	var out domain.Customer
	if err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/customers/%d/", id), input, &out); err != nil {
		return domain.Customer{}, err
	}
	return out, nil
}

func (c *Client) DeleteCustomer(ctx context.Context, id int64) error {
	return c.sendJSON(ctx, http.MethodDelete, fmt.Sprintf("/customers/%d/", id), nil, nil)
}
