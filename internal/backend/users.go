package backend

import (
	"context"
	"fmt"
	"net/http"

	"guestadmin/internal/domain"
)

// UserInput is the create/update payload for a staff account. Password
// is only sent on create.
type UserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Status   string `json:"status"`
	Password string `json:"password,omitempty"`
}

func (c *Client) ListUsers(ctx context.Context, params ListParams) ([]domain.User, error) {
	var out Collection[domain.User]
	if err := c.get(ctx, "/users/", params.Values(), &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c *Client) CreateUser(ctx context.Context, input UserInput) (domain.User, error) {
	var out domain.User
	if err := c.sendJSON(ctx, http.MethodPost, "/users/", input, &out); err != nil {
		return domain.User{}, err
	}
	return out, nil
}

func (c *Client) UpdateUser(ctx context.Context, id int64, input UserInput) (domain.User, error) {
	input.Password = ""
	var out domain.User
	if err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/users/%d/", id), input, &out); err != nil {
		return domain.User{}, err
	}
	return out, nil
}

func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.sendJSON(ctx, http.MethodDelete, fmt.Sprintf("/users/%d/", id), nil, nil)
}

// ResetUserPassword sets a new password on an existing account.
func (c *Client) ResetUserPassword(ctx context.Context, id int64, password string) error {
	payload := map[string]string{"password": password}
	return c.sendJSON(ctx, http.MethodPost, fmt.Sprintf("/users/%d/reset-password/", id), payload, nil)
}
