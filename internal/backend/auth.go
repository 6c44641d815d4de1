package backend

import (
	"context"
	"net/http"

	"guestadmin/internal/domain"
)

// LoginResult carries the backend API token plus the authenticated
// staff account.
type LoginResult struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	payload := map[string]string{"email": email, "password": password}
	var out LoginResult
	if err := c.sendJSON(ctx, http.MethodPost, "/auth/login/", payload, &out); err != nil {
		return LoginResult{}, err
	}
	if out.Token == "" {
		return LoginResult{}, domain.UnauthorizedError{Msg: "login response carried no token"}
	}
	return out, nil
}

// Logout invalidates the backend token. A 401 here means the token was
// already dead, which is fine.
func (c *Client) Logout(ctx context.Context) error {
	err := c.sendJSON(ctx, http.MethodPost, "/auth/logout/", nil, nil)
	if err != nil && domain.IsUnauthorized(err) {
		return nil
	}
	return err
}
