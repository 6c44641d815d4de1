package backend

import (
	"context"
	"fmt"
	"net/http"

	"guestadmin/internal/domain"
)

// ReservationInput is the create payload for a room reservation. Dates
// use the YYYY-MM-DD wire layout.
type ReservationInput struct {
	RoomID     int64   `json:"room"`
	CustomerID int64   `json:"customer"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	Guests     int     `json:"guests"`
	Notes      string  `json:"notes"`
	Total      float64 `json:"total_amount"`
}

func (c *Client) ListReservations(ctx context.Context, params ListParams) ([]domain.Reservation, error) {
	var out Collection[domain.Reservation]
	if err := c.get(ctx, "/reservations/", params.Values(), &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c *Client) CreateReservation(ctx context.Context, input ReservationInput) (domain.Reservation, error) {
	var out domain.Reservation
	if err := c.sendJSON(ctx, http.MethodPost, "/reservations/", input, &out); err != nil {
		return domain.Reservation{}, err
	}
	return out, nil
}

func (c *Client) UpdateReservationStatus(ctx context.Context, id int64, status domain.ReservationStatus) (domain.Reservation, error) {
	payload := map[string]string{"status": string(status)}
	var out domain.Reservation
	if err := c.sendJSON(ctx, http.MethodPatch, fmt.Sprintf("/reservations/%d/status/", id), payload, &out); err != nil {
		return domain.Reservation{}, err
	}
	return out, nil
}

func (c *Client) DeleteReservation(ctx context.Context, id int64) error {
	return c.sendJSON(ctx, http.MethodDelete, fmt.Sprintf("/reservations/%d/", id), nil, nil)
}
