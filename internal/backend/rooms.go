package backend

import (
	"context"
	"fmt"
	"net/http"

	"guestadmin/internal/domain"
)

// RoomInput is the create/update payload for a room.
type RoomInput struct {
	RoomCode      string  `json:"room_code"`
	Category      string  `json:"categories"`
	PricePerNight float64 `json:"price_per_night"`
	Capacity      int     `json:"capacity"`
	Description   string  `json:"description"`
	IsActive      bool    `json:"is_active"`
}

func (c *Client) ListRooms(ctx context.Context, params ListParams) ([]domain.Room, error) {
	var out Collection[domain.Room]
	if err := c.get(ctx, "/rooms/", params.Values(), &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c *Client) CreateRoom(ctx context.Context, input RoomInput) (domain.Room, error) {
	var out domain.Room
	if err := c.sendJSON(ctx, http.MethodPost, "/rooms/", input, &out); err != nil {
		return domain.Room{}, err
	}
	return out, nil
}

func (c *Client) UpdateRoom(ctx context.Context, id int64, input RoomInput) (domain.Room, error) {
	var out domain.Room
	if err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/rooms/%d/", id), input, &out); err != nil {
		return domain.Room{}, err
	}
	return out, nil
}

func (c *Client) DeleteRoom(ctx context.Context, id int64) error {
	return c.sendJSON(ctx, http.MethodDelete, fmt.Sprintf("/rooms/%d/", id), nil, nil)
}
