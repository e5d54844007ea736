package api

import (
	"context"

	"github.com/Harshchoudhary07/Greenly/internal/domain"
)

type CreatePickupRequest struct {
	Category        string  `json:"category"`
	EstimatedWeight float64 `json:"estimated_weight"`
	PickupAddress   string  `json:"pickup_address"`
	PickupLatitude  float64 `json:"pickup_latitude"`
	PickupLongitude float64 `json:"pickup_longitude"`
}

func (c *Client) ListPickups(ctx context.Context) ([]domain.Pickup, error) {
	data, err := c.Get(ctx, endpointPickups, nil)
	if err != nil {
		return nil, err
	}
	var pickups []domain.Pickup
	if err := decode(data, &pickups); err != nil {
		return nil, err
	}
	return pickups, nil
}

func (c *Client) GetPickup(ctx context.Context, id string) (*domain.Pickup, error) {
	data, err := c.Get(ctx, endpointPickupDetail(id), nil)
	if err != nil {
		return nil, err
	}
	var pickup domain.Pickup
	if err := decode(data, &pickup); err != nil {
		return nil, err
	}
	return &pickup, nil
}

func (c *Client) CreatePickup(ctx context.Context, req CreatePickupRequest) (*domain.Pickup, error) {
	data, err := c.Post(ctx, endpointPickups, req)
	if err != nil {
		return nil, err
	}
	var pickup domain.Pickup
	if err := decode(data, &pickup); err != nil {
		return nil, err
	}
	return &pickup, nil
}

func (c *Client) AcceptPickup(ctx context.Context, id string) error {
	_, err := c.Post(ctx, endpointPickupAccept(id), nil)
	return err
}

func (c *Client) CompletePickup(ctx context.Context, id string) error {
	_, err := c.Post(ctx, endpointPickupComplete(id), nil)
	return err
}
