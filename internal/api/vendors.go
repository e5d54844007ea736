package api

import (
	"context"
	"strconv"

	"github.com/Harshchoudhary07/Greenly/internal/domain"
)

type VendorRequest struct {
	ShopName    string  `json:"shop_name"`
	Description string  `json:"description,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Address     string  `json:"address"`
	OpeningTime string  `json:"opening_time"`
	ClosingTime string  `json:"closing_time"`
}

func (c *Client) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	data, err := c.Get(ctx, endpointVendors, nil)
	if err != nil {
		return nil, err
	}
	var vendors []domain.Vendor
	if err := decode(data, &vendors); err != nil {
		return nil, err
	}
	return vendors, nil
}

func (c *Client) GetVendor(ctx context.Context, id string) (*domain.Vendor, error) {
	data, err := c.Get(ctx, endpointVendorDetail(id), nil)
	if err != nil {
		return nil, err
	}
	var vendor domain.Vendor
	if err := decode(data, &vendor); err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (c *Client) CreateVendor(ctx context.Context, req VendorRequest) (*domain.Vendor, error) {
	data, err := c.Post(ctx, endpointVendors, req)
	if err != nil {
		return nil, err
	}
	var vendor domain.Vendor
	if err := decode(data, &vendor); err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (c *Client) UpdateVendor(ctx context.Context, id string, req VendorRequest) (*domain.Vendor, error) {
	data, err := c.Put(ctx, endpointVendorDetail(id), req)
	if err != nil {
		return nil, err
	}
	var vendor domain.Vendor
	if err := decode(data, &vendor); err != nil {
		return nil, err
	}
	return &vendor, nil
}

// SetVendorStatus toggles the shop open or closed.
func (c *Client) SetVendorStatus(ctx context.Context, id string, active bool) error {
	_, err := c.Patch(ctx, endpointVendorStatus(id), map[string]bool{"is_active": active})
	return err
}

// NearbyVendors lists active vendors within radiusKm of the point.
func (c *Client) NearbyVendors(ctx context.Context, lat, lng, radiusKm float64) ([]domain.Vendor, error) {
	data, err := c.Get(ctx, endpointVendorsNearby, map[string]string{
		"lat":    strconv.FormatFloat(lat, 'f', -1, 64),
		"lng":    strconv.FormatFloat(lng, 'f', -1, 64),
		"radius": strconv.FormatFloat(radiusKm, 'f', -1, 64),
	})
	if err != nil {
		return nil, err
	}
	var vendors []domain.Vendor
	if err := decode(data, &vendors); err != nil {
		return nil, err
	}
	return vendors, nil
}
