package api

import (
	"context"

	"github.com/Harshchoudhary07/Greenly/internal/domain"
)

type CreateOrderItem struct {
	ProductID string  `json:"product_id"`
	Quantity  float64 `json:"quantity"`
}

// CreateOrderRequest places one order against one vendor. A multi-vendor
// cart becomes one request per vendor group.
type CreateOrderRequest struct {
	VendorID          string            `json:"vendor_id"`
	Items             []CreateOrderItem `json:"items"`
	DeliveryAddress   string            `json:"delivery_address"`
	DeliveryLatitude  float64           `json:"delivery_latitude"`
	DeliveryLongitude float64           `json:"delivery_longitude"`
}

// OrderFromGroup builds the request for one vendor group of the cart.
func OrderFromGroup(group domain.VendorGroup, address string, lat, lng float64) CreateOrderRequest {
	req := CreateOrderRequest{
		VendorID:          group.VendorID,
		DeliveryAddress:   address,
		DeliveryLatitude:  lat,
		DeliveryLongitude: lng,
	}
	for _, item := range group.Items {
		req.Items = append(req.Items, CreateOrderItem{
			ProductID: item.ProductID,
			Quantity:  float64(item.Quantity),
		})
	}
	return req
}

func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	data, err := c.Get(ctx, endpointOrders, nil)
	if err != nil {
		return nil, err
	}
	var orders []domain.Order
	if err := decode(data, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	data, err := c.Get(ctx, endpointOrderDetail(id), nil)
	if err != nil {
		return nil, err
	}
	var order domain.Order
	if err := decode(data, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*domain.Order, error) {
	data, err := c.Post(ctx, endpointOrders, req)
	if err != nil {
		return nil, err
	}
	var order domain.Order
	if err := decode(data, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) AcceptOrder(ctx context.Context, id string) error {
	_, err := c.Post(ctx, endpointOrderAccept(id), nil)
	return err
}

func (c *Client) CompleteOrder(ctx context.Context, id string) error {
	_, err := c.Post(ctx, endpointOrderComplete(id), nil)
	return err
}

func (c *Client) CancelOrder(ctx context.Context, id string) error {
	_, err := c.Post(ctx, endpointOrderCancel(id), nil)
	return err
}
