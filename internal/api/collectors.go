package api

import (
	"context"
	"strconv"

	"github.com/Harshchoudhary07/Greenly/internal/domain"
)

type CollectorRequest struct {
	CompanyName   string                 `json:"company_name"`
	Categories    []domain.ScrapCategory `json:"categories"`
	Latitude      float64                `json:"latitude"`
	Longitude     float64                `json:"longitude"`
	ServiceRadius int                    `json:"service_radius"`
	Phone         string                 `json:"phone"`
}

func (c *Client) ListCollectors(ctx context.Context) ([]domain.Collector, error) {
	data, err := c.Get(ctx, endpointCollectors, nil)
	if err != nil {
		return nil, err
	}
	var collectors []domain.Collector
	if err := decode(data, &collectors); err != nil {
		return nil, err
	}
	return collectors, nil
}

func (c *Client) GetCollector(ctx context.Context, id string) (*domain.Collector, error) {
	data, err := c.Get(ctx, endpointCollectorDetail(id), nil)
	if err != nil {
		return nil, err
	}
	var collector domain.Collector
	if err := decode(data, &collector); err != nil {
		return nil, err
	}
	return &collector, nil
}

func (c *Client) CreateCollector(ctx context.Context, req CollectorRequest) (*domain.Collector, error) {
	data, err := c.Post(ctx, endpointCollectors, req)
	if err != nil {
		return nil, err
	}
	var collector domain.Collector
	if err := decode(data, &collector); err != nil {
		return nil, err
	}
	return &collector, nil
}

// NearbyCollectors lists collectors whose service area covers the point.
func (c *Client) NearbyCollectors(ctx context.Context, lat, lng, radiusKm float64) ([]domain.Collector, error) {
	data, err := c.Get(ctx, endpointCollectorsNearby, map[string]string{
		"lat":    strconv.FormatFloat(lat, 'f', -1, 64),
		"lng":    strconv.FormatFloat(lng, 'f', -1, 64),
		"radius": strconv.FormatFloat(radiusKm, 'f', -1, 64),
	})
	if err != nil {
		return nil, err
	}
	var collectors []domain.Collector
	if err := decode(data, &collectors); err != nil {
		return nil, err
	}
	return collectors, nil
}
