package api

import (
	"context"
	"io"

	"github.com/Harshchoudhary07/Greenly/internal/domain"
)

type ProductRequest struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"`
	Unit         string  `json:"unit"`
	Stock        int     `json:"stock"`
	FreshnessTag string  `json:"freshness_tag,omitempty"`
}

// ProductFilter narrows ListProducts. Zero values mean no filter.
type ProductFilter struct {
	Category string
	VendorID string
	Search   string
}

func (f ProductFilter) params() map[string]string {
	params := map[string]string{}
	if f.Category != "" {
		params["category"] = f.Category
	}
	if f.VendorID != "" {
		params["vendor"] = f.VendorID
	}
	if f.Search != "" {
		params["search"] = f.Search
	}
	return params
}

func (c *Client) ListProducts(ctx context.Context, filter ProductFilter) ([]domain.Product, error) {
	data, err := c.Get(ctx, endpointProducts, filter.params())
	if err != nil {
		return nil, err
	}
	var products []domain.Product
	if err := decode(data, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	data, err := c.Get(ctx, endpointProductDetail(id), nil)
	if err != nil {
		return nil, err
	}
	var product domain.Product
	if err := decode(data, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) CreateProduct(ctx context.Context, req ProductRequest) (*domain.Product, error) {
	data, err := c.Post(ctx, endpointProducts, req)
	if err != nil {
		return nil, err
	}
	var product domain.Product
	if err := decode(data, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, req ProductRequest) (*domain.Product, error) {
	data, err := c.Put(ctx, endpointProductDetail(id), req)
	if err != nil {
		return nil, err
	}
	var product domain.Product
	if err := decode(data, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	_, err := c.Delete(ctx, endpointProductDetail(id))
	return err
}

// UpdateProductStock overwrites the stock level.
func (c *Client) UpdateProductStock(ctx context.Context, id string, stock int) error {
	_, err := c.Patch(ctx, endpointProductStock(id), map[string]int{"stock": stock})
	return err
}

// UploadProductImage attaches an image to a product via multipart
// upload. Callers validate the file against the configured limits
// first.
func (c *Client) UploadProductImage(ctx context.Context, id, filename string, file io.Reader) (*domain.Product, error) {
	data, err := c.Upload(ctx, endpointProductDetail(id), filename, file, map[string]string{"kind": "image"})
	if err != nil {
		return nil, err
	}
	var product domain.Product
	if err := decode(data, &product); err != nil {
		return nil, err
	}
	return &product, nil
}
