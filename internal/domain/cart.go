package domain

import "time"

// CartItem is a snapshot of a product at the moment it entered the cart.
// Price changes on the catalog side do not retroactively change the cart.
type CartItem struct {
	ProductID  string    `json:"product_id"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	Unit       string    `json:"unit"`
	Image      string    `json:"image,omitempty"`
	VendorID   string    `json:"vendor_id"`
	VendorName string    `json:"vendor_name"`
	Quantity   int       `json:"quantity"`
	AddedAt    time.Time `json:"added_at"`
}

// Subtotal is price times quantity for this line.
func (i CartItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Cart is the persisted shape of the customer's cart. SchemaVersion tags
// the stored blob so a future structural change can migrate old data.
type Cart struct {
	SchemaVersion int        `json:"schema_version"`
	Items         []CartItem `json:"items"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// VendorGroup is a derived view of the cart restricted to one vendor.
// It is recomputed on demand and never persisted.
type VendorGroup struct {
	VendorID   string     `json:"vendor_id"`
	VendorName string     `json:"vendor_name"`
	Items      []CartItem `json:"items"`
	Total      float64    `json:"total"`
}
