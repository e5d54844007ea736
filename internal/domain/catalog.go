package domain

import "time"

// Product categories.
const (
	CategoryFruit     = "fruit"
	CategoryVegetable = "vegetable"
	CategoryLeafy     = "leafy"
	CategoryHerbs     = "herbs"
	CategoryOther     = "other"
)

// Sale units.
const (
	UnitKg    = "kg"
	UnitGram  = "g"
	UnitPiece = "piece"
	UnitDozen = "dozen"
	UnitBunch = "bunch"
)

// Order lifecycle.
const (
	OrderPending   = "pending"
	OrderAccepted  = "accepted"
	OrderPreparing = "preparing"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

// Pickup lifecycle.
const (
	PickupRequested = "requested"
	PickupScheduled = "scheduled"
	PickupCompleted = "completed"
	PickupCancelled = "cancelled"
)

type Product struct {
	ID              string    `json:"id"`
	VendorID        string    `json:"vendor_id"`
	VendorName      string    `json:"vendor_name"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Price           float64   `json:"price"`
	Unit            string    `json:"unit"`
	Stock           int       `json:"stock"`
	Image           string    `json:"image,omitempty"`
	FreshnessTag    string    `json:"freshness_tag,omitempty"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	LastStockUpdate time.Time `json:"last_stock_update"`
}

type Vendor struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	ShopName     string    `json:"shop_name"`
	Description  string    `json:"description,omitempty"`
	Photo        string    `json:"photo,omitempty"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Address      string    `json:"address"`
	OpeningTime  string    `json:"opening_time"`
	ClosingTime  string    `json:"closing_time"`
	IsActive     bool      `json:"is_active"`
	Rating       float64   `json:"rating"`
	TotalReviews int       `json:"total_reviews"`
	DistanceKm   float64   `json:"distance_km,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type Order struct {
	ID                string      `json:"id"`
	CustomerID        string      `json:"customer_id"`
	VendorID          string      `json:"vendor_id"`
	TotalAmount       float64     `json:"total_amount"`
	DeliveryFee       float64     `json:"delivery_fee"`
	Status            string      `json:"status"`
	DeliveryAddress   string      `json:"delivery_address"`
	DeliveryLatitude  float64     `json:"delivery_latitude"`
	DeliveryLongitude float64     `json:"delivery_longitude"`
	Items             []OrderItem `json:"items"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ProductName string  `json:"product_name"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    float64 `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
}

// ScrapCategory is one material a collector buys, with its rate.
type ScrapCategory struct {
	Type       string  `json:"type"`
	PricePerKg float64 `json:"price_per_kg"`
}

type Collector struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	CompanyName   string          `json:"company_name"`
	Categories    []ScrapCategory `json:"categories"`
	Latitude      float64         `json:"latitude"`
	Longitude     float64         `json:"longitude"`
	ServiceRadius int             `json:"service_radius"`
	Phone         string          `json:"phone"`
	DistanceKm    float64         `json:"distance_km,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

type Pickup struct {
	ID              string    `json:"id"`
	CustomerID      string    `json:"customer_id"`
	CollectorID     string    `json:"collector_id,omitempty"`
	Category        string    `json:"category"`
	EstimatedWeight float64   `json:"estimated_weight"`
	PickupAddress   string    `json:"pickup_address"`
	PickupLatitude  float64   `json:"pickup_latitude"`
	PickupLongitude float64   `json:"pickup_longitude"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}
