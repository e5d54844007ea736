// Package config holds the build-time settings of the Greenly client.
// Values are fixed at construction; components receive a Config value
// instead of reading process-wide state.
package config

import (
	"os"
	"time"
)

// Durable storage keys. Each key holds an independently serialized value.
const (
	KeyAuthToken    = "greenly_auth_token"
	KeyRefreshToken = "greenly_refresh_token"
	KeyUserData     = "greenly_user_data"
	KeyCart         = "greenly_cart"
	KeyLocation     = "greenly_location"
)

type Config struct {
	BaseURL              string
	DataDir              string
	RequestTimeout       time.Duration
	MaxCartItems         int
	ImageMaxSize         int64
	AllowedImageTypes    []string
	DefaultRadiusKm      float64
	DeliveryFeePerVendor float64
}

// Default returns the stock settings.
func Default() Config {
	return Config{
		BaseURL:              "http://localhost:8000/api",
		RequestTimeout:       30 * time.Second,
		MaxCartItems:         50,
		ImageMaxSize:         5 << 20, // 5MB
		AllowedImageTypes:    []string{"image/jpeg", "image/png", "image/webp"},
		DefaultRadiusKm:      5,
		DeliveryFeePerVendor: 20,
	}
}

// FromEnv returns Default with the environment-selected overrides applied.
func FromEnv() Config {
	cfg := Default()
	cfg.BaseURL = getEnv("GREENLY_API_URL", cfg.BaseURL)
	cfg.DataDir = getEnv("GREENLY_DATA_DIR", cfg.DataDir)
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
