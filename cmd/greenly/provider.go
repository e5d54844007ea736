package main

import (
	"context"
	"os"
	"strconv"

	"github.com/Harshchoudhary07/Greenly/internal/domain"
	"github.com/Harshchoudhary07/Greenly/internal/geo"
)

// envProvider reads the device position from GREENLY_LAT / GREENLY_LNG.
// Unset coordinates behave like an unanswered permission prompt, which
// keeps the consent workflow honest on headless machines.
type envProvider struct{}

func newEnvProvider() envProvider {
	return envProvider{}
}

func (envProvider) CurrentPosition(_ context.Context, _ geo.Options) (domain.Coordinate, error) {
	lat, latErr := strconv.ParseFloat(os.Getenv("GREENLY_LAT"), 64)
	lng, lngErr := strconv.ParseFloat(os.Getenv("GREENLY_LNG"), 64)
	if latErr != nil || lngErr != nil {
		return domain.Coordinate{}, geo.ErrPositionUnavailable
	}
	return domain.Coordinate{Lat: lat, Lng: lng, Accuracy: 100}, nil
}

func (envProvider) Permission(context.Context) (geo.Permission, error) {
	if os.Getenv("GREENLY_LAT") == "" || os.Getenv("GREENLY_LNG") == "" {
		return geo.PermissionPrompt, nil
	}
	return geo.PermissionGranted, nil
}
