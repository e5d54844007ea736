package geo

import (
	"context"
	"errors"
	"time"

	"github.com/Harshchoudhary07/Greenly/internal/domain"
)

// Permission is the platform's stance on location access.
type Permission string

const (
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
	PermissionPrompt  Permission = "prompt"
)

// Acquisition failures, mapped from the platform's error categories.
var (
	ErrPermissionDenied    = errors.New("Location permission denied. Please enable location access.")
	ErrPositionUnavailable = errors.New("Location information unavailable.")
	ErrTimeout             = errors.New("Location request timed out.")
)

// Options tune a single position reading.
type Options struct {
	HighAccuracy bool
	Timeout      time.Duration
	// MaximumAge allows the provider to answer from a reading no older
	// than this instead of acquiring a fresh fix.
	MaximumAge time.Duration
}

func DefaultOptions() Options {
	return Options{
		HighAccuracy: true,
		Timeout:      10 * time.Second,
		MaximumAge:   5 * time.Minute,
	}
}

// Provider abstracts the platform location source. CurrentPosition
// resolves exactly once per call: one coordinate or one error from the
// set above.
type Provider interface {
	CurrentPosition(ctx context.Context, opts Options) (domain.Coordinate, error)
	Permission(ctx context.Context) (Permission, error)
}

// StaticProvider serves a fixed coordinate, typically configured by the
// user. Permission is always granted.
type StaticProvider struct {
	Coord domain.Coordinate
}

func (p StaticProvider) CurrentPosition(_ context.Context, _ Options) (domain.Coordinate, error) {
	return p.Coord, nil
}

func (p StaticProvider) Permission(_ context.Context) (Permission, error) {
	return PermissionGranted, nil
}
