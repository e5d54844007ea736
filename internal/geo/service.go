package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Harshchoudhary07/Greenly/internal/config"
	"github.com/Harshchoudhary07/Greenly/internal/domain"
	"github.com/Harshchoudhary07/Greenly/internal/storage"
)

// NearbyFinder is the slice of the API client the location service
// needs for proximity queries.
type NearbyFinder interface {
	NearbyVendors(ctx context.Context, lat, lng, radiusKm float64) ([]domain.Vendor, error)
	NearbyCollectors(ctx context.Context, lat, lng, radiusKm float64) ([]domain.Collector, error)
}

// InitState is the outcome of the startup permission workflow.
type InitState int

const (
	// InitAcquired means permission was already granted and a reading
	// was silently taken.
	InitAcquired InitState = iota
	// InitConsentRequired means a consent prompt must be shown before
	// GetCurrentLocation is called.
	InitConsentRequired
	// InitDenied means the platform refuses location access.
	InitDenied
)

type Service struct {
	store    storage.Store
	finder   NearbyFinder
	provider Provider
	radiusKm float64
	log      *zap.Logger
}

func NewService(store storage.Store, finder NearbyFinder, provider Provider, cfg config.Config, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		store:    store,
		finder:   finder,
		provider: provider,
		radiusKm: cfg.DefaultRadiusKm,
		log:      log,
	}
}

// GetCurrentLocation takes one reading from the provider and persists
// it, overwriting any previous coordinate.
func (s *Service) GetCurrentLocation(ctx context.Context) (domain.Coordinate, error) {
	coord, err := s.provider.CurrentPosition(ctx, DefaultOptions())
	if err != nil {
		return domain.Coordinate{}, err
	}

	data, err := json.Marshal(coord)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("marshal coordinate: %w", err)
	}
	if err := s.store.Set(config.KeyLocation, data); err != nil {
		return domain.Coordinate{}, fmt.Errorf("save location: %w", err)
	}
	return coord, nil
}

// SavedLocation returns the last persisted coordinate, reporting false
// when none has been recorded.
func (s *Service) SavedLocation() (domain.Coordinate, bool) {
	data, err := s.store.Get(config.KeyLocation)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Warn("read saved location failed", zap.Error(err))
		}
		return domain.Coordinate{}, false
	}

	var coord domain.Coordinate
	if err := json.Unmarshal(data, &coord); err != nil {
		s.log.Warn("decode saved location failed", zap.Error(err))
		return domain.Coordinate{}, false
	}
	return coord, true
}

// Init runs the startup permission workflow: acquire silently when
// already granted, otherwise tell the caller whether a consent prompt
// is needed.
func (s *Service) Init(ctx context.Context) (InitState, error) {
	perm, err := s.provider.Permission(ctx)
	if err != nil {
		// Unknown permission state behaves like a prompt requirement.
		s.log.Debug("permission query failed", zap.Error(err))
		return InitConsentRequired, nil
	}

	switch perm {
	case PermissionGranted:
		if _, err := s.GetCurrentLocation(ctx); err != nil {
			s.log.Warn("silent location acquisition failed", zap.Error(err))
		}
		return InitAcquired, nil
	case PermissionDenied:
		return InitDenied, nil
	default:
		return InitConsentRequired, nil
	}
}

// RequestPermission is the consent path: it triggers an acquisition,
// which makes the platform prompt if needed.
func (s *Service) RequestPermission(ctx context.Context) (domain.Coordinate, error) {
	return s.GetCurrentLocation(ctx)
}

// NearbyVendors queries vendors around the point. A non-positive
// radius falls back to the configured default. API failures propagate
// unchanged.
func (s *Service) NearbyVendors(ctx context.Context, lat, lng, radiusKm float64) ([]domain.Vendor, error) {
	if radiusKm <= 0 {
		radiusKm = s.radiusKm
	}
	return s.finder.NearbyVendors(ctx, lat, lng, radiusKm)
}

// NearbyCollectors queries scrap collectors around the point.
func (s *Service) NearbyCollectors(ctx context.Context, lat, lng, radiusKm float64) ([]domain.Collector, error) {
	if radiusKm <= 0 {
		radiusKm = s.radiusKm
	}
	return s.finder.NearbyCollectors(ctx, lat, lng, radiusKm)
}
