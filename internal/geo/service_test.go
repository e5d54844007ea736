package geo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harshchoudhary07/Greenly/internal/config"
	"github.com/Harshchoudhary07/Greenly/internal/domain"
	"github.com/Harshchoudhary07/Greenly/internal/storage"
)

type mockProvider struct {
	coord       domain.Coordinate
	positionErr error
	permission  Permission
	permErr     error
	calls       int
}

func (m *mockProvider) CurrentPosition(context.Context, Options) (domain.Coordinate, error) {
	m.calls++
	if m.positionErr != nil {
		return domain.Coordinate{}, m.positionErr
	}
	return m.coord, nil
}

func (m *mockProvider) Permission(context.Context) (Permission, error) {
	if m.permErr != nil {
		return "", m.permErr
	}
	return m.permission, nil
}

type mockFinder struct {
	lat, lng, radius float64
	vendors          []domain.Vendor
	collectors       []domain.Collector
	err              error
}

func (m *mockFinder) NearbyVendors(_ context.Context, lat, lng, radiusKm float64) ([]domain.Vendor, error) {
	m.lat, m.lng, m.radius = lat, lng, radiusKm
	return m.vendors, m.err
}

func (m *mockFinder) NearbyCollectors(_ context.Context, lat, lng, radiusKm float64) ([]domain.Collector, error) {
	m.lat, m.lng, m.radius = lat, lng, radiusKm
	return m.collectors, m.err
}

func newTestService(provider Provider, finder NearbyFinder) (*Service, *storage.MemoryStore) {
	store := storage.NewMemoryStore()
	return NewService(store, finder, provider, config.Default(), nil), store
}

func TestGetCurrentLocation_PersistsReading(t *testing.T) {
	provider := &mockProvider{coord: domain.Coordinate{Lat: 12.97, Lng: 77.59, Accuracy: 15}}
	s, _ := newTestService(provider, &mockFinder{})

	coord, err := s.GetCurrentLocation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12.97, coord.Lat)

	saved, ok := s.SavedLocation()
	require.True(t, ok)
	assert.Equal(t, coord, saved)
}

func TestGetCurrentLocation_OverwritesPrevious(t *testing.T) {
	provider := &mockProvider{coord: domain.Coordinate{Lat: 1, Lng: 2, Accuracy: 5}}
	s, _ := newTestService(provider, &mockFinder{})

	_, err := s.GetCurrentLocation(context.Background())
	require.NoError(t, err)

	provider.coord = domain.Coordinate{Lat: 3, Lng: 4, Accuracy: 50}
	_, err = s.GetCurrentLocation(context.Background())
	require.NoError(t, err)

	saved, ok := s.SavedLocation()
	require.True(t, ok)
	assert.Equal(t, domain.Coordinate{Lat: 3, Lng: 4, Accuracy: 50}, saved)
}

func TestGetCurrentLocation_FailureDoesNotPersist(t *testing.T) {
	provider := &mockProvider{positionErr: ErrPermissionDenied}
	s, _ := newTestService(provider, &mockFinder{})

	_, err := s.GetCurrentLocation(context.Background())
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, ok := s.SavedLocation()
	assert.False(t, ok)
}

func TestSavedLocation_EmptyStore(t *testing.T) {
	s, _ := newTestService(&mockProvider{}, &mockFinder{})

	_, ok := s.SavedLocation()
	assert.False(t, ok)
}

func TestInit_GrantedAcquiresSilently(t *testing.T) {
	provider := &mockProvider{
		coord:      domain.Coordinate{Lat: 12.97, Lng: 77.59},
		permission: PermissionGranted,
	}
	s, _ := newTestService(provider, &mockFinder{})

	state, err := s.Init(context.Background())
	require.NoError(t, err)
	assert.Equal(t, InitAcquired, state)
	assert.Equal(t, 1, provider.calls)

	_, ok := s.SavedLocation()
	assert.True(t, ok)
}

func TestInit_PromptDefersAcquisition(t *testing.T) {
	provider := &mockProvider{permission: PermissionPrompt}
	s, _ := newTestService(provider, &mockFinder{})

	state, err := s.Init(context.Background())
	require.NoError(t, err)
	assert.Equal(t, InitConsentRequired, state)
	assert.Zero(t, provider.calls)
}

func TestInit_Denied(t *testing.T) {
	provider := &mockProvider{permission: PermissionDenied}
	s, _ := newTestService(provider, &mockFinder{})

	state, err := s.Init(context.Background())
	require.NoError(t, err)
	assert.Equal(t, InitDenied, state)
	assert.Zero(t, provider.calls)
}

func TestNearbyVendors_DefaultRadius(t *testing.T) {
	finder := &mockFinder{vendors: []domain.Vendor{{ID: "v1"}}}
	s, _ := newTestService(&mockProvider{}, finder)

	vendors, err := s.NearbyVendors(context.Background(), 12.97, 77.59, 0)
	require.NoError(t, err)
	assert.Len(t, vendors, 1)
	assert.Equal(t, 5.0, finder.radius)
	assert.Equal(t, 12.97, finder.lat)
}

func TestNearbyCollectors_ExplicitRadius(t *testing.T) {
	finder := &mockFinder{collectors: []domain.Collector{{ID: "c1"}}}
	s, _ := newTestService(&mockProvider{}, finder)

	collectors, err := s.NearbyCollectors(context.Background(), 12.97, 77.59, 12)
	require.NoError(t, err)
	assert.Len(t, collectors, 1)
	assert.Equal(t, 12.0, finder.radius)
}

func TestNearby_PropagatesFinderError(t *testing.T) {
	finder := &mockFinder{err: assert.AnError}
	s, _ := newTestService(&mockProvider{}, finder)

	_, err := s.NearbyVendors(context.Background(), 0, 0, 0)
	assert.ErrorIs(t, err, assert.AnError)
}
