package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_CoincidentPointsAreZero(t *testing.T) {
	assert.Zero(t, DistanceKm(12.9716, 77.5946, 12.9716, 77.5946))
}

func TestDistanceKm_Symmetric(t *testing.T) {
	pairs := [][4]float64{
		{12.9716, 77.5946, 13.0827, 80.2707}, // Bangalore -> Chennai
		{28.6139, 77.2090, 19.0760, 72.8777}, // Delhi -> Mumbai
		{-33.8688, 151.2093, 51.5074, -0.1278},
	}
	for _, p := range pairs {
		ab := DistanceKm(p[0], p[1], p[2], p[3])
		ba := DistanceKm(p[2], p[3], p[0], p[1])
		assert.InDelta(t, ab, ba, 1e-9)
	}
}

func TestDistanceKm_KnownDistance(t *testing.T) {
	// Bangalore to Chennai is roughly 290km as the crow flies
	d := DistanceKm(12.9716, 77.5946, 13.0827, 80.2707)
	assert.InDelta(t, 290, d, 10)
}

func TestDistanceKm_MonotonicInSeparation(t *testing.T) {
	near := DistanceKm(12.97, 77.59, 12.98, 77.59)
	far := DistanceKm(12.97, 77.59, 13.10, 77.59)
	farther := DistanceKm(12.97, 77.59, 14.00, 77.59)
	assert.Less(t, near, far)
	assert.Less(t, far, farther)
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "500m", FormatDistance(0.5))
	assert.Equal(t, "2.3km", FormatDistance(2.345))
	assert.Equal(t, "1.0km", FormatDistance(1))
	assert.Equal(t, "999m", FormatDistance(0.9994))
	assert.Equal(t, "0m", FormatDistance(0))
}
