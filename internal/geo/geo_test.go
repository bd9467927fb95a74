package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm(t *testing.T) {
	// Lisbon to Porto is roughly 274 km as the crow flies.
	got := DistanceKm(38.7223, -9.1393, 41.1579, -8.6291)

	assert.InDelta(t, 274, got, 10)
}

func TestDistanceKm_SamePoint(t *testing.T) {
	assert.Zero(t, DistanceKm(38.7223, -9.1393, 38.7223, -9.1393))
}

func TestWithinDiameter(t *testing.T) {
	// The two Lisbon points are about 2.5 km apart, so a 10 km diameter
	// (5 km radius) covers the second point and a 2 km diameter does not.
	assert.True(t, WithinDiameter(38.7223, -9.1393, 38.7436, -9.1603, 10))
	assert.False(t, WithinDiameter(38.7223, -9.1393, 38.7436, -9.1603, 2))
}

func TestWithinDiameter_NonPositiveDiameter(t *testing.T) {
	assert.False(t, WithinDiameter(38.7223, -9.1393, 38.7223, -9.1393, 0))
	assert.False(t, WithinDiameter(38.7223, -9.1393, 38.7223, -9.1393, -1))
}
