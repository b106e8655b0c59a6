package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/models"
)

func TestHaversineDistanceKnownPair(t *testing.T) {
	// Milano Duomo to Castello Sforzesco, roughly 1.1 km.
	d := HaversineDistance(45.4642, 9.1900, 45.4706, 9.1791)
	assert.InDelta(t, 1110, d, 150)
}

func TestDistanceZeroForSamePoint(t *testing.T) {
	p := models.LatLng{Lat: 45.4642, Lng: 9.1900}
	assert.InDelta(t, 0, Distance(p, p), 1e-6)
}

func TestWithinBoxChecksAxesIndependently(t *testing.T) {
	center := models.LatLng{Lat: 45.0, Lng: 9.0}

	assert.True(t, WithinBox(models.LatLng{Lat: 45.001, Lng: 9.001}, center, 0.002))
	assert.False(t, WithinBox(models.LatLng{Lat: 45.003, Lng: 9.0}, center, 0.002))
	assert.False(t, WithinBox(models.LatLng{Lat: 45.0, Lng: 9.003}, center, 0.002))
}

func TestPolylineLengthKm(t *testing.T) {
	// One degree of latitude is ~111.2 km.
	points := []models.LatLng{
		{Lat: 45.0, Lng: 9.0},
		{Lat: 46.0, Lng: 9.0},
	}
	assert.InDelta(t, 111.2, PolylineLengthKm(points), 1.0)
	assert.Zero(t, PolylineLengthKm(points[:1]))
	assert.Zero(t, PolylineLengthKm(nil))
}
