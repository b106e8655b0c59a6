package spatial

import (
	"math"

	"github.com/golang/geo/s2"

	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/models"
)

// Constants
const (
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters
	EarthRadiusKm     = 6371.0    // Earth's mean radius in kilometers
)

// HaversineDistance calculates the great-circle distance between two points in meters
func HaversineDistance(lat1, lng1, lat2, lng2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lng1)
	p2 := s2.LatLngFromDegrees(lat2, lng2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// Distance is HaversineDistance over model points.
func Distance(a, b models.LatLng) float64 {
	return HaversineDistance(a.Lat, a.Lng, b.Lat, b.Lng)
}

// WithinBox reports whether p lies within toleranceDeg of q on each
// axis independently (a square box in degree space, not a radius).
func WithinBox(p, q models.LatLng, toleranceDeg float64) bool {
	return math.Abs(p.Lat-q.Lat) <= toleranceDeg && math.Abs(p.Lng-q.Lng) <= toleranceDeg
}

// PolylineLengthKm sums great-circle distances along consecutive vertices.
func PolylineLengthKm(points []models.LatLng) float64 {
	var meters float64
	for i := 1; i < len(points); i++ {
		meters += Distance(points[i-1], points[i])
	}
	return meters / 1000
}
