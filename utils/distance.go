package utils

import (
	"fmt"

	"github.com/golang/geo/s2"
)

// EarthRadiusMeters is the Earth's mean radius
const EarthRadiusMeters = 6371000.0

// HaversineMeters returns the great-circle distance between two points in meters
func HaversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// PresentableDistance formats a distance in meters for display
func PresentableDistance(meters float64) string {
	if meters < 0 {
		meters = 0
	}
	showKm := meters >= 1000
	if showKm {
		km := meters / 1000
		return fmt.Sprintf("%.2f km", km)
	}
	m := int(meters + 0.5)
	return fmt.Sprintf("%d meter%s", m, ternary(m == 1, "", "s"))
}

func ternary[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
