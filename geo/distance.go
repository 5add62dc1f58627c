package geo

import (
	"math"
)

// EarthRadiusKm is the mean earth radius used by the haversine formula
const EarthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance in kilometers between two
// points using the haversine formula. Callers must validate the coordinates
// with ValidCoordinates beforehand.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	// rounding may push a slightly outside [0, 1] for antipodal points
	a = math.Min(1, math.Max(0, a))

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// WithinRadius tells whether the second point lies inside the circle of
// radiusKm centered on the first point. The boundary is inclusive.
func WithinRadius(lat1, lng1, lat2, lng2, radiusKm float64) bool {
	return DistanceKm(lat1, lng1, lat2, lng2) <= radiusKm
}

// ValidCoordinates checks latitude and longitude ranges
func ValidCoordinates(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// RadiusToRadians converts a distance on the earth surface into the angle
// expected by mongo `$centerSphere` queries
func RadiusToRadians(radiusKm float64) float64 {
	return radiusKm / EarthRadiusKm
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
