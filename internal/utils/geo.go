package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/ridermap/internal/pkg/models"
)

const earthRadiusKm = 6371.0

// DistanceKm returns the haversine distance between two locations in kilometers
func DistanceKm(from, to models.Location) float64 {
	lat1 := radians(from.Latitude)
	lat2 := radians(to.Latitude)
	dLat := lat2 - lat1
	dLon := radians(to.Longitude - from.Longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// Bearing returns the initial great-circle bearing from origin to target,
// in degrees normalized to [0, 360).
func Bearing(origin, target models.Location) float64 {
	dLon := radians(target.Longitude - origin.Longitude)
	lat1 := radians(origin.Latitude)
	lat2 := radians(target.Latitude)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	return math.Mod(degrees(math.Atan2(y, x))+360, 360)
}

// AssignZone buckets a bearing into its quadrant. Intervals are half-open and
// a boundary angle belongs to the interval that starts there. Labels run
// against the angle (north-east is Zone 4) and must stay that way.
func AssignZone(bearing float64) models.Zone {
	switch {
	case bearing >= 0 && bearing < 90:
		return models.Zone4
	case bearing >= 90 && bearing < 180:
		return models.Zone3
	case bearing >= 180 && bearing < 270:
		return models.Zone2
	default:
		return models.Zone1
	}
}

// Geohash encodes a location at the given precision
func Geohash(loc models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(loc.Latitude, loc.Longitude, precision)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func degrees(rad float64) float64 {
	return rad * 180.0 / math.Pi
}
