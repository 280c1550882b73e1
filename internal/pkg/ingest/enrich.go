package ingest

import (
	"github.com/piresc/ridermap/internal/pkg/models"
	"github.com/piresc/ridermap/internal/utils"
)

// GeohashPrecision is about 150m, enough to key one pin per drop point
const GeohashPrecision = 7

// Enrich returns a copy of orders with bearing, zone, distance and geohash
// computed against the depot. The input slice is not modified.
func Enrich(orders []models.Order, depot models.Location, radiusMeters float64) []models.Order {
	enriched := make([]models.Order, len(orders))

	for i, order := range orders {
		target := order.Location()

		order.Bearing = utils.Bearing(depot, target)
		order.Zone = utils.AssignZone(order.Bearing)
		order.DistanceKm = utils.DistanceKm(depot, target)
		order.WithinRadius = order.DistanceKm*1000 <= radiusMeters
		order.Geohash = utils.Geohash(target, GeohashPrecision)
		enriched[i] = order
	}
	return enriched
}
