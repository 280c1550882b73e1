package usecase

import (
	"sort"

	"github.com/piresc/ridermap/internal/pkg/ingest"
	"github.com/piresc/ridermap/internal/pkg/models"
	"github.com/piresc/ridermap/internal/utils"
)

const defaultMarkerColor = "blue"

var zoneColors = map[models.Zone]string{
	models.Zone1: "red",
	models.Zone2: "orange",
	models.Zone3: "purple",
	models.Zone4: "blue",
}

// zoneColor returns the pin color for a zone
func zoneColor(zone models.Zone) string {
	if color, ok := zoneColors[zone]; ok {
		return color
	}
	return defaultMarkerColor
}

// buildMarkers groups orders by coordinate. The zone of a marker is the zone
// of its first order.
func buildMarkers(orders []models.Order) []models.MapMarker {
	groups := make(map[models.Location][]models.Order)
	for _, o := range orders {
		groups[o.Location()] = append(groups[o.Location()], o)
	}

	markers := make([]models.MapMarker, 0, len(groups))
	for _, loc := range distinctLocations(orders) {
		group := groups[loc]
		marker := models.MapMarker{
			Location: loc,
			Geohash:  group[0].Geohash,
			OrderIDs: make([]string, 0, len(group)),
			Riders:   make([]string, 0, len(group)),
			DPTimes:  make([]string, 0, len(group)),
			SLATimes: make([]string, 0, len(group)),
			Zone:     group[0].Zone,
		}
		if marker.Geohash == "" {
			marker.Geohash = utils.Geohash(loc, ingest.GeohashPrecision)
		}

		for _, o := range group {
			marker.OrderIDs = append(marker.OrderIDs, o.OrderID)
			marker.Riders = append(marker.Riders, o.RiderName)
			if o.DPTime != "" {
				marker.DPTimes = append(marker.DPTimes, o.DPTime)
			}
			if o.SLATime != "" {
				marker.SLATimes = append(marker.SLATimes, o.SLATime)
			}
		}
		marker.OrderIDs = uniqueSorted(marker.OrderIDs)
		marker.Riders = uniqueSorted(marker.Riders)
		sort.Strings(marker.DPTimes)
		sort.Strings(marker.SLATimes)
		marker.Color = zoneColor(marker.Zone)

		markers = append(markers, marker)
	}
	return markers
}

func uniqueSorted(values []string) []string {
	sort.Strings(values)
	out := values[:0]
	for i, v := range values {
		if i > 0 && v == values[i-1] {
			continue
		}
		out = append(out, v)
	}
	return out
}
