package usecase

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/piresc/ridermap/internal/pkg/models"
)

const (
	travelMode   = "driving"
	noOrdersNote = "No orders selected to build a route"
)

// distinctLocations returns each coordinate once, sorted by latitude then longitude
func distinctLocations(orders []models.Order) []models.Location {
	seen := make(map[models.Location]struct{}, len(orders))
	locations := make([]models.Location, 0, len(orders))
	for _, o := range orders {
		loc := o.Location()
		if _, ok := seen[loc]; ok {
			continue
		}
		seen[loc] = struct{}{}
		locations = append(locations, loc)
	}
	sort.Slice(locations, func(i, j int) bool {
		if locations[i].Latitude != locations[j].Latitude {
			return locations[i].Latitude < locations[j].Latitude
		}
		return locations[i].Longitude < locations[j].Longitude
	})
	return locations
}

func formatCoordinate(loc models.Location) string {
	return strconv.FormatFloat(loc.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(loc.Longitude, 'f', -1, 64)
}

// buildRouteLink builds a directions URL from the depot through the first
// maxWaypoints distinct destinations
func buildRouteLink(depot models.Location, orders []models.Order, baseURL string, maxWaypoints int) *models.RouteLink {
	destinations := distinctLocations(orders)
	link := &models.RouteLink{
		Origin:       depot,
		Destinations: destinations,
		Total:        len(destinations),
	}
	if len(destinations) == 0 {
		link.Message = noOrdersNote
		return link
	}

	if maxWaypoints > 0 && len(destinations) > maxWaypoints {
		link.Truncated = true
		link.Warning = fmt.Sprintf("Route has %d destinations, only the first %d are included", len(destinations), maxWaypoints)
		link.Destinations = destinations[:maxWaypoints]
	}

	path := make([]string, 0, len(link.Destinations)+1)
	path = append(path, formatCoordinate(depot))
	for _, d := range link.Destinations {
		path = append(path, formatCoordinate(d))
	}
	link.URL = fmt.Sprintf("%s/%s?travelmode=%s", strings.TrimRight(baseURL, "/"), strings.Join(path, "/"), travelMode)
	return link
}
