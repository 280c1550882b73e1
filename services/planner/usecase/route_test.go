package usecase

import (
	"fmt"
	"strings"
	"testing"

	"github.com/piresc/ridermap/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mapsBase = "https://www.google.com/maps/dir"

func TestBuildRouteLink_CapsAtMaxWaypoints(t *testing.T) {
	var orders []models.Order
	for i := 15; i > 0; i-- {
		lat := float64(13700+i) / 1000
		// two orders per coordinate must still count once
		orders = append(orders,
			models.Order{OrderID: fmt.Sprintf("O-%d-a", i), Latitude: lat, Longitude: 100.6},
			models.Order{OrderID: fmt.Sprintf("O-%d-b", i), Latitude: lat, Longitude: 100.6},
		)
	}

	link := buildRouteLink(depot, orders, mapsBase, 11)

	assert.True(t, link.Truncated)
	assert.NotEmpty(t, link.Warning)
	assert.Equal(t, 15, link.Total)
	require.Len(t, link.Destinations, 11)
	assert.Equal(t, 13.701, link.Destinations[0].Latitude)

	path := strings.TrimSuffix(strings.TrimPrefix(link.URL, mapsBase+"/"), "?travelmode=driving")
	parts := strings.Split(path, "/")
	assert.Len(t, parts, 12, "origin plus 11 destinations")
	assert.Equal(t, "13.737929161400837,100.63687556823479", parts[0])
	assert.Equal(t, "13.701,100.6", parts[1])
}

func TestBuildRouteLink_ExactlyAtCap(t *testing.T) {
	var orders []models.Order
	for i := 0; i < 11; i++ {
		orders = append(orders, models.Order{Latitude: 13.7 + float64(i)/100, Longitude: 100.6})
	}

	link := buildRouteLink(depot, orders, mapsBase+"/", 11)

	assert.False(t, link.Truncated)
	assert.Empty(t, link.Warning)
	assert.Len(t, link.Destinations, 11)
	assert.True(t, strings.HasPrefix(link.URL, mapsBase+"/13.737929161400837,"))
	assert.True(t, strings.HasSuffix(link.URL, "?travelmode=driving"))
}

func TestBuildRouteLink_Empty(t *testing.T) {
	link := buildRouteLink(depot, nil, mapsBase, 11)

	assert.Empty(t, link.URL)
	assert.Equal(t, noOrdersNote, link.Message)
	assert.Empty(t, link.Destinations)
	assert.Equal(t, depot, link.Origin)
}

func TestDistinctLocations_SortedByLatThenLon(t *testing.T) {
	orders := []models.Order{
		{Latitude: 13.8, Longitude: 100.5},
		{Latitude: 13.7, Longitude: 100.9},
		{Latitude: 13.7, Longitude: 100.1},
		{Latitude: 13.8, Longitude: 100.5},
	}

	got := distinctLocations(orders)

	assert.Equal(t, []models.Location{
		{Latitude: 13.7, Longitude: 100.1},
		{Latitude: 13.7, Longitude: 100.9},
		{Latitude: 13.8, Longitude: 100.5},
	}, got)
}
