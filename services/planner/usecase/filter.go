package usecase

import (
	"math"
	"sort"
	"strconv"

	"github.com/piresc/ridermap/internal/pkg/models"
)

// applyFilter narrows orders facet by facet. Each facet's options come from
// the orders left after the previous facets, so choices always cascade from
// Order ID to Rider to Time Check to Zone. The input slice is never modified.
func applyFilter(all []models.Order, filter models.OrderFilter) (models.FacetOptions, []models.Order) {
	var facets models.FacetOptions
	orders := append([]models.Order(nil), all...)

	facets.OrderIDs = options(orders, func(o models.Order) string { return o.OrderID })
	orders = keep(orders, filter.OrderIDs, func(o models.Order) string { return o.OrderID })

	facets.Riders = options(orders, func(o models.Order) string { return o.RiderName })
	orders = keep(orders, filter.Riders, func(o models.Order) string { return o.RiderName })

	facets.TimeChecks = options(orders, func(o models.Order) string { return o.TimeCheckRaw })
	orders = keep(orders, filter.TimeChecks, func(o models.Order) string { return o.TimeCheckRaw })

	facets.Zones = options(orders, func(o models.Order) string { return string(o.Zone) })
	orders = keep(orders, filter.Zones, func(o models.Order) string { return string(o.Zone) })

	sortOrders(orders)
	return facets, orders
}

// options returns the sorted unique values of a field
func options(orders []models.Order, field func(models.Order) string) []string {
	seen := make(map[string]struct{}, len(orders))
	values := make([]string, 0)
	for _, o := range orders {
		v := field(o)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool { return lessValue(values[i], values[j]) })
	return values
}

// lessValue compares numerically when both values are numbers, so "9" comes
// before "10", and falls back to plain string order otherwise.
func lessValue(a, b string) bool {
	x, errA := strconv.ParseFloat(a, 64)
	y, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil && !math.IsNaN(x) && !math.IsNaN(y) && x != y {
		return x < y
	}
	return a < b
}

// keep filters orders to the selected values. No selection keeps everything.
func keep(orders []models.Order, selected []string, field func(models.Order) string) []models.Order {
	if len(selected) == 0 {
		return orders
	}
	want := make(map[string]struct{}, len(selected))
	for _, s := range selected {
		want[s] = struct{}{}
	}

	kept := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if _, ok := want[field(o)]; ok {
			kept = append(kept, o)
		}
	}
	return kept
}

// sortOrders orders by SLA clock with blanks last, then by Order ID
func sortOrders(orders []models.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		a, b := orders[i], orders[j]
		if a.SLATime != b.SLATime {
			if a.SLATime == "" || b.SLATime == "" {
				return b.SLATime == ""
			}
			return a.SLATime < b.SLATime
		}
		return lessValue(a.OrderID, b.OrderID)
	})
}

var statusOrder = map[models.TimeCheckStatus]int{
	models.TimeCheckChecked: 0,
	models.TimeCheckPending: 1,
	models.TimeCheckNotYet:  2,
}

// countStatuses tallies time check states, most frequent first
func countStatuses(orders []models.Order) []models.StatusCount {
	counts := make(map[models.TimeCheckStatus]int)
	for _, o := range orders {
		counts[o.TimeCheckStatus]++
	}

	result := make([]models.StatusCount, 0, len(counts))
	for status, count := range counts {
		result = append(result, models.StatusCount{Status: status, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return statusOrder[result[i].Status] < statusOrder[result[j].Status]
	})
	return result
}
