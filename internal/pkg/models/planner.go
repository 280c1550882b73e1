package models

// OrderFilter selects orders by facet. An empty facet means no filtering on it.
type OrderFilter struct {
	OrderIDs   []string `json:"order_ids,omitempty"`
	Riders     []string `json:"riders,omitempty"`
	TimeChecks []string `json:"time_checks,omitempty"`
	Zones      []string `json:"zones,omitempty"`
}

// FacetOptions lists the selectable values of each facet
type FacetOptions struct {
	OrderIDs   []string `json:"order_ids"`
	Riders     []string `json:"riders"`
	TimeChecks []string `json:"time_checks"`
	Zones      []string `json:"zones"`
}

// StatusCount is the number of filtered orders in one time check state
type StatusCount struct {
	Status TimeCheckStatus `json:"status"`
	Count  int             `json:"count"`
}

// FilterResult is the filtered view of a dataset
type FilterResult struct {
	DatasetID    string        `json:"dataset_id"`
	Facets       FacetOptions  `json:"facets"`
	Orders       []Order       `json:"orders"`
	StatusCounts []StatusCount `json:"status_counts"`
}

// RouteLink is a directions link over the filtered destinations
type RouteLink struct {
	URL          string     `json:"url,omitempty"`
	Origin       Location   `json:"origin"`
	Destinations []Location `json:"destinations"`
	Total        int        `json:"total_destinations"`
	Truncated    bool       `json:"truncated"`
	Warning      string     `json:"warning,omitempty"`
	Message      string     `json:"message,omitempty"`
}

// MapMarker is one pin on the map, grouping every order at the same coordinate
type MapMarker struct {
	Location Location `json:"location"`
	Geohash  string   `json:"geohash"`
	OrderIDs []string `json:"order_ids"`
	Riders   []string `json:"riders"`
	DPTimes  []string `json:"dp_times"`
	SLATimes []string `json:"sla_times"`
	Zone     Zone     `json:"zone"`
	Color    string   `json:"color"`
}

// MapView is everything the map widget needs to render
type MapView struct {
	Depot        Location    `json:"depot"`
	DepotLabel   string      `json:"depot_label"`
	RadiusMeters float64     `json:"radius_meters"`
	Markers      []MapMarker `json:"markers"`
}
