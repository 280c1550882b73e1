package models

// TimeCheckStatus is the derived state of an order's time check
type TimeCheckStatus string

const (
	TimeCheckChecked TimeCheckStatus = "checked"
	TimeCheckPending TimeCheckStatus = "pending"
	TimeCheckNotYet  TimeCheckStatus = "not_yet"
)

// Zone is the directional quadrant an order falls into, seen from the depot
type Zone string

const (
	Zone1 Zone = "Zone 1"
	Zone2 Zone = "Zone 2"
	Zone3 Zone = "Zone 3"
	Zone4 Zone = "Zone 4"
)

// Order is one validated, normalized and enriched delivery order
type Order struct {
	OrderID         string          `json:"order_id" msgpack:"order_id"`
	Latitude        float64         `json:"lat" msgpack:"lat"`
	Longitude       float64         `json:"lon" msgpack:"lon"`
	RiderName       string          `json:"rider_name" msgpack:"rider_name"`
	SLAStatus       string          `json:"sla_status" msgpack:"sla_status"`
	TimeCheckRaw    string          `json:"time_check" msgpack:"time_check"`
	TimeCheckStatus TimeCheckStatus `json:"time_check_status" msgpack:"time_check_status"`
	DPTime          string          `json:"dp_time" msgpack:"dp_time"`
	SLATime         string          `json:"sla" msgpack:"sla"`
	Bearing         float64         `json:"bearing" msgpack:"bearing"`
	Zone            Zone            `json:"zone" msgpack:"zone"`
	DistanceKm      float64         `json:"distance_km" msgpack:"distance_km"`
	WithinRadius    bool            `json:"within_radius" msgpack:"within_radius"`
	Geohash         string          `json:"geohash" msgpack:"geohash"`
}

// Location returns the order's coordinates
func (o Order) Location() Location {
	return Location{Latitude: o.Latitude, Longitude: o.Longitude}
}
