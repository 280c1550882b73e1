package models

import "time"

// Dataset is the enriched, immutable result of one upload
type Dataset struct {
	ID          string    `json:"id" msgpack:"id"`
	Filename    string    `json:"filename" msgpack:"filename"`
	Format      string    `json:"format" msgpack:"format"`
	Encoding    string    `json:"encoding,omitempty" msgpack:"encoding"`
	Depot       Location  `json:"depot" msgpack:"depot"`
	InputRows   int       `json:"input_rows" msgpack:"input_rows"`
	DroppedRows int       `json:"dropped_rows" msgpack:"dropped_rows"`
	Orders      []Order   `json:"-" msgpack:"orders"`
	CreatedAt   time.Time `json:"created_at" msgpack:"created_at"`
}

// DatasetSummary is the dataset without its orders
type DatasetSummary struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	Format      string    `json:"format"`
	Encoding    string    `json:"encoding,omitempty"`
	Depot       Location  `json:"depot"`
	InputRows   int       `json:"input_rows"`
	DroppedRows int       `json:"dropped_rows"`
	OrderCount  int       `json:"order_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// Summary returns the dataset metadata
func (d *Dataset) Summary() DatasetSummary {
	return DatasetSummary{
		ID:          d.ID,
		Filename:    d.Filename,
		Format:      d.Format,
		Encoding:    d.Encoding,
		Depot:       d.Depot,
		InputRows:   d.InputRows,
		DroppedRows: d.DroppedRows,
		OrderCount:  len(d.Orders),
		CreatedAt:   d.CreatedAt,
	}
}
