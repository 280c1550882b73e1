package ingest

// Column names of the upload template
const (
	ColumnOrderID   = "Order ID"
	ColumnLatitude  = "LAT"
	ColumnLongitude = "LON"
	ColumnSLAStatus = "SLA STS"
	ColumnRider     = "Rider Name"
	ColumnTimeCheck = "Time Check"
	ColumnDPTime    = "DP Time"
	ColumnSLA       = "SLA"
)

// RequiredColumns returns the columns every upload must carry, in declaration order
func RequiredColumns() []string {
	return []string{
		ColumnOrderID,
		ColumnLatitude,
		ColumnLongitude,
		ColumnSLAStatus,
		ColumnRider,
		ColumnTimeCheck,
		ColumnDPTime,
		ColumnSLA,
	}
}

// Validate checks the header for every required column. Names match exactly.
func Validate(table *Table) (*Table, error) {
	var missing []string
	for _, column := range RequiredColumns() {
		if !table.HasColumn(column) {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{MissingFields: missing}
	}
	return table, nil
}
