package ingest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		missing []string
	}{
		{
			name:    "all present",
			columns: RequiredColumns(),
		},
		{
			name:    "extra columns are fine",
			columns: append(RequiredColumns(), "Remark", "Hub"),
		},
		{
			name:    "missing LAT and SLA in declaration order",
			columns: []string{"SLA STS", "Order ID", "Rider Name", "LON", "Time Check", "DP Time"},
			missing: []string{"LAT", "SLA"},
		},
		{
			name:    "names are case sensitive",
			columns: []string{"order id", "LAT", "LON", "SLA STS", "Rider Name", "Time Check", "DP Time", "sla"},
			missing: []string{"Order ID", "SLA"},
		},
		{
			name:    "empty header",
			missing: RequiredColumns(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := &Table{Columns: tt.columns}

			got, err := Validate(table)

			if tt.missing == nil {
				require.NoError(t, err)
				assert.Same(t, table, got)
				return
			}
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrSchema)
			var schemaErr *SchemaError
			require.True(t, errors.As(err, &schemaErr))
			assert.Equal(t, tt.missing, schemaErr.MissingFields)
		})
	}
}

func TestSchemaError_Message(t *testing.T) {
	err := &SchemaError{MissingFields: []string{"LAT", "SLA"}}

	assert.Equal(t, "missing required columns: LAT, SLA", err.Error())
	assert.Equal(t, "schema", KindOf(err))
}

func TestHeaderNames(t *testing.T) {
	got := headerNames([]string{" Order ID ", "SLA", "", "SLA", "SLA"})

	assert.Equal(t, []string{"Order ID", "SLA", "Unnamed: 2", "SLA.1", "SLA.2"}, got)
}
