package ingest

import (
	"context"
	"errors"
	"testing"

	"github.com/piresc/ridermap/internal/pkg/metrics"
	"github.com/piresc/ridermap/internal/pkg/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPipeline(reg *metrics.Registry) *Pipeline {
	depot := models.DepotConfig{
		Name:         "MFC",
		Latitude:     testDepot.Latitude,
		Longitude:    testDepot.Longitude,
		RadiusMeters: 4000,
	}
	return NewPipeline(NewDecoder(1<<20), depot, reg)
}

func TestPipeline_Run(t *testing.T) {
	reg := metrics.NewRegistry()
	p := newTestPipeline(reg)
	content := []byte(thaiCSV + "A-3,bad,100.6,,,,,\n")

	dataset, err := p.Run(context.Background(), content, "orders.csv")

	require.NoError(t, err)
	assert.Equal(t, DatasetID("orders.csv", content), dataset.ID)
	assert.Len(t, dataset.ID, 64)
	assert.Equal(t, "csv", dataset.Format)
	assert.Equal(t, "utf-8", dataset.Encoding)
	assert.Equal(t, testDepot, dataset.Depot)
	assert.Equal(t, 3, dataset.InputRows)
	assert.Equal(t, 1, dataset.DroppedRows)
	require.Len(t, dataset.Orders, 2)

	first := dataset.Orders[0]
	assert.Equal(t, "A-1", first.OrderID)
	assert.Equal(t, models.TimeCheckPending, first.TimeCheckStatus)
	assert.Equal(t, "09:15", first.DPTime)
	assert.Equal(t, models.Zone4, first.Zone)
	assert.NotEmpty(t, first.Geohash)

	second := dataset.Orders[1]
	assert.Equal(t, models.TimeCheckChecked, second.TimeCheckStatus)
	assert.Equal(t, "09:45", second.DPTime)
	assert.Equal(t, models.Zone2, second.Zone)

	assert.Equal(t, 1.0, testutil.ToFloat64(reg.Uploads.WithLabelValues("csv", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.RowsDropped))
	assert.Equal(t, 2.0, testutil.ToFloat64(reg.OrdersLoaded))
}

func TestPipeline_TypedFailures(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  []byte
		sentinel error
		outcome  []string
	}{
		{"unsupported", "orders.pdf", []byte("x"), ErrUnsupportedFormat, []string{"unknown", "unsupported_format"}},
		{"schema", "orders.csv", []byte("Order ID,LON\nA-1,100.6\n"), ErrSchema, []string{"csv", "schema"}},
		{"codec", "orders.xlsb", []byte("x"), ErrMissingOptionalCodec, []string{"xlsb", "missing_optional_codec"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := metrics.NewRegistry()

			dataset, err := newTestPipeline(reg).Run(context.Background(), tt.content, tt.filename)

			assert.Nil(t, dataset)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.Equal(t, 1.0, testutil.ToFloat64(reg.Uploads.WithLabelValues(tt.outcome...)))
		})
	}
}

func TestPipeline_SchemaErrorListsFields(t *testing.T) {
	content := []byte("Order ID,LON,SLA STS,Rider Name,Time Check,DP Time\nA-1,100.6,,,,\n")

	_, err := newTestPipeline(nil).Run(context.Background(), content, "orders.csv")

	var schemaErr *SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, []string{"LAT", "SLA"}, schemaErr.MissingFields)
}

func TestPipeline_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestPipeline(nil).Run(ctx, []byte(thaiCSV), "orders.csv")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestDatasetID(t *testing.T) {
	content := []byte(thaiCSV)

	assert.Equal(t, DatasetID("a.csv", content), DatasetID("b.CSV", content))
	assert.NotEqual(t, DatasetID("a.csv", content), DatasetID("a.txt", content))
	assert.NotEqual(t, DatasetID("a.csv", content), DatasetID("a.csv", append(content, '\n')))
}
