package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/piresc/ridermap/internal/pkg/logger"
	"github.com/piresc/ridermap/internal/pkg/metrics"
	"github.com/piresc/ridermap/internal/pkg/models"
)

// Pipeline runs decode, validate, normalize and enrich over one upload
type Pipeline struct {
	decoder *Decoder
	depot   models.DepotConfig
	metrics *metrics.Registry
}

// NewPipeline creates a pipeline. registry may be nil.
func NewPipeline(decoder *Decoder, depot models.DepotConfig, registry *metrics.Registry) *Pipeline {
	return &Pipeline{
		decoder: decoder,
		depot:   depot,
		metrics: registry,
	}
}

// DatasetID identifies an upload by its extension and content
func DatasetID(filename string, content []byte) string {
	format, _ := FormatFromFilename(filename)
	h := sha256.New()
	h.Write([]byte(format))
	h.Write([]byte{0})
	h.Write(content)
	return hex.EncodeToString(h.Sum(nil))
}

// Run turns an upload into an enriched dataset. Failures are *DecodeError or
// *SchemaError; the context is only checked between stages.
func (p *Pipeline) Run(ctx context.Context, content []byte, filename string) (*models.Dataset, error) {
	format, _ := FormatFromFilename(filename)
	dataset, err := p.run(ctx, content, filename)
	if err != nil {
		p.recordUpload(format, KindOf(err))
		logger.FromContext(ctx).Warn("Upload rejected",
			logger.Filename(filename),
			logger.String("kind", KindOf(err)),
			logger.Err(err))
		return nil, err
	}

	p.recordUpload(format, "success")
	if p.metrics != nil {
		p.metrics.RowsDropped.Add(float64(dataset.DroppedRows))
		p.metrics.OrdersLoaded.Add(float64(len(dataset.Orders)))
	}
	logger.FromContext(ctx).Info("Upload processed",
		logger.DatasetID(dataset.ID),
		logger.Filename(filename),
		logger.String("encoding", dataset.Encoding),
		logger.Int("input_rows", dataset.InputRows),
		logger.Int("dropped_rows", dataset.DroppedRows),
		logger.Int("orders", len(dataset.Orders)))
	return dataset, nil
}

func (p *Pipeline) run(ctx context.Context, content []byte, filename string) (*models.Dataset, error) {
	var table *Table
	err := p.stage("decode", func() (err error) {
		table, err = p.decoder.Decode(content, filename)
		return err
	})
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := p.stage("validate", func() (err error) {
		table, err = Validate(table)
		return err
	}); err != nil {
		return nil, err
	}

	var orders []models.Order
	var report NormalizeReport
	_ = p.stage("normalize", func() error {
		orders, report = Normalize(table)
		return nil
	})
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	_ = p.stage("enrich", func() error {
		orders = Enrich(orders, p.depot.Location(), p.depot.RadiusMeters)
		return nil
	})

	return &models.Dataset{
		ID:          DatasetID(filename, content),
		Filename:    filename,
		Format:      string(table.Format),
		Encoding:    table.Encoding,
		Depot:       p.depot.Location(),
		InputRows:   report.InputRows,
		DroppedRows: report.DroppedRows,
		Orders:      orders,
		CreatedAt:   models.Now(),
	}, nil
}

func (p *Pipeline) stage(name string, fn func() error) error {
	start := time.Now()
	err := fn()
	if p.metrics != nil {
		p.metrics.PipelineDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}
	return err
}

func (p *Pipeline) recordUpload(format Format, outcome string) {
	if p.metrics == nil {
		return
	}
	label := string(format)
	if label == "" {
		label = "unknown"
	}
	p.metrics.Uploads.WithLabelValues(label, outcome).Inc()
}
