package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/piresc/ridermap/internal/pkg/ingest"
	"github.com/piresc/ridermap/internal/pkg/logger"
	"github.com/piresc/ridermap/internal/pkg/metrics"
	"github.com/piresc/ridermap/internal/pkg/models"
	"github.com/piresc/ridermap/services/planner"
)

// plannerUC implements the planner.PlannerUC interface
type plannerUC struct {
	cfg         *models.Config
	datasetRepo planner.DatasetRepo
	pipeline    planner.DatasetPipeline
	metrics     *metrics.Registry
}

// NewPlannerUC creates a new planner use case. registry may be nil.
func NewPlannerUC(
	cfg *models.Config,
	datasetRepo planner.DatasetRepo,
	pipeline planner.DatasetPipeline,
	registry *metrics.Registry,
) (planner.PlannerUC, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	return &plannerUC{
		cfg:         cfg,
		datasetRepo: datasetRepo,
		pipeline:    pipeline,
		metrics:     registry,
	}, nil
}

// UploadDataset returns the cached dataset for identical content, otherwise
// runs the pipeline and caches the result
func (uc *plannerUC) UploadDataset(ctx context.Context, filename string, content []byte) (*models.Dataset, error) {
	datasetID := ingest.DatasetID(filename, content)

	cached, err := uc.datasetRepo.GetDataset(ctx, datasetID)
	switch {
	case err == nil:
		uc.cacheHit()
		logger.FromContext(ctx).Debug("Dataset served from cache", logger.DatasetID(datasetID))
		return cached, nil
	case !errors.Is(err, planner.ErrDatasetNotFound):
		logger.FromContext(ctx).Warn("Dataset cache lookup failed, recomputing",
			logger.DatasetID(datasetID),
			logger.Err(err))
	}
	uc.cacheMiss()

	dataset, err := uc.pipeline.Run(ctx, content, filename)
	if err != nil {
		return nil, err
	}

	if err := uc.datasetRepo.SaveDataset(ctx, dataset, uc.cacheTTL()); err != nil {
		logger.FromContext(ctx).Error("Failed to cache dataset",
			logger.DatasetID(dataset.ID),
			logger.Err(err))
		return nil, fmt.Errorf("failed to cache dataset: %w", err)
	}
	return dataset, nil
}

// GetDataset returns a cached dataset
func (uc *plannerUC) GetDataset(ctx context.Context, datasetID string) (*models.Dataset, error) {
	dataset, err := uc.datasetRepo.GetDataset(ctx, datasetID)
	if err != nil {
		if errors.Is(err, planner.ErrDatasetNotFound) {
			uc.cacheMiss()
		}
		return nil, err
	}
	uc.cacheHit()
	return dataset, nil
}

// InvalidateDataset drops a dataset so the next upload recomputes it
func (uc *plannerUC) InvalidateDataset(ctx context.Context, datasetID string) error {
	if err := uc.datasetRepo.DeleteDataset(ctx, datasetID); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("Dataset invalidated", logger.DatasetID(datasetID))
	return nil
}

// FilterOrders applies the cascading facets and sorts the result
func (uc *plannerUC) FilterOrders(ctx context.Context, datasetID string, filter models.OrderFilter) (*models.FilterResult, error) {
	dataset, err := uc.GetDataset(ctx, datasetID)
	if err != nil {
		return nil, err
	}

	facets, orders := applyFilter(dataset.Orders, filter)
	return &models.FilterResult{
		DatasetID:    dataset.ID,
		Facets:       facets,
		Orders:       orders,
		StatusCounts: countStatuses(orders),
	}, nil
}

// BuildRoute builds the directions link for the filtered orders
func (uc *plannerUC) BuildRoute(ctx context.Context, datasetID string, filter models.OrderFilter) (*models.RouteLink, error) {
	dataset, err := uc.GetDataset(ctx, datasetID)
	if err != nil {
		return nil, err
	}

	_, orders := applyFilter(dataset.Orders, filter)
	link := buildRouteLink(dataset.Depot, orders, uc.cfg.Planner.DirectionsBaseURL, uc.cfg.Planner.MaxWaypoints)
	if link.Truncated {
		if uc.metrics != nil {
			uc.metrics.RouteTruncated.Inc()
		}
		logger.FromContext(ctx).Info("Route truncated",
			logger.DatasetID(datasetID),
			logger.Int("destinations", link.Total),
			logger.Int("max_waypoints", uc.cfg.Planner.MaxWaypoints))
	}
	return link, nil
}

// BuildMapView groups the filtered orders into one marker per coordinate
func (uc *plannerUC) BuildMapView(ctx context.Context, datasetID string, filter models.OrderFilter) (*models.MapView, error) {
	dataset, err := uc.GetDataset(ctx, datasetID)
	if err != nil {
		return nil, err
	}

	_, orders := applyFilter(dataset.Orders, filter)
	return &models.MapView{
		Depot:        dataset.Depot,
		DepotLabel:   uc.cfg.Depot.Name,
		RadiusMeters: uc.cfg.Depot.RadiusMeters,
		Markers:      buildMarkers(orders),
	}, nil
}

func (uc *plannerUC) cacheTTL() time.Duration {
	return time.Duration(uc.cfg.Planner.CacheTTLSeconds) * time.Second
}

func (uc *plannerUC) cacheHit() {
	if uc.metrics != nil {
		uc.metrics.CacheHits.Inc()
	}
}

func (uc *plannerUC) cacheMiss() {
	if uc.metrics != nil {
		uc.metrics.CacheMisses.Inc()
	}
}
