package planner

import (
	"context"
	"errors"

	"github.com/piresc/ridermap/internal/pkg/models"
)

// ErrDatasetNotFound is returned for unknown or expired dataset IDs
var ErrDatasetNotFound = errors.New("dataset not found")

// PlannerUC defines the interface for route planning business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/ridermap/services/planner PlannerUC,DatasetPipeline
type PlannerUC interface {
	UploadDataset(ctx context.Context, filename string, content []byte) (*models.Dataset, error)
	GetDataset(ctx context.Context, datasetID string) (*models.Dataset, error)
	InvalidateDataset(ctx context.Context, datasetID string) error
	FilterOrders(ctx context.Context, datasetID string, filter models.OrderFilter) (*models.FilterResult, error)
	BuildRoute(ctx context.Context, datasetID string, filter models.OrderFilter) (*models.RouteLink, error)
	BuildMapView(ctx context.Context, datasetID string, filter models.OrderFilter) (*models.MapView, error)
}

// DatasetPipeline turns an upload into an enriched dataset
type DatasetPipeline interface {
	Run(ctx context.Context, content []byte, filename string) (*models.Dataset, error)
}
