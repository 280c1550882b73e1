package planner

import (
	"context"
	"time"

	"github.com/piresc/ridermap/internal/pkg/models"
)

// DatasetRepo defines the interface for dataset cache operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/ridermap/services/planner DatasetRepo
type DatasetRepo interface {
	SaveDataset(ctx context.Context, dataset *models.Dataset, ttl time.Duration) error
	GetDataset(ctx context.Context, datasetID string) (*models.Dataset, error)
	DeleteDataset(ctx context.Context, datasetID string) error
}
