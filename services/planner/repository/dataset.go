package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/ridermap/internal/pkg/constants"
	"github.com/piresc/ridermap/internal/pkg/database"
	"github.com/piresc/ridermap/internal/pkg/models"
	"github.com/piresc/ridermap/services/planner"
	"github.com/vmihailenco/msgpack/v5"
)

type datasetRepo struct {
	redisClient *database.RedisClient
}

// NewDatasetRepository creates a Redis backed dataset cache
func NewDatasetRepository(redisClient *database.RedisClient) planner.DatasetRepo {
	return &datasetRepo{
		redisClient: redisClient,
	}
}

// SaveDataset stores the msgpack encoded dataset, expiring after ttl
func (r *datasetRepo) SaveDataset(ctx context.Context, dataset *models.Dataset, ttl time.Duration) error {
	payload, err := msgpack.Marshal(dataset)
	if err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}

	key := fmt.Sprintf(constants.KeyDataset, dataset.ID)
	if err := r.redisClient.Set(ctx, key, payload, ttl); err != nil {
		return fmt.Errorf("failed to store dataset: %w", err)
	}
	return nil
}

// GetDataset loads a cached dataset
func (r *datasetRepo) GetDataset(ctx context.Context, datasetID string) (*models.Dataset, error) {
	key := fmt.Sprintf(constants.KeyDataset, datasetID)
	payload, err := r.redisClient.GetBytes(ctx, key)
	if errors.Is(err, redis.Nil) {
		return nil, planner.ErrDatasetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get dataset: %w", err)
	}

	var dataset models.Dataset
	if err := msgpack.Unmarshal(payload, &dataset); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}
	return &dataset, nil
}

// DeleteDataset drops a cached dataset
func (r *datasetRepo) DeleteDataset(ctx context.Context, datasetID string) error {
	key := fmt.Sprintf(constants.KeyDataset, datasetID)
	existed, err := r.redisClient.Delete(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to delete dataset: %w", err)
	}
	if !existed {
		return planner.ErrDatasetNotFound
	}
	return nil
}
