// Package rediscache reads the pre-computed report snapshots a scheduled job
// writes to redis, one JSON document per store.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dukaan-apps/duka_backend/internal/apperrors"
	"github.com/dukaan-apps/duka_backend/internal/core/domain"
	portsrepo "github.com/dukaan-apps/duka_backend/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

// snapshotKeyPrefix matches the key format the snapshot writer uses.
const snapshotKeyPrefix = "report:"

// reportCacheRepository implements the ReportCacheRepository interface.
type reportCacheRepository struct {
	client *redis.Client
}

// NewReportCacheRepository creates a redis-backed report cache reader.
func NewReportCacheRepository(client *redis.Client) portsrepo.ReportCacheRepository {
	return &reportCacheRepository{client: client}
}

// GetSnapshot fetches and decodes a store's snapshot. A missing key maps to
// apperrors.ErrNotFound so callers treat it as an ordinary cache miss.
func (r *reportCacheRepository) GetSnapshot(ctx context.Context, storeID string) (*domain.CachedReport, error) {
	raw, err := r.client.Get(ctx, snapshotKeyPrefix+storeID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error reading report snapshot: %w", err)
	}

	var snapshot domain.CachedReport
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, fmt.Errorf("error decoding report snapshot: %w", err)
	}
	return &snapshot, nil
}
