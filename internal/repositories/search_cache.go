package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mediatrack/media-watchlist/internal/logger"
	"github.com/mediatrack/media-watchlist/internal/models"
	"github.com/redis/go-redis/v9"
)

// SearchCacheRepository caches normalized provider search results in Redis.
// Only aggregated search responses live here; users, items and tokens are
// always re-read from the store.
type SearchCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewSearchCacheRepository creates a new repository instance with the given TTL.
func NewSearchCacheRepository(client *redis.Client, expiration time.Duration) *SearchCacheRepository {
	return &SearchCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func searchKey(query, kind string) string {
	return fmt.Sprintf("search:%s:%s", kind, query)
}

// GetSearchResults returns cached results for (query, kind), or nil on a miss.
func (r *SearchCacheRepository) GetSearchResults(ctx context.Context, query, kind string) ([]models.SearchResult, error) {
	key := searchKey(query, kind)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		return nil, err
	}

	var results []models.SearchResult
	if err := json.Unmarshal([]byte(val), &results); err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		return nil, err
	}

	return results, nil
}

// SetSearchResults caches results for (query, kind) with the repository TTL.
func (r *SearchCacheRepository) SetSearchResults(ctx context.Context, query, kind string, results []models.SearchResult) error {
	key := searchKey(query, kind)

	data, err := json.Marshal(results)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"count", len(results),
		"error", err,
	)

	return err
}
