package explore

import (
	"context"
	"encoding/json"
	"time"

	"ritmo/models"
	"ritmo/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// FeedStore is the cache the materialized default feed lives in.
type FeedStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// RedisFeedStore adapts a Redis client to FeedStore.
type RedisFeedStore struct {
	Client *redis.Client
}

func (s *RedisFeedStore) Get(ctx context.Context, key string) (string, error) {
	return s.Client.Get(ctx, key).Result()
}

func (s *RedisFeedStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.Client.Set(ctx, key, value, ttl).Err()
}

// DefaultFeed serves the unfiltered feed from the cache when a refreshed copy
// is present and rebuilds it otherwise. Unparseable cached payloads are
// treated as misses.
func (s *DefaultExploreService) DefaultFeed() ([]models.ExploreItem, error) {
	if s.Feed != nil {
		raw, err := s.Feed.Get(context.Background(), utils.FeedCacheKey)
		if err == nil && raw != "" {
			var items []models.ExploreItem
			jsonErr := json.Unmarshal([]byte(raw), &items)
			if jsonErr == nil {
				return items, nil
			}
			utils.GetLogger().Warn("Discarding malformed cached feed", zap.Error(jsonErr))
		}
	}
	return s.RefreshDefaultFeed()
}

// RefreshDefaultFeed rebuilds the unfiltered feed and stores it in the cache.
func (s *DefaultExploreService) RefreshDefaultFeed() ([]models.ExploreItem, error) {
	items, err := s.Explore(models.ExploreFilter{})
	if err != nil {
		return nil, err
	}

	if s.Feed != nil {
		payload, marshalErr := json.Marshal(items)
		if marshalErr != nil {
			utils.GetLogger().Warn("Failed to encode feed for caching", zap.Error(marshalErr))
			return items, nil
		}
		if setErr := s.Feed.Set(context.Background(), utils.FeedCacheKey, payload, utils.FeedCacheTTL); setErr != nil {
			utils.GetLogger().Warn("Failed to cache feed", zap.Error(setErr))
		}
	}
	return items, nil
}
