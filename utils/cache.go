package utils

import (
	"context"
	"sync"
	"time"

	"ritmo/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const redisDialTimeout = 2 * time.Second

var (
	cacheOnce   sync.Once
	cacheClient *redis.Client

	authOnce   sync.Once
	authClient *redis.Client
)

// newRedisClient builds a client for one logical Redis DB on the shared
// instance configured in AppConfig and verifies the connection once.
func newRedisClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisDialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		GetLogger().Fatal("Redis unreachable",
			zap.String("addr", config.AppConfig.RedisAddr), zap.Int("db", db), zap.Error(err))
	}
	return client
}

// GetCacheClient returns the shared client for feed and attendance caching.
func GetCacheClient() *redis.Client {
	cacheOnce.Do(func() {
		cacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
	})
	return cacheClient
}

// GetAuthCacheClient returns the client dedicated to auth caching.
func GetAuthCacheClient() *redis.Client {
	authOnce.Do(func() {
		authClient = newRedisClient(config.AppConfig.RedisAuthDB)
	})
	return authClient
}

// InitCaches eagerly connects both Redis clients so a bad address fails the
// process at boot instead of on the first cached request.
func InitCaches() {
	GetCacheClient()
	GetAuthCacheClient()
}
