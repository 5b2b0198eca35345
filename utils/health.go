package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const (
	healthCheckInterval = 60 * time.Second
	healthPingTimeout   = 5 * time.Second
)

// HealthStatus is the latest snapshot of the backing stores, served on
// /health so operators can tell a dead dependency from a dead process.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Cache     bool      `json:"cache"`
	AuthCache bool      `json:"authCache"`
	CheckedAt time.Time `json:"checkedAt"`
}

func (s HealthStatus) healthy() bool {
	return s.Mongo && s.Cache && s.AuthCache
}

var (
	lastHealth   HealthStatus
	lastHealthMu sync.RWMutex
)

// GetHealthStatus returns the most recent snapshot. The zero value means no
// check has completed yet.
func GetHealthStatus() HealthStatus {
	lastHealthMu.RLock()
	defer lastHealthMu.RUnlock()
	return lastHealth
}

// StartHealthMonitor pings MongoDB and both Redis DBs on a fixed interval and
// keeps the snapshot current. Degradations are logged once per check.
func StartHealthMonitor(mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(healthCheckInterval)
		defer ticker.Stop()

		for range ticker.C {
			status := checkDependencies(mongoClient)

			lastHealthMu.Lock()
			lastHealth = status
			lastHealthMu.Unlock()

			if !status.healthy() {
				GetLogger().Warn("Dependency health degraded",
					zap.Bool("mongo", status.Mongo),
					zap.Bool("cache", status.Cache),
					zap.Bool("authCache", status.AuthCache))
			}
		}
	}()
}

func checkDependencies(mongoClient *mongo.Client) HealthStatus {
	ctx, cancel := context.WithTimeout(context.Background(), healthPingTimeout)
	defer cancel()

	return HealthStatus{
		Mongo:     mongoClient != nil && mongoClient.Ping(ctx, nil) == nil,
		Cache:     pingRedis(ctx, GetCacheClient()),
		AuthCache: pingRedis(ctx, GetAuthCacheClient()),
		CheckedAt: time.Now(),
	}
}

func pingRedis(ctx context.Context, client *redis.Client) bool {
	return client != nil && client.Ping(ctx).Err() == nil
}
