package cron

import (
	"ritmo/config"
	"ritmo/services/explore"
	"ritmo/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// FeedRefresher periodically re-materializes the default explore feed into
// the cache so cold requests can be served without touching MongoDB.
type FeedRefresher struct {
	ExploreService explore.ExploreService
	scheduler      *cron.Cron
}

// Start schedules the refresh job per FEED_REFRESH_SCHEDULE and runs one
// refresh immediately so the cache is warm from boot.
func (f *FeedRefresher) Start() error {
	spec := config.AppConfig.FeedRefreshSchedule
	if spec == "" {
		spec = "@every 1h"
	}

	f.scheduler = cron.New()
	if _, err := f.scheduler.AddFunc(spec, f.refresh); err != nil {
		return err
	}
	f.scheduler.Start()

	go f.refresh()
	return nil
}

// Stop halts the scheduler and waits for a running refresh to finish.
func (f *FeedRefresher) Stop() {
	if f.scheduler != nil {
		<-f.scheduler.Stop().Done()
	}
}

func (f *FeedRefresher) refresh() {
	items, err := f.ExploreService.RefreshDefaultFeed()
	if err != nil {
		utils.GetLogger().Error("Feed refresh failed", zap.Error(err))
		return
	}
	utils.GetLogger().Info("Feed refreshed", zap.Int("items", len(items)))
}
