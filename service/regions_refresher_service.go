package services

import (
	"context"
	"log/slog"
	"time"

	"openmat-server/dao/cache"
	"openmat-server/models"
	"openmat-server/util"
)

// RegionsRefresherService keeps region caches warm by running sync passes
// through the ScheduleSyncService.
type RegionsRefresherService struct {
	syncService *ScheduleSyncService
	cacheDao    *cache.ScheduleCacheDAO
	log         *slog.Logger
}

// NewRegionsRefresherService constructs a new refresher with dependencies.
func NewRegionsRefresherService(
	syncService *ScheduleSyncService,
	cacheDao *cache.ScheduleCacheDAO,
) *RegionsRefresherService {
	return &RegionsRefresherService{
		syncService: syncService,
		cacheDao:    cacheDao,
		log:         util.Logger("RegionsRefresherService"),
	}
}

// RefreshAll loads every known region, fetching those whose cache is stale.
// It returns the number of venues now available per region.
func (rr *RegionsRefresherService) RefreshAll(ctx context.Context) map[models.Region]int {
	counts := make(map[models.Region]int, len(models.AllRegions))
	for _, region := range models.AllRegions {
		if ctx.Err() != nil {
			break
		}
		venues := rr.syncService.GetGymData(ctx, region, false)
		counts[region] = len(venues)
		rr.log.Info("Region loaded", "region", region, "venues", len(venues))
	}
	return counts
}

// RefreshCached re-fetches the regions that already have a cache entry and
// have gone stale. Regions never requested stay uncached.
func (rr *RegionsRefresherService) RefreshCached(ctx context.Context) ([]models.Region, error) {
	regions, err := rr.cacheDao.ListCachedRegions(ctx)
	if err != nil {
		rr.log.Error("Error listing cached regions", "err", err)
		return nil, err
	}
	rr.log.Info("Found cached regions", "count", len(regions))

	var refreshed []models.Region
	for _, region := range regions {
		if ctx.Err() != nil {
			break
		}
		if !rr.syncService.IsDataStale(ctx, region) {
			continue
		}
		rr.syncService.GetGymData(ctx, region, false)
		refreshed = append(refreshed, region)
	}
	return refreshed, nil
}

// StartPeriodicJob runs RefreshCached every interval until ctx is done.
func (rr *RegionsRefresherService) StartPeriodicJob(ctx context.Context, interval time.Duration) {
	go rr.startPeriodicJob(ctx, interval)
}

func (rr *RegionsRefresherService) startPeriodicJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			rr.log.Info("Periodic refresher stopped")
			return
		case <-ticker.C:
			rr.log.Info("Running periodic regions refresher job")
			if _, err := rr.RefreshCached(ctx); err != nil {
				rr.log.Error("Periodic refresh failed", "err", err)
			}
		}
	}
}
