package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"openmat-server/config"
	"openmat-server/db"
	"openmat-server/models"
	"openmat-server/models/venue"
	"openmat-server/util"
)

// SCHEDULE_CACHE_KEY_FORMAT namespaces one record per region.
const SCHEDULE_CACHE_KEY_FORMAT = config.CACHE_KEY_PREFIX + ":%s"

// ScheduleCacheDAO keeps one versioned, timestamped schedule record per
// region. It does no locking of its own.
type ScheduleCacheDAO struct {
	client  db.KeyValueStore
	now     func() time.Time
	ttl     time.Duration
	version string
	log     *slog.Logger
}

// NewScheduleCacheDAO creates a DAO using the current schema version and TTL.
func NewScheduleCacheDAO(client db.KeyValueStore) *ScheduleCacheDAO {
	return &ScheduleCacheDAO{
		client:  client,
		now:     time.Now,
		ttl:     config.CACHE_TTL,
		version: config.CACHE_SCHEMA_VERSION,
		log:     util.Logger("ScheduleCacheDAO"),
	}
}

// WithClock replaces the time source, for tests.
func (dao *ScheduleCacheDAO) WithClock(now func() time.Time) *ScheduleCacheDAO {
	dao.now = now
	return dao
}

// WithVersion replaces the expected schema version, for tests.
func (dao *ScheduleCacheDAO) WithVersion(version string) *ScheduleCacheDAO {
	dao.version = version
	return dao
}

// Now is the DAO's current time.
func (dao *ScheduleCacheDAO) Now() time.Time {
	return dao.now()
}

func cacheKey(region models.Region) string {
	return fmt.Sprintf(SCHEDULE_CACHE_KEY_FORMAT, region)
}

// Get returns the stored entry for region, whatever its age or version.
// A missing record, or one that no longer decodes, returns nil, nil.
func (dao *ScheduleCacheDAO) Get(ctx context.Context, region models.Region) (*models.CacheEntry, error) {
	key := cacheKey(region)
	str, err := dao.client.Get(ctx, key)
	if errors.Is(err, db.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule cache for %s: %w", region, err)
	}

	var entry models.CacheEntry
	if err := json.Unmarshal([]byte(str), &entry); err != nil {
		dao.log.Warn("Discarding undecodable cache record", "region", region, "key", key, "err", err)
		return nil, nil
	}
	return &entry, nil
}

// Set replaces region's record with venues stamped with the current time and
// schema version.
func (dao *ScheduleCacheDAO) Set(ctx context.Context, region models.Region, venues []venue.Venue) error {
	if venues == nil {
		venues = []venue.Venue{}
	}
	entry := models.CacheEntry{
		Data:      venues,
		Timestamp: dao.now().UnixMilli(),
		Region:    region,
		Version:   dao.version,
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal schedule cache for %s: %w", region, err)
	}
	if err := dao.client.Set(ctx, cacheKey(region), string(data)); err != nil {
		return fmt.Errorf("failed to set schedule cache for %s: %w", region, err)
	}
	dao.log.Debug("Cached schedule", "region", region, "venues", len(venues))
	return nil
}

// Clear removes region's record, or every known region's record when region
// is nil.
func (dao *ScheduleCacheDAO) Clear(ctx context.Context, region *models.Region) error {
	var keys []string
	if region != nil {
		keys = []string{cacheKey(*region)}
	} else {
		for _, r := range models.AllRegions {
			keys = append(keys, cacheKey(r))
		}
	}
	if err := dao.client.Del(ctx, keys...); err != nil {
		return fmt.Errorf("failed to clear schedule cache %s: %w", strings.Join(keys, ","), err)
	}
	dao.log.Info("Cleared schedule cache", "keys", keys)
	return nil
}

// IsStale reports whether region needs a fetch: no record, a record from
// another schema version, or one older than the TTL. A storage failure
// counts as stale.
func (dao *ScheduleCacheDAO) IsStale(ctx context.Context, region models.Region) bool {
	entry, err := dao.Get(ctx, region)
	if err != nil {
		dao.log.Error("Cache read failed, treating as stale", "region", region, "err", err)
		return true
	}
	return dao.EntryIsStale(entry)
}

// EntryIsStale applies the staleness rules to an entry already read.
func (dao *ScheduleCacheDAO) EntryIsStale(entry *models.CacheEntry) bool {
	if entry == nil {
		return true
	}
	if entry.Version != dao.version {
		return true
	}
	return entry.Age(dao.now()) > dao.ttl
}

// Status reports whether region has a record and how old it is.
func (dao *ScheduleCacheDAO) Status(ctx context.Context, region models.Region) models.CacheStatus {
	entry, err := dao.Get(ctx, region)
	if err != nil || entry == nil {
		return models.CacheStatus{}
	}
	age := entry.Age(dao.now())
	return models.CacheStatus{HasCache: true, Age: age, AgeMS: age.Milliseconds()}
}

// ListCachedRegions returns the regions that currently have a record.
func (dao *ScheduleCacheDAO) ListCachedRegions(ctx context.Context) ([]models.Region, error) {
	keys, err := dao.client.Keys(ctx, fmt.Sprintf(SCHEDULE_CACHE_KEY_FORMAT, "*"))
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule cache keys: %w", err)
	}
	prefix := fmt.Sprintf(SCHEDULE_CACHE_KEY_FORMAT, "")
	regions := make([]models.Region, 0, len(keys))
	for _, k := range keys {
		if r, err := models.ParseRegion(strings.TrimPrefix(k, prefix)); err == nil {
			regions = append(regions, r)
		}
	}
	return regions, nil
}
