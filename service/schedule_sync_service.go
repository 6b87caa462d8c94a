package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"openmat-server/api"
	"openmat-server/api/schedule"
	"openmat-server/dao/cache"
	"openmat-server/models"
	"openmat-server/models/venue"
	"openmat-server/parser"
	"openmat-server/util"
)

// ScheduleSyncService decides per request whether a region's schedule comes
// from the cache or from the remote sheet, and falls back to whatever is
// cached when the sheet cannot be used.
type ScheduleSyncService struct {
	source   schedule.ScheduleAPI
	cacheDao *cache.ScheduleCacheDAO
	coalesce bool
	flights  singleflight.Group
	log      *slog.Logger
}

// NewScheduleSyncService wires a source and cache. With coalesce set,
// concurrent fetches of the same region share one request.
func NewScheduleSyncService(
	source schedule.ScheduleAPI,
	cacheDao *cache.ScheduleCacheDAO,
	coalesce bool) *ScheduleSyncService {

	return &ScheduleSyncService{
		source:   source,
		cacheDao: cacheDao,
		coalesce: coalesce,
		log:      util.Logger("ScheduleSyncService"),
	}
}

// GetGymData returns region's venues. A fresh cache entry is served as is
// unless forceRefresh is set; otherwise the sheet is fetched, parsed and
// cached. When fetching fails the last cached data is returned regardless of
// age, or an empty list when nothing is cached. It never returns nil.
func (s *ScheduleSyncService) GetGymData(ctx context.Context, region models.Region, forceRefresh bool) []venue.Venue {
	var entry *models.CacheEntry
	if !forceRefresh {
		entry = s.readCache(ctx, region)
		if entry != nil && !s.cacheDao.EntryIsStale(entry) {
			s.log.Debug("Serving cached schedule", "region", region, "venues", len(entry.Data))
			return cloneVenues(entry.Data)
		}
	}

	venues, err := s.fetch(ctx, region)
	if err == nil {
		return cloneVenues(venues)
	}

	s.logFetchFailure(region, err)
	if forceRefresh {
		entry = s.readCache(ctx, region)
	}
	if entry == nil {
		s.log.Warn("No cached schedule to fall back on", "region", region)
		return []venue.Venue{}
	}
	s.log.Info("Falling back on cached schedule", "region", region,
		"venues", len(entry.Data), "age", entry.Age(s.cacheDao.Now()))
	return cloneVenues(entry.Data)
}

// RefreshData drops region's cache entry and fetches it again.
func (s *ScheduleSyncService) RefreshData(ctx context.Context, region models.Region) []venue.Venue {
	if err := s.ClearCache(ctx, &region); err != nil {
		s.log.Error("Failed to clear cache before refresh", "region", region, "err", err)
	}
	return s.GetGymData(ctx, region, true)
}

// ClearCache removes region's cache entry, or every entry when region is nil.
func (s *ScheduleSyncService) ClearCache(ctx context.Context, region *models.Region) error {
	return s.cacheDao.Clear(ctx, region)
}

// IsDataStale reports whether the next GetGymData for region would fetch.
func (s *ScheduleSyncService) IsDataStale(ctx context.Context, region models.Region) bool {
	return s.cacheDao.IsStale(ctx, region)
}

// GetCacheStatus reports whether region is cached and how old the entry is.
func (s *ScheduleSyncService) GetCacheStatus(ctx context.Context, region models.Region) models.CacheStatus {
	return s.cacheDao.Status(ctx, region)
}

func (s *ScheduleSyncService) readCache(ctx context.Context, region models.Region) *models.CacheEntry {
	entry, err := s.cacheDao.Get(ctx, region)
	if err != nil {
		s.log.Error("Cache read failed", "region", region, "err", err)
		return nil
	}
	return entry
}

func (s *ScheduleSyncService) fetch(ctx context.Context, region models.Region) ([]venue.Venue, error) {
	if !s.coalesce {
		return s.fetchAndStore(ctx, region)
	}
	v, err, shared := s.flights.Do(string(region), func() (interface{}, error) {
		return s.fetchAndStore(ctx, region)
	})
	if shared {
		s.log.Debug("Joined in-flight fetch", "region", region)
	}
	if err != nil {
		return nil, err
	}
	return v.([]venue.Venue), nil
}

// fetchAndStore downloads and parses region's sheet and writes it to the
// cache. A cache write failure is logged; the parsed venues are still
// returned.
func (s *ScheduleSyncService) fetchAndStore(ctx context.Context, region models.Region) ([]venue.Venue, error) {
	variant, err := region.Schema()
	if err != nil {
		return nil, err
	}

	s.log.Info("Fetching schedule", "region", region, "schema", variant)
	raw, err := s.source.FetchRaw(ctx, region)
	if err != nil {
		return nil, err
	}

	venues, report, err := parser.Parse(variant, raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s schedule: %w", region, err)
	}
	s.logReport(region, report, venues)

	if err := s.cacheDao.Set(ctx, region, venues); err != nil {
		s.log.Error("Failed to cache fresh schedule", "region", region, "err", err)
	}
	s.log.Info("Fetched schedule", "region", region, "rows", report.Rows, "venues", len(venues))
	return venues, nil
}

func (s *ScheduleSyncService) logReport(region models.Region, report parser.ParseReport, venues []venue.Venue) {
	for _, rowErr := range report.SkippedRows {
		s.log.Warn("Skipped schedule row", "region", region, "err", rowErr)
	}
	for _, rowErr := range report.DroppedTokens {
		s.log.Warn("Dropped session cell", "region", region, "err", rowErr)
	}
	if len(report.DuplicateIDs) > 0 {
		s.log.Warn("Venue ids shared by different names", "region", region, "ids", report.DuplicateIDs)
	}
	// Unknown types are kept verbatim but never match the gi/nogi filters.
	seen := make(map[venue.SessionType]bool)
	for _, v := range venues {
		for _, session := range v.Sessions {
			if !session.Type.IsCanonical() && !seen[session.Type] {
				seen[session.Type] = true
				s.log.Warn("Unrecognized session type", "region", region, "venue", v.Name, "type", session.Type)
			}
		}
	}
}

func (s *ScheduleSyncService) logFetchFailure(region models.Region, err error) {
	var schemaErr *parser.SchemaError
	switch {
	case errors.Is(err, api.ErrRateLimited):
		s.log.Warn("Schedule source rate limited", "region", region, "err", err)
	case errors.As(err, &schemaErr):
		s.log.Error("Schedule sheet has the wrong columns", "region", region, "missing", schemaErr.Missing, "err", err)
	case errors.Is(err, api.ErrNetwork):
		s.log.Error("Schedule fetch failed", "region", region, "err", err)
	default:
		s.log.Error("Schedule sync failed", "region", region, "err", err)
	}
}

func cloneVenues(venues []venue.Venue) []venue.Venue {
	out := make([]venue.Venue, len(venues))
	for i, v := range venues {
		out[i] = v.Clone()
	}
	return out
}
