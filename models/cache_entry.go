package models

import (
	"time"

	"openmat-server/models/venue"
)

// CacheEntry is the persisted record for one region's schedule.
type CacheEntry struct {
	Data      []venue.Venue `json:"data"`
	Timestamp int64         `json:"timestamp"` // unix milliseconds
	Region    Region        `json:"region"`
	Version   string        `json:"version"`
}

// FetchedAt returns the entry's fetch time.
func (e *CacheEntry) FetchedAt() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// Age returns how long ago the entry was fetched, relative to now.
func (e *CacheEntry) Age(now time.Time) time.Duration {
	return now.Sub(e.FetchedAt())
}

// CacheStatus summarizes a region's cache for display.
type CacheStatus struct {
	HasCache bool          `json:"has_cache"`
	Age      time.Duration `json:"-"`
	AgeMS    int64         `json:"age_ms"`
}
