package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openmat-server/models"
)

func TestRefreshAll_LoadsEveryRegion(t *testing.T) {
	source := &fakeSource{raw: longSheet}
	s, _, _ := newSyncService(t, source, true)
	refresher := NewRegionsRefresherService(s, s.cacheDao)

	counts := refresher.RefreshAll(context.Background())

	assert.Equal(t, map[models.Region]int{
		models.RegionTampa:  2,
		models.RegionStPete: 2,
		models.RegionAustin: 2,
	}, counts)
	assert.Equal(t, int32(3), source.calls.Load())
}

func TestRefreshCached_OnlyStaleCachedRegions(t *testing.T) {
	source := &fakeSource{raw: longSheet}
	s, _, clock := newSyncService(t, source, true)
	refresher := NewRegionsRefresherService(s, s.cacheDao)
	ctx := context.Background()

	seedCache(t, s, models.RegionTampa)
	clock.t = clock.t.Add(2 * time.Hour)
	seedCache(t, s, models.RegionStPete)

	refreshed, err := refresher.RefreshCached(ctx)

	require.NoError(t, err)
	assert.Equal(t, []models.Region{models.RegionTampa}, refreshed)
	assert.Equal(t, int32(1), source.calls.Load())
	assert.True(t, s.IsDataStale(ctx, models.RegionAustin))
}

func TestStartPeriodicJob_StopsWithContext(t *testing.T) {
	source := &fakeSource{raw: longSheet}
	s, _, clock := newSyncService(t, source, true)
	seedCache(t, s, models.RegionTampa)
	clock.t = clock.t.Add(2 * time.Hour)
	refresher := NewRegionsRefresherService(s, s.cacheDao)

	ctx, cancel := context.WithCancel(context.Background())
	refresher.StartPeriodicJob(ctx, 10*time.Millisecond)

	assert.Eventually(t, func() bool { return source.calls.Load() >= 1 }, time.Second, 5*time.Millisecond)
	cancel()
}
