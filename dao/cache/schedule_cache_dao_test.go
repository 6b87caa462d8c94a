package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openmat-server/config"
	"openmat-server/db"
	"openmat-server/models"
	"openmat-server/models/venue"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func newDAO(t *testing.T) (*ScheduleCacheDAO, *db.MockKeyValueStore, *fakeClock) {
	t.Helper()
	store := db.NewMockKeyValueStore()
	clock := &fakeClock{t: time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)}
	return NewScheduleCacheDAO(store).WithClock(clock.Now), store, clock
}

var testVenues = []venue.Venue{
	{ID: "1", Name: "Gym", Sessions: []venue.Session{{Day: venue.Monday, Time: "6pm", Type: venue.Gi}}},
}

func TestScheduleCacheDAO_SetStoresNamespacedRecord(t *testing.T) {
	dao, store, clock := newDAO(t)
	ctx := context.Background()

	require.NoError(t, dao.Set(ctx, models.RegionTampa, testVenues))

	raw, err := store.Get(ctx, "gym_schedule_cache:tampa")
	require.NoError(t, err)

	var record map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(raw), &record))
	assert.JSONEq(t, `"tampa"`, string(record["region"]))
	assert.JSONEq(t, `"`+config.CACHE_SCHEMA_VERSION+`"`, string(record["version"]))
	var ts int64
	require.NoError(t, json.Unmarshal(record["timestamp"], &ts))
	assert.Equal(t, clock.t.UnixMilli(), ts)
	assert.Contains(t, string(record["data"]), `"name":"Gym"`)
}

func TestScheduleCacheDAO_GetRoundTrip(t *testing.T) {
	dao, _, _ := newDAO(t)
	ctx := context.Background()
	require.NoError(t, dao.Set(ctx, models.RegionAustin, testVenues))

	entry, err := dao.Get(ctx, models.RegionAustin)

	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, testVenues, entry.Data)
	assert.Equal(t, models.RegionAustin, entry.Region)
}

func TestScheduleCacheDAO_GetMissingAndUndecodable(t *testing.T) {
	dao, store, _ := newDAO(t)
	ctx := context.Background()

	entry, err := dao.Get(ctx, models.RegionTampa)
	assert.NoError(t, err)
	assert.Nil(t, entry)

	require.NoError(t, store.Set(ctx, "gym_schedule_cache:tampa", "{not json"))
	entry, err = dao.Get(ctx, models.RegionTampa)
	assert.NoError(t, err)
	assert.Nil(t, entry)
}

func TestScheduleCacheDAO_GetStorageError(t *testing.T) {
	dao, store, _ := newDAO(t)
	store.GetErr = errors.New("disk on fire")

	_, err := dao.Get(context.Background(), models.RegionTampa)
	assert.Error(t, err)
	assert.True(t, dao.IsStale(context.Background(), models.RegionTampa))
}

func TestScheduleCacheDAO_IsStale(t *testing.T) {
	ctx := context.Background()

	t.Run("no entry", func(t *testing.T) {
		dao, _, _ := newDAO(t)
		assert.True(t, dao.IsStale(ctx, models.RegionTampa))
	})

	t.Run("fresh entry within ttl", func(t *testing.T) {
		dao, _, clock := newDAO(t)
		require.NoError(t, dao.Set(ctx, models.RegionTampa, testVenues))
		clock.t = clock.t.Add(59 * time.Minute)
		assert.False(t, dao.IsStale(ctx, models.RegionTampa))
	})

	t.Run("exactly ttl old is not stale", func(t *testing.T) {
		dao, _, clock := newDAO(t)
		require.NoError(t, dao.Set(ctx, models.RegionTampa, testVenues))
		clock.t = clock.t.Add(config.CACHE_TTL)
		assert.False(t, dao.IsStale(ctx, models.RegionTampa))
	})

	t.Run("older than ttl", func(t *testing.T) {
		dao, _, clock := newDAO(t)
		require.NoError(t, dao.Set(ctx, models.RegionTampa, testVenues))
		clock.t = clock.t.Add(config.CACHE_TTL + time.Millisecond)
		assert.True(t, dao.IsStale(ctx, models.RegionTampa))
	})

	t.Run("version mismatch regardless of age", func(t *testing.T) {
		dao, _, _ := newDAO(t)
		require.NoError(t, dao.Set(ctx, models.RegionTampa, testVenues))
		dao.WithVersion("999")
		assert.True(t, dao.IsStale(ctx, models.RegionTampa))
	})
}

func TestScheduleCacheDAO_ClearOneRegion(t *testing.T) {
	dao, _, _ := newDAO(t)
	ctx := context.Background()
	require.NoError(t, dao.Set(ctx, models.RegionTampa, testVenues))
	require.NoError(t, dao.Set(ctx, models.RegionAustin, testVenues))

	region := models.RegionTampa
	require.NoError(t, dao.Clear(ctx, &region))

	entry, _ := dao.Get(ctx, models.RegionTampa)
	assert.Nil(t, entry)
	entry, _ = dao.Get(ctx, models.RegionAustin)
	assert.NotNil(t, entry)
}

func TestScheduleCacheDAO_ClearAll(t *testing.T) {
	dao, store, _ := newDAO(t)
	ctx := context.Background()
	for _, r := range models.AllRegions {
		require.NoError(t, dao.Set(ctx, r, testVenues))
	}
	require.NoError(t, store.Set(ctx, "unrelated", "keep me"))

	require.NoError(t, dao.Clear(ctx, nil))

	regions, err := dao.ListCachedRegions(ctx)
	require.NoError(t, err)
	assert.Empty(t, regions)
	_, err = store.Get(ctx, "unrelated")
	assert.NoError(t, err)
}

func TestScheduleCacheDAO_Status(t *testing.T) {
	dao, _, clock := newDAO(t)
	ctx := context.Background()

	assert.Equal(t, models.CacheStatus{}, dao.Status(ctx, models.RegionTampa))

	require.NoError(t, dao.Set(ctx, models.RegionTampa, testVenues))
	clock.t = clock.t.Add(90 * time.Second)

	status := dao.Status(ctx, models.RegionTampa)
	assert.True(t, status.HasCache)
	assert.Equal(t, 90*time.Second, status.Age)
	assert.Equal(t, int64(90000), status.AgeMS)
}

func TestScheduleCacheDAO_SetNilStoresEmptyList(t *testing.T) {
	dao, store, _ := newDAO(t)
	ctx := context.Background()

	require.NoError(t, dao.Set(ctx, models.RegionStPete, nil))

	raw, err := store.Get(ctx, "gym_schedule_cache:stpete")
	require.NoError(t, err)
	assert.Contains(t, raw, `"data":[]`)
}

func TestScheduleCacheDAO_ListCachedRegions(t *testing.T) {
	dao, _, _ := newDAO(t)
	ctx := context.Background()
	require.NoError(t, dao.Set(ctx, models.RegionAustin, testVenues))
	require.NoError(t, dao.Set(ctx, models.RegionTampa, testVenues))

	regions, err := dao.ListCachedRegions(ctx)

	require.NoError(t, err)
	assert.ElementsMatch(t, []models.Region{models.RegionAustin, models.RegionTampa}, regions)
}
