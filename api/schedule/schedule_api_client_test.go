package schedule

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openmat-server/api"
	"openmat-server/models"
)

func TestFetchRaw_UsesRegionURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET; got %s", r.Method)
		}
		switch r.URL.Path {
		case "/tampa.csv":
			w.Write([]byte("tampa-sheet"))
		case "/austin.csv":
			w.Write([]byte("austin-sheet"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := NewScheduleApiClient(api.NewHTTPClient(time.Second), map[models.Region]string{
		models.RegionTampa:  srv.URL + "/tampa.csv",
		models.RegionAustin: srv.URL + "/austin.csv",
	})

	got, err := client.FetchRaw(context.Background(), models.RegionTampa)
	require.NoError(t, err)
	assert.Equal(t, "tampa-sheet", got)

	got, err = client.FetchRaw(context.Background(), models.RegionAustin)
	require.NoError(t, err)
	assert.Equal(t, "austin-sheet", got)
}

func TestFetchRaw_RegionWithoutURL(t *testing.T) {
	client := NewScheduleApiClient(api.NewHTTPClient(time.Second), nil)

	_, err := client.FetchRaw(context.Background(), models.RegionStPete)

	require.Error(t, err)
	assert.True(t, errors.Is(err, api.ErrNetwork))
	assert.True(t, errors.Is(err, models.ErrUnknownRegion))
}

func TestFetchRaw_RateLimitedPassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewScheduleApiClient(api.NewHTTPClient(time.Second), map[models.Region]string{
		models.RegionTampa: srv.URL,
	})

	_, err := client.FetchRaw(context.Background(), models.RegionTampa)
	assert.True(t, errors.Is(err, api.ErrRateLimited))
}

func TestScheduleApiClientMock_ReadsFixture(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tampa.csv"), []byte("id,name\n"), 0o644))

	client := NewScheduleApiClientMockAt(dir)

	got, err := client.FetchRaw(context.Background(), models.RegionTampa)
	require.NoError(t, err)
	assert.Equal(t, "id,name\n", got)
}

func TestScheduleApiClientMock_MissingFixtureIsNetworkError(t *testing.T) {
	client := NewScheduleApiClientMockAt(t.TempDir())

	_, err := client.FetchRaw(context.Background(), models.RegionAustin)
	assert.True(t, errors.Is(err, api.ErrNetwork))
}

func TestScheduleApiClientMock_UnknownRegion(t *testing.T) {
	client := NewScheduleApiClientMockAt(t.TempDir())

	_, err := client.FetchRaw(context.Background(), models.Region("atlantis"))
	assert.True(t, errors.Is(err, models.ErrUnknownRegion))
}
