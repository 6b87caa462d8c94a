package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"openmat-server/models"
	"openmat-server/models/venue"
	"openmat-server/query"
	"openmat-server/util"
)

const (
	REGION_PATH_VAR = "region"

	FORCE_QUERY_ARG  = "force"
	GI_QUERY_ARG     = "gi"
	NOGI_QUERY_ARG   = "nogi"
	FREE_QUERY_ARG   = "free"
	RADIUS_QUERY_ARG = "radius"
	LAT_QUERY_ARG    = "lat"
	LNG_QUERY_ARG    = "lng"
	SORT_QUERY_ARG   = "sort"

	SORT_NEXT     = "next"
	SORT_DISTANCE = "distance"
	SORT_NAME     = "name"
)

// ScheduleSyncer is the part of the sync service the handlers call.
type ScheduleSyncer interface {
	GetGymData(ctx context.Context, region models.Region, forceRefresh bool) []venue.Venue
	RefreshData(ctx context.Context, region models.Region) []venue.Venue
	ClearCache(ctx context.Context, region *models.Region) error
	IsDataStale(ctx context.Context, region models.Region) bool
	GetCacheStatus(ctx context.Context, region models.Region) models.CacheStatus
}

// VenueResult is a venue as served, with its ranking data.
type VenueResult struct {
	venue.Venue
	NextInDays    int      `json:"next_in_days"`
	DistanceMiles *float64 `json:"distance_miles,omitempty"`
}

// VenuesResponse is the body of a venues listing.
type VenuesResponse struct {
	Region models.Region `json:"region"`
	Count  int           `json:"count"`
	Venues []VenueResult `json:"venues"`
}

// ScheduleResponse is the body of a day-by-day schedule.
type ScheduleResponse struct {
	Region models.Region    `json:"region"`
	Days   []query.DayGroup `json:"days"`
}

// RegionInfo describes one supported region.
type RegionInfo struct {
	Region models.Region        `json:"region"`
	Schema models.SchemaVariant `json:"schema"`
}

// CacheStatusResponse reports one region's cache entry.
type CacheStatusResponse struct {
	Region models.Region `json:"region"`
	models.CacheStatus
	Stale bool `json:"stale"`
}

type ScheduleHandler struct {
	syncer ScheduleSyncer
	now    func() time.Time
	log    *slog.Logger
}

func NewScheduleHandler(syncer ScheduleSyncer) *ScheduleHandler {
	return &ScheduleHandler{
		syncer: syncer,
		now:    time.Now,
		log:    util.Logger("ScheduleHandler"),
	}
}

// WithClock replaces the time used for next-session ranking, for tests.
func (h *ScheduleHandler) WithClock(now func() time.Time) *ScheduleHandler {
	h.now = now
	return h
}

// Ping handles GET /ping
func (h *ScheduleHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.log, http.StatusOK, map[string]string{"status": "pong"})
}

// ListRegions handles GET /v1/regions
func (h *ScheduleHandler) ListRegions(w http.ResponseWriter, r *http.Request) {
	regions := make([]RegionInfo, 0, len(models.AllRegions))
	for _, region := range models.AllRegions {
		schema, _ := region.Schema()
		regions = append(regions, RegionInfo{Region: region, Schema: schema})
	}
	writeJSON(w, h.log, http.StatusOK, regions)
}

// GetVenues handles GET /v1/regions/{region}/venues
// expects optional ?force&gi&nogi&free={bool} &radius&lat&lng={float} &sort=next|distance|name
func (h *ScheduleHandler) GetVenues(w http.ResponseWriter, r *http.Request) {
	region, ok := h.regionVar(w, r)
	if !ok {
		return
	}
	args, err := parseVenueArgs(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	venues := h.syncer.GetGymData(r.Context(), region, args.force)
	venues = query.Filter(venues, args.criteria)

	now := h.now()
	switch args.sort {
	case SORT_DISTANCE:
		venues = query.SortByDistance(venues, *args.criteria.Origin)
	case SORT_NAME:
		sort.SliceStable(venues, func(i, j int) bool {
			return strings.ToLower(venues[i].Name) < strings.ToLower(venues[j].Name)
		})
	default:
		venues = query.SortByNextOccurrence(venues, now)
	}

	results := make([]VenueResult, 0, len(venues))
	for _, v := range venues {
		res := VenueResult{Venue: v, NextInDays: query.NextOccurrenceRank(v, now)}
		if args.criteria.Origin != nil {
			if d, ok := query.DistanceTo(v, *args.criteria.Origin); ok {
				res.DistanceMiles = &d
			}
		}
		results = append(results, res)
	}

	writeJSON(w, h.log, http.StatusOK, VenuesResponse{Region: region, Count: len(results), Venues: results})
}

// GetSchedule handles GET /v1/regions/{region}/schedule
// expects optional ?gi&nogi&free={bool}
func (h *ScheduleHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	region, ok := h.regionVar(w, r)
	if !ok {
		return
	}
	args, err := parseVenueArgs(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	venues := query.Filter(h.syncer.GetGymData(r.Context(), region, args.force), args.criteria)
	days := query.GroupByDay(venues)
	if days == nil {
		days = []query.DayGroup{}
	}
	writeJSON(w, h.log, http.StatusOK, ScheduleResponse{Region: region, Days: days})
}

// RefreshRegion handles POST /v1/regions/{region}/refresh
func (h *ScheduleHandler) RefreshRegion(w http.ResponseWriter, r *http.Request) {
	region, ok := h.regionVar(w, r)
	if !ok {
		return
	}
	h.log.Info("Refresh requested", "region", region)
	venues := h.syncer.RefreshData(r.Context(), region)

	results := make([]VenueResult, 0, len(venues))
	now := h.now()
	for _, v := range venues {
		results = append(results, VenueResult{Venue: v, NextInDays: query.NextOccurrenceRank(v, now)})
	}
	writeJSON(w, h.log, http.StatusOK, VenuesResponse{Region: region, Count: len(results), Venues: results})
}

// GetCacheStatus handles GET /v1/regions/{region}/cache
func (h *ScheduleHandler) GetCacheStatus(w http.ResponseWriter, r *http.Request) {
	region, ok := h.regionVar(w, r)
	if !ok {
		return
	}
	writeJSON(w, h.log, http.StatusOK, CacheStatusResponse{
		Region:      region,
		CacheStatus: h.syncer.GetCacheStatus(r.Context(), region),
		Stale:       h.syncer.IsDataStale(r.Context(), region),
	})
}

// ClearRegionCache handles DELETE /v1/regions/{region}/cache
func (h *ScheduleHandler) ClearRegionCache(w http.ResponseWriter, r *http.Request) {
	region, ok := h.regionVar(w, r)
	if !ok {
		return
	}
	h.clearCache(w, r, &region)
}

// ClearAllCaches handles DELETE /v1/cache
func (h *ScheduleHandler) ClearAllCaches(w http.ResponseWriter, r *http.Request) {
	h.clearCache(w, r, nil)
}

func (h *ScheduleHandler) clearCache(w http.ResponseWriter, r *http.Request, region *models.Region) {
	if err := h.syncer.ClearCache(r.Context(), region); err != nil {
		h.log.Error("Error clearing cache", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ScheduleHandler) regionVar(w http.ResponseWriter, r *http.Request) (models.Region, bool) {
	region, err := models.ParseRegion(mux.Vars(r)[REGION_PATH_VAR])
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return "", false
	}
	return region, true
}

type venueArgs struct {
	force    bool
	criteria models.FilterCriteria
	sort     string
}

func parseVenueArgs(vals url.Values) (venueArgs, error) {
	var args venueArgs
	var err error

	if args.force, err = parseArgBool(vals, FORCE_QUERY_ARG); err != nil {
		return args, err
	}
	if args.criteria.Gi, err = parseArgBool(vals, GI_QUERY_ARG); err != nil {
		return args, err
	}
	if args.criteria.NoGi, err = parseArgBool(vals, NOGI_QUERY_ARG); err != nil {
		return args, err
	}
	if args.criteria.FreeOnly, err = parseArgBool(vals, FREE_QUERY_ARG); err != nil {
		return args, err
	}

	latText, lngText := vals.Get(LAT_QUERY_ARG), vals.Get(LNG_QUERY_ARG)
	if latText != "" || lngText != "" {
		origin, err := models.ParseCoordinates(latText + "," + lngText)
		if err != nil {
			return args, errors.New("Invalid argument " + LAT_QUERY_ARG + "/" + LNG_QUERY_ARG)
		}
		args.criteria.Origin = &origin
	}

	if s := vals.Get(RADIUS_QUERY_ARG); s != "" {
		radius, err := strconv.ParseFloat(s, 64)
		if err != nil || radius < 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
			return args, errors.New("Invalid argument " + RADIUS_QUERY_ARG)
		}
		if args.criteria.Origin == nil {
			return args, errors.New("Argument " + RADIUS_QUERY_ARG + " requires " + LAT_QUERY_ARG + " and " + LNG_QUERY_ARG)
		}
		args.criteria.RadiusMiles = &radius
	}

	switch args.sort = vals.Get(SORT_QUERY_ARG); args.sort {
	case "", SORT_NEXT, SORT_NAME:
	case SORT_DISTANCE:
		if args.criteria.Origin == nil {
			return args, errors.New("Sort " + SORT_DISTANCE + " requires " + LAT_QUERY_ARG + " and " + LNG_QUERY_ARG)
		}
	default:
		return args, errors.New("Invalid argument " + SORT_QUERY_ARG)
	}
	return args, nil
}

func parseArgBool(vals url.Values, name string) (bool, error) {
	s := vals.Get(name)
	if s == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, errors.New("Invalid argument " + name)
	}
	return b, nil
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("Error encoding response", "err", err)
	}
}
