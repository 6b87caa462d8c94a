package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// ScheduleRoutes is the set of handlers the router mounts.
type ScheduleRoutes interface {
	Ping(w http.ResponseWriter, r *http.Request)
	ListRegions(w http.ResponseWriter, r *http.Request)
	GetVenues(w http.ResponseWriter, r *http.Request)
	GetSchedule(w http.ResponseWriter, r *http.Request)
	RefreshRegion(w http.ResponseWriter, r *http.Request)
	GetCacheStatus(w http.ResponseWriter, r *http.Request)
	ClearRegionCache(w http.ResponseWriter, r *http.Request)
	ClearAllCaches(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	scheduleHandler ScheduleRoutes
	router          *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	scheduleHandler ScheduleRoutes,
	router *mux.Router) *Router {
	return &Router{
		scheduleHandler: scheduleHandler,
		router:          router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(RequestIDMiddleware, LoggingMiddleware)

	r.router.HandleFunc("/ping", r.scheduleHandler.Ping).Methods("GET")

	v1 := r.router.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/regions", r.scheduleHandler.ListRegions).Methods("GET")
	// expects ?force&gi&nogi&free={bool}&radius&lat&lng={float}&sort=next|distance|name
	v1.HandleFunc("/regions/{region}/venues", r.scheduleHandler.GetVenues).Methods("GET")
	v1.HandleFunc("/regions/{region}/schedule", r.scheduleHandler.GetSchedule).Methods("GET")
	v1.HandleFunc("/regions/{region}/refresh", r.scheduleHandler.RefreshRegion).Methods("POST")
	v1.HandleFunc("/regions/{region}/cache", r.scheduleHandler.GetCacheStatus).Methods("GET")
	v1.HandleFunc("/regions/{region}/cache", r.scheduleHandler.ClearRegionCache).Methods("DELETE")
	v1.HandleFunc("/cache", r.scheduleHandler.ClearAllCaches).Methods("DELETE")
}
