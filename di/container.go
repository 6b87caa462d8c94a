package di

import (
	"context"
	"fmt"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"openmat-server/api"
	"openmat-server/api/schedule"
	"openmat-server/config"
	"openmat-server/dao/cache"
	"openmat-server/db"
	"openmat-server/server"
	"openmat-server/server/handlers"
	services "openmat-server/service"
	"openmat-server/util"
)

// Container holds all application dependencies.
type Container struct {
	Config                  config.AppConfig
	KeyValueStore           db.KeyValueStore
	ScheduleCacheDao        *cache.ScheduleCacheDAO
	ScheduleAPI             schedule.ScheduleAPI
	ScheduleSyncService     *services.ScheduleSyncService
	RegionsRefresherService *services.RegionsRefresherService
	ScheduleHandler         *handlers.ScheduleHandler
	MuxRouter               *mux.Router
	Router                  *server.Router
	OpenMatHttpServer       *server.OpenMatHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(ctx context.Context, cfg config.AppConfig) (*Container, error) {
	log := util.Logger("Container")
	log.Info("Initializing container", "env", cfg.Env, "storage", cfg.Storage.Backend)

	store, err := newKeyValueStore(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}

	scheduleCacheDao := cache.NewScheduleCacheDAO(store)

	var scheduleAPI schedule.ScheduleAPI
	if cfg.Env != config.ENV_PROD {
		scheduleAPI = schedule.NewScheduleApiClientMock()
		log.Info("Using mock schedule source")
	} else {
		log.Info("Using prod schedule source", "regions", len(cfg.Sources))
		httpClient := api.NewHTTPClient(cfg.RequestTimeout())
		scheduleAPI = schedule.NewScheduleApiClient(httpClient, cfg.SourceURLs())
	}

	syncService := services.NewScheduleSyncService(scheduleAPI, scheduleCacheDao, cfg.CoalesceFetches())
	refresherService := services.NewRegionsRefresherService(syncService, scheduleCacheDao)

	scheduleHandler := handlers.NewScheduleHandler(syncService)
	muxRouter := mux.NewRouter()
	router := server.NewRouter(scheduleHandler, muxRouter)
	httpServer := server.NewOpenMatHttpServer(router, muxRouter, cfg.Server.Addr, config.SERVER_SHUTDOWN_TIMEOUT)

	return &Container{
		Config:                  cfg,
		KeyValueStore:           store,
		ScheduleCacheDao:        scheduleCacheDao,
		ScheduleAPI:             scheduleAPI,
		ScheduleSyncService:     syncService,
		RegionsRefresherService: refresherService,
		ScheduleHandler:         scheduleHandler,
		MuxRouter:               muxRouter,
		Router:                  router,
		OpenMatHttpServer:       httpServer,
	}, nil
}

// Close releases the storage backend.
func (c *Container) Close() error {
	return c.KeyValueStore.Close()
}

func newKeyValueStore(ctx context.Context, cfg config.StorageConfig) (db.KeyValueStore, error) {
	switch cfg.Backend {
	case config.STORAGE_BACKEND_REDIS:
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		client, err := db.NewRedisClient(ctx, redisInternalClient)
		if err != nil {
			redisInternalClient.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		return client, nil
	default:
		client, err := db.OpenSQLiteClient(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite cache: %w", err)
		}
		return client, nil
	}
}
