package config

import (
	"os"
	"path/filepath"
	"time"
)

// Cache config
//
// CACHE_SCHEMA_VERSION is stored in every cache record. Bump it whenever the
// persisted venue layout changes; records carrying any other version are
// treated as stale.
const CACHE_SCHEMA_VERSION = "2"
const CACHE_TTL = time.Hour
const CACHE_KEY_PREFIX = "gym_schedule_cache"

// Schedule source config
const SCHEDULE_REQUEST_TIMEOUT = 10 * time.Second

// Storage config
const STORAGE_BACKEND_SQLITE = "sqlite"
const STORAGE_BACKEND_REDIS = "redis"
const SQLITE_DB_PATH = "cache.db"
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Server config
const SERVER_ADDRESS = ":8080"
const SERVER_SHUTDOWN_TIMEOUT = 5 * time.Second

// Environments
const ENV_PROD = "prod"
const ENV_DEV = "dev"
const ENV_VAR = "OPENMAT_ENV"
const CONFIG_FILE = "config.yml"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const SCHEDULE_RESOURCE_FORMAT = "%s.csv"

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
