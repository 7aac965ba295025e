package config

import "time"

const (
	envPort           = "PORT"
	envProvider       = "STATS_PROVIDER"
	envAPIBaseURL     = "STATS_API_BASE_URL"
	envAPITimeout     = "STATS_API_TIMEOUT"
	envPageSize       = "PAGE_SIZE"
	envCORSOrigins    = "CORS_ORIGINS"
	envStorageBackend = "STORAGE_BACKEND"
	envStoragePath    = "STORAGE_PATH"
	envRedisURL       = "REDIS_URL"
	envRedisPrefix    = "REDIS_KEY_PREFIX"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort        = "4000"
	defaultProvider    = "statsapi"
	defaultAPIBaseURL  = "http://localhost:5000/api"
	defaultAPITimeout  = 10 * Duration(time.Second)
	defaultPageSize    = 50
	defaultCORSOrigins = "http://localhost:5173"
	defaultBackend     = "file"
	defaultFilePath    = "data/storage.json"
	defaultSQLitePath  = "data/storage.db"
	defaultRedisURL    = "redis://localhost:6379/0"
	defaultRedisPrefix = "nba-stats:"
	defaultMetricsPort = "9090"
	defaultServiceName = "nba-stats-viewer"
)
