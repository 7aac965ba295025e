package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider %s, got %s", defaultProvider, cfg.Provider)
	}
	if cfg.StatsAPI.BaseURL != defaultAPIBaseURL {
		t.Fatalf("expected default stats api url %s, got %s", defaultAPIBaseURL, cfg.StatsAPI.BaseURL)
	}
	if cfg.StatsAPI.Timeout != defaultAPITimeout {
		t.Fatalf("expected default timeout %s, got %s", defaultAPITimeout, cfg.StatsAPI.Timeout)
	}
	if cfg.StatsAPI.PageSize != defaultPageSize {
		t.Fatalf("expected default page size %d, got %d", defaultPageSize, cfg.StatsAPI.PageSize)
	}
	if cfg.Storage.Backend != BackendFile || cfg.Storage.Path != defaultFilePath {
		t.Fatalf("unexpected storage defaults %+v", cfg.Storage)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != defaultCORSOrigins {
		t.Fatalf("unexpected cors origins %v", cfg.CORSOrigins)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envProvider, "fixture")
	t.Setenv(envAPIBaseURL, "http://example.com/api")
	t.Setenv(envAPITimeout, "3s")
	t.Setenv(envPageSize, "20")
	t.Setenv(envCORSOrigins, "http://a.test, http://b.test,,")
	t.Setenv(envStorageBackend, "REDIS")
	t.Setenv(envRedisURL, "redis://cache:6379/1")
	t.Setenv(envRedisPrefix, "viewer:")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.Provider != "fixture" {
		t.Fatalf("expected provider fixture, got %s", cfg.Provider)
	}
	if cfg.StatsAPI.BaseURL != "http://example.com/api" {
		t.Fatalf("expected stats api url override, got %s", cfg.StatsAPI.BaseURL)
	}
	if cfg.StatsAPI.Timeout != 3*time.Second {
		t.Fatalf("expected timeout 3s, got %s", cfg.StatsAPI.Timeout)
	}
	if cfg.StatsAPI.PageSize != 20 {
		t.Fatalf("expected page size 20, got %d", cfg.StatsAPI.PageSize)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.test" {
		t.Fatalf("unexpected cors origins %v", cfg.CORSOrigins)
	}
	if cfg.Storage.Backend != BackendRedis {
		t.Fatalf("expected lower-cased redis backend, got %s", cfg.Storage.Backend)
	}
	if cfg.Storage.RedisURL != "redis://cache:6379/1" || cfg.Storage.RedisPrefix != "viewer:" {
		t.Fatalf("unexpected redis settings %+v", cfg.Storage)
	}
}

func TestLoadSQLiteUsesDatabasePathDefault(t *testing.T) {
	t.Setenv(envStorageBackend, "sqlite")

	cfg := Load()

	if cfg.Storage.Path != defaultSQLitePath {
		t.Fatalf("expected sqlite default path, got %s", cfg.Storage.Path)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envAPITimeout, "not-a-duration")

	cfg := Load()

	if cfg.StatsAPI.Timeout != defaultAPITimeout {
		t.Fatalf("expected default timeout on invalid value, got %s", cfg.StatsAPI.Timeout)
	}
}

func TestLoadNonPositivePageSizeFallsBack(t *testing.T) {
	t.Setenv(envPageSize, "0")

	cfg := Load()

	if cfg.StatsAPI.PageSize != defaultPageSize {
		t.Fatalf("expected default page size on non-positive value, got %d", cfg.StatsAPI.PageSize)
	}
}
