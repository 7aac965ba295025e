package config

import "strings"

// Storage backends understood by the server wiring.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// StorageConfig selects the key-value backend for favorites and the auth session.
type StorageConfig struct {
	Backend     string
	Path        string
	RedisURL    string
	RedisPrefix string
}

func loadStorage() StorageConfig {
	backend := strings.ToLower(envOrDefault(envStorageBackend, defaultBackend))

	// Path default depends on the backend so a bare STORAGE_BACKEND=sqlite works.
	path := defaultFilePath
	if backend == BackendSQLite {
		path = defaultSQLitePath
	}

	return StorageConfig{
		Backend:     backend,
		Path:        envOrDefault(envStoragePath, path),
		RedisURL:    envOrDefault(envRedisURL, defaultRedisURL),
		RedisPrefix: envOrDefault(envRedisPrefix, defaultRedisPrefix),
	}
}
