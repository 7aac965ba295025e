package config

import "github.com/joho/godotenv"

// Config holds runtime configuration for the server.
type Config struct {
	Port        string
	Provider    string
	CORSOrigins []string
	StatsAPI    StatsAPIConfig
	Storage     StorageConfig
	Metrics     MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is applied first; real environment
// variables always win.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:        envOrDefault(envPort, defaultPort),
		Provider:    envOrDefault(envProvider, defaultProvider),
		CORSOrigins: listEnvOrDefault(envCORSOrigins, defaultCORSOrigins),
		StatsAPI:    loadStatsAPI(),
		Storage:     loadStorage(),
		Metrics:     loadMetrics(),
	}
}
