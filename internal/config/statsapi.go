package config

import "time"

// StatsAPIConfig controls how we talk to the external stats backend.
type StatsAPIConfig struct {
	BaseURL  string
	Timeout  time.Duration
	PageSize int
}

func loadStatsAPI() StatsAPIConfig {
	return StatsAPIConfig{
		BaseURL:  envOrDefault(envAPIBaseURL, defaultAPIBaseURL),
		Timeout:  durationEnvOrDefault(envAPITimeout, defaultAPITimeout),
		PageSize: intEnvOrDefault(envPageSize, defaultPageSize),
	}
}
