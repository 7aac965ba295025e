package metrics

import (
	"sync"
	"time"
)

type upstreamStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about upstream calls and favorites.
// When built by Setup it also forwards every observation to OpenTelemetry.
type Recorder struct {
	mu               sync.Mutex
	stats            map[string]*upstreamStats
	favoritesAdded   int
	favoritesRemoved int
	otel             *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*upstreamStats),
		otel:  otel,
	}
}

// RecordUpstreamCall increments counters for a stats API call and stores the last observed latency.
func (r *Recorder) RecordUpstreamCall(endpoint string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(endpoint)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordUpstreamCall(endpoint, duration, err)
	}
}

// RecordFavoriteToggle counts favorites added (added=true) or removed.
func (r *Recorder) RecordFavoriteToggle(added bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	if added {
		r.favoritesAdded++
	} else {
		r.favoritesRemoved++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFavoriteToggle(added)
	}
}

// FavoriteToggles returns how many favorites were added and removed.
func (r *Recorder) FavoriteToggles() (added, removed int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.favoritesAdded, r.favoritesRemoved
}

// UpstreamCalls returns the total calls recorded for an endpoint.
func (r *Recorder) UpstreamCalls(endpoint string) int {
	return r.Snapshot(endpoint).Calls
}

// UpstreamErrors returns the total failed calls recorded for an endpoint.
func (r *Recorder) UpstreamErrors(endpoint string) int {
	return r.Snapshot(endpoint).Errors
}

// LastCallLatency returns the last recorded latency for an endpoint.
func (r *Recorder) LastCallLatency(endpoint string) time.Duration {
	return r.Snapshot(endpoint).LastCallLatency
}

// Snapshot returns a copy of the current stats for the endpoint.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(endpoint string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[endpoint]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

func (r *Recorder) ensureStatsLocked(endpoint string) *upstreamStats {
	stats, ok := r.stats[endpoint]
	if !ok {
		stats = &upstreamStats{}
		r.stats[endpoint] = stats
	}
	return stats
}
