package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-stats-viewer/internal/app/board"
	"github.com/preston-bernstein/nba-stats-viewer/internal/app/stats"
	"github.com/preston-bernstein/nba-stats-viewer/internal/auth"
	"github.com/preston-bernstein/nba-stats-viewer/internal/config"
	"github.com/preston-bernstein/nba-stats-viewer/internal/kvstore"
	"github.com/preston-bernstein/nba-stats-viewer/internal/metrics"
	"github.com/preston-bernstein/nba-stats-viewer/internal/providers"
	"github.com/preston-bernstein/nba-stats-viewer/internal/testutil"
)

type countingStore struct {
	*kvstore.MemoryStore
	closeCalls int
	closeErr   error
}

func (c *countingStore) Close() error {
	c.closeCalls++
	return c.closeErr
}

func memoryConfig() config.Config {
	return config.Config{
		Port:     "0",
		Provider: "fixture",
		Storage:  config.StorageConfig{Backend: config.BackendMemory},
		Metrics:  config.MetricsConfig{Enabled: false},
	}
}

func TestServerServesHealthAndStats(t *testing.T) {
	provider := &testutil.StubProvider{
		Page:      testutil.SamplePage(testutil.SamplePlayer("1", "Stephen Curry", 26.4)),
		Teams:     []string{"GSW"},
		Positions: []string{"G"},
	}
	srv := newServerWithProvider(memoryConfig(), nil, provider)
	srv.mount(context.Background())

	router := srv.Handler()
	testutil.AssertStatus(t, testutil.Serve(router, http.MethodGet, "/health", nil), http.StatusOK)

	rr := testutil.Serve(router, http.MethodGet, "/stats", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var page stats.Page
	testutil.DecodeJSON(t, rr, &page)
	if len(page.Rows) != 1 || page.Rows[0].Player.Name != "Stephen Curry" {
		t.Fatalf("unexpected rows %+v", page.Rows)
	}
	if len(page.Teams) != 1 || page.Teams[0] != "GSW" {
		t.Fatalf("unexpected teams %+v", page.Teams)
	}
	if provider.Calls() != 1 {
		t.Fatalf("expected one fetch on mount, got %d", provider.Calls())
	}

	rr = testutil.ServeJSON(t, router, http.MethodPost, "/stats/filters", map[string]string{"team": "GSW"})
	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := provider.LastQuery().Get("team"); got != "GSW" {
		t.Fatalf("expected team filter forwarded upstream, got %q", got)
	}
}

func TestServerReportsProviderErrorOnScreen(t *testing.T) {
	srv := newServerWithProvider(memoryConfig(), nil, testutil.UnavailableProvider{})
	srv.mount(context.Background())

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/stats", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var page stats.Page
	testutil.DecodeJSON(t, rr, &page)
	if page.Error != stats.FetchErrorMessage {
		t.Fatalf("expected fetch error message, got %q", page.Error)
	}
	if len(page.Rows) != 0 {
		t.Fatalf("expected no rows on failure, got %d", len(page.Rows))
	}
}

func TestServerServesInsightViewsThroughInstrumentedProvider(t *testing.T) {
	rec := metrics.NewRecorder()
	srv := newServerWithMetrics(memoryConfig(), nil, nil, rec)
	router := srv.Handler()

	rr := testutil.Serve(router, http.MethodGet, "/trending", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var trending board.Trending
	testutil.DecodeJSON(t, rr, &trending)
	if trending.Error != "" || len(trending.Players) == 0 || len(trending.Upcoming) == 0 {
		t.Fatalf("expected fixture trending data, got %+v", trending)
	}

	testutil.AssertStatus(t, testutil.Serve(router, http.MethodGet, "/predictions", nil), http.StatusOK)
	testutil.AssertStatus(t, testutil.Serve(router, http.MethodGet, "/players/2544", nil), http.StatusOK)
	testutil.AssertStatus(t, testutil.Serve(router, http.MethodGet, "/players/1", nil), http.StatusNotFound)

	for _, endpoint := range []string{providers.EndpointTrendingPlayers, providers.EndpointTrendingGames, providers.EndpointPredictions} {
		if rec.UpstreamCalls(endpoint) != 1 {
			t.Fatalf("expected one %s call recorded, got %d", endpoint, rec.UpstreamCalls(endpoint))
		}
	}
	if rec.UpstreamCalls(providers.EndpointPlayer) != 2 {
		t.Fatalf("expected player lookups recorded, got %d", rec.UpstreamCalls(providers.EndpointPlayer))
	}
}

func TestNewConstructsServer(t *testing.T) {
	srv := New(memoryConfig(), nil)
	if srv == nil || srv.Handler() == nil {
		t.Fatalf("expected server with handler")
	}
	if srv.screen == nil || srv.auth == nil || srv.kv == nil {
		t.Fatalf("expected screen, auth and storage to be wired")
	}
}

func TestBuildStorageSelectsBackend(t *testing.T) {
	dir := t.TempDir()

	file := buildStorage(context.Background(), config.StorageConfig{
		Backend: config.BackendFile,
		Path:    filepath.Join(dir, "storage.json"),
	}, nil)
	if _, ok := file.(*kvstore.FileStore); !ok {
		t.Fatalf("expected file store, got %T", file)
	}

	sqlite := buildStorage(context.Background(), config.StorageConfig{
		Backend: config.BackendSQLite,
		Path:    filepath.Join(dir, "storage.db"),
	}, nil)
	defer sqlite.Close()
	if _, ok := sqlite.(*kvstore.SQLiteStore); !ok {
		t.Fatalf("expected sqlite store, got %T", sqlite)
	}

	unknown := buildStorage(context.Background(), config.StorageConfig{Backend: "tape"}, nil)
	if _, ok := unknown.(*kvstore.MemoryStore); !ok {
		t.Fatalf("expected memory store for unknown backend, got %T", unknown)
	}
}

func TestBuildStorageFallsBackToMemoryOnFailure(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	store := buildStorage(context.Background(), config.StorageConfig{
		Backend:  config.BackendRedis,
		RedisURL: "not a url",
	}, logger)
	if _, ok := store.(*kvstore.MemoryStore); !ok {
		t.Fatalf("expected memory fallback, got %T", store)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected fallback warning to be logged")
	}
}

func TestGracefulShutdownStopsServerAndClosesStorage(t *testing.T) {
	kv := &countingStore{MemoryStore: kvstore.NewMemoryStore()}
	httpSrv := &testutil.StubHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, nil, kv, httpSrv)
	srv.gracefulShutdown()

	if httpSrv.ShutdownCalls() != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.ShutdownCalls())
	}
	if kv.closeCalls != 1 {
		t.Fatalf("expected storage Close to be called once, got %d", kv.closeCalls)
	}
}

func TestGracefulShutdownTimesOutLongRunningShutdown(t *testing.T) {
	blocking := &testutil.StubHTTPServer{Block: make(chan struct{})}

	original := shutdownTimeout
	shutdownTimeout = 5 * time.Millisecond
	defer func() { shutdownTimeout = original }()

	srv := newServerWithDeps(config.Config{}, nil, nil, nil, blocking)

	start := time.Now()
	srv.gracefulShutdown()
	elapsed := time.Since(start)

	if blocking.ShutdownCalls() != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", blocking.ShutdownCalls())
	}
	if elapsed > 200*time.Millisecond {
		t.Fatalf("shutdown took too long: %s", elapsed)
	}
}

func TestGracefulShutdownContinuesWhenStorageCloseErrors(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	kv := &countingStore{MemoryStore: kvstore.NewMemoryStore(), closeErr: errors.New("close failure")}
	httpSrv := &testutil.StubHTTPServer{}

	srv := newServerWithDeps(config.Config{}, logger, nil, kv, httpSrv)
	srv.gracefulShutdown()

	if httpSrv.ShutdownCalls() != 1 || kv.closeCalls != 1 {
		t.Fatalf("expected shutdown and close, got %d/%d", httpSrv.ShutdownCalls(), kv.closeCalls)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected close failure to be logged")
	}
}

func TestServerStartHandlesListenErrorAndStops(t *testing.T) {
	httpSrv := &testutil.StubHTTPServer{ListenErr: errors.New("listen failure")}
	srv := newServerWithDeps(config.Config{}, nil, nil, nil, httpSrv)

	var wg sync.WaitGroup
	wg.Add(1)
	stopCalled := make(chan struct{})
	stop := func() {
		close(stopCalled)
		wg.Done()
	}

	srv.startServer(stop)

	select {
	case <-stopCalled:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected stop to be called on listen failure")
	}

	wg.Wait()
}

func TestRunMountsAndStopsComponents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	provider := &testutil.StubProvider{Page: testutil.SamplePage()}
	srv := newServerWithProvider(memoryConfig(), nil, provider)
	httpSrv := &testutil.StubHTTPServer{ListenErr: http.ErrServerClosed}
	srv.httpServer = httpSrv

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	deadline := time.After(500 * time.Millisecond)
	for provider.Calls() == 0 {
		select {
		case <-deadline:
			t.Fatal("expected run to mount the screen")
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("run did not return after cancel")
	}

	if httpSrv.ShutdownCalls() != 1 {
		t.Fatalf("expected server Shutdown called once, got %d", httpSrv.ShutdownCalls())
	}
}

func TestRunVerifiesStoredSessionBeforeMount(t *testing.T) {
	var verifyCalls int
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/verify" {
			verifyCalls++
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"authenticated":false}`))
			return
		}
		http.NotFound(w, r)
	}))
	defer backend.Close()

	cfg := memoryConfig()
	cfg.StatsAPI.BaseURL = backend.URL
	srv := newServerWithProvider(cfg, nil, &testutil.StubProvider{Page: testutil.SamplePage()})

	ctx := context.Background()
	if err := kvstore.Set(ctx, srv.kv, auth.TokenKey, []byte("stale")); err != nil {
		t.Fatalf("seed token: %v", err)
	}

	srv.mount(ctx)

	if verifyCalls != 1 {
		t.Fatalf("expected one verify call, got %d", verifyCalls)
	}
	if srv.auth.Session().IsAuthenticated(ctx) {
		t.Fatalf("expected stale session to be cleared")
	}
}

// metricsSetupSuccess allows us to force a handler to test buildMetrics success path.
func metricsSetupSuccess(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
	rec := metrics.NewRecorder()
	return rec, http.NewServeMux(), func(context.Context) error { return nil }, nil
}

func TestBuildMetricsSuccessPathSetsServerAndShutdown(t *testing.T) {
	orig := metricsSetup
	defer func() { metricsSetup = orig }()
	metricsSetup = metricsSetupSuccess

	rec, srv, stop := buildMetrics(config.Config{
		Metrics: config.MetricsConfig{
			Enabled: true,
			Port:    "9999",
		},
	}, nil, nil)

	if rec == nil || srv == nil || stop == nil {
		t.Fatalf("expected recorder, server, and shutdown to be set on success")
	}
}

func TestNewServerWithMetricsHandlesSetupFailure(t *testing.T) {
	orig := metricsSetup
	defer func() { metricsSetup = orig }()
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("fail")
	}

	cfg := memoryConfig()
	cfg.Metrics.Enabled = true
	srv := newServerWithMetrics(cfg, nil, &testutil.StubProvider{}, nil)
	if srv.metrics == nil {
		t.Fatalf("expected fallback metrics recorder even on setup failure")
	}
	if srv.metricsServer != nil {
		t.Fatalf("expected no metrics server on setup failure")
	}
}

func TestNewServerWithMetricsUsesInjectedRecorder(t *testing.T) {
	rec, _ := testutil.NewRecorderWithShutdown()
	cfg := memoryConfig()
	cfg.Metrics.Enabled = true

	srv := newServerWithMetrics(cfg, nil, &testutil.StubProvider{}, rec)
	if srv.metrics != rec {
		t.Fatalf("expected injected recorder to be used")
	}
	if srv.metricsStop != nil {
		t.Fatalf("expected no shutdown hook for injected recorder")
	}
}
