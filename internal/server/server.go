package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nba-stats-viewer/internal/app/board"
	"github.com/preston-bernstein/nba-stats-viewer/internal/app/stats"
	"github.com/preston-bernstein/nba-stats-viewer/internal/auth"
	"github.com/preston-bernstein/nba-stats-viewer/internal/config"
	"github.com/preston-bernstein/nba-stats-viewer/internal/favorites"
	httpserver "github.com/preston-bernstein/nba-stats-viewer/internal/http"
	"github.com/preston-bernstein/nba-stats-viewer/internal/http/handlers"
	"github.com/preston-bernstein/nba-stats-viewer/internal/kvstore"
	"github.com/preston-bernstein/nba-stats-viewer/internal/logging"
	"github.com/preston-bernstein/nba-stats-viewer/internal/metrics"
	"github.com/preston-bernstein/nba-stats-viewer/internal/providers"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	kv            kvstore.Store
	screen        *stats.Screen
	auth          *auth.Client
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with the configured provider and storage backend.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.StatsProvider) *Server {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.StatsProvider, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	kv := buildStorage(context.Background(), cfg.Storage, logger)
	session := auth.NewSession(kv, logger)
	authClient := auth.NewClient(auth.Config{
		BaseURL: cfg.StatsAPI.BaseURL,
		Timeout: cfg.StatsAPI.Timeout,
	}, session, logger)

	factory := newProviderFactory(logger, recorder, session.Token)
	var upstream providers.Provider
	if provider == nil {
		upstream = factory.build(cfg)
	} else {
		upstream = factory.wrap(cfg, provider)
	}

	screen := stats.NewScreen(upstream, favorites.NewStore(kv, logger), recorder, logger, cfg.StatsAPI.PageSize)
	insightBoard := board.New(upstream, logger)
	httpSrv := buildHTTPServer(cfg, screen, insightBoard, authClient, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		kv:            kv,
		screen:        screen,
		auth:          authClient,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, screen *stats.Screen, kv kvstore.Store, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		kv:         kv,
		screen:     screen,
		httpServer: httpSrv,
	}
}

func buildHTTPServer(cfg config.Config, screen *stats.Screen, insightBoard *board.Board, authClient *auth.Client, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	handler := handlers.NewHandler(screen, insightBoard, authClient, logger)
	router := httpserver.NewRouter(handler, logger, recorder, cfg.CORSOrigins)

	return newNetHTTPServer(cfg.Port, router)
}

// Run starts the HTTP server, mounts the screen, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.mount(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

// mount verifies any persisted session and loads the first page. A stale
// session is cleared before the first fetch so it never carries a dead token.
func (s *Server) mount(ctx context.Context) {
	if s.auth != nil {
		v := s.auth.Verify(ctx)
		if s.logger != nil {
			s.logger.Info("session verified", slog.Bool("authenticated", v.Authenticated))
		}
	}
	if s.screen == nil {
		return
	}
	page := s.screen.Mount(ctx)
	if s.logger != nil {
		s.logger.Info("screen mounted",
			slog.Int(logging.FieldCount, len(page.Rows)),
			slog.Int(logging.FieldPage, page.State.Page),
		)
	}
}

func (s *Server) startServer(stop context.CancelFunc) {
	if s.logger != nil {
		s.logger.Info("http server starting", slog.String("addr", s.httpServer.Addr()))
	}
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	if s.logger != nil {
		s.logger.Info("metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	// Storage closes last so in-flight handlers can still persist.
	if s.kv != nil {
		if err := s.kv.Close(); err != nil && s.logger != nil {
			s.logger.Warn("storage close failed", "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = newNetHTTPServer(recCfg.Port, handler)
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
