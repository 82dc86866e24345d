package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	appaircraft "github.com/preston-bernstein/wowp-data-service/internal/app/aircraft"
	appclans "github.com/preston-bernstein/wowp-data-service/internal/app/clans"
	appplayers "github.com/preston-bernstein/wowp-data-service/internal/app/players"
	"github.com/preston-bernstein/wowp-data-service/internal/config"
	"github.com/preston-bernstein/wowp-data-service/internal/format"
	httpserver "github.com/preston-bernstein/wowp-data-service/internal/http"
	"github.com/preston-bernstein/wowp-data-service/internal/http/handlers"
	"github.com/preston-bernstein/wowp-data-service/internal/logging"
	"github.com/preston-bernstein/wowp-data-service/internal/metrics"
	"github.com/preston-bernstein/wowp-data-service/internal/providers"
	"github.com/preston-bernstein/wowp-data-service/internal/timeutil"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg             config.Config
	logger          *slog.Logger
	metrics         *metrics.Recorder
	provider        providers.DataProvider
	aircraftService *appaircraft.Service
	playersService  *appplayers.Service
	clansService    *appclans.Service
	httpServer      httpServer
	metricsServer   httpServer
	metricsStop     func(context.Context) error
}

// New constructs a server with the configured provider wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.DataProvider, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	factory := newProviderFactory(logger, recorder)
	if provider == nil {
		provider = factory.build(cfg)
	} else {
		provider = factory.wrap(cfg, provider)
	}
	aircraftSvc, playerSvc, clanSvc := buildServices(cfg, provider, logger, recorder)
	httpSrv := buildHTTPServer(cfg, handlers.Services{
		Aircraft: aircraftSvc,
		Players:  playerSvc,
		Clans:    clanSvc,
	}, logger, recorder)

	return &Server{
		cfg:             cfg,
		logger:          logger,
		metrics:         recorder,
		provider:        provider,
		aircraftService: aircraftSvc,
		playersService:  playerSvc,
		clansService:    clanSvc,
		httpServer:      httpSrv,
		metricsServer:   metricsSrv,
		metricsStop:     metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
	}
}

func buildServices(cfg config.Config, provider providers.DataProvider, logger *slog.Logger, recorder *metrics.Recorder) (*appaircraft.Service, *appplayers.Service, *appclans.Service) {
	aircraftSvc := appaircraft.NewService(provider, appaircraft.Options{
		Strategy: cfg.Wowp.RelatedLookup,
		Logger:   logger,
		Metrics:  recorder,
	})
	return aircraftSvc, appplayers.NewService(provider), appclans.NewService(provider)
}

func buildHTTPServer(cfg config.Config, svcs handlers.Services, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	handler := handlers.NewHandler(svcs, handlers.Options{
		Locale:   format.ParseLocale(cfg.Display.Locale, format.DefaultLocale),
		Location: timeutil.ResolveLocation(cfg.Display.Timezone),
		Logger:   logger,
	})
	router := httpserver.NewRouter(handler, httpserver.RouterOptions{
		Logger:  logger,
		Metrics: recorder,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeoutFor(cfg),
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP servers, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting",
		slog.String("addr", s.httpServer.Addr()),
		slog.String(logging.FieldProvider, normalizeProviderName(s.cfg.Provider)),
		slog.String(logging.FieldStrategy, s.cfg.Wowp.RelatedLookup),
	)
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
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
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
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", handler)
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           mux,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Warn(logger, name+" server failed", "error", err)
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
