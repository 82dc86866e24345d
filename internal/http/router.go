package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/preston-bernstein/wowp-data-service/internal/http/handlers"
	"github.com/preston-bernstein/wowp-data-service/internal/http/middleware"
	"github.com/preston-bernstein/wowp-data-service/internal/http/requestutil"
	"github.com/preston-bernstein/wowp-data-service/internal/metrics"
)

// RouterOptions configure the middleware stack.
type RouterOptions struct {
	Logger  *slog.Logger
	Metrics *metrics.Recorder
	// AllowedOrigins defaults to any origin.
	AllowedOrigins []string
}

// NewRouter registers HTTP routes on a chi router wrapped in request logging,
// panic recovery and CORS.
func NewRouter(handler *handlers.Handler, opts RouterOptions) nethttp.Handler {
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.Logging(opts.Logger, opts.Metrics))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodOptions},
		AllowedHeaders: []string{"Accept", "Accept-Language", "Content-Type", requestutil.HeaderRequestID},
		ExposedHeaders: []string{requestutil.HeaderRequestID, "Retry-After"},
		MaxAge:         300,
	}))

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/health", handler.Health)
	r.Route("/aircraft", func(r chi.Router) {
		r.Get("/", handler.ListAircraft)
		r.Get("/{id}", handler.AircraftDetail)
	})
	r.Route("/players", func(r chi.Router) {
		r.Get("/", handler.SearchPlayers)
		r.Get("/{id}", handler.PlayerDetail)
	})
	r.Route("/clans", func(r chi.Router) {
		r.Get("/", handler.ListClans)
		r.Get("/{id}", handler.ClanDetail)
	})
	return r
}
