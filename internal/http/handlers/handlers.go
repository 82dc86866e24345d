package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/language"

	appplayers "github.com/preston-bernstein/wowp-data-service/internal/app/players"
	"github.com/preston-bernstein/wowp-data-service/internal/domain/aircraft"
	"github.com/preston-bernstein/wowp-data-service/internal/domain/clans"
	"github.com/preston-bernstein/wowp-data-service/internal/domain/players"
	"github.com/preston-bernstein/wowp-data-service/internal/format"
	"github.com/preston-bernstein/wowp-data-service/internal/http/requestutil"
	"github.com/preston-bernstein/wowp-data-service/internal/logging"
	"github.com/preston-bernstein/wowp-data-service/internal/query"
)

// AircraftService lists aircraft and assembles aircraft details.
type AircraftService interface {
	List(ctx context.Context, nation, name string) ([]aircraft.Aircraft, error)
	Detail(ctx context.Context, id int64) (aircraft.Detail, error)
}

// PlayerService searches accounts and loads account details.
type PlayerService interface {
	Search(ctx context.Context, q string) ([]players.Summary, error)
	Detail(ctx context.Context, id int64) (players.Player, error)
}

// ClanService lists clans and loads clan details.
type ClanService interface {
	List(ctx context.Context) ([]clans.Summary, error)
	Detail(ctx context.Context, id int64) (clans.Clan, error)
}

// Services groups the application services behind the HTTP façade.
type Services struct {
	Aircraft AircraftService
	Players  PlayerService
	Clans    ClanService
}

// Options carry presentation defaults.
type Options struct {
	// Locale is used when the request names none. Zero means format.DefaultLocale.
	Locale   language.Tag
	Location *time.Location
	Logger   *slog.Logger
}

// Handler wires HTTP routes to the application services.
type Handler struct {
	svcs     Services
	locale   language.Tag
	location *time.Location
	logger   *slog.Logger
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svcs Services, opts Options) *Handler {
	locale := opts.Locale
	if locale == language.Und {
		locale = format.DefaultLocale
	}
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		svcs:     svcs,
		locale:   locale,
		location: loc,
		logger:   opts.Logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// ListAircraft returns the aircraft list filtered by the nation and q query parameters.
func (h *Handler) ListAircraft(w nethttp.ResponseWriter, r *nethttp.Request) {
	q := r.URL.Query()
	list, err := h.svcs.Aircraft.List(r.Context(), q.Get("nation"), q.Get("q"))
	if err != nil {
		writeServiceError(w, r, err, "aircraft not found", h.logger)
		return
	}

	f := h.formatter(r)
	items := make([]AircraftListItem, 0, len(list))
	for _, a := range list {
		items = append(items, aircraftListItem(a, f))
	}
	logging.Debug(loggerFromContext(r, h.logger), "served aircraft list", logging.FieldCount, len(items))
	writeJSON(w, nethttp.StatusOK, AircraftListResponse{
		Locale:   f.Locale().String(),
		Count:    len(items),
		Aircraft: items,
	}, h.logger)
}

// AircraftDetail returns one aircraft with its predecessors and successors.
func (h *Handler) AircraftDetail(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, ok := requestutil.ParseID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid aircraft id", h.logger)
		return
	}
	detail, err := h.svcs.Aircraft.Detail(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "aircraft not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, aircraftDetailResponse(detail, h.formatter(r)), h.logger)
}

// SearchPlayers searches accounts by the search query parameter. A blank
// search yields an empty list and a too short one a 400.
func (h *Handler) SearchPlayers(w nethttp.ResponseWriter, r *nethttp.Request) {
	search := strings.TrimSpace(r.URL.Query().Get("search"))
	hits, err := h.svcs.Players.Search(r.Context(), search)
	if errors.Is(err, appplayers.ErrSearchTooShort) {
		writeError(w, r, nethttp.StatusBadRequest, fmt.Sprintf("search must be at least %d characters", appplayers.MinSearchLength), h.logger)
		return
	}
	if err != nil {
		writeServiceError(w, r, err, "player not found", h.logger)
		return
	}
	if hits == nil {
		hits = []players.Summary{}
	}
	writeJSON(w, nethttp.StatusOK, PlayerSearchResponse{
		Search:  search,
		Count:   len(hits),
		Players: hits,
	}, h.logger)
}

// PlayerDetail returns one account.
func (h *Handler) PlayerDetail(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, ok := requestutil.ParseID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid player id", h.logger)
		return
	}
	player, err := h.svcs.Players.Detail(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "player not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, playerDetailResponse(player, h.formatter(r)), h.logger)
}

// ListClans returns the clan list, optionally narrowed by the q query parameter.
func (h *Handler) ListClans(w nethttp.ResponseWriter, r *nethttp.Request) {
	list, err := h.svcs.Clans.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "clan not found", h.logger)
		return
	}
	list = query.Filter(list, "", r.URL.Query().Get("q"))

	f := h.formatter(r)
	items := make([]ClanListItem, 0, len(list))
	for _, c := range list {
		items = append(items, clanListItem(c, f))
	}
	writeJSON(w, nethttp.StatusOK, ClanListResponse{
		Locale: f.Locale().String(),
		Count:  len(items),
		Clans:  items,
	}, h.logger)
}

// ClanDetail returns one clan.
func (h *Handler) ClanDetail(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, ok := requestutil.ParseID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid clan id", h.logger)
		return
	}
	clan, err := h.svcs.Clans.Detail(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "clan not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, clanDetailResponse(clan, h.formatter(r)), h.logger)
}

// NotFound answers unknown routes.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers known routes called with the wrong method.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
}

// formatter resolves the display locale from ?locale=, then Accept-Language,
// then the configured default.
func (h *Handler) formatter(r *nethttp.Request) format.Formatter {
	tag := format.NegotiateLocale(r.URL.Query().Get("locale"), r.Header.Get("Accept-Language"), h.locale)
	return format.New(tag, h.location)
}
