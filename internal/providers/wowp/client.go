package wowp

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/preston-bernstein/wowp-data-service/internal/domain/aircraft"
	"github.com/preston-bernstein/wowp-data-service/internal/domain/clans"
	"github.com/preston-bernstein/wowp-data-service/internal/domain/players"
	"github.com/preston-bernstein/wowp-data-service/internal/logging"
	"github.com/preston-bernstein/wowp-data-service/internal/metrics"
	"github.com/preston-bernstein/wowp-data-service/internal/providers"
)

// Config controls how the client reaches the upstream API.
type Config struct {
	BaseURL       string
	ApplicationID string
	Language      string
	HTTPClient    *http.Client
	Timeout       time.Duration
	Logger        *slog.Logger
	Metrics       *metrics.Recorder
}

// Client fetches encyclopedia, account, and clan data and maps it to domain models.
type Client struct {
	catalog    Catalog
	httpClient httpDoer
	logger     *slog.Logger
	metrics    *metrics.Recorder
	now        func() time.Time
}

var _ providers.DataProvider = (*Client)(nil)

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		catalog: NewCatalog(CatalogConfig{
			BaseURL:       cfg.BaseURL,
			ApplicationID: cfg.ApplicationID,
			Language:      cfg.Language,
		}),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		now:        time.Now,
	}
}

// FetchAircraftCatalog returns every aircraft in the encyclopedia, sorted by id.
func (c *Client) FetchAircraftCatalog(ctx context.Context) ([]aircraft.Aircraft, error) {
	data, err := c.get(ctx, providers.OpListAircraft, nil)
	if err != nil {
		return nil, err
	}
	return sortedAircraft(aircraftByID(data)), nil
}

// FetchAircraft looks up aircraft by id. Duplicate ids are collapsed and
// lists longer than the upstream limit are split into sequential requests.
// Ids the API does not know are absent from the result.
func (c *Client) FetchAircraft(ctx context.Context, ids ...int64) (map[int64]aircraft.Aircraft, error) {
	out := make(map[int64]aircraft.Aircraft, len(ids))
	unique := dedupeIDs(ids)
	for start := 0; start < len(unique); start += maxBatchIDs {
		end := start + maxBatchIDs
		if end > len(unique) {
			end = len(unique)
		}
		data, err := c.get(ctx, providers.OpGetAircraft, map[string]string{
			paramPlaneID: joinIDs(unique[start:end]),
		})
		if err != nil {
			return nil, err
		}
		for id, a := range aircraftByID(data) {
			out[id] = a
		}
	}
	return out, nil
}

// SearchAccounts runs the upstream nickname search.
func (c *Client) SearchAccounts(ctx context.Context, query string) ([]players.Summary, error) {
	data, err := c.get(ctx, providers.OpListPlayersBySearch, map[string]string{paramSearch: query})
	if err != nil {
		return nil, err
	}
	return mapArray(data, toPlayerSummary), nil
}

// FetchAccount returns the full account record for id.
func (c *Client) FetchAccount(ctx context.Context, id int64) (players.Player, error) {
	data, err := c.get(ctx, providers.OpGetPlayerInfo, map[string]string{paramAccountID: strconv.FormatInt(id, 10)})
	if err != nil {
		return players.Player{}, err
	}
	entry, ok := keyedEntry(data, id)
	if !ok {
		return players.Player{}, providers.NotFound(providers.OpGetPlayerInfo, id)
	}
	p := toPlayer(entry)
	if p.ID == 0 {
		p.ID = id
	}
	return p, nil
}

// FetchClans returns the upstream clan list in API order.
func (c *Client) FetchClans(ctx context.Context) ([]clans.Summary, error) {
	data, err := c.get(ctx, providers.OpListClans, nil)
	if err != nil {
		return nil, err
	}
	return mapArray(data, toClanSummary), nil
}

// FetchClan returns the clan record for id.
func (c *Client) FetchClan(ctx context.Context, id int64) (clans.Clan, error) {
	data, err := c.get(ctx, providers.OpGetClanInfo, map[string]string{paramClanID: strconv.FormatInt(id, 10)})
	if err != nil {
		return clans.Clan{}, err
	}
	entry, ok := keyedEntry(data, id)
	if !ok {
		return clans.Clan{}, providers.NotFound(providers.OpGetClanInfo, id)
	}
	clan := toClan(entry)
	if clan.ID == 0 {
		clan.ID = id
	}
	return clan, nil
}

// get builds the URL for op, fetches it, and unwraps the envelope. Every
// attempt is recorded on the metrics recorder.
func (c *Client) get(ctx context.Context, op string, params map[string]string) (gjson.Result, error) {
	rawURL, err := c.catalog.URL(op, params)
	if err != nil {
		return gjson.Result{}, err
	}

	start := c.now()
	data, err := c.fetch(ctx, op, rawURL)
	elapsed := c.now().Sub(start)
	c.metrics.RecordUpstreamCall(op, elapsed, err)

	logger := logging.FromContext(ctx, c.logger)
	if logger != nil {
		logger.Debug("upstream call",
			logging.FieldProvider, ProviderName,
			logging.FieldOperation, op,
			logging.FieldURL, redactURL(rawURL),
			logging.FieldDurationMS, elapsed.Milliseconds(),
			"err", err,
		)
	}
	return data, err
}

func (c *Client) fetch(ctx context.Context, op, rawURL string) (gjson.Result, error) {
	body, err := fetchJSON(ctx, c.httpClient, op, rawURL)
	if err != nil {
		return gjson.Result{}, err
	}
	return unwrapEnvelope(op, body)
}

func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
