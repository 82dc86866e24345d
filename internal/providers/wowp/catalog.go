package wowp

import (
	"net/url"
	"strings"

	"github.com/preston-bernstein/wowp-data-service/internal/providers"
)

// CatalogConfig carries the values the catalog adds to every URL.
type CatalogConfig struct {
	BaseURL       string
	ApplicationID string
	Language      string
}

type endpoint struct {
	path     string
	required []string
}

var endpoints = map[string]endpoint{
	providers.OpListAircraft:        {path: "/encyclopedia/planes/"},
	providers.OpGetAircraft:         {path: "/encyclopedia/planeinfo/", required: []string{paramPlaneID}},
	providers.OpListPlayersBySearch: {path: "/account/list/", required: []string{paramSearch}},
	providers.OpGetPlayerInfo:       {path: "/account/info2/", required: []string{paramAccountID}},
	providers.OpListClans:           {path: "/clans/list/"},
	providers.OpGetClanInfo:         {path: "/clans/info/", required: []string{paramClanID}},
}

// Catalog maps logical operations to fully-qualified upstream URLs.
type Catalog struct {
	baseURL       string
	applicationID string
	language      string
}

// NewCatalog builds a catalog. A blank base URL uses the public EU endpoint.
func NewCatalog(cfg CatalogConfig) Catalog {
	return Catalog{
		baseURL:       normalizeBaseURL(cfg.BaseURL),
		applicationID: strings.TrimSpace(cfg.ApplicationID),
		language:      strings.TrimSpace(cfg.Language),
	}
}

// URL returns the URL for op with params encoded in sorted key order.
// Unknown operations, blank required params, and a blank application id
// fail with a configuration error before any I/O happens.
func (c Catalog) URL(op string, params map[string]string) (string, error) {
	ep, ok := endpoints[op]
	if !ok {
		return "", &providers.Error{Kind: providers.KindConfiguration, Op: op, Message: "unknown operation"}
	}
	if c.applicationID == "" {
		return "", &providers.Error{Kind: providers.KindConfiguration, Op: op, Message: "application id is not configured"}
	}
	for _, name := range ep.required {
		if strings.TrimSpace(params[name]) == "" {
			return "", &providers.Error{Kind: providers.KindConfiguration, Op: op, Message: "missing required parameter " + name}
		}
	}

	q := url.Values{}
	for k, v := range params {
		if k == paramApplicationID || k == paramLanguage {
			continue
		}
		q.Set(k, v)
	}
	q.Set(paramApplicationID, c.applicationID)
	if c.language != "" {
		q.Set(paramLanguage, c.language)
	}
	return c.baseURL + ep.path + "?" + q.Encode(), nil
}
