package wowp

import (
	"errors"
	"net/url"
	"testing"

	"github.com/preston-bernstein/wowp-data-service/internal/providers"
)

func TestCatalogBuildsEveryOperation(t *testing.T) {
	cat := NewCatalog(CatalogConfig{BaseURL: "https://api.example.com/wowp/", ApplicationID: "app"})

	cases := []struct {
		op     string
		params map[string]string
		want   string
	}{
		{providers.OpListAircraft, nil, "https://api.example.com/wowp/encyclopedia/planes/?application_id=app"},
		{providers.OpGetAircraft, map[string]string{paramPlaneID: "1,2"}, "https://api.example.com/wowp/encyclopedia/planeinfo/?application_id=app&plane_id=1%2C2"},
		{providers.OpListPlayersBySearch, map[string]string{paramSearch: "ace"}, "https://api.example.com/wowp/account/list/?application_id=app&search=ace"},
		{providers.OpGetPlayerInfo, map[string]string{paramAccountID: "42"}, "https://api.example.com/wowp/account/info2/?account_id=42&application_id=app"},
		{providers.OpListClans, nil, "https://api.example.com/wowp/clans/list/?application_id=app"},
		{providers.OpGetClanInfo, map[string]string{paramClanID: "7"}, "https://api.example.com/wowp/clans/info/?application_id=app&clan_id=7"},
	}

	for _, tc := range cases {
		got, err := cat.URL(tc.op, tc.params)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tc.op, err)
		}
		if got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.op, tc.want, got)
		}
	}
}

func TestCatalogSortsKeysAndPassesOptionalParams(t *testing.T) {
	cat := NewCatalog(CatalogConfig{ApplicationID: "app", Language: "de"})

	got, err := cat.URL(providers.OpListAircraft, map[string]string{"type": "fighter", "fields": "name,nation", "application_id": "override"})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	want := defaultBaseURL + "/encyclopedia/planes/?application_id=app&fields=name%2Cnation&language=de&type=fighter"
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}

	again, _ := cat.URL(providers.OpListAircraft, map[string]string{"fields": "name,nation", "type": "fighter"})
	if again != got {
		t.Fatalf("expected deterministic encoding, got %s vs %s", again, got)
	}
}

func TestCatalogEscapesSearch(t *testing.T) {
	cat := NewCatalog(CatalogConfig{ApplicationID: "app"})
	got, err := cat.URL(providers.OpListPlayersBySearch, map[string]string{paramSearch: "a&b c"})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	u, err := url.Parse(got)
	if err != nil {
		t.Fatalf("invalid url %s: %v", got, err)
	}
	if u.Query().Get(paramSearch) != "a&b c" {
		t.Fatalf("expected search to round trip, got %q", u.Query().Get(paramSearch))
	}
}

func TestCatalogConfigurationErrors(t *testing.T) {
	cat := NewCatalog(CatalogConfig{ApplicationID: "app"})

	cases := []struct {
		name   string
		cat    Catalog
		op     string
		params map[string]string
	}{
		{"unknown operation", cat, "list-tanks", nil},
		{"missing required", cat, providers.OpGetAircraft, nil},
		{"blank required", cat, providers.OpGetClanInfo, map[string]string{paramClanID: "  "}},
		{"blank application id", NewCatalog(CatalogConfig{ApplicationID: " "}), providers.OpListClans, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.cat.URL(tc.op, tc.params)
			if !errors.Is(err, providers.ErrConfiguration) {
				t.Fatalf("expected configuration error, got %v", err)
			}
		})
	}
}
