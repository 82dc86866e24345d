package providers

import (
	"context"

	"github.com/preston-bernstein/wowp-data-service/internal/domain/aircraft"
	"github.com/preston-bernstein/wowp-data-service/internal/domain/clans"
	"github.com/preston-bernstein/wowp-data-service/internal/domain/players"
)

// Logical upstream operations. Clients, metrics, and logs share these names.
const (
	OpListAircraft        = "list-aircraft"
	OpGetAircraft         = "get-aircraft"
	OpListPlayersBySearch = "list-players-by-search"
	OpGetPlayerInfo       = "get-player-info"
	OpListClans           = "list-clans"
	OpGetClanInfo         = "get-clan-info"
)

// AircraftProvider fetches normalized aircraft.
type AircraftProvider interface {
	// FetchAircraftCatalog returns every aircraft, sorted by id.
	FetchAircraftCatalog(ctx context.Context) ([]aircraft.Aircraft, error)
	// FetchAircraft looks up aircraft by id in one request. Ids missing from
	// the response are absent from the map.
	FetchAircraft(ctx context.Context, ids ...int64) (map[int64]aircraft.Aircraft, error)
}

// PlayerProvider fetches normalized accounts.
type PlayerProvider interface {
	SearchAccounts(ctx context.Context, query string) ([]players.Summary, error)
	FetchAccount(ctx context.Context, id int64) (players.Player, error)
}

// ClanProvider fetches normalized clans.
type ClanProvider interface {
	FetchClans(ctx context.Context) ([]clans.Summary, error)
	FetchClan(ctx context.Context, id int64) (clans.Clan, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	AircraftProvider
	PlayerProvider
	ClanProvider
}
