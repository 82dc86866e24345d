package teststubs

import (
	"context"
	"sync"

	"github.com/preston-bernstein/wowp-data-service/internal/domain/aircraft"
	"github.com/preston-bernstein/wowp-data-service/internal/domain/clans"
	"github.com/preston-bernstein/wowp-data-service/internal/domain/players"
	"github.com/preston-bernstein/wowp-data-service/internal/providers"
)

var _ providers.DataProvider = (*StubProvider)(nil)

// StubProvider is a test double for providers.DataProvider. Err, when set,
// fails every operation; OpErrs fail a single operation.
type StubProvider struct {
	Aircraft []aircraft.Aircraft
	Accounts []players.Player
	Clans    []clans.Clan
	Err      error
	OpErrs   map[string]error

	mu    sync.Mutex
	calls map[string]int
}

// Calls reports how many times op was invoked.
func (s *StubProvider) Calls(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

func (s *StubProvider) track(op string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calls == nil {
		s.calls = make(map[string]int)
	}
	s.calls[op]++
	if err := s.OpErrs[op]; err != nil {
		return err
	}
	return s.Err
}

func (s *StubProvider) FetchAircraftCatalog(ctx context.Context) ([]aircraft.Aircraft, error) {
	if err := s.track(providers.OpListAircraft); err != nil {
		return nil, err
	}
	return append([]aircraft.Aircraft(nil), s.Aircraft...), ctx.Err()
}

func (s *StubProvider) FetchAircraft(ctx context.Context, ids ...int64) (map[int64]aircraft.Aircraft, error) {
	if err := s.track(providers.OpGetAircraft); err != nil {
		return nil, err
	}
	out := make(map[int64]aircraft.Aircraft, len(ids))
	for _, id := range ids {
		for _, a := range s.Aircraft {
			if a.ID == id {
				out[id] = a
			}
		}
	}
	return out, ctx.Err()
}

func (s *StubProvider) SearchAccounts(ctx context.Context, query string) ([]players.Summary, error) {
	if err := s.track(providers.OpListPlayersBySearch); err != nil {
		return nil, err
	}
	out := make([]players.Summary, 0, len(s.Accounts))
	for _, p := range s.Accounts {
		out = append(out, players.Summary{ID: p.ID, Nickname: p.Nickname})
	}
	return out, ctx.Err()
}

func (s *StubProvider) FetchAccount(ctx context.Context, id int64) (players.Player, error) {
	if err := s.track(providers.OpGetPlayerInfo); err != nil {
		return players.Player{}, err
	}
	for _, p := range s.Accounts {
		if p.ID == id {
			return p, ctx.Err()
		}
	}
	return players.Player{}, providers.NotFound(providers.OpGetPlayerInfo, id)
}

func (s *StubProvider) FetchClans(ctx context.Context) ([]clans.Summary, error) {
	if err := s.track(providers.OpListClans); err != nil {
		return nil, err
	}
	out := make([]clans.Summary, 0, len(s.Clans))
	for _, c := range s.Clans {
		out = append(out, clans.Summary{ID: c.ID, Tag: c.Tag, Name: c.Name, MembersCount: c.MembersCount, CreatedAt: c.CreatedAt})
	}
	return out, ctx.Err()
}

func (s *StubProvider) FetchClan(ctx context.Context, id int64) (clans.Clan, error) {
	if err := s.track(providers.OpGetClanInfo); err != nil {
		return clans.Clan{}, err
	}
	for _, c := range s.Clans {
		if c.ID == id {
			return c, ctx.Err()
		}
	}
	return clans.Clan{}, providers.NotFound(providers.OpGetClanInfo, id)
}
