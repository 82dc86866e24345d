package players

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/preston-bernstein/wowp-data-service/internal/domain/players"
	"github.com/preston-bernstein/wowp-data-service/internal/query"
)

// MinSearchLength is the shortest nickname search the upstream accepts.
const MinSearchLength = 3

// ErrSearchTooShort rejects searches the upstream would refuse.
var ErrSearchTooShort = errors.New("players: search too short")

// Provider is the upstream surface the service needs.
type Provider interface {
	SearchAccounts(ctx context.Context, query string) ([]players.Summary, error)
	FetchAccount(ctx context.Context, id int64) (players.Player, error)
}

// Service coordinates player operations against an upstream Provider.
type Service struct {
	provider Provider
}

// NewService constructs a Service with the provided Provider.
func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// Search returns the upstream hits with a nickname word starting with q,
// case-insensitively, in upstream order. A blank q returns an empty result
// without calling upstream; a q shorter than MinSearchLength runes fails with
// ErrSearchTooShort, also without calling upstream.
func (s *Service) Search(ctx context.Context, q string) ([]players.Summary, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []players.Summary{}, nil
	}
	if utf8.RuneCountInString(q) < MinSearchLength {
		return nil, fmt.Errorf("%w: %q has fewer than %d characters", ErrSearchTooShort, q, MinSearchLength)
	}
	hits, err := s.provider.SearchAccounts(ctx, q)
	if err != nil {
		return nil, err
	}
	return query.Search(hits, q), nil
}

// Detail returns the full account record.
func (s *Service) Detail(ctx context.Context, id int64) (players.Player, error) {
	return s.provider.FetchAccount(ctx, id)
}
