package clans

import (
	"context"

	"github.com/preston-bernstein/wowp-data-service/internal/domain/clans"
)

// Provider is the upstream surface the service needs.
type Provider interface {
	FetchClans(ctx context.Context) ([]clans.Summary, error)
	FetchClan(ctx context.Context, id int64) (clans.Clan, error)
}

// Service coordinates clan operations against an upstream Provider.
type Service struct {
	provider Provider
}

// NewService constructs a Service with the provided Provider.
func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// List returns the clan list in upstream order.
func (s *Service) List(ctx context.Context) ([]clans.Summary, error) {
	return s.provider.FetchClans(ctx)
}

// Detail returns a single clan.
func (s *Service) Detail(ctx context.Context, id int64) (clans.Clan, error) {
	return s.provider.FetchClan(ctx, id)
}
