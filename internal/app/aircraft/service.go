package aircraft

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/preston-bernstein/wowp-data-service/internal/async"
	"github.com/preston-bernstein/wowp-data-service/internal/domain/aircraft"
	"github.com/preston-bernstein/wowp-data-service/internal/logging"
	"github.com/preston-bernstein/wowp-data-service/internal/metrics"
	"github.com/preston-bernstein/wowp-data-service/internal/providers"
	"github.com/preston-bernstein/wowp-data-service/internal/query"
)

// Strategies for resolving predecessor and successor summaries.
const (
	// StrategyBatch looks up each relation list by id, both lists concurrently.
	StrategyBatch = "batch"
	// StrategyCatalog fetches the whole catalog once and resolves both lists from it.
	StrategyCatalog = "catalog"
)

// ParseStrategy validates a strategy name. Blank selects StrategyBatch.
func ParseStrategy(raw string) (string, error) {
	switch s := strings.ToLower(strings.TrimSpace(raw)); s {
	case "", StrategyBatch:
		return StrategyBatch, nil
	case StrategyCatalog:
		return StrategyCatalog, nil
	default:
		return "", fmt.Errorf("unknown related lookup strategy %q", raw)
	}
}

// Provider is the upstream surface the service needs.
type Provider interface {
	FetchAircraftCatalog(ctx context.Context) ([]aircraft.Aircraft, error)
	FetchAircraft(ctx context.Context, ids ...int64) (map[int64]aircraft.Aircraft, error)
}

// Options tune the service. The zero value uses StrategyBatch.
type Options struct {
	Strategy string
	Logger   *slog.Logger
	Metrics  *metrics.Recorder
}

// Service lists aircraft and assembles aircraft details with their tech-tree neighbours.
type Service struct {
	provider Provider
	strategy string
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time
}

// NewService constructs a Service. An unknown strategy falls back to StrategyBatch.
func NewService(provider Provider, opts Options) *Service {
	strategy, err := ParseStrategy(opts.Strategy)
	if err != nil {
		strategy = StrategyBatch
	}
	return &Service{
		provider: provider,
		strategy: strategy,
		logger:   opts.Logger,
		metrics:  opts.Metrics,
		now:      time.Now,
	}
}

// Strategy reports the relation lookup strategy in use.
func (s *Service) Strategy() string {
	return s.strategy
}

// List returns the catalog filtered by nation and name, in ascending id order.
func (s *Service) List(ctx context.Context, nation, name string) ([]aircraft.Aircraft, error) {
	catalog, err := s.provider.FetchAircraftCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return query.Filter(catalog, nation, name), nil
}

// Detail fetches one aircraft and resolves its predecessors and successors.
// A failed relation lookup leaves that list empty; only a failure to fetch
// the aircraft itself fails the call.
func (s *Service) Detail(ctx context.Context, id int64) (aircraft.Detail, error) {
	byID, err := s.provider.FetchAircraft(ctx, id)
	if err != nil {
		return aircraft.Detail{}, err
	}
	target, ok := byID[id]
	if !ok {
		return aircraft.Detail{}, providers.NotFound(providers.OpGetAircraft, id)
	}

	detail := aircraft.Detail{
		Aircraft:     target,
		Predecessors: []aircraft.Summary{},
		Successors:   []aircraft.Summary{},
	}
	if !target.HasRelations() {
		return detail, nil
	}

	start := s.now()
	var lookupErr error
	if s.strategy == StrategyCatalog {
		detail.Predecessors, detail.Successors, lookupErr = s.relatedFromCatalog(ctx, target)
	} else {
		detail.Predecessors, detail.Successors, lookupErr = s.relatedByBatch(ctx, target)
	}
	s.metrics.RecordRelatedLookup(s.strategy, s.now().Sub(start), lookupErr)

	if err := ctx.Err(); err != nil {
		return aircraft.Detail{}, err
	}
	return detail, nil
}

type relatedLookup = async.Future[map[int64]aircraft.Aircraft]

func (s *Service) relatedByBatch(ctx context.Context, target aircraft.Aircraft) ([]aircraft.Summary, []aircraft.Summary, error) {
	prev := s.lookup(ctx, target.Predecessors)
	next := s.lookup(ctx, target.Successors)

	predecessors, prevErr := s.resolve(ctx, target.ID, "predecessors", target.Predecessors, prev)
	successors, nextErr := s.resolve(ctx, target.ID, "successors", target.Successors, next)

	if prevErr != nil {
		return predecessors, successors, prevErr
	}
	return predecessors, successors, nextErr
}

func (s *Service) lookup(ctx context.Context, ids []int64) *relatedLookup {
	if len(ids) == 0 {
		return nil
	}
	return async.Go(ctx, func(ctx context.Context) (map[int64]aircraft.Aircraft, error) {
		return s.provider.FetchAircraft(ctx, ids...)
	})
}

func (s *Service) resolve(ctx context.Context, id int64, relation string, ids []int64, f *relatedLookup) ([]aircraft.Summary, error) {
	if f == nil {
		return []aircraft.Summary{}, nil
	}
	byID, err := f.Await(ctx).Unwrap()
	if err != nil {
		s.warnRelated(ctx, id, relation, err)
		return []aircraft.Summary{}, err
	}
	return project(ids, byID), nil
}

func (s *Service) relatedFromCatalog(ctx context.Context, target aircraft.Aircraft) ([]aircraft.Summary, []aircraft.Summary, error) {
	catalog, err := s.provider.FetchAircraftCatalog(ctx)
	if err != nil {
		s.warnRelated(ctx, target.ID, "predecessors,successors", err)
		return []aircraft.Summary{}, []aircraft.Summary{}, err
	}
	byID := make(map[int64]aircraft.Aircraft, len(catalog))
	for _, a := range catalog {
		byID[a.ID] = a
	}
	return project(target.Predecessors, byID), project(target.Successors, byID), nil
}

// project keeps the order of ids and substitutes a placeholder for ids
// missing from byID.
func project(ids []int64, byID map[int64]aircraft.Aircraft) []aircraft.Summary {
	out := make([]aircraft.Summary, 0, len(ids))
	for _, id := range ids {
		if a, ok := byID[id]; ok {
			if a.ID == 0 {
				a.ID = id
			}
			out = append(out, aircraft.Summarize(a))
			continue
		}
		out = append(out, aircraft.Unresolved(id))
	}
	return out
}

func (s *Service) warnRelated(ctx context.Context, id int64, relation string, err error) {
	logging.Warn(logging.FromContext(ctx, s.logger), "related aircraft lookup failed",
		logging.FieldID, id,
		logging.FieldRelation, relation,
		logging.FieldStrategy, s.strategy,
		"err", err,
	)
}
