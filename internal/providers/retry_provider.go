package providers

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/preston-bernstein/wowp-data-service/internal/domain/aircraft"
	"github.com/preston-bernstein/wowp-data-service/internal/domain/clans"
	"github.com/preston-bernstein/wowp-data-service/internal/domain/players"
	"github.com/preston-bernstein/wowp-data-service/internal/logging"
	"github.com/preston-bernstein/wowp-data-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a DataProvider with retry/backoff behavior.
type retryingProvider struct {
	inner        DataProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	maxAttempts  int
	backoffFn    backoffFunc

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string, maxAttempts int, backoff time.Duration) DataProvider {
	return NewRetryingProviderWithRNG(inner, logger, recorder, providerName, nil, maxAttempts, backoff)
}

// NewRetryingProviderWithRNG is NewRetryingProvider with an injectable jitter source.
func NewRetryingProviderWithRNG(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string, rng *rand.Rand, maxAttempts int, backoff time.Duration) DataProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	if providerName == "" {
		providerName = "provider"
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &retryingProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: providerName,
		maxAttempts:  maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
		rng: rng,
	}
}

func (r *retryingProvider) FetchAircraftCatalog(ctx context.Context) ([]aircraft.Aircraft, error) {
	return withRetry(ctx, r, OpListAircraft, func(ctx context.Context) ([]aircraft.Aircraft, error) {
		return r.inner.FetchAircraftCatalog(ctx)
	})
}

func (r *retryingProvider) FetchAircraft(ctx context.Context, ids ...int64) (map[int64]aircraft.Aircraft, error) {
	return withRetry(ctx, r, OpGetAircraft, func(ctx context.Context) (map[int64]aircraft.Aircraft, error) {
		return r.inner.FetchAircraft(ctx, ids...)
	})
}

func (r *retryingProvider) SearchAccounts(ctx context.Context, query string) ([]players.Summary, error) {
	return withRetry(ctx, r, OpListPlayersBySearch, func(ctx context.Context) ([]players.Summary, error) {
		return r.inner.SearchAccounts(ctx, query)
	})
}

func (r *retryingProvider) FetchAccount(ctx context.Context, id int64) (players.Player, error) {
	return withRetry(ctx, r, OpGetPlayerInfo, func(ctx context.Context) (players.Player, error) {
		return r.inner.FetchAccount(ctx, id)
	})
}

func (r *retryingProvider) FetchClans(ctx context.Context) ([]clans.Summary, error) {
	return withRetry(ctx, r, OpListClans, func(ctx context.Context) ([]clans.Summary, error) {
		return r.inner.FetchClans(ctx)
	})
}

func (r *retryingProvider) FetchClan(ctx context.Context, id int64) (clans.Clan, error) {
	return withRetry(ctx, r, OpGetClanInfo, func(ctx context.Context) (clans.Clan, error) {
		return r.inner.FetchClan(ctx, id)
	})
}

func withRetry[T any](ctx context.Context, r *retryingProvider, op string, call func(context.Context) (T, error)) (T, error) {
	var (
		zero    T
		lastErr error
	)

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		value, err := call(ctx)
		if err == nil {
			return value, nil
		}
		lastErr = err

		if rlErr, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(op, rlErr.RetryAfter)
		}

		if !Retryable(err) || attempt == r.maxAttempts {
			break
		}

		r.logWarn(ctx, op, err, "provider fetch retry", "attempt", attempt, "max_attempts", r.maxAttempts)

		delay := r.computeDelay(err, attempt)
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
	}

	r.logWarn(ctx, op, lastErr, "provider fetch failed", "max_attempts", r.maxAttempts)
	return zero, lastErr
}

// computeDelay honors Retry-After on rate limits and otherwise applies
// jitter in [base/2, base].
func (r *retryingProvider) computeDelay(err error, attempt int) time.Duration {
	if rlErr, ok := AsRateLimitError(err); ok && rlErr.RetryAfter > 0 {
		return rlErr.RetryAfter
	}
	base := r.backoffFn(attempt)
	if base <= 0 {
		return 0
	}
	half := base / 2
	r.rngMu.Lock()
	jitter := r.rng.Int63n(int64(half) + 1)
	r.rngMu.Unlock()
	return half + time.Duration(jitter)
}

func (r *retryingProvider) logWarn(ctx context.Context, op string, err error, msg string, args ...any) {
	logUpstream(ctx, logging.FromContext(ctx, r.logger), slog.LevelWarn, r.providerName, op, err, msg, args...)
}
