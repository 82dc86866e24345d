package providers

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/preston-bernstein/wowp-data-service/internal/domain/aircraft"
	"github.com/preston-bernstein/wowp-data-service/internal/domain/clans"
	"github.com/preston-bernstein/wowp-data-service/internal/domain/players"
	"github.com/preston-bernstein/wowp-data-service/internal/metrics"
)

// flakeyProvider fails the first `failures` calls of every method with err.
type flakeyProvider struct {
	failures int
	calls    int
	err      error
}

func (f *flakeyProvider) next() error {
	f.calls++
	if f.calls <= f.failures {
		if f.err != nil {
			return f.err
		}
		return &Error{Kind: KindTransport, Message: "boom"}
	}
	return nil
}

func (f *flakeyProvider) FetchAircraftCatalog(context.Context) ([]aircraft.Aircraft, error) {
	if err := f.next(); err != nil {
		return nil, err
	}
	return []aircraft.Aircraft{{ID: 1, Name: "ok"}}, nil
}

func (f *flakeyProvider) FetchAircraft(_ context.Context, ids ...int64) (map[int64]aircraft.Aircraft, error) {
	if err := f.next(); err != nil {
		return nil, err
	}
	out := map[int64]aircraft.Aircraft{}
	for _, id := range ids {
		out[id] = aircraft.Aircraft{ID: id}
	}
	return out, nil
}

func (f *flakeyProvider) SearchAccounts(context.Context, string) ([]players.Summary, error) {
	if err := f.next(); err != nil {
		return nil, err
	}
	return []players.Summary{{ID: 7, Nickname: "ok"}}, nil
}

func (f *flakeyProvider) FetchAccount(_ context.Context, id int64) (players.Player, error) {
	if err := f.next(); err != nil {
		return players.Player{}, err
	}
	return players.Player{ID: id}, nil
}

func (f *flakeyProvider) FetchClans(context.Context) ([]clans.Summary, error) {
	if err := f.next(); err != nil {
		return nil, err
	}
	return []clans.Summary{{ID: 3}}, nil
}

func (f *flakeyProvider) FetchClan(_ context.Context, id int64) (clans.Clan, error) {
	if err := f.next(); err != nil {
		return clans.Clan{}, err
	}
	return clans.Clan{ID: id}, nil
}

func noSleep(rp DataProvider) *retryingProvider {
	r := rp.(*retryingProvider)
	r.backoffFn = func(int) time.Duration { return 0 }
	return r
}

func TestRetryingProviderRetriesAndSucceeds(t *testing.T) {
	fp := &flakeyProvider{failures: 2}
	rp := NewRetryingProvider(fp, slog.Default(), metrics.NewRecorder(), "flakey", 3, time.Millisecond)

	list, err := rp.FetchAircraftCatalog(context.Background())
	if err != nil {
		t.Fatalf("expected success, got error %v", err)
	}
	if len(list) != 1 || list[0].Name != "ok" {
		t.Fatalf("unexpected aircraft %+v", list)
	}
	if fp.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", fp.calls)
	}
}

func TestRetryingProviderStopsAfterMaxAttempts(t *testing.T) {
	fp := &flakeyProvider{failures: 5}
	rp := noSleep(NewRetryingProvider(fp, nil, metrics.NewRecorder(), "flakey", 2, time.Millisecond))

	_, err := rp.FetchClans(context.Background())
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected last transport error, got %v", err)
	}
	if fp.calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", fp.calls)
	}
}

func TestRetryingProviderDoesNotRetryPermanentErrors(t *testing.T) {
	permanent := []error{
		&Error{Kind: KindConfiguration},
		&Error{Kind: KindNotFound},
		&Error{Kind: KindMalformedBody},
		&Error{Kind: KindUpstream, Code: 407},
	}
	for _, perr := range permanent {
		fp := &flakeyProvider{failures: 5, err: perr}
		rp := noSleep(NewRetryingProvider(fp, nil, nil, "flakey", 3, time.Millisecond))

		if _, err := rp.FetchAccount(context.Background(), 1); !errors.Is(err, perr) {
			t.Fatalf("expected %v to propagate, got %v", perr, err)
		}
		if fp.calls != 1 {
			t.Fatalf("expected a single attempt for %v, got %d", perr, fp.calls)
		}
	}
}

func TestRetryingProviderDelegatesEveryOperation(t *testing.T) {
	fp := &flakeyProvider{}
	rp := NewRetryingProvider(fp, nil, nil, "flakey", 1, time.Millisecond)
	ctx := context.Background()

	byID, err := rp.FetchAircraft(ctx, 4, 5)
	if err != nil || len(byID) != 2 {
		t.Fatalf("unexpected batch result %v %v", byID, err)
	}
	if res, err := rp.SearchAccounts(ctx, "ace"); err != nil || len(res) != 1 {
		t.Fatalf("unexpected search result %v %v", res, err)
	}
	if p, err := rp.FetchAccount(ctx, 9); err != nil || p.ID != 9 {
		t.Fatalf("unexpected account %v %v", p, err)
	}
	if c, err := rp.FetchClan(ctx, 2); err != nil || c.ID != 2 {
		t.Fatalf("unexpected clan %v %v", c, err)
	}
	if fp.calls != 4 {
		t.Fatalf("expected 4 delegated calls, got %d", fp.calls)
	}
}

func TestRetryingProviderRespectsContextCancel(t *testing.T) {
	fp := &flakeyProvider{failures: 5}
	rp := NewRetryingProvider(fp, nil, metrics.NewRecorder(), "flakey", 3, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := rp.FetchAircraftCatalog(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}

func TestRetryingProviderUsesCustomBackoff(t *testing.T) {
	fp := &flakeyProvider{failures: 1}
	rp := NewRetryingProvider(fp, nil, metrics.NewRecorder(), "flakey", 2, time.Hour).(*retryingProvider)

	calls := 0
	rp.backoffFn = func(attempt int) time.Duration {
		calls++
		return 0
	}

	_, _ = rp.FetchAircraftCatalog(context.Background())

	if calls == 0 {
		t.Fatalf("expected custom backoff to be invoked")
	}
}

func TestRetryingProviderRecordsRateLimitMetrics(t *testing.T) {
	rec := metrics.NewRecorder()
	fp := &flakeyProvider{failures: 1, err: &RateLimitError{Provider: "test", StatusCode: 429}}
	rp := noSleep(NewRetryingProvider(fp, nil, rec, "rl", 2, time.Millisecond))

	list, err := rp.FetchAircraftCatalog(context.Background())
	if err != nil {
		t.Fatalf("expected success after retry, got %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("unexpected aircraft %+v", list)
	}
	if got := rec.RateLimitHits(OpListAircraft); got != 1 {
		t.Fatalf("expected 1 rate limit hit, got %d", got)
	}
}

func TestRetryingProviderDelaySelection(t *testing.T) {
	rp := NewRetryingProviderWithRNG(&flakeyProvider{}, nil, nil, "rl", rand.New(rand.NewSource(1)), 2, time.Millisecond).(*retryingProvider)
	rp.backoffFn = func(int) time.Duration { return 50 * time.Millisecond }

	if got := rp.computeDelay(&RateLimitError{RetryAfter: 3 * time.Second}, 1); got != 3*time.Second {
		t.Fatalf("expected retry-after delay, got %s", got)
	}
	for i := 0; i < 20; i++ {
		got := rp.computeDelay(errors.New("boom"), 1)
		if got < 25*time.Millisecond || got > 50*time.Millisecond {
			t.Fatalf("expected jittered delay between 25ms and 50ms, got %s", got)
		}
	}

	rp.backoffFn = func(int) time.Duration { return 0 }
	if got := rp.computeDelay(errors.New("boom"), 1); got != 0 {
		t.Fatalf("expected zero delay for zero backoff, got %s", got)
	}
}

func TestNewRetryingProviderDefaults(t *testing.T) {
	rp := NewRetryingProviderWithRNG(nil, nil, nil, "", nil, 0, 0).(*retryingProvider)
	if rp.providerName != "provider" {
		t.Fatalf("expected fallback provider name, got %s", rp.providerName)
	}
	if rp.maxAttempts != defaultRetryAttempts {
		t.Fatalf("expected default attempts, got %d", rp.maxAttempts)
	}
	if rp.backoffFn(1) != defaultBackoff {
		t.Fatalf("expected default backoff")
	}
	if rp.rng == nil {
		t.Fatalf("expected default rng")
	}
}
