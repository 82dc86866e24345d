package metrics

import (
	"sync"
	"time"
)

type operationStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

// Recorder captures in-memory metrics about upstream calls, keyed by
// logical operation (e.g. "get-aircraft"). When built by Setup it also
// forwards every observation to OpenTelemetry instruments.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*operationStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*operationStats),
		otel:  otel,
	}
}

// RecordUpstreamCall increments counters for an upstream call and stores the last observed latency.
func (r *Recorder) RecordUpstreamCall(operation string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(operation)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordUpstreamCall(operation, duration, err)
	}
}

// RecordRateLimit tracks that an upstream response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(operation string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(operation)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(operation, retryAfter)
	}
}

// Calls returns the total attempts recorded for an operation.
func (r *Recorder) Calls(operation string) int {
	return r.Snapshot(operation).Calls
}

// Errors returns the total failed attempts recorded for an operation.
func (r *Recorder) Errors(operation string) int {
	return r.Snapshot(operation).Errors
}

// RateLimitHits returns the number of rate limit events seen for an operation.
func (r *Recorder) RateLimitHits(operation string) int {
	return r.Snapshot(operation).RateLimitHits
}

// LastRetryAfter returns the most recent Retry-After recorded for an operation.
func (r *Recorder) LastRetryAfter(operation string) time.Duration {
	return r.Snapshot(operation).LastRetryAfter
}

// LastCallLatency returns the last recorded latency for an operation.
func (r *Recorder) LastCallLatency(operation string) time.Duration {
	return r.Snapshot(operation).LastCallLatency
}

// Snapshot is a copy of the stats recorded for one operation.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(operation string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.stats[operation]
	if !ok {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordRelatedLookup tracks one predecessor/successor resolution pass.
func (r *Recorder) RecordRelatedLookup(strategy string, duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordRelatedLookup(strategy, duration, err)
}

func (r *Recorder) ensureStatsLocked(operation string) *operationStats {
	stats, ok := r.stats[operation]
	if !ok {
		stats = &operationStats{}
		r.stats[operation] = stats
	}
	return stats
}
