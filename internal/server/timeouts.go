package server

import (
	"time"

	"github.com/preston-bernstein/wowp-data-service/internal/config"
)

const (
	readTimeout     = 10 * time.Second
	minWriteTimeout = 10 * time.Second
	idleTimeout     = 60 * time.Second

	// upstreamRounds is the longest chain of sequential upstream calls one
	// request makes: the aircraft itself, then its relations.
	upstreamRounds = 2
	writeSlack     = 2 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second

// writeTimeoutFor sizes the response deadline to the worst-case upstream
// budget, never below minWriteTimeout.
func writeTimeoutFor(cfg config.Config) time.Duration {
	attempts := cfg.Retry.Attempts
	if attempts < 1 {
		attempts = 1
	}
	perCall := time.Duration(attempts)*cfg.Wowp.Timeout + time.Duration(attempts*(attempts-1)/2)*cfg.Retry.Backoff
	budget := upstreamRounds*perCall + writeSlack
	if budget < minWriteTimeout {
		return minWriteTimeout
	}
	return budget
}
