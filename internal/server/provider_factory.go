package server

import (
	"log/slog"

	"github.com/preston-bernstein/wowp-data-service/internal/config"
	"github.com/preston-bernstein/wowp-data-service/internal/metrics"
	"github.com/preston-bernstein/wowp-data-service/internal/providers"
)

// providerFactory assembles the provider with its optional retry wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	base := selectProvider(cfg, f.logger, f.metrics)
	return f.wrap(cfg, base)
}

// wrap adds retries only when more than one attempt is configured.
func (f providerFactory) wrap(cfg config.Config, base providers.DataProvider) providers.DataProvider {
	if !cfg.Retry.Enabled() {
		return base
	}
	return providers.NewRetryingProvider(base, f.logger, f.metrics, normalizeProviderName(cfg.Provider), cfg.Retry.Attempts, cfg.Retry.Backoff)
}
