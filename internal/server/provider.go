package server

import (
	"log/slog"

	"github.com/preston-bernstein/wowp-data-service/internal/config"
	"github.com/preston-bernstein/wowp-data-service/internal/logging"
	"github.com/preston-bernstein/wowp-data-service/internal/metrics"
	"github.com/preston-bernstein/wowp-data-service/internal/providers"
	"github.com/preston-bernstein/wowp-data-service/internal/providers/fixture"
	"github.com/preston-bernstein/wowp-data-service/internal/providers/wowp"
)

// selectProvider builds the wowp client. The fixture provider is the same
// client answered by the embedded fixture transport instead of the network.
func selectProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providers.DataProvider {
	clientCfg := wowp.Config{
		BaseURL:       cfg.Wowp.BaseURL,
		ApplicationID: cfg.Wowp.ApplicationID,
		Language:      cfg.Wowp.Language,
		Timeout:       cfg.Wowp.Timeout,
		Logger:        logger,
		Metrics:       recorder,
	}

	switch cfg.Provider {
	case config.ProviderWowp:
		return wowp.NewClient(clientCfg)
	case config.ProviderFixture, "":
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", slog.String(logging.FieldProvider, cfg.Provider))
	}
	clientCfg.HTTPClient = fixture.NewHTTPClient()
	return wowp.NewClient(clientCfg)
}
