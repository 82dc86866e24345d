package testutil

import (
	"log/slog"

	appaircraft "github.com/preston-bernstein/wowp-data-service/internal/app/aircraft"
	appclans "github.com/preston-bernstein/wowp-data-service/internal/app/clans"
	appplayers "github.com/preston-bernstein/wowp-data-service/internal/app/players"
	"github.com/preston-bernstein/wowp-data-service/internal/metrics"
	"github.com/preston-bernstein/wowp-data-service/internal/providers/fixture"
	"github.com/preston-bernstein/wowp-data-service/internal/providers/wowp"
)

// FixtureServices bundles application services backed by the embedded fixture data.
type FixtureServices struct {
	Client   *wowp.Client
	Aircraft *appaircraft.Service
	Players  *appplayers.Service
	Clans    *appclans.Service
}

// NewFixtureClient returns a wowp client whose HTTP calls are answered by the fixture transport.
func NewFixtureClient(recorder *metrics.Recorder, opts ...fixture.Option) *wowp.Client {
	return wowp.NewClient(wowp.Config{
		BaseURL:       "http://fixture.invalid/wowp",
		ApplicationID: "test",
		HTTPClient:    fixture.NewHTTPClient(opts...),
		Metrics:       recorder,
	})
}

// NewFixtureServices wires every application service over a fixture-backed client.
func NewFixtureServices(logger *slog.Logger, recorder *metrics.Recorder, strategy string, opts ...fixture.Option) FixtureServices {
	client := NewFixtureClient(recorder, opts...)
	return FixtureServices{
		Client: client,
		Aircraft: appaircraft.NewService(client, appaircraft.Options{
			Strategy: strategy,
			Logger:   logger,
			Metrics:  recorder,
		}),
		Players: appplayers.NewService(client),
		Clans:   appclans.NewService(client),
	}
}
