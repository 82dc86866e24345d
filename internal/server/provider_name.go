package server

import (
	"strings"

	"github.com/preston-bernstein/wowp-data-service/internal/config"
)

// normalizeProviderName maps the configured provider to the label used in
// logs and metrics. Anything but the live API is served by the fixture.
func normalizeProviderName(raw string) string {
	if strings.ToLower(strings.TrimSpace(raw)) == config.ProviderWowp {
		return config.ProviderWowp
	}
	return config.ProviderFixture
}
