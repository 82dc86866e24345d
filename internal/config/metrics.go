package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadMetrics() MetricsConfig {
	endpoint, insecure := otlpEndpoint(
		envOrDefault(envOtelEndpoint, ""),
		boolEnvOrDefault(envOtelInsecure, true),
	)
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, true),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		OtlpEndpoint: endpoint,
		ServiceName:  envOrDefault(envOtelService, defaultServiceName),
		OtlpInsecure: insecure,
	}
}

// otlpEndpoint accepts either host:port or a URL as commonly set in
// OTEL_EXPORTER_OTLP_ENDPOINT. A URL scheme decides transport security and
// overrides the insecure flag.
func otlpEndpoint(raw string, insecure bool) (string, bool) {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "://") {
		return raw, insecure
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw, insecure
	}
	switch strings.ToLower(u.Scheme) {
	case "https":
		return u.Host, false
	case "http":
		return u.Host, true
	default:
		return u.Host, insecure
	}
}

func (m MetricsConfig) validate() error {
	if !m.Enabled {
		return nil
	}
	port, err := strconv.Atoi(m.Port)
	if err != nil || port < 0 || port > 65535 {
		return fmt.Errorf("%s: invalid port %q", envMetricsPort, m.Port)
	}
	if strings.Contains(m.OtlpEndpoint, "://") {
		return fmt.Errorf("%s: unparseable endpoint %q", envOtelEndpoint, m.OtlpEndpoint)
	}
	return nil
}
