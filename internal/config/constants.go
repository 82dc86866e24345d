package config

import "time"

const (
	envPort            = "PORT"
	envProvider        = "PROVIDER"
	envWowpBaseURL     = "WOWP_BASE_URL"
	envWowpAppID       = "WOWP_APPLICATION_ID"
	envWowpLanguage    = "WOWP_LANGUAGE"
	envWowpTimeout     = "WOWP_HTTP_TIMEOUT"
	envRelatedLookup   = "RELATED_LOOKUP"
	envRetryAttempts   = "RETRY_ATTEMPTS"
	envRetryBackoff    = "RETRY_BACKOFF"
	envDisplayLocale   = "DISPLAY_LOCALE"
	envDisplayTimezone = "DISPLAY_TIMEZONE"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort            = "4000"
	defaultProvider        = ProviderFixture
	defaultWowpBaseURL     = "https://api.worldofwarplanes.eu/wowp"
	defaultWowpAppID       = "demo"
	defaultWowpTimeout     = 10 * time.Second
	defaultRelatedLookup   = RelatedLookupBatch
	defaultRetryAttempts   = 1
	defaultRetryBackoff    = 200 * time.Millisecond
	defaultDisplayLocale   = "en-US"
	defaultDisplayTimezone = "UTC"
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
	defaultMetricsPort     = "9090"
	defaultServiceName     = "wowp-data-service"

	dotEnvFile = ".env"
)

// Provider names.
const (
	ProviderFixture = "fixture"
	ProviderWowp    = "wowp"
)

// Related lookup strategies.
const (
	RelatedLookupBatch   = "batch"
	RelatedLookupCatalog = "catalog"
)
