package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port     string
	Provider string
	Wowp     WowpConfig
	Retry    RetryConfig
	Display  DisplayConfig
	Logging  LoggingConfig
	Metrics  MetricsConfig

	dotEnvErr error
}

// RetryConfig controls the optional retrying provider. Attempts of 1 disables retries.
type RetryConfig struct {
	Attempts int
	Backoff  time.Duration
}

// Enabled reports whether more than one attempt is configured.
func (r RetryConfig) Enabled() bool {
	return r.Attempts > 1
}

// DisplayConfig controls presentation defaults.
type DisplayConfig struct {
	Locale   string
	Timezone string
}

// LoggingConfig controls the root logger.
type LoggingConfig struct {
	Level  string
	Format string
}

// Load applies a .env file from the working directory, if present, then
// reads configuration from environment variables with sensible defaults.
// Variables already set in the environment win over the file. A .env file
// that exists but cannot be parsed is reported by Validate.
func Load() Config {
	return load(dotEnvFile)
}

func load(path string) Config {
	err := loadDotEnv(path)
	cfg := fromEnv()
	if err != nil {
		cfg.dotEnvErr = fmt.Errorf("%s: %w", path, err)
	}
	return cfg
}

func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func fromEnv() Config {
	return Config{
		Port:     envOrDefault(envPort, defaultPort),
		Provider: strings.ToLower(envOrDefault(envProvider, defaultProvider)),
		Wowp:     loadWowp(),
		Retry: RetryConfig{
			Attempts: intEnvOrDefault(envRetryAttempts, defaultRetryAttempts),
			Backoff:  durationEnvOrDefault(envRetryBackoff, defaultRetryBackoff),
		},
		Display: DisplayConfig{
			Locale:   envOrDefault(envDisplayLocale, defaultDisplayLocale),
			Timezone: envOrDefault(envDisplayTimezone, defaultDisplayTimezone),
		},
		Logging: LoggingConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
		Metrics: loadMetrics(),
	}
}

// Validate reports every setting that cannot be used as given.
func (c Config) Validate() error {
	var errs []error
	if c.dotEnvErr != nil {
		errs = append(errs, c.dotEnvErr)
	}
	switch c.Provider {
	case ProviderFixture, ProviderWowp:
	default:
		errs = append(errs, fmt.Errorf("%s: unknown provider %q", envProvider, c.Provider))
	}
	if c.Provider == ProviderWowp && strings.TrimSpace(c.Wowp.ApplicationID) == "" {
		errs = append(errs, fmt.Errorf("%s: required for the %s provider", envWowpAppID, ProviderWowp))
	}
	switch c.Wowp.RelatedLookup {
	case RelatedLookupBatch, RelatedLookupCatalog:
	default:
		errs = append(errs, fmt.Errorf("%s: unknown strategy %q", envRelatedLookup, c.Wowp.RelatedLookup))
	}
	if _, err := language.Parse(c.Display.Locale); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", envDisplayLocale, err))
	}
	if _, err := time.LoadLocation(c.Display.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", envDisplayTimezone, err))
	}
	if err := c.Metrics.validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
