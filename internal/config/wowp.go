package config

import (
	"strings"
	"time"
)

// WowpConfig controls how we talk to the World of Warplanes API.
type WowpConfig struct {
	BaseURL       string
	ApplicationID string
	Language      string
	Timeout       time.Duration
	RelatedLookup string
}

func loadWowp() WowpConfig {
	return WowpConfig{
		BaseURL:       envOrDefault(envWowpBaseURL, defaultWowpBaseURL),
		ApplicationID: envOrDefault(envWowpAppID, defaultWowpAppID),
		Language:      envOrDefault(envWowpLanguage, ""),
		Timeout:       durationEnvOrDefault(envWowpTimeout, defaultWowpTimeout),
		RelatedLookup: strings.ToLower(strings.TrimSpace(envOrDefault(envRelatedLookup, defaultRelatedLookup))),
	}
}
