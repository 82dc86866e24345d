package wowp

import "time"

const (
	// ProviderName identifies this client in logs and metrics.
	ProviderName = "wowp"

	defaultBaseURL     = "https://api.worldofwarplanes.eu/wowp"
	defaultHTTPTimeout = 10 * time.Second

	// maxBatchIDs is the upstream limit for comma-separated id lists.
	maxBatchIDs = 100

	// maxErrorSnippet bounds how much of a non-2xx body is kept on the error.
	maxErrorSnippet = 512

	rateLimitMessage = "REQUEST_LIMIT_EXCEEDED"
)

// Query parameter names understood by the upstream API.
const (
	paramApplicationID = "application_id"
	paramLanguage      = "language"
	paramPlaneID       = "plane_id"
	paramAccountID     = "account_id"
	paramClanID        = "clan_id"
	paramSearch        = "search"
)
