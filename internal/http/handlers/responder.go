package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/preston-bernstein/wowp-data-service/internal/http/middleware"
	"github.com/preston-bernstein/wowp-data-service/internal/http/requestutil"
	"github.com/preston-bernstein/wowp-data-service/internal/logging"
	"github.com/preston-bernstein/wowp-data-service/internal/providers"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get(requestutil.HeaderRequestID)
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeServiceError maps a service failure onto an HTTP status.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFound string, logger *slog.Logger) {
	logger = loggerFromContext(r, logger)
	status, message := classify(err, notFound)

	if rl, ok := providers.AsRateLimitError(err); ok && rl.RetryAfter > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(rl.RetryAfter.Seconds()))))
	}

	switch {
	case status >= http.StatusInternalServerError:
		logging.Error(logger, "request failed", err, slog.Int(logging.FieldStatusCode, status))
	case status == http.StatusTooManyRequests:
		logging.Warn(logger, "upstream rate limited", "err", err)
	default:
		logging.Debug(logger, "request rejected", "err", err, slog.Int(logging.FieldStatusCode, status))
	}
	writeError(w, r, status, message, logger)
}

func classify(err error, notFound string) (int, string) {
	if _, ok := providers.AsRateLimitError(err); ok {
		return http.StatusTooManyRequests, "upstream rate limit exceeded"
	}
	switch providers.KindOf(err) {
	case providers.KindNotFound:
		return http.StatusNotFound, notFound
	case providers.KindConfiguration:
		return http.StatusInternalServerError, "service misconfigured"
	case providers.KindTransport, providers.KindStatus, providers.KindMalformedBody, providers.KindUpstream:
		if errors.Is(err, context.DeadlineExceeded) {
			return http.StatusGatewayTimeout, "upstream timed out"
		}
		return http.StatusBadGateway, "upstream unavailable"
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "upstream timed out"
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, "request cancelled"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
