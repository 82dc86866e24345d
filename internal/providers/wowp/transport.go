package wowp

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/preston-bernstein/wowp-data-service/internal/providers"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client, timeout time.Duration) httpDoer {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &http.Client{Timeout: timeout}
}

func normalizeBaseURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

// fetchJSON performs a single GET and returns the body once it is known to be
// valid JSON. It never retries.
func fetchJSON(ctx context.Context, doer httpDoer, op, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &providers.Error{Kind: providers.KindTransport, Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := doer.Do(req)
	if err != nil {
		return nil, &providers.Error{Kind: providers.KindTransport, Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorSnippet))
		if resp.StatusCode == http.StatusTooManyRequests {
			return nil, &providers.RateLimitError{
				Provider:   ProviderName,
				StatusCode: resp.StatusCode,
				RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
				Message:    strings.TrimSpace(string(snippet)),
			}
		}
		return nil, &providers.Error{
			Kind:       providers.KindStatus,
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(snippet)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &providers.Error{Kind: providers.KindTransport, Op: op, Err: err}
	}
	if !gjson.ValidBytes(body) {
		return nil, &providers.Error{Kind: providers.KindMalformedBody, Op: op, Message: "response is not valid JSON"}
	}
	return body, nil
}

// unwrapEnvelope returns the "data" member of an API envelope, or the error
// the API reported with a 200 status.
func unwrapEnvelope(op string, body []byte) (gjson.Result, error) {
	root := gjson.ParseBytes(body)
	if root.Get("status").String() != "error" {
		return root.Get("data"), nil
	}

	apiErr := root.Get("error")
	msg := apiErr.Get("message").String()
	if msg == rateLimitMessage {
		return gjson.Result{}, &providers.RateLimitError{Provider: ProviderName, Message: msg}
	}
	if field := apiErr.Get("field").String(); field != "" {
		msg = fmt.Sprintf("%s (field=%s)", msg, field)
	}
	return gjson.Result{}, &providers.Error{
		Kind:    providers.KindUpstream,
		Op:      op,
		Code:    int(apiErr.Get("code").Int()),
		Message: msg,
	}
}

// parseRetryAfter handles the delta-seconds form of Retry-After.
func parseRetryAfter(raw string) time.Duration {
	secs, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

// redactURL hides the application id so URLs can be logged.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	q := u.Query()
	if q.Has(paramApplicationID) {
		q.Set(paramApplicationID, "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}
