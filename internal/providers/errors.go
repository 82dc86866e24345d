package providers

import (
	"errors"
	"fmt"
	"time"
)

// Kind classifies upstream failures.
type Kind string

const (
	KindConfiguration Kind = "configuration"
	KindTransport     Kind = "transport"
	KindStatus        Kind = "status"
	KindMalformedBody Kind = "malformed_body"
	KindNotFound      Kind = "not_found"
	KindUpstream      Kind = "upstream"
)

// Sentinels for errors.Is checks; they match any *Error of the same Kind.
var (
	ErrConfiguration = &Error{Kind: KindConfiguration}
	ErrTransport     = &Error{Kind: KindTransport}
	ErrStatus        = &Error{Kind: KindStatus}
	ErrMalformedBody = &Error{Kind: KindMalformedBody}
	ErrNotFound      = &Error{Kind: KindNotFound}
	ErrUpstream      = &Error{Kind: KindUpstream}
)

// Error is the uniform failure type produced by provider clients.
type Error struct {
	Kind       Kind
	Op         string // logical operation, e.g. "get-aircraft"
	StatusCode int    // HTTP status for KindStatus
	Code       int    // API error code for KindUpstream
	Message    string
	Err        error
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	if e.Code > 0 {
		msg = fmt.Sprintf("%s (code=%d)", msg, e.Code)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches sentinels by Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Op == "" && t.StatusCode == 0 && t.Code == 0 && t.Message == "" && t.Err == nil
}

// KindOf returns the Kind of err, or "" when err is not a provider error.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}

// Retryable reports whether a failure is worth another attempt.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	if _, ok := AsRateLimitError(err); ok {
		return true
	}
	switch KindOf(err) {
	case KindTransport, KindStatus:
		return true
	default:
		return false
	}
}

// NotFound builds a KindNotFound error for op and id.
func NotFound(op string, id int64) *Error {
	return &Error{Kind: KindNotFound, Op: op, Message: fmt.Sprintf("id %d not in response", id)}
}

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}
