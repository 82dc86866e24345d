// Package async provides a three-state result shared by all outbound operations.
package async

import (
	"context"
	"errors"
	"fmt"
)

// State is the lifecycle of an asynchronous operation.
type State int

const (
	Pending State = iota
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Result is a tagged variant of pending, success(value), and failure(error).
type Result[T any] struct {
	State State
	Value T
	Err   error
}

// Success wraps a value.
func Success[T any](v T) Result[T] {
	return Result[T]{State: Succeeded, Value: v}
}

// Failure wraps an error.
func Failure[T any](err error) Result[T] {
	return Result[T]{State: Failed, Err: err}
}

// From builds a settled Result from a conventional (value, error) pair.
func From[T any](v T, err error) Result[T] {
	if err != nil {
		return Failure[T](err)
	}
	return Success(v)
}

// Unwrap returns the conventional (value, error) pair. A pending result
// reports ErrPending.
func (r Result[T]) Unwrap() (T, error) {
	switch r.State {
	case Succeeded:
		return r.Value, nil
	case Failed:
		return r.Value, r.Err
	default:
		var zero T
		return zero, ErrPending
	}
}

// Done reports whether the result has settled.
func (r Result[T]) Done() bool {
	return r.State != Pending
}

// ErrPending is returned when unwrapping an unsettled result.
var ErrPending = errors.New("async: result pending")

// Future is a single in-flight operation. Its result is written once.
type Future[T any] struct {
	done chan struct{}
	res  Result[T]
}

// Go starts fn in a goroutine. Callers that lose interest simply stop
// waiting; the eventual result is discarded.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				f.res = Failure[T](fmt.Errorf("async: panic: %v", r))
			}
		}()
		f.res = From(fn(ctx))
	}()
	return f
}

// Poll returns the current result without blocking.
func (f *Future[T]) Poll() Result[T] {
	select {
	case <-f.done:
		return f.res
	default:
		return Result[T]{State: Pending}
	}
}

// Await blocks until the future settles or ctx is done.
func (f *Future[T]) Await(ctx context.Context) Result[T] {
	select {
	case <-f.done:
		return f.res
	case <-ctx.Done():
		return Failure[T](ctx.Err())
	}
}
