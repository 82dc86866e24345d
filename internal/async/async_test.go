package async

import (
	"context"
	"errors"
	"testing"
)

func TestGoSettlesWithValue(t *testing.T) {
	f := Go(context.Background(), func(context.Context) (int, error) {
		return 42, nil
	})

	res := f.Await(context.Background())
	if res.State != Succeeded || res.Value != 42 {
		t.Fatalf("unexpected result %+v", res)
	}
	v, err := res.Unwrap()
	if err != nil || v != 42 {
		t.Fatalf("unexpected unwrap %d %v", v, err)
	}
}

func TestGoSettlesWithError(t *testing.T) {
	boom := errors.New("boom")
	f := Go(context.Background(), func(context.Context) (string, error) {
		return "", boom
	})

	res := f.Await(context.Background())
	if res.State != Failed || !errors.Is(res.Err, boom) {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestPollReportsPendingUntilDone(t *testing.T) {
	release := make(chan struct{})
	f := Go(context.Background(), func(context.Context) (int, error) {
		<-release
		return 1, nil
	})

	if res := f.Poll(); res.State != Pending || res.Done() {
		t.Fatalf("expected pending, got %+v", res)
	}
	if _, err := f.Poll().Unwrap(); !errors.Is(err, ErrPending) {
		t.Fatalf("expected ErrPending, got %v", err)
	}

	close(release)
	if res := f.Await(context.Background()); res.State != Succeeded {
		t.Fatalf("expected success, got %+v", res)
	}
	if res := f.Poll(); res.State != Succeeded {
		t.Fatalf("expected settled poll, got %+v", res)
	}
}

func TestAwaitHonorsContext(t *testing.T) {
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })
	f := Go(context.Background(), func(context.Context) (int, error) {
		<-release
		return 0, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := f.Await(ctx)
	if res.State != Failed || !errors.Is(res.Err, context.Canceled) {
		t.Fatalf("expected canceled failure, got %+v", res)
	}
}

func TestGoRecoversPanics(t *testing.T) {
	f := Go(context.Background(), func(context.Context) (int, error) {
		panic("kaboom")
	})

	res := f.Await(context.Background())
	if res.State != Failed || res.Err == nil {
		t.Fatalf("expected failure from panic, got %+v", res)
	}
}

func TestFrom(t *testing.T) {
	if res := From(3, nil); res.State != Succeeded {
		t.Fatalf("expected success")
	}
	if res := From(0, errors.New("x")); res.State != Failed {
		t.Fatalf("expected failure")
	}
}

func TestStateString(t *testing.T) {
	if Pending.String() != "pending" || Succeeded.String() != "succeeded" || Failed.String() != "failed" {
		t.Fatalf("unexpected state names")
	}
}

func TestPendingUnwrapReturnsSentinel(t *testing.T) {
	var r Result[string]
	_, err := r.Unwrap()
	if err != ErrPending {
		t.Fatalf("expected the ErrPending sentinel itself, got %v", err)
	}
	if errors.Unwrap(err) != nil {
		t.Fatalf("expected a leaf sentinel, got wrapped %v", errors.Unwrap(err))
	}
}
