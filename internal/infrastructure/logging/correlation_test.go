package logging

import (
	"context"
	"sync"
	"testing"
)

func TestNewRequestID(t *testing.T) {
	id := NewRequestID()
	if len(id) != requestIDLength {
		t.Fatalf("expected %d chars, got %q", requestIDLength, id)
	}
	for _, r := range id {
		if !((r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')) {
			t.Fatalf("expected hex id, got %q", id)
		}
	}
	if NewRequestID() == id {
		t.Fatalf("expected fresh ids to differ")
	}
}

func TestRequestID(t *testing.T) {
	t.Run("bound id is returned", func(t *testing.T) {
		ctx := WithRequestID(context.Background(), "abcd1234")
		if got := RequestID(ctx); got != "abcd1234" {
			t.Fatalf("expected abcd1234, got %q", got)
		}
	})

	t.Run("rebinding overwrites only the derived context", func(t *testing.T) {
		parent := WithRequestID(context.Background(), "aaaa0000")
		child := WithRequestID(parent, "bbbb1111")
		if got := RequestID(child); got != "bbbb1111" {
			t.Fatalf("expected bbbb1111, got %q", got)
		}
		if got := RequestID(parent); got != "aaaa0000" {
			t.Fatalf("expected parent binding untouched, got %q", got)
		}
	})

	t.Run("unbound context always yields some id", func(t *testing.T) {
		first := RequestID(context.Background())
		second := RequestID(context.Background())
		if len(first) != requestIDLength || len(second) != requestIDLength {
			t.Fatalf("expected generated ids, got %q and %q", first, second)
		}
		if first == second {
			t.Fatalf("expected fresh id per call on unbound context")
		}
	})
}

func TestRequestIDIsolation(t *testing.T) {
	// Concurrent requests must never observe each other's id.
	const workers = 50

	var wg sync.WaitGroup
	errCh := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := NewRequestID()
			ctx := WithRequestID(context.Background(), id)
			for j := 0; j < 100; j++ {
				if got := RequestID(ctx); got != id {
					errCh <- errMismatch(id, got)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errCh)

	if err, ok := <-errCh; ok {
		t.Fatal(err)
	}
}

type mismatchError struct{ want, got string }

func errMismatch(want, got string) error { return mismatchError{want, got} }

func (e mismatchError) Error() string {
	return "request id leaked across contexts: want " + e.want + ", got " + e.got
}
