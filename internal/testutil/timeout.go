package testutil

import (
	"testing"
	"time"
)

// DefaultCompletionTimeout bounds calls that are expected to return promptly.
const DefaultCompletionTimeout = 5 * time.Second

// RequireCompletes runs fn and fails the test if it has not returned within
// timeout. A zero timeout uses DefaultCompletionTimeout. If the test has a
// deadline that is sooner, the deadline wins.
//
// Usage:
//
//	testutil.RequireCompletes(t, time.Second, func() {
//	    _, err = trace.Trace(g)
//	})
func RequireCompletes(t *testing.T, timeout time.Duration, fn func()) {
	t.Helper()

	if timeout <= 0 {
		timeout = DefaultCompletionTimeout
	}
	if deadline, ok := t.Deadline(); ok {
		if remaining := time.Until(deadline); remaining > 0 && remaining < timeout {
			timeout = remaining
		}
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()

	select {
	case <-done:
	case <-time.After(timeout):
		t.Fatalf("call did not complete within %v", timeout)
	}
}
