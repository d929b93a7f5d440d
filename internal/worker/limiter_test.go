package worker

import (
	"context"
	"testing"
	"time"
)

func TestAllowRespectsBurst(t *testing.T) {
	l := NewLimiter(0.1, 1)

	if !l.Allow("http://example.test/a") {
		t.Fatal("first request should be allowed")
	}
	if l.Allow("http://example.test/b") {
		t.Error("second request should exceed the burst")
	}
}

func TestLimiterIsPerHost(t *testing.T) {
	l := NewLimiter(0.1, 1)

	if !l.Allow("http://one.test/") {
		t.Fatal("first host should be allowed")
	}
	if !l.Allow("http://two.test/") {
		t.Error("a different host has its own bucket")
	}
}

func TestWaitWithDelayHoldsForThePause(t *testing.T) {
	l := NewLimiter(1000, 10)

	start := time.Now()
	if err := l.WaitWithDelay(context.Background(), "http://example.test/", 30*time.Millisecond); err != nil {
		t.Fatalf("wait: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Errorf("returned after %v, expected at least the 30ms pause", elapsed)
	}
}

func TestWaitWithDelayCancelled(t *testing.T) {
	l := NewLimiter(1000, 10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := l.WaitWithDelay(ctx, "http://example.test/", time.Second); err == nil {
		t.Fatal("expected an error from the cancelled context")
	}
}

func TestWaitRejectsUnparsableURL(t *testing.T) {
	l := NewLimiter(1, 1)
	if err := l.Wait(context.Background(), "://missing-scheme"); err == nil {
		t.Fatal("expected a parse error")
	}
}
