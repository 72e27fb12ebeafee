package ratelimit

import (
	"testing"
	"time"
)

func newTestLimiter(limit int, window time.Duration) (*Limiter, *time.Time) {
	l := New(limit, window)
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return clock }
	return l, &clock
}

func TestAllowUpToLimit(t *testing.T) {
	l, _ := newTestLimiter(5, time.Minute)

	for i := 0; i < 5; i++ {
		if !l.Allow("1.2.3.4") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if l.Allow("1.2.3.4") {
		t.Error("request over the limit should be denied")
	}
}

func TestWindowSlides(t *testing.T) {
	l, clock := newTestLimiter(2, time.Minute)

	if !l.Allow("a") || !l.Allow("a") {
		t.Fatal("first two requests should be allowed")
	}
	if l.Allow("a") {
		t.Fatal("third request should be denied")
	}

	*clock = clock.Add(61 * time.Second)
	if !l.Allow("a") {
		t.Error("request after the window passed should be allowed")
	}
}

func TestDeniedRequestsNotRecorded(t *testing.T) {
	l, clock := newTestLimiter(1, time.Minute)

	if !l.Allow("a") {
		t.Fatal("first request should be allowed")
	}

	// Hammering while denied must not extend the block.
	for i := 0; i < 10; i++ {
		*clock = clock.Add(5 * time.Second)
		if l.Allow("a") {
			t.Fatalf("request at +%ds should be denied", (i+1)*5)
		}
	}

	*clock = clock.Add(15 * time.Second)
	if !l.Allow("a") {
		t.Error("request after the original window should be allowed")
	}
}

func TestIdleClientsSwept(t *testing.T) {
	l, clock := newTestLimiter(5, time.Minute)

	if !l.Allow("idle") {
		t.Fatal("first request should be allowed")
	}

	*clock = clock.Add(2 * time.Minute)
	if !l.Allow("active") {
		t.Fatal("request from a fresh key should be allowed")
	}

	l.mu.Lock()
	_, idleKept := l.clients["idle"]
	_, activeKept := l.clients["active"]
	l.mu.Unlock()

	if idleKept {
		t.Error("expired idle client should be dropped from the map")
	}
	if !activeKept {
		t.Error("active client must survive the sweep")
	}
}

func TestKeysAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(1, time.Minute)

	if !l.Allow("a") {
		t.Fatal("first key should be allowed")
	}
	if !l.Allow("b") {
		t.Error("second key should have its own window")
	}
	if l.Allow("a") {
		t.Error("first key should now be denied")
	}
}
