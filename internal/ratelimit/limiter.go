// Package ratelimit implements a per-client sliding window rate limiter.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter allows at most limit requests per key within a sliding window.
type Limiter struct {
	mu        sync.Mutex
	limit     int
	window    time.Duration
	now       func() time.Time
	clients   map[string][]time.Time
	lastSweep time.Time
}

// New creates a Limiter allowing limit requests per window.
func New(limit int, window time.Duration) *Limiter {
	return &Limiter{
		limit:   limit,
		window:  window,
		now:     time.Now,
		clients: make(map[string][]time.Time),
	}
}

// Allow records a request for key and reports whether it is within the limit.
// Denied requests are not recorded, so a client hammering the endpoint does
// not push its own window forward.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	// Drop clients whose windows fully expired, at most once per window,
	// so idle-client entries do not accumulate for the process lifetime.
	if now.Sub(l.lastSweep) >= l.window {
		l.sweep(cutoff)
		l.lastSweep = now
	}

	stamps := l.clients[key]
	kept := stamps[:0]
	for _, ts := range stamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}

	if len(kept) >= l.limit {
		l.clients[key] = kept
		return false
	}

	l.clients[key] = append(kept, now)
	return true
}

func (l *Limiter) sweep(cutoff time.Time) {
	for key, stamps := range l.clients {
		if len(stamps) == 0 || !stamps[len(stamps)-1].After(cutoff) {
			delete(l.clients, key)
		}
	}
}
