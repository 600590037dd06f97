package grpc

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// peerLimiter keeps one token bucket per peer. A zero rate disables limiting.
type peerLimiter struct {
	mu      sync.Mutex
	entries map[string]*limiterEntry
	rps     rate.Limit
	burst   int
}

func newPeerLimiter(rps float64, burst int) *peerLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &peerLimiter{entries: map[string]*limiterEntry{}, rps: rate.Limit(rps), burst: burst}
}

func (l *peerLimiter) allow(key string) bool {
	if l.rps <= 0 {
		return true
	}

	l.mu.Lock()
	e, ok := l.entries[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.entries[key] = e
	}
	e.lastSeen = time.Now()
	l.mu.Unlock()

	return e.limiter.Allow()
}

// cleanup drops buckets idle for longer than idle until ctx is done.
func (l *peerLimiter) cleanup(ctx context.Context, every, idle time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.prune(time.Now().Add(-idle))
		}
	}
}

func (l *peerLimiter) prune(threshold time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for k, e := range l.entries {
		if e.lastSeen.Before(threshold) {
			delete(l.entries, k)
		}
	}
}

func (l *peerLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
