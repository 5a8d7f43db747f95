package mw

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MrSnakeDoc/lanscout/internal/logger"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func TestMatchHost(t *testing.T) {
	tests := []struct {
		host    string
		pattern string
		want    bool
	}{
		{"status.lan", "status.lan", true},
		{"status.lan", "*.lan", true},
		{"lan", "*.lan", false},
		{"status.lan", "other.lan", false},
		{"evil.com", "*.lan", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, matchHost(tt.host, tt.pattern), "%s vs %s", tt.host, tt.pattern)
	}
}

func TestEnforceHost(t *testing.T) {
	h := EnforceHost([]string{"Status.lan", "*.home"}, logger.NewNop())(okHandler)

	tests := []struct {
		host string
		want int
	}{
		{"status.lan", http.StatusNoContent},
		{"status.lan:5050", http.StatusNoContent},
		{"nas.home", http.StatusNoContent},
		{"192.168.1.2:5050", http.StatusForbidden},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Host = tt.host
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, tt.want, rec.Code, "host %s", tt.host)
	}
}

func TestEnforceHostEmptyIsPassthrough(t *testing.T) {
	h := EnforceHost(nil, logger.NewNop())(okHandler)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = "anything"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAllowOnlyCIDRS(t *testing.T) {
	tests := []struct {
		name       string
		allowed    []string
		remoteAddr string
		xff        string
		trustProxy bool
		want       int
	}{
		{name: "empty list", allowed: nil, remoteAddr: "8.8.8.8:1234", want: http.StatusNoContent},
		{name: "in cidr", allowed: []string{"192.168.1.0/24"}, remoteAddr: "192.168.1.20:1234", want: http.StatusNoContent},
		{name: "single ip", allowed: []string{"10.0.0.1"}, remoteAddr: "10.0.0.1:1234", want: http.StatusNoContent},
		{name: "outside", allowed: []string{"192.168.1.0/24"}, remoteAddr: "10.0.0.9:1234", want: http.StatusForbidden},
		{name: "xff ignored without trust", allowed: []string{"192.168.1.0/24"}, remoteAddr: "10.0.0.9:1234", xff: "192.168.1.20", want: http.StatusForbidden},
		{name: "xff trusted", allowed: []string{"192.168.1.0/24"}, remoteAddr: "10.0.0.9:1234", xff: "192.168.1.20", trustProxy: true, want: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := AllowOnlyCIDRS(tt.allowed, tt.trustProxy, logger.NewNop())(okHandler)
			req := httptest.NewRequest(http.MethodGet, "/infra", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestRateLimit(t *testing.T) {
	clock := &manualClock{now: time.Unix(1_700_000_000, 0)}
	h := RateLimit(RateLimitConfig{
		Burst:             2,
		RefillPerIPPerMin: 6, // one token every 10s
		Clock:             clock.Now,
	})(okHandler)

	do := func(remote string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/refresh", nil)
		req.RemoteAddr = remote
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	first := do("192.168.1.10:1000")
	assert.Equal(t, http.StatusNoContent, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusNoContent, do("192.168.1.10:1001").Code)

	limited := do("192.168.1.10:1002")
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "10", limited.Header().Get("Retry-After"))

	// other clients have their own bucket
	assert.Equal(t, http.StatusNoContent, do("192.168.1.11:1000").Code)

	clock.Advance(10 * time.Second)
	assert.Equal(t, http.StatusNoContent, do("192.168.1.10:1003").Code)
}

func TestLimiterSweepsIdleBuckets(t *testing.T) {
	start := time.Unix(1_700_000_000, 0)
	l := newLimiter(RateLimitConfig{Burst: 1, RefillPerIPPerMin: 1, IdleTTL: time.Minute, Clock: func() time.Time { return start }})

	l.allow("a", start)
	l.allow("b", start.Add(2*time.Minute)) // past SweepInterval: "a" is idle and dropped

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.NotContains(t, l.buckets, "a")
	assert.Contains(t, l.buckets, "b")
}

func TestLimiterMaxEntriesForcesSweep(t *testing.T) {
	start := time.Unix(1_700_000_000, 0)
	l := newLimiter(RateLimitConfig{Burst: 1, RefillPerIPPerMin: 1, MaxEntries: 2, IdleTTL: time.Second, SweepInterval: time.Hour, Clock: func() time.Time { return start }})

	l.allow("a", start)
	l.allow("b", start)
	l.allow("c", start.Add(5*time.Second))

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.Len(t, l.buckets, 1)
	assert.Contains(t, l.buckets, "c")
}
