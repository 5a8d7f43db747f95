package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/MrSnakeDoc/lanscout/internal/domain"
	"github.com/MrSnakeDoc/lanscout/internal/logger"
	"github.com/MrSnakeDoc/lanscout/internal/metrics"
)

// DefaultCacheDuration is how long a scan result is reused.
const DefaultCacheDuration = 2 * time.Second

// Scanner produces a snapshot for a list of services.
type Scanner interface {
	Scan(ctx context.Context, services []*domain.Service) domain.Snapshot
}

// Options tunes a Monitor. Zero values pick sensible defaults.
type Options struct {
	CacheDuration time.Duration    // 0 => DefaultCacheDuration, negative => never cache
	Clock         func() time.Time // defaults to time.Now
	Metrics       *metrics.Metrics // optional
	Logger        logger.Logger    // optional
}

// Status is one consistent view of the services: the snapshot and the
// durations always come from the same scan.
type Status struct {
	Snapshot         domain.Snapshot
	OfflineDurations domain.OfflineDurations
	CapturedAt       time.Time
	Cached           bool
}

// Info describes the cache state for ops endpoints.
type Info struct {
	Services      int
	Scans         uint64
	LastScan      *time.Time
	CacheDuration time.Duration
}

// Monitor owns the status cache and the offline tracker. GetStatus is the
// only way to read them.
type Monitor struct {
	services      []*domain.Service
	scanner       Scanner
	cacheDuration time.Duration
	now           func() time.Time
	metrics       *metrics.Metrics
	logger        logger.Logger

	mu          sync.Mutex
	tracker     *OfflineTracker
	snapshot    domain.Snapshot
	capturedAt  *time.Time // nil until the first scan
	invalidated bool
	scans       uint64
}

// New creates a monitor for a fixed list of services.
func New(services []*domain.Service, scanner Scanner, opts Options) *Monitor {
	if opts.CacheDuration == 0 {
		opts.CacheDuration = DefaultCacheDuration
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewNop()
	}

	svcs := make([]*domain.Service, len(services))
	copy(svcs, services)

	return &Monitor{
		services:      svcs,
		scanner:       scanner,
		cacheDuration: opts.CacheDuration,
		now:           opts.Clock,
		metrics:       opts.Metrics,
		logger:        opts.Logger,
		tracker:       NewOfflineTracker(domain.Names(svcs)),
	}
}

// GetStatus returns the cached status while it is younger than the cache
// duration, and scans otherwise. The staleness check, the scan and the
// update of cache and durations happen under one lock, so concurrent
// callers trigger at most one scan per cache window.
func (m *Monitor) GetStatus(ctx context.Context) Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.freshLocked(m.now()) {
		m.metrics.ObserveCache(true)
		return m.statusLocked(true)
	}
	m.metrics.ObserveCache(false)

	// A client hanging up must not cut the scan short: every probe would
	// read as offline and that result would be cached for everyone.
	snapshot := m.scanner.Scan(context.WithoutCancel(ctx), m.services)
	scannedAt := m.now()

	var elapsed time.Duration
	if m.capturedAt != nil {
		elapsed = scannedAt.Sub(*m.capturedAt)
	}
	m.tracker.Update(snapshot, elapsed)

	m.snapshot = snapshot
	m.capturedAt = &scannedAt
	m.invalidated = false
	m.scans++

	status := m.statusLocked(false)
	m.metrics.ObserveStatus(status.Snapshot, status.OfflineDurations)
	m.logger.Debug("status refreshed",
		logger.Int("online", snapshot.OnlineCount()),
		logger.Int("services", len(snapshot)),
		logger.Duration("since_previous", elapsed))

	return status
}

// Invalidate forces the next GetStatus to scan. Offline durations keep
// being measured from the previous scan.
func (m *Monitor) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invalidated = true
}

// Info returns cache bookkeeping without triggering a scan.
func (m *Monitor) Info() Info {
	m.mu.Lock()
	defer m.mu.Unlock()

	info := Info{
		Services:      len(m.services),
		Scans:         m.scans,
		CacheDuration: m.cacheDuration,
	}
	if m.capturedAt != nil {
		t := *m.capturedAt
		info.LastScan = &t
	}
	return info
}

// Services returns the monitored services.
func (m *Monitor) Services() []*domain.Service {
	out := make([]*domain.Service, len(m.services))
	copy(out, m.services)
	return out
}

func (m *Monitor) freshLocked(now time.Time) bool {
	if m.capturedAt == nil || m.invalidated || m.cacheDuration < 0 {
		return false
	}
	return now.Sub(*m.capturedAt) < m.cacheDuration
}

func (m *Monitor) statusLocked(cached bool) Status {
	return Status{
		Snapshot:         m.snapshot.Clone(),
		OfflineDurations: m.tracker.Durations(),
		CapturedAt:       *m.capturedAt,
		Cached:           cached,
	}
}
