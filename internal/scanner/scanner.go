package scanner

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MrSnakeDoc/lanscout/internal/domain"
	"github.com/MrSnakeDoc/lanscout/internal/logger"
	"github.com/MrSnakeDoc/lanscout/internal/metrics"
)

// Scanner probes every service concurrently and merges the results.
type Scanner struct {
	prober  domain.Prober
	workers int
	metrics *metrics.Metrics
	logger  logger.Logger
}

// New creates a scanner. workers caps concurrent probes; 0 starts one
// goroutine per service so every probe is in flight at once.
// m and log may be nil.
func New(prober domain.Prober, workers int, m *metrics.Metrics, log logger.Logger) *Scanner {
	if workers < 0 {
		workers = 0
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Scanner{
		prober:  prober,
		workers: workers,
		metrics: m,
		logger:  log,
	}
}

// Scan probes all services and returns one entry per service.
// A failed probe only marks its own service offline; Scan itself cannot fail.
// Total latency is bounded by the slowest probe, not the sum.
func (s *Scanner) Scan(ctx context.Context, services []*domain.Service) domain.Snapshot {
	start := time.Now()
	results := make([]bool, len(services))

	var g errgroup.Group
	if s.workers > 0 {
		g.SetLimit(s.workers)
	}

	for i, svc := range services {
		if svc == nil {
			continue
		}
		g.Go(func() error {
			up := s.prober.Probe(ctx, svc)
			results[i] = up
			s.metrics.ObserveProbe(svc.Name, up)
			return nil
		})
	}
	_ = g.Wait() // probes never return errors

	snapshot := make(domain.Snapshot, len(services))
	for i, svc := range services {
		if svc == nil {
			continue
		}
		snapshot[svc.Name] = results[i]
	}

	elapsed := time.Since(start)
	s.metrics.ObserveScan(elapsed)
	s.logger.Debug("scan completed",
		logger.Int("services", len(snapshot)),
		logger.Int("online", snapshot.OnlineCount()),
		logger.Duration("elapsed", elapsed))

	return snapshot
}
