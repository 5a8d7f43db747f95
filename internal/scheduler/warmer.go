package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/MrSnakeDoc/lanscout/internal/logger"
	"github.com/MrSnakeDoc/lanscout/internal/monitor"
)

// StatusSource is satisfied by *monitor.Monitor.
type StatusSource interface {
	GetStatus(ctx context.Context) monitor.Status
}

// Warmer reads the status on a fixed interval so the cache is fresh when a
// dashboard opens and offline durations keep growing between page loads.
// Reads go through the monitor, so the cache still bounds probe traffic.
type Warmer struct {
	source   StatusSource
	logger   logger.Logger
	interval time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewWarmer creates a warmer. It does nothing until Start is called.
func NewWarmer(source StatusSource, log logger.Logger, interval time.Duration) *Warmer {
	return &Warmer{
		source:   source,
		logger:   log,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start warms once immediately, then on every tick until Stop or ctx is done.
func (w *Warmer) Start(ctx context.Context) {
	w.Warm(ctx)

	ticker := time.NewTicker(w.interval)
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.Warm(ctx)
			case <-w.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop ends the loop and waits for an in-flight warm to finish.
func (w *Warmer) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Warm performs a single status read.
func (w *Warmer) Warm(ctx context.Context) {
	st := w.source.GetStatus(ctx)
	if st.Cached {
		return
	}
	w.logger.Debug("status warmed",
		logger.Int("online", st.Snapshot.OnlineCount()),
		logger.Int("services", len(st.Snapshot)))
}
