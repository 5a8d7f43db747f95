package monitor

import (
	"time"

	"github.com/MrSnakeDoc/lanscout/internal/domain"
)

// OfflineTracker accumulates, per service, the seconds observed offline
// since the service was last seen online.
//
// It is not safe for concurrent use; Monitor serializes access.
type OfflineTracker struct {
	durations domain.OfflineDurations
}

// NewOfflineTracker starts every named service at zero.
func NewOfflineTracker(names []string) *OfflineTracker {
	d := make(domain.OfflineDurations, len(names))
	for _, name := range names {
		d[name] = 0
	}
	return &OfflineTracker{durations: d}
}

// Update applies one scan. Online services reset to zero, offline services
// grow by elapsed, the wall-clock time since the previous scan. The same
// elapsed value applies to every service of the snapshot.
func (t *OfflineTracker) Update(snapshot domain.Snapshot, elapsed time.Duration) {
	delta := elapsed.Seconds()
	if delta < 0 {
		// wall clock stepped backwards
		delta = 0
	}

	for name, up := range snapshot {
		if up {
			t.durations[name] = 0
			continue
		}
		t.durations[name] += delta
	}
}

// Durations returns a copy of the current values.
func (t *OfflineTracker) Durations() domain.OfflineDurations {
	return t.durations.Clone()
}
