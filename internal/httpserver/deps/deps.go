package deps

import (
	"context"
	"time"

	"github.com/MrSnakeDoc/lanscout/internal/catalog"
	"github.com/MrSnakeDoc/lanscout/internal/logger"
	"github.com/MrSnakeDoc/lanscout/internal/metrics"
	"github.com/MrSnakeDoc/lanscout/internal/monitor"
)

// StatusMonitor is the part of *monitor.Monitor the handlers need.
type StatusMonitor interface {
	GetStatus(ctx context.Context) monitor.Status
	Invalidate()
	Info() monitor.Info
}

type Deps struct {
	Logger           logger.Logger
	StartTime        time.Time
	Version          string
	Commit           string
	BuildDate        string
	GoVersion        string
	TimeNow          func() time.Time // for testing, defaults to time.Now
	Monitor          StatusMonitor    // status cache + offline tracker
	Catalog          *catalog.Catalog // services loaded at startup
	Metrics          *metrics.Metrics // nil when metrics are disabled
	OfflineThreshold time.Duration    // dashboard hides tiles offline for longer
	PollInterval     time.Duration    // how often the dashboard polls /api/status
	IconsDir         string           // served under /icons (empty = disabled)
	AllowedHosts     []string         // Host headers allowed to reach the dashboard and search
	AllowedCIDRS     []string         // IPs allowed to reach ops endpoints
	TrustProxy       bool             // true if running behind a trusted reverse proxy
	RefreshBurst     int              // POST /api/refresh tokens per client
	RefreshPerMin    int              // POST /api/refresh refill per client per minute
}

// Now returns TimeNow() or time.Now().
func (d Deps) Now() time.Time {
	if d.TimeNow != nil {
		return d.TimeNow()
	}
	return time.Now()
}
